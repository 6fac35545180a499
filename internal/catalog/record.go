package catalog

import (
	"errors"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"whitemask/internal/textkit"
)

// Year decodes a catalog year that may arrive as a JSON number, a numeric
// string, or garbage. Anything unparsable decodes to 0.
type Year int

// UnmarshalJSON implements defensive year parsing.
func (y *Year) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" || s == "null" {
		*y = 0
		return nil
	}
	if parsed, err := strconv.Atoi(s); err == nil {
		*y = Year(parsed)
		return nil
	}
	if parsed, err := strconv.ParseFloat(s, 64); err == nil {
		*y = Year(int(parsed))
		return nil
	}
	*y = 0
	return nil
}

// Review is a single catalog review; only its text participates in mining.
type Review struct {
	ReviewText string `json:"review_text"`
}

// Record is one catalog film entry. All fields are optional on the wire.
type Record struct {
	Title     string   `json:"title"`
	Year      Year     `json:"year"`
	Synopsis  string   `json:"synopsis"`
	Genres    []string `json:"genres"`
	Directors []string `json:"directors"`
	Cast      []string `json:"cast"`
	Countries []string `json:"countries"`
	Reviews   []Review `json:"reviews"`
	URL       string   `json:"url"`
}

// NormalizedTitle returns the record's canonical identity title. Identity is
// built on DisplayTitle, so records with an empty title field but distinct
// URL slugs keep distinct identities.
func (r *Record) NormalizedTitle() string {
	return textkit.Normalize(r.DisplayTitle())
}

// Key returns the record's composite identity key (normalized title + year).
func (r *Record) Key() string {
	return textkit.IdentityKey(r.DisplayTitle(), int(r.Year))
}

// MiningText assembles the fingerprint-stage corpus for the record: synopsis,
// space-joined genres, and up to reviewCap review texts.
func (r *Record) MiningText(reviewCap int) string {
	parts := make([]string, 0, 2+reviewCap)
	parts = append(parts, r.Synopsis, strings.Join(r.Genres, " "))
	for _, rev := range capReviews(r.Reviews, reviewCap) {
		parts = append(parts, rev.ReviewText)
	}
	return strings.Join(parts, " ")
}

// ScoringText assembles the lowercase discovery-stage text: synopsis plus up
// to reviewCap review texts. Genres are deliberately excluded here.
func (r *Record) ScoringText(reviewCap int) string {
	parts := make([]string, 0, 1+reviewCap)
	parts = append(parts, strings.ToLower(r.Synopsis))
	for _, rev := range capReviews(r.Reviews, reviewCap) {
		parts = append(parts, strings.ToLower(rev.ReviewText))
	}
	return strings.Join(parts, " ")
}

// TopCast returns at most n cast members in billing order.
func (r *Record) TopCast(n int) []string {
	if len(r.Cast) <= n {
		return r.Cast
	}
	return r.Cast[:n]
}

func capReviews(reviews []Review, n int) []Review {
	if n < 0 {
		n = 0
	}
	if len(reviews) <= n {
		return reviews
	}
	return reviews[:n]
}

func decodeRecord(line []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(line, &rec); err != nil {
		// A mistyped field (say, a numeric synopsis) leaves that field at
		// its zero value while the rest of the record decodes; keep it.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &rec, nil
		}
		return nil, err
	}
	return &rec, nil
}
