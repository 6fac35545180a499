package discovery

import (
	"errors"
	"sort"
	"strings"

	"whitemask/internal/catalog"
	"whitemask/internal/fingerprint"
	"whitemask/internal/history"
)

// ErrNoCandidates is returned when no candidate clears the score threshold;
// the run completes but there is nothing to report.
var ErrNoCandidates = errors.New("no candidates above threshold")

// Config holds the scoring tunables.
type Config struct {
	ScoreThreshold float64
	DrearyPenalty  float64
	LegacyBonus    float64
	ReviewCap      int
	CastCap        int
	EvidenceCap    int
	DrearyTokens   []string
	RegionalBoost  map[string]float64
}

// Result is one ranked discovery candidate.
type Result struct {
	Name     string
	Year     int
	Score    float64
	URL      string
	Legacy   bool
	Evidence []string
}

// Scorer applies the lexicon and scoring rules to catalog records. It owns
// its favored-creator and dedup state; construct one per run, call PreScan
// over the full stream first, then Score over a second pass.
type Scorer struct {
	cfg     Config
	lexicon []fingerprint.Entry
	matcher *history.Matcher
	favored map[string]struct{}
	ledger  *catalog.Ledger
}

// NewScorer creates a fresh scorer for one discovery run. The lexicon must
// be in ranking order; evidence lists follow it.
func NewScorer(cfg Config, lexicon []fingerprint.Entry, matcher *history.Matcher) *Scorer {
	return &Scorer{
		cfg:     cfg,
		lexicon: lexicon,
		matcher: matcher,
		favored: make(map[string]struct{}),
		ledger:  catalog.NewLedger(),
	}
}

// PreScan inspects one record during the favored-creator pass. Records that
// exactly match the personal list (strict title and year) contribute their
// directors and top-billed cast to the favored-creators set.
func (s *Scorer) PreScan(rec *catalog.Record) {
	if !s.matcher.Seen(rec.NormalizedTitle(), int(rec.Year)) {
		return
	}
	for _, director := range rec.Directors {
		s.favored[director] = struct{}{}
	}
	for _, member := range rec.TopCast(s.cfg.CastCap) {
		s.favored[member] = struct{}{}
	}
}

// FavoredCount reports how many favored creators the pre-scan collected.
func (s *Scorer) FavoredCount() int {
	return len(s.favored)
}

// Score evaluates one record during the main pass. It returns false when the
// record is already seen, a duplicate, or below the score threshold.
func (s *Scorer) Score(rec *catalog.Record) (Result, bool) {
	normTitle := rec.NormalizedTitle()
	if s.matcher.Seen(normTitle, int(rec.Year)) {
		return Result{}, false
	}
	if !s.ledger.Admit(rec.Key()) {
		return Result{}, false
	}

	text := rec.ScoringText(s.cfg.ReviewCap)

	var score float64
	var matched []string
	for _, entry := range s.lexicon {
		if strings.Contains(text, entry.Motif) {
			score += entry.Score
			matched = append(matched, entry.Motif)
		}
	}

	for _, dreary := range s.cfg.DrearyTokens {
		if strings.Contains(text, dreary) {
			score -= s.cfg.DrearyPenalty
		}
	}

	countries := strings.Join(rec.Countries, " ")
	for region, boost := range s.cfg.RegionalBoost {
		if strings.Contains(countries, region) {
			score += boost
		}
	}

	legacy := s.hasLegacyCreator(rec)
	if legacy {
		score += s.cfg.LegacyBonus
	}

	if score <= s.cfg.ScoreThreshold {
		return Result{}, false
	}

	if len(matched) > s.cfg.EvidenceCap {
		matched = matched[:s.cfg.EvidenceCap]
	}
	return Result{
		Name:     rec.DisplayTitle(),
		Year:     int(rec.Year),
		Score:    score,
		URL:      rec.URL,
		Legacy:   legacy,
		Evidence: matched,
	}, true
}

func (s *Scorer) hasLegacyCreator(rec *catalog.Record) bool {
	for _, director := range rec.Directors {
		if _, ok := s.favored[director]; ok {
			return true
		}
	}
	for _, member := range rec.Cast {
		if _, ok := s.favored[member]; ok {
			return true
		}
	}
	return false
}

// SortResults orders results by descending score, ties broken by title.
func SortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Name < results[j].Name
	})
}
