package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayTitle returns the record's title, deriving one from the URL slug
// when the title field is empty. Identity normalization applies to whatever
// this returns.
func (r *Record) DisplayTitle() string {
	if strings.TrimSpace(r.Title) != "" {
		return r.Title
	}
	return titleFromURL(r.URL)
}

func titleFromURL(rawURL string) string {
	trimmed := strings.Trim(strings.TrimSpace(rawURL), "/")
	if trimmed == "" {
		return ""
	}
	slug := trimmed
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		slug = trimmed[idx+1:]
	}
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range slug {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case r == '-' || r == '_' || r == '.' || unicode.IsSpace(r):
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return ""
	}
	return cases.Title(language.Und).String(title)
}
