package textkit

import (
	"strconv"
	"strings"
)

// Normalize collapses a title to its canonical identity form: lowercased with
// everything outside [a-z0-9] removed. The result is the sole identity used
// for matching titles across the catalog and the personal film list.
func Normalize(title string) string {
	lowered := strings.ToLower(title)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IdentityKey builds the composite dedup key for a record: normalized title
// joined with the year. Two records sharing a key are treated as one film.
func IdentityKey(title string, year int) string {
	return Normalize(title) + "|" + strconv.Itoa(year)
}
