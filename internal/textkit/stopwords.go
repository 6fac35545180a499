package textkit

// stopwords are ignored as single-word motifs but allowed inside phrases, so
// "in the mood" survives while "the" alone does not.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "this": {}, "that": {}, "with": {}, "from": {},
	"for": {}, "was": {}, "were": {}, "of": {}, "to": {}, "in": {},
	"is": {}, "it": {}, "as": {}, "on": {},
}

// IsStopword reports whether the token is filtered when it stands alone.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
