package textkit

import "strings"

// gramLengths are the motif sizes extracted from every token sequence.
var gramLengths = [...]int{1, 2, 3}

// Motifs extracts the set of 1-3 word motifs present in the text. Unigrams
// that are stopwords or shorter than 3 characters are discarded; multi-word
// motifs are never filtered, so stopwords may appear inside phrases. The
// result is a set: repeats within one text collapse, which makes downstream
// frequency counters count distinct records rather than raw occurrences.
func Motifs(text string) map[string]struct{} {
	tokens := Tokenize(text)
	out := make(map[string]struct{})
	for _, n := range gramLengths {
		for i := 0; i+n <= len(tokens); i++ {
			gram := strings.Join(tokens[i:i+n], " ")
			if n == 1 && (IsStopword(gram) || len(gram) < 3) {
				continue
			}
			out[gram] = struct{}{}
		}
	}
	return out
}
