package textkit

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordPattern matches lowercase word tokens: runs of 2+ alphanumeric or
// apostrophe characters bounded by word breaks. Single-letter fragments are
// noise; two-letter words (Pi, Go, 47) carry signal in film text.
var wordPattern = regexp.MustCompile(`\b[a-z0-9']{2,}\b`)

// Tokenize splits text into lowercase word tokens in order of occurrence.
// The regexp engine's \b only knows ASCII word characters, so matches that
// abut an accented letter ("café" yielding "caf") are filtered out rather
// than emitted as fragments.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	lowered := strings.ToLower(text)
	var tokens []string
	for _, span := range wordPattern.FindAllStringIndex(lowered, -1) {
		if abutsWordRune(lowered, span[0], span[1]) {
			continue
		}
		tokens = append(tokens, lowered[span[0]:span[1]])
	}
	return tokens
}

// abutsWordRune reports whether the match at [start, end) touches a letter
// or digit the ASCII \b mistook for a boundary.
func abutsWordRune(s string, start, end int) bool {
	if r, size := utf8.DecodeLastRuneInString(s[:start]); size > 0 && isWordRune(r) {
		return true
	}
	if r, size := utf8.DecodeRuneInString(s[end:]); size > 0 && isWordRune(r) {
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
