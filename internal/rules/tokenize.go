package rules

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

// Tokenize splits text into word and punctuation tokens using Unicode word
// boundaries (UAX #29). Whitespace is dropped. Hyphenated compounds such as
// "user-friendly" stay a single token.
func Tokenize(text string) []string {
	var raw []string
	segments := words.FromString(text)
	for segments.Next() {
		raw = append(raw, segments.Value())
	}

	tokens := make([]string, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		tok := raw[i]
		if isSpace(tok) {
			continue
		}
		// Join word-hyphen-word runs with no whitespace in between.
		for i+2 < len(raw) && raw[i+1] == "-" && isWord(raw[i+2]) && isWord(tok) {
			tok += "-" + raw[i+2]
			i += 2
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isSpace(tok string) bool {
	return strings.TrimSpace(tok) == ""
}

func isWord(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
