// Package lexicon holds the fixed vocabulary of vague, unquantified quality
// terms and the substring matching used to find and emphasize them.
package lexicon

import (
	"regexp"
	"sort"
	"strings"
)

// Terms is the vague-term lexicon in declaration order. Match results and
// rewrite ordering follow this order, not the order of first occurrence.
var Terms = []string{
	"fast", "quick", "efficient", "user-friendly", "secure", "many", "large",
	"simple", "easy", "robust", "scalable", "flexible", "reliable",
}

// Wrapper emphasizes a lexicon term.
type Wrapper func(term string) string

// Markdown wraps a term in bold markers.
func Markdown(term string) string {
	return "**" + term + "**"
}

var patterns = make(map[string]*regexp.Regexp, len(Terms))

var longestFirst []string

func init() {
	for _, term := range Terms {
		patterns[term] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	}
	longestFirst = append([]string(nil), Terms...)
	sort.SliceStable(longestFirst, func(i, j int) bool {
		return len(longestFirst[i]) > len(longestFirst[j])
	})
}

// Match returns the lexicon terms that occur in text as case-insensitive
// substrings, in declaration order. A term embedded in a longer word
// ("fastest") counts as a match.
func Match(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, term := range Terms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

// Highlight replaces every case-insensitive occurrence of every matched
// term with the wrapped lowercase term, so "FAST" becomes "**fast**".
// Terms are replaced longest first so a shorter term cannot split a longer
// overlapping one. Already wrapped terms are wrapped again on a second pass.
func Highlight(text string, wrap Wrapper) string {
	if wrap == nil {
		wrap = Markdown
	}
	lower := strings.ToLower(text)
	out := text
	for _, term := range longestFirst {
		if !strings.Contains(lower, term) {
			continue
		}
		out = patterns[term].ReplaceAllLiteralString(out, wrap(term))
	}
	return out
}

// Replace substitutes every case-insensitive occurrence of term in text
// with replacement. The replacement is inserted literally.
func Replace(text, term, replacement string) string {
	re, ok := patterns[term]
	if !ok {
		re = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	}
	return re.ReplaceAllLiteralString(text, replacement)
}
