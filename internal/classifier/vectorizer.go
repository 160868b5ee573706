package classifier

import (
	"regexp"
	"sort"
	"strings"
)

// wordPattern matches tokens of two or more letters, digits or underscores.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Vectorizer turns text into bag-of-words counts over a fixed vocabulary.
// Words outside the vocabulary are ignored.
type Vectorizer struct {
	terms []string
	index map[string]int
}

// NewVectorizer builds a vocabulary from corpus, sorted lexicographically.
func NewVectorizer(corpus []string) *Vectorizer {
	seen := make(map[string]bool)
	for _, doc := range corpus {
		for _, w := range analyze(doc) {
			seen[w] = true
		}
	}

	terms := make([]string, 0, len(seen))
	for w := range seen {
		terms = append(terms, w)
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	for i, w := range terms {
		index[w] = i
	}
	return &Vectorizer{terms: terms, index: index}
}

func analyze(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// Len returns the vocabulary size
func (v *Vectorizer) Len() int {
	return len(v.terms)
}

// Terms returns the vocabulary in index order
func (v *Vectorizer) Terms() []string {
	return append([]string(nil), v.terms...)
}

// Index returns the vocabulary index of word, or -1.
func (v *Vectorizer) Index(word string) int {
	if i, ok := v.index[word]; ok {
		return i
	}
	return -1
}

// Transform returns the dense count vector of text
func (v *Vectorizer) Transform(text string) []float64 {
	counts := make([]float64, len(v.terms))
	for _, w := range analyze(text) {
		if i, ok := v.index[w]; ok {
			counts[i]++
		}
	}
	return counts
}
