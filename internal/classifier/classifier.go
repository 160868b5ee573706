// Package classifier implements the ambiguity classifier: a bag-of-words
// logistic regression trained once on a small labeled corpus, plus the
// feature explanation that surfaces its most influential words.
package classifier

// Classifier scores requirement statements for ambiguity
type Classifier interface {
	// PredictUnclear returns the probability in [0,1] that text is unclear
	PredictUnclear(text string) float64

	// Explain returns the vocabulary words in text with their learned
	// weights, strongest first, at most topN of them
	Explain(text string, topN int) []Feature
}

// Feature is a vocabulary word paired with its learned coefficient.
// Positive weights push toward "unclear".
type Feature struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

// DefaultTopN is the number of features reported by default
const DefaultTopN = 5
