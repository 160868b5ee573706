// Package fixer proposes clearer rewrites of requirement statements. The
// rewrites are template based: vague terms become measurable placeholders
// that stakeholders must fill in.
package fixer

import (
	"strings"

	"github.com/pthm/reqlint/internal/lexicon"
	"github.com/pthm/reqlint/internal/rules"
)

// TermsPerIteration is how many vague terms one rewrite round replaces.
const TermsPerIteration = 2

// ConstraintSentence is appended when a statement has no measurable constraint.
const ConstraintSentence = "The system shall respond within [X] seconds for up to [N] concurrent users."

// PlaceholderNote reminds readers that placeholder values are not decided.
const PlaceholderNote = "Suggested values are placeholders and should be confirmed by stakeholders."

// placeholders maps each lexicon term to its measurable replacement.
var placeholders = map[string]string{
	"fast":          "respond within [X seconds]",
	"quick":         "respond within [X seconds]",
	"efficient":     "respond within [X seconds]",
	"many":          "[N] users",
	"large":         "[N] users",
	"user-friendly": "achieve a usability score of at least [X] (SUS)",
	"scalable":      "support up to [N] concurrent users",
	"flexible":      "support up to [N] concurrent users",
	"robust":        "maintain [X]% uptime",
	"reliable":      "maintain [X]% uptime",
	"secure":        "comply with [security standard, e.g. OWASP ASVS level]",
	"simple":        "be completed in at most [N] steps",
	"easy":          "be completed in at most [N] steps",
}

// Placeholder returns the measurable replacement for a lexicon term
func Placeholder(term string) (string, bool) {
	p, ok := placeholders[term]
	return p, ok
}

// Suggest returns a rewrite of text addressing tags. It is a pure function
// of its inputs.
//
// With VAGUE_TERMS, the lexicon terms present in text are listed in lexicon
// order and the pair at position (iteration-1)*2 is replaced; later terms
// are left for later iterations. With NO_CONSTRAINTS, trailing periods and
// whitespace are trimmed and ConstraintSentence is appended, even when an
// earlier round already appended it. With COMPLEX_SENTENCE, the first
// " and " becomes "; and ".
func Suggest(text string, tags []rules.Tag, iteration int) string {
	if iteration < 1 {
		iteration = 1
	}
	set := make(map[rules.Tag]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}

	out := text

	if set[rules.TagVagueTerms] {
		out = replaceVagueTerms(out, iteration)
	}

	if set[rules.TagNoConstraints] {
		out = strings.TrimRight(out, " \t\r\n.") + ". " + ConstraintSentence
	}

	if set[rules.TagComplexSentence] {
		out = splitConjunction(out)
	}

	return out
}

func replaceVagueTerms(text string, iteration int) string {
	terms := lexicon.Match(text)
	start := (iteration - 1) * TermsPerIteration
	if start >= len(terms) {
		return text
	}
	end := min(start+TermsPerIteration, len(terms))

	out := text
	for _, term := range terms[start:end] {
		out = lexicon.Replace(out, term, placeholders[term])
	}
	return out
}

func splitConjunction(text string) string {
	return strings.Replace(text, " and ", "; and ", 1)
}
