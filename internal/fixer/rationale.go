package fixer

import "github.com/pthm/reqlint/internal/rules"

// ClearRationale is returned when no tag is set.
const ClearRationale = "The requirement is reasonably clear; no major rewrite was needed."

var rationales = map[rules.Tag]string{
	rules.TagVagueTerms:      "Replaced vague quality words with measurable placeholders so the requirement can be verified.",
	rules.TagNoConstraints:   "Added a measurable constraint (response time and user count) so the requirement can be tested.",
	rules.TagComplexSentence: "Split the sentence at a conjunction so each obligation can be reviewed on its own.",
	rules.TagMLAmbiguity:     "The classifier found wording similar to unclear examples; review the statement for hidden assumptions.",
}

// Rationale explains the rewrite for tags, one sentence per tag in the
// order VAGUE_TERMS, NO_CONSTRAINTS, COMPLEX_SENTENCE, ML_AMBIGUITY.
func Rationale(tags []rules.Tag) []string {
	set := make(map[rules.Tag]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}

	var out []string
	for _, tag := range rules.AllTags {
		if set[tag] {
			out = append(out, rationales[tag])
		}
	}
	if len(out) == 0 {
		return []string{ClearRationale}
	}
	return out
}
