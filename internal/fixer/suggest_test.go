package fixer

import (
	"strings"
	"testing"

	"github.com/pthm/reqlint/internal/lexicon"
	"github.com/pthm/reqlint/internal/rules"
	"github.com/stretchr/testify/assert"
)

var (
	vague       = []rules.Tag{rules.TagVagueTerms}
	noConstr    = []rules.Tag{rules.TagNoConstraints}
	complexTags = []rules.Tag{rules.TagComplexSentence}
)

func TestSuggestVagueAndConstraints(t *testing.T) {
	tags := []rules.Tag{rules.TagNoConstraints, rules.TagVagueTerms}

	got := Suggest("The system shall be fast and scalable.", tags, 1)

	want := "The system shall be respond within [X seconds] and support up to [N] concurrent users. " + ConstraintSentence
	assert.Equal(t, want, got)
}

func TestSuggestDeterministic(t *testing.T) {
	text := "The UI should be user-friendly, secure and fast, and easy to extend."
	tags := []rules.Tag{rules.TagVagueTerms, rules.TagNoConstraints, rules.TagComplexSentence}
	for k := 1; k <= 3; k++ {
		assert.Equal(t, Suggest(text, tags, k), Suggest(text, tags, k))
	}
}

func TestSuggestIterationProgression(t *testing.T) {
	text := "A fast, secure, large and reliable store."
	// lexicon order: fast, secure, large, reliable
	first := Suggest(text, vague, 1)
	second := Suggest(text, vague, 2)
	third := Suggest(text, vague, 3)

	assert.Equal(t, []string{"large", "reliable"}, lexicon.Match(first))
	assert.Equal(t, []string{"fast", "secure"}, lexicon.Match(second))
	assert.Equal(t, text, third)

	assert.Contains(t, first, "respond within [X seconds]")
	assert.Contains(t, first, "comply with [security standard")
	assert.Contains(t, second, "[N] users")
	assert.Contains(t, second, "maintain [X]% uptime")
}

func TestSuggestLexiconOrderNotOccurrenceOrder(t *testing.T) {
	got := Suggest("Reliable, scalable and quick.", vague, 1)
	// lexicon order: quick, scalable, reliable
	assert.Equal(t, "Reliable, support up to [N] concurrent users and respond within [X seconds].", got)
}

func TestSuggestReplacesEveryOccurrence(t *testing.T) {
	got := Suggest("Fast login, FAST search.", vague, 1)
	assert.Equal(t, "respond within [X seconds] login, respond within [X seconds] search.", got)
}

func TestSuggestConstraintAppend(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Log every request.", "Log every request. " + ConstraintSentence},
		{"Log every request...  ", "Log every request. " + ConstraintSentence},
		{"", ". " + ConstraintSentence},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Suggest(tt.in, noConstr, 1))
	}
}

func TestSuggestConstraintAppendsEveryCall(t *testing.T) {
	once := Suggest("Log every request.", noConstr, 1)
	twice := Suggest(once, noConstr, 2)
	assert.Equal(t, once+" "+ConstraintSentence, twice)
	assert.Equal(t, 2, strings.Count(twice, ConstraintSentence))

	got := Suggest("Log every request. "+ConstraintSentence, noConstr, 2)
	assert.Equal(t, 2, strings.Count(got, ConstraintSentence))
}

func TestSuggestComplexSplit(t *testing.T) {
	text := "Validate input and store it and notify the user"

	first := Suggest(text, complexTags, 1)
	assert.Equal(t, "Validate input; and store it and notify the user", first)

	// Only the first " and " is touched, even when it was split before.
	second := Suggest(first, complexTags, 2)
	assert.Equal(t, "Validate input;; and store it and notify the user", second)

	assert.Equal(t, "Validate input;; and store it and notify",
		Suggest("Validate input; and store it and notify", complexTags, 1))
	assert.Equal(t, "no conjunction", Suggest("no conjunction", complexTags, 1))
	assert.Equal(t, "Sand and", Suggest("Sand and", complexTags, 1))
}

func TestSuggestNoTags(t *testing.T) {
	text := "The system shall be fast."
	assert.Equal(t, text, Suggest(text, nil, 1))
}

func TestSuggestIterationBelowOne(t *testing.T) {
	assert.Equal(t, Suggest("fast", vague, 1), Suggest("fast", vague, 0))
}

func TestPlaceholdersCoverLexicon(t *testing.T) {
	for _, term := range lexicon.Terms {
		p, ok := Placeholder(term)
		if assert.True(t, ok, term) {
			assert.Empty(t, lexicon.Match(p), "placeholder for %q reintroduces a vague term", term)
			assert.False(t, rules.HasMeasurableConstraint(p), "placeholder for %q looks measurable", term)
		}
	}
	assert.Empty(t, lexicon.Match(ConstraintSentence))
}

func TestRationale(t *testing.T) {
	assert.Equal(t, []string{ClearRationale}, Rationale(nil))

	got := Rationale([]rules.Tag{rules.TagMLAmbiguity, rules.TagComplexSentence, rules.TagVagueTerms, rules.TagNoConstraints})
	assert.Equal(t, []string{
		rationales[rules.TagVagueTerms],
		rationales[rules.TagNoConstraints],
		rationales[rules.TagComplexSentence],
		rationales[rules.TagMLAmbiguity],
	}, got)

	assert.Len(t, Rationale([]rules.Tag{rules.TagNoConstraints, rules.TagNoConstraints}), 1)
}
