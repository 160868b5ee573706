package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPredictor float64

func (p fixedPredictor) PredictUnclear(string) float64 {
	return float64(p)
}

func run(t *testing.T, r Rule, ctx *AnalysisContext) []Issue {
	t.Helper()
	issues, err := r.Run(ctx)
	require.NoError(t, err)
	return issues
}

func TestVagueTermsRule(t *testing.T) {
	r := &VagueTermsRule{}
	assert.Equal(t, "vague-terms", r.Name())

	issues := run(t, r, &AnalysisContext{Text: "The system shall be fast and scalable."})
	require.Len(t, issues, 1)
	assert.Equal(t, TagVagueTerms, issues[0].Tag)
	assert.Equal(t, "Vague terms detected: fast, scalable", issues[0].Message)
	assert.Equal(t, []string{"fast", "scalable"}, issues[0].Terms)

	assert.Empty(t, run(t, r, &AnalysisContext{Text: "Store 10GB of logs daily."}))
}

func TestComplexSentenceRuleBoundary(t *testing.T) {
	r := &ComplexSentenceRule{}
	text := "The app must load data."
	require.Len(t, Tokenize(text), 6)

	issues := run(t, r, &AnalysisContext{Text: text, MaxLength: 5})
	require.Len(t, issues, 1)
	assert.Equal(t, TagComplexSentence, issues[0].Tag)

	assert.Empty(t, run(t, r, &AnalysisContext{Text: text, MaxLength: 6}))
}

func TestComplexSentenceRuleDefaultLength(t *testing.T) {
	r := &ComplexSentenceRule{}
	short := "The system shall respond in under 2 seconds."
	long := "When the operator submits a report the system shall validate every field, store the result, notify the reviewer, and archive the previous version."

	assert.Empty(t, run(t, r, &AnalysisContext{Text: short}))
	assert.Len(t, run(t, r, &AnalysisContext{Text: long}), 1)
}

func TestMissingConstraintsRule(t *testing.T) {
	tests := []struct {
		text    string
		missing bool
	}{
		{"The system shall respond in under 2 seconds.", false},
		{"Handle 1000 records within 5 seconds.", false},
		{"Store 10GB of logs daily.", false},
		{"Respond within 200ms.", false},
		{"Support 500 Users.", false},
		{"Keep CPU below 80% at peak.", false},
		{"Keep CPU below 80%", false},
		{"Respond within 2\u00a0seconds.", false},
		{"Serve 50\u202fusers concurrently.", false},
		{"Respond within 2\tseconds.", false},
		{"The system shall be fast and scalable.", true},
		{"Respond within [X] seconds.", true},
		{"Retry 3 times.", true},
		{"", true},
	}

	r := &MissingConstraintsRule{}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			issues := run(t, r, &AnalysisContext{Text: tt.text})
			if tt.missing {
				require.Len(t, issues, 1)
				assert.Equal(t, TagNoConstraints, issues[0].Tag)
			} else {
				assert.Empty(t, issues)
			}
		})
	}
}

func TestMeasurableConstraints(t *testing.T) {
	got := MeasurableConstraints("Respond in 2 seconds for 500 users using 1 GB")
	assert.Equal(t, []string{"2 seconds", "500 users", "1 GB"}, got)

	got = MeasurableConstraints("Respond in 2\u00a0seconds")
	assert.Equal(t, []string{"2\u00a0seconds"}, got)
}

func TestMLAmbiguityRule(t *testing.T) {
	r := &MLAmbiguityRule{}
	assert.True(t, r.Config().RequiresModel)

	t.Run("above threshold", func(t *testing.T) {
		issues := run(t, r, &AnalysisContext{Text: "x", Threshold: 0.6, Model: fixedPredictor(0.61)})
		require.Len(t, issues, 1)
		assert.Equal(t, TagMLAmbiguity, issues[0].Tag)
	})

	t.Run("equal to threshold", func(t *testing.T) {
		assert.Empty(t, run(t, r, &AnalysisContext{Text: "x", Threshold: 0.6, Model: fixedPredictor(0.6)}))
	})

	t.Run("no model", func(t *testing.T) {
		assert.Empty(t, run(t, r, &AnalysisContext{Text: "x", Threshold: 0.6}))
	})

	t.Run("suppressed by vague terms reason text", func(t *testing.T) {
		ctx := &AnalysisContext{
			Text:      "x",
			Threshold: 0.6,
			Model:     fixedPredictor(0.9),
			Reasons:   []string{"Vague terms detected: fast"},
		}
		assert.Empty(t, run(t, r, ctx))
	})

	// The guard looks at reason text only. A reason that merely mentions
	// vagueness in other words does not suppress the model.
	t.Run("not suppressed by other reason text", func(t *testing.T) {
		ctx := &AnalysisContext{
			Text:      "x",
			Threshold: 0.6,
			Model:     fixedPredictor(0.9),
			Reasons:   []string{"vague wording", "No measurable constraints provided."},
		}
		assert.Len(t, run(t, r, ctx), 1)
	})
}

func TestRegistry(t *testing.T) {
	reg := DefaultRegistry()

	all := reg.Rules(true)
	require.Len(t, all, 4)
	names := make([]string, len(all))
	for i, r := range all {
		names[i] = r.Name()
	}
	assert.Equal(t, []string{"vague-terms", "complex-sentence", "missing-constraints", "ml-ambiguity"}, names)

	assert.Len(t, reg.Rules(false), 3)
	assert.NotNil(t, reg.Get("missing-constraints"))
	assert.Nil(t, reg.Get("nope"))
}

func TestAnalysisContextRecord(t *testing.T) {
	ctx := &AnalysisContext{}
	ctx.Record([]Issue{{Message: "a"}, {Message: "b"}})
	assert.Equal(t, []string{"a", "b"}, ctx.Reasons)
}

func TestParseTag(t *testing.T) {
	tag, ok := ParseTag("NO_CONSTRAINTS")
	assert.True(t, ok)
	assert.Equal(t, TagNoConstraints, tag)

	_, ok = ParseTag("no_constraints")
	assert.False(t, ok)
}
