package agent

import (
	"testing"

	"github.com/pthm/reqlint/internal/analyzer"
	"github.com/pthm/reqlint/internal/classifier"
	"github.com/pthm/reqlint/internal/fixer"
	"github.com/pthm/reqlint/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	model, err := classifier.Default(zap.NewNop())
	require.NoError(t, err)
	return NewController(analyzer.New(model, nil), analyzer.DefaultOptions(), zap.NewNop())
}

func TestNewSessionIdle(t *testing.T) {
	c := newController(t)
	s, err := c.NewSession()
	require.NoError(t, err)

	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 1, s.Iteration)
	assert.Zero(t, s.OriginalSeverity)
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.Converged())
}

func TestStartAndAdvance(t *testing.T) {
	c := newController(t)
	s, err := c.NewSession()
	require.NoError(t, err)

	text := "The system shall be fast and scalable."
	require.NoError(t, c.Start(s, text))

	assert.Equal(t, StateAwaiting, s.State())
	assert.Equal(t, 3, s.OriginalSeverity)
	assert.Equal(t, 1, s.Iteration)
	assert.Equal(t, []rules.Tag{rules.TagNoConstraints, rules.TagVagueTerms}, s.OriginalTags())
	assert.Equal(t, "Agent iteration: 1 → 2", s.Progress())
	assert.Equal(t, "Reduce severity from 3 → ≤ 1", s.Goal())

	round, err := c.Advance(s)
	require.NoError(t, err)

	assert.Equal(t, StateAwaiting, s.State())
	assert.Equal(t, 2, s.Iteration)
	assert.Equal(t, 2, round.Iteration)
	assert.NotContains(t, s.Suggestion, "fast")
	assert.NotContains(t, s.Suggestion, "scalable")
	assert.Contains(t, s.Suggestion, "respond within [X seconds]")
	assert.Contains(t, s.Suggestion, "support up to [N] concurrent users")
	assert.Contains(t, s.Suggestion, fixer.ConstraintSentence)

	// The original verdict is kept apart from the current one.
	assert.Equal(t, text, s.OriginalVerdict.Text)
	assert.Equal(t, s.Suggestion, s.Current.Text)
	assert.LessOrEqual(t, len(s.Current.Reasons), len(s.OriginalVerdict.Reasons))
	assert.False(t, s.Current.HasTag(rules.TagVagueTerms))
	assert.Len(t, s.Rounds, 1)
}

func TestAdvanceBeforeStart(t *testing.T) {
	c := newController(t)
	s, err := c.NewSession()
	require.NoError(t, err)

	_, err = c.Advance(s)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StateIdle, s.State())
}

func TestStartEmpty(t *testing.T) {
	c := newController(t)
	s, err := c.NewSession()
	require.NoError(t, err)

	assert.Error(t, c.Start(s, "   "))
	assert.Equal(t, StateIdle, s.State())
}

func TestReset(t *testing.T) {
	c := newController(t)
	s, err := c.NewSession()
	require.NoError(t, err)
	require.NoError(t, c.Start(s, "The system shall be fast."))
	_, err = c.Advance(s)
	require.NoError(t, err)

	c.Reset(s)

	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 1, s.Iteration)
	assert.Zero(t, s.OriginalSeverity)
	assert.Nil(t, s.Current)

	// Reset on an idle session is a no-op.
	c.Reset(s)
	assert.Equal(t, StateIdle, s.State())

	require.NoError(t, c.Start(s, "The system shall be secure."))
	assert.Equal(t, StateAwaiting, s.State())
}

func TestRestartWhileAwaiting(t *testing.T) {
	c := newController(t)
	s, err := c.NewSession()
	require.NoError(t, err)
	require.NoError(t, c.Start(s, "The system shall be fast."))
	_, err = c.Advance(s)
	require.NoError(t, err)

	require.NoError(t, c.Start(s, "The UI should be simple."))
	assert.Equal(t, 1, s.Iteration)
	assert.Equal(t, "The UI should be simple.", s.Original)
	assert.Empty(t, s.Rounds)
}

func TestEdit(t *testing.T) {
	c := newController(t)
	s, err := c.NewSession()
	require.NoError(t, err)

	assert.ErrorIs(t, c.Edit(s, "x"), ErrInvalidTransition)

	require.NoError(t, c.Start(s, "Respond fast within 2 seconds."))
	assert.Equal(t, []rules.Tag{rules.TagVagueTerms}, s.OriginalTags())
	require.NoError(t, c.Edit(s, "The system shall respond in under 2 seconds."))

	_, err = c.Advance(s)
	require.NoError(t, err)
	assert.Equal(t, "The system shall respond in under 2 seconds.", s.Current.Text)
	assert.True(t, s.Converged())
	assert.Equal(t, 1, s.Improvement())
}

// scriptedAnalyzer returns severities in order, one per call.
type scriptedAnalyzer struct {
	severities []int
	calls      int
}

func (a *scriptedAnalyzer) Analyze(text string, _ analyzer.Options) analyzer.Verdict {
	sev := a.severities[min(a.calls, len(a.severities)-1)]
	a.calls++
	return analyzer.Verdict{Text: text, Severity: sev, Tags: []rules.Tag{rules.TagVagueTerms}}
}

func TestRunStopsOnConvergence(t *testing.T) {
	a := &scriptedAnalyzer{severities: []int{3, 2, 1, 1}}
	c := NewController(a, analyzer.DefaultOptions(), nil)

	s, err := c.Run("fast and secure", RunOptions{Rounds: 5})
	require.NoError(t, err)

	assert.True(t, s.Converged())
	assert.Equal(t, 3, s.Iteration)
	assert.Len(t, s.Rounds, 2)
	assert.Equal(t, 2, s.Improvement())
	assert.Equal(t, 3, a.calls)
}

func TestRunRoundLimit(t *testing.T) {
	a := &scriptedAnalyzer{severities: []int{3}}
	c := NewController(a, analyzer.DefaultOptions(), nil)

	s, err := c.Run("fast", RunOptions{Rounds: 2})
	require.NoError(t, err)

	assert.False(t, s.Converged())
	assert.Len(t, s.Rounds, 2)
	assert.Zero(t, s.Improvement())
}

func TestRunAppliesEdit(t *testing.T) {
	c := newController(t)

	s, err := c.Run("Respond fast within 2 seconds.", RunOptions{
		Rounds: 3,
		Edit:   "The system shall respond in under 2 seconds.",
	})
	require.NoError(t, err)

	require.Len(t, s.Rounds, 1)
	assert.Equal(t, "The system shall respond in under 2 seconds.", s.Rounds[0].Suggestion)
	assert.True(t, s.Converged())
	assert.Equal(t, "Respond fast within 2 seconds.", s.Original)
}

func TestRunBlankEditKeepsSuggestion(t *testing.T) {
	a := &scriptedAnalyzer{severities: []int{3}}
	c := NewController(a, analyzer.DefaultOptions(), nil)

	s, err := c.Run("fast", RunOptions{Rounds: 0, Edit: "  "})
	require.NoError(t, err)
	assert.Equal(t, fixer.Suggest("fast", []rules.Tag{rules.TagVagueTerms}, 1), s.Suggestion)
}
