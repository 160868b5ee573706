package agent

import (
	"fmt"
	"strings"

	"github.com/pthm/reqlint/internal/analyzer"
	"github.com/pthm/reqlint/internal/fixer"
	"go.uber.org/zap"
)

// Analyzer analyzes a single requirement statement
type Analyzer interface {
	Analyze(text string, opts analyzer.Options) analyzer.Verdict
}

// Controller runs agent sessions against an analyzer. It never mutates the
// analyzer or its model; it only threads text and iteration counts through
// repeated calls.
type Controller struct {
	analyzer Analyzer
	opts     analyzer.Options
	logger   *zap.Logger
}

// NewController creates a Controller
func NewController(a Analyzer, opts analyzer.Options, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{analyzer: a, opts: opts, logger: logger}
}

// NewSession creates an idle session
func (c *Controller) NewSession() (*Session, error) {
	return newSession()
}

// Start analyzes text, captures the original severity, sets the iteration
// to 1 and computes the first suggestion. A session awaiting re-analysis
// may be started again with new text.
func (c *Controller) Start(s *Session, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("agent: empty requirement")
	}
	if err := s.transition(eventAnalyze); err != nil {
		return err
	}

	verdict := c.analyzer.Analyze(text, c.opts)

	s.Original = text
	s.OriginalVerdict = &verdict
	s.OriginalSeverity = verdict.Severity
	s.Iteration = 1
	s.Suggestion = fixer.Suggest(text, verdict.Tags, s.Iteration)
	s.Current = &verdict
	s.Rounds = nil

	c.logger.Debug("Agent session started",
		zap.String("session", s.ID),
		zap.Int("severity", verdict.Severity))

	return s.transition(eventSuggested)
}

// Edit replaces the current suggestion with caller-provided text, for
// example after a user adjusted the proposed rewrite.
func (c *Controller) Edit(s *Session, text string) error {
	if s.State() != StateAwaiting {
		return fmt.Errorf("%w: edit is not allowed in state %q", ErrInvalidTransition, s.State())
	}
	s.Suggestion = text
	return nil
}

// Advance increments the iteration, refines the current suggestion using
// the original tags, and re-analyzes the refined text. The original
// verdict is kept for comparison.
func (c *Controller) Advance(s *Session) (Round, error) {
	if err := s.transition(eventReanalyze); err != nil {
		return Round{}, err
	}

	s.Iteration++
	refined := fixer.Suggest(s.Suggestion, s.OriginalTags(), s.Iteration)
	verdict := c.analyzer.Analyze(refined, c.opts)

	s.Suggestion = refined
	s.Current = &verdict

	round := Round{Iteration: s.Iteration, Suggestion: refined, Verdict: verdict}
	s.Rounds = append(s.Rounds, round)

	c.logger.Debug("Agent session advanced",
		zap.String("session", s.ID),
		zap.Int("iteration", s.Iteration),
		zap.Int("severity", verdict.Severity),
		zap.Bool("converged", s.Converged()))

	return round, s.transition(eventSuggested)
}

// Reset returns the session to idle, sets the iteration to 1 and clears
// the captured original severity.
func (c *Controller) Reset(s *Session) {
	if s.State() != StateIdle {
		// Idle has no reset transition; every other state does.
		_ = s.transition(eventReset)
	}
	s.Iteration = 1
	s.OriginalSeverity = 0
	s.Original = ""
	s.OriginalVerdict = nil
	s.Suggestion = ""
	s.Current = nil
	s.Rounds = nil

	c.logger.Debug("Agent session reset", zap.String("session", s.ID))
}

// RunOptions control an unattended agent run
type RunOptions struct {
	// Rounds is the maximum number of Advance calls.
	Rounds int

	// Edit, when not blank, replaces the first suggestion before the first
	// round, as if the user had edited the proposed rewrite.
	Edit string
}

// Run starts a session on text, applies opts.Edit, and advances it up to
// opts.Rounds times, stopping early once the session converges.
func (c *Controller) Run(text string, opts RunOptions) (*Session, error) {
	s, err := c.NewSession()
	if err != nil {
		return nil, err
	}
	if err := c.Start(s, text); err != nil {
		return nil, err
	}
	if strings.TrimSpace(opts.Edit) != "" {
		if err := c.Edit(s, opts.Edit); err != nil {
			return s, err
		}
	}

	for i := 0; i < opts.Rounds && !s.Converged(); i++ {
		if _, err := c.Advance(s); err != nil {
			return s, err
		}
	}
	return s, nil
}
