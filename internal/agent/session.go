// Package agent drives the iterative rewrite loop: analyze a requirement,
// propose a rewrite, re-analyze the rewrite, and track progress toward a
// clear statement.
package agent

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/statekit"
	"github.com/google/uuid"
	"github.com/pthm/reqlint/internal/analyzer"
	"github.com/pthm/reqlint/internal/rules"
)

// State constants for statekit integration.
// These must remain untyped string constants for statekit.StateID compatibility.
const (
	StateIdle      = "idle"
	StateAnalyzing = "analyzing"
	StateAwaiting  = "awaiting_reanalysis"
)

const (
	eventAnalyze   = "analyze"
	eventReanalyze = "reanalyze"
	eventSuggested = "suggested"
	eventReset     = "reset"
)

// TargetSeverity is the severity a session aims for.
const TargetSeverity = 1

// ErrInvalidTransition is returned when an action is not allowed in the
// session's current state.
var ErrInvalidTransition = errors.New("agent: invalid transition")

// sessionContext carries state data.
type sessionContext struct {
	SessionID string
}

// Round is one suggest-and-reanalyze cycle
type Round struct {
	Iteration  int              `json:"iteration"`
	Suggestion string           `json:"suggestion"`
	Verdict    analyzer.Verdict `json:"verdict"`
}

// Label describes the step that produced the round, e.g. "Agent iteration: 1 → 2".
func (r Round) Label() string {
	return fmt.Sprintf("Agent iteration: %d → %d", r.Iteration-1, r.Iteration)
}

// Session is the state of one agent run. It is owned by a single caller;
// concurrent Advance or Reset calls on the same session must be serialized
// by that caller.
type Session struct {
	ID string

	// Iteration is the current round number, starting at 1.
	Iteration int

	// Original is the statement the session started from.
	Original string

	// OriginalVerdict is the analysis of Original, kept for comparison.
	OriginalVerdict *analyzer.Verdict

	// OriginalSeverity is captured at Start; zero means not captured.
	OriginalSeverity int

	// Suggestion is the most recent rewrite.
	Suggestion string

	// Current is the most recent verdict.
	Current *analyzer.Verdict

	// Rounds records every Advance.
	Rounds []Round

	machine *statekit.Interpreter[sessionContext]
}

func newSession() (*Session, error) {
	id := uuid.New().String()

	builder := statekit.NewMachine[sessionContext]("agent-session").
		WithInitial(statekit.StateID(StateIdle)).
		WithContext(sessionContext{SessionID: id})

	builder.State(StateIdle).
		On(eventAnalyze).Target(StateAnalyzing).
		Done()

	builder.State(StateAnalyzing).
		On(eventSuggested).Target(StateAwaiting).
		On(eventReset).Target(StateIdle).
		Done()

	builder.State(StateAwaiting).
		On(eventAnalyze).Target(StateAnalyzing).
		On(eventReanalyze).Target(StateAnalyzing).
		On(eventReset).Target(StateIdle).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build session state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &Session{
		ID:        id,
		Iteration: 1,
		machine:   interpreter,
	}, nil
}

// State returns the session's current state
func (s *Session) State() string {
	return string(s.machine.State().Value)
}

// transition sends event and fails if the state did not change.
func (s *Session) transition(event string) error {
	before := s.State()
	s.machine.Send(statekit.Event{Type: statekit.EventType(event)})
	if s.State() != before {
		return nil
	}
	return fmt.Errorf("%w: %q is not allowed in state %q", ErrInvalidTransition, event, before)
}

// OriginalTags returns the tags of the original verdict
func (s *Session) OriginalTags() []rules.Tag {
	if s.OriginalVerdict == nil {
		return nil
	}
	return s.OriginalVerdict.Tags
}

// CurrentSeverity returns the severity of the most recent verdict, or zero.
func (s *Session) CurrentSeverity() int {
	if s.Current == nil {
		return 0
	}
	return s.Current.Severity
}

// Converged reports whether the most recent verdict reached TargetSeverity.
func (s *Session) Converged() bool {
	return s.Current != nil && s.Current.Severity <= TargetSeverity
}

// Improvement is the drop in severity from the original verdict.
func (s *Session) Improvement() int {
	if s.OriginalSeverity == 0 || s.Current == nil {
		return 0
	}
	return s.OriginalSeverity - s.Current.Severity
}

// Goal describes the convergence target, e.g. "Reduce severity from 3 → ≤ 1".
func (s *Session) Goal() string {
	return fmt.Sprintf("Reduce severity from %d → ≤ %d", s.OriginalSeverity, TargetSeverity)
}

// Progress describes the iteration step, e.g. "Agent iteration: 1 → 2".
func (s *Session) Progress() string {
	return fmt.Sprintf("Agent iteration: %d → %d", s.Iteration, s.Iteration+1)
}
