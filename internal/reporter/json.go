package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/reqlint/internal/agent"
	"github.com/pthm/reqlint/internal/analyzer"
	"github.com/pthm/reqlint/internal/fixer"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format for a batch
type JSONOutput struct {
	Verdicts []analyzer.Verdict `json:"verdicts"`
	Summary  *analyzer.Metrics  `json:"summary"`
}

// JSONSession represents an agent run in JSON format
type JSONSession struct {
	ID               string            `json:"id"`
	Goal             string            `json:"goal"`
	Original         string            `json:"original"`
	OriginalVerdict  *analyzer.Verdict `json:"original_verdict"`
	OriginalSeverity int               `json:"original_severity"`
	Suggestion       string            `json:"suggestion"`
	Rounds           []agent.Round     `json:"rounds"`
	CurrentSeverity  int               `json:"current_severity"`
	Improvement      int               `json:"improvement"`
	Converged        bool              `json:"converged"`
	Rationale        []string          `json:"rationale"`
	Note             string            `json:"note"`
}

// Report outputs verdicts as JSON
func (r *JSONReporter) Report(verdicts []analyzer.Verdict) error {
	output := JSONOutput{
		Verdicts: verdicts,
		Summary:  analyzer.ComputeMetrics(verdicts),
	}
	if output.Verdicts == nil {
		output.Verdicts = []analyzer.Verdict{}
	}
	return r.encode(output)
}

// ReportSession outputs an agent run as JSON
func (r *JSONReporter) ReportSession(s *agent.Session) error {
	return r.encode(NewJSONSession(s))
}

// NewJSONSession converts a session into its JSON form
func NewJSONSession(s *agent.Session) JSONSession {
	out := JSONSession{
		ID:               s.ID,
		Goal:             s.Goal(),
		Original:         s.Original,
		OriginalVerdict:  s.OriginalVerdict,
		OriginalSeverity: s.OriginalSeverity,
		Suggestion:       s.Suggestion,
		Rounds:           s.Rounds,
		CurrentSeverity:  s.CurrentSeverity(),
		Improvement:      s.Improvement(),
		Converged:        s.Converged(),
		Rationale:        fixer.Rationale(s.OriginalTags()),
		Note:             fixer.PlaceholderNote,
	}
	if out.Rounds == nil {
		out.Rounds = []agent.Round{}
	}
	return out
}

func (r *JSONReporter) encode(v any) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
