package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pthm/reqlint/internal/agent"
	"github.com/pthm/reqlint/internal/analyzer"
	"github.com/pthm/reqlint/internal/fixer"
	"github.com/pthm/reqlint/internal/lexicon"
	"github.com/pthm/reqlint/internal/ui"
)

const separator = "─────────────────────────────────────"

// TerminalReporter outputs results to the terminal with colors
type TerminalReporter struct {
	w      io.Writer
	styles *ui.Styles
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, styles *ui.Styles) *TerminalReporter {
	return &TerminalReporter{w: w, styles: styles}
}

// Report prints each verdict, followed by a summary dashboard when more
// than one requirement was analyzed.
func (r *TerminalReporter) Report(verdicts []analyzer.Verdict) error {
	if len(verdicts) == 0 {
		fmt.Fprintln(r.w, r.styles.Subheader.Render("No requirements found"))
		return nil
	}

	if len(verdicts) == 1 {
		r.printVerdict(verdicts[0])
		return nil
	}

	for i, v := range verdicts {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.styles.Header.Render(fmt.Sprintf("#%d", i+1)))
		r.printVerdict(v)
	}

	r.printSummary(analyzer.ComputeMetrics(verdicts))
	return nil
}

// ReportSession prints the original verdict, every round and the
// comparison between the original and the latest verdict.
func (r *TerminalReporter) ReportSession(s *agent.Session) error {
	fmt.Fprintln(r.w, r.styles.Header.Render("Agent goal: "+s.Goal()))
	fmt.Fprintln(r.w, r.styles.Subheader.Render("Session "+s.ID))

	if s.OriginalVerdict != nil {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.styles.Header.Render("Original"))
		r.printVerdict(*s.OriginalVerdict)
	}

	for _, round := range s.Rounds {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.styles.Header.Render(round.Label()))
		r.printVerdict(round.Verdict)
	}

	if len(s.Rounds) == 0 && s.Suggestion != "" {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.styles.Header.Render("Suggested rewrite"))
		fmt.Fprintf(r.w, "  %s\n", s.Suggestion)
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Separator.Render(separator))

	fmt.Fprintf(r.w, "Severity: %d → %d (improvement %+d)\n", s.OriginalSeverity, s.CurrentSeverity(), s.Improvement())
	if s.Converged() {
		fmt.Fprintln(r.w, r.styles.Success.Render(r.styles.IconSuccess+" Converged"))
	} else {
		fmt.Fprintln(r.w, r.styles.Warning.Render(r.styles.IconWarning+" Not converged"))
	}

	fmt.Fprintln(r.w, r.styles.Header.Render("Rationale:"))
	for _, line := range fixer.Rationale(s.OriginalTags()) {
		fmt.Fprintf(r.w, "  - %s\n", line)
	}
	fmt.Fprintln(r.w, r.styles.Suggestion.Render(r.styles.IconSuggestion+" "+fixer.PlaceholderNote))
	return nil
}

func (r *TerminalReporter) printVerdict(v analyzer.Verdict) {
	fmt.Fprintf(r.w, "  %s %s\n", r.styles.Status(v.Status),
		r.styles.Subheader.Render(fmt.Sprintf("(severity %d)", v.Severity)))
	fmt.Fprintf(r.w, "  %s\n", lexicon.Highlight(v.Text, r.styles.HighlightWrapper()))

	if len(v.Tags) > 0 {
		fmt.Fprintf(r.w, "  %s\n", r.styles.Tag.Render("["+JoinTags(v.Tags)+"]"))
	}
	for _, reason := range v.Reasons {
		fmt.Fprintf(r.w, "    - %s\n", reason)
	}
	if len(v.Features) > 0 {
		fmt.Fprintln(r.w, r.styles.Subheader.Render(
			fmt.Sprintf("    unclear probability %.2f", v.Probability)))
	}
}

func (r *TerminalReporter) printSummary(m *analyzer.Metrics) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Separator.Render(separator))

	parts := []string{
		r.styles.Clear.Render(fmt.Sprintf("%d %s", m.Clear, analyzer.StatusClear)),
		r.styles.PartiallyClear.Render(fmt.Sprintf("%d %s", m.PartiallyClear, analyzer.StatusPartiallyClear)),
		r.styles.Unclear.Render(fmt.Sprintf("%d %s", m.Unclear, analyzer.StatusUnclear)),
	}

	fmt.Fprintf(r.w, "Analyzed %d requirements: %s\n", m.Total, strings.Join(parts, ", "))
	fmt.Fprintf(r.w, "Mean severity %.2f, max %d\n", m.MeanSeverity, m.MaxSeverity)
}
