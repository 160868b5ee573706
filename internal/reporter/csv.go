package reporter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pthm/reqlint/internal/agent"
	"github.com/pthm/reqlint/internal/analyzer"
)

// CSVHeader is the column layout of batch exports
var CSVHeader = []string{"Requirement", "Status", "Severity", "Tags", "Reasons"}

// CSVReporter outputs results as CSV rows
type CSVReporter struct {
	w io.Writer
}

// NewCSVReporter creates a new CSV reporter
func NewCSVReporter(w io.Writer) *CSVReporter {
	return &CSVReporter{w: w}
}

// Report writes a header and one row per verdict
func (r *CSVReporter) Report(verdicts []analyzer.Verdict) error {
	cw := csv.NewWriter(r.w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, v := range verdicts {
		if err := cw.Write(verdictRow(v)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReportSession writes the original verdict as iteration 1 followed by
// one row per round, prefixed with an Iteration column.
func (r *CSVReporter) ReportSession(s *agent.Session) error {
	cw := csv.NewWriter(r.w)
	if err := cw.Write(append([]string{"Iteration"}, CSVHeader...)); err != nil {
		return err
	}
	if s.OriginalVerdict != nil {
		if err := cw.Write(append([]string{"1"}, verdictRow(*s.OriginalVerdict)...)); err != nil {
			return err
		}
	}
	for _, round := range s.Rounds {
		if err := cw.Write(append([]string{strconv.Itoa(round.Iteration)}, verdictRow(round.Verdict)...)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func verdictRow(v analyzer.Verdict) []string {
	return []string{
		v.Text,
		string(v.Status),
		strconv.Itoa(v.Severity),
		JoinTags(v.Tags),
		JoinReasons(v.Reasons),
	}
}
