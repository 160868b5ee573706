// Package reporter renders verdicts and agent sessions for people and
// for other programs.
package reporter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pthm/reqlint/internal/agent"
	"github.com/pthm/reqlint/internal/analyzer"
	"github.com/pthm/reqlint/internal/rules"
	"github.com/pthm/reqlint/internal/ui"
)

// ErrUnknownFormat is returned by New for unsupported formats
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported output formats
var Formats = []string{"terminal", "json", "csv"}

// Reporter defines the interface for outputting analysis results
type Reporter interface {
	// Report outputs one verdict per analyzed requirement
	Report(verdicts []analyzer.Verdict) error

	// ReportSession outputs an agent run and its comparison with the original
	ReportSession(s *agent.Session) error
}

// New returns the reporter for format writing to w. styles is only used by
// the terminal reporter; nil means plain text.
func New(format string, w io.Writer, styles *ui.Styles) (Reporter, error) {
	switch format {
	case "", "terminal":
		if styles == nil {
			styles = ui.NewStyles(false)
		}
		return NewTerminalReporter(w, styles), nil
	case "json":
		return NewJSONReporter(w), nil
	case "csv":
		return NewCSVReporter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}
}

// ReasonSeparator joins reasons in single-cell outputs
const ReasonSeparator = " | "

// JoinTags renders tags as "A, B"
func JoinTags(tags []rules.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

// JoinReasons renders reasons as "a | b"
func JoinReasons(reasons []string) string {
	return strings.Join(reasons, ReasonSeparator)
}
