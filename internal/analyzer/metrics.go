package analyzer

import (
	"github.com/pthm/reqlint/internal/rules"
)

// Metrics summarizes a set of verdicts
type Metrics struct {
	Total          int               `json:"total"`
	Clear          int               `json:"clear"`
	PartiallyClear int               `json:"partially_clear"`
	Unclear        int               `json:"unclear"`
	TagCounts      map[rules.Tag]int `json:"tag_counts"`
	MeanSeverity   float64           `json:"mean_severity"`
	MaxSeverity    int               `json:"max_severity"`
}

// ComputeMetrics computes status counts and severity statistics for verdicts
func ComputeMetrics(verdicts []Verdict) *Metrics {
	m := &Metrics{
		TagCounts: make(map[rules.Tag]int),
	}

	var severitySum int
	for _, v := range verdicts {
		m.Total++
		severitySum += v.Severity

		switch v.Status {
		case StatusClear:
			m.Clear++
		case StatusPartiallyClear:
			m.PartiallyClear++
		case StatusUnclear:
			m.Unclear++
		}

		if v.Severity > m.MaxSeverity {
			m.MaxSeverity = v.Severity
		}

		for _, tag := range v.Tags {
			m.TagCounts[tag]++
		}
	}

	if m.Total > 0 {
		m.MeanSeverity = float64(severitySum) / float64(m.Total)
	}

	return m
}

// StatusCount returns the number of verdicts with status
func (m *Metrics) StatusCount(status Status) int {
	switch status {
	case StatusClear:
		return m.Clear
	case StatusPartiallyClear:
		return m.PartiallyClear
	case StatusUnclear:
		return m.Unclear
	default:
		return 0
	}
}
