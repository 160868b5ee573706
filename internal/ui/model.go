package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pthm/reqlint/internal/analyzer"
)

// Stage is a step of a batch review
type Stage int

const (
	StageTrainModel Stage = iota
	StageReadInput
	StageAnalyze
	StageDone
)

// Messages sent to the review model
type (
	StageMsg  Stage
	SourceMsg string
	TotalMsg  int
	DoneMsg   struct{ Err error }

	// RequirementMsg announces the requirement now under analysis.
	RequirementMsg struct {
		Index int
		Text  string
	}

	// VerdictMsg reports the status the current requirement received.
	VerdictMsg analyzer.Status
)

// Model renders the progress of a batch review: the requirement being
// analyzed, how far through the batch it is, and a running tally of
// verdicts by status.
type Model struct {
	stage    Stage
	spinner  spinner.Model
	bar      progress.Model
	source   string
	total    int
	index    int
	current  string
	tally    map[analyzer.Status]int
	quitting bool
	err      error
}

// NewModel creates a review model in the training stage
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		stage:   StageTrainModel,
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		tally:   make(map[analyzer.Status]int),
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-4, 60)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StageMsg:
		m.stage = Stage(msg)
		return m, nil

	case SourceMsg:
		m.source = string(msg)
		return m, nil

	case TotalMsg:
		m.total = int(msg)
		return m, nil

	case RequirementMsg:
		m.index = msg.Index
		m.current = msg.Text
		return m, nil

	case VerdictMsg:
		m.tally[analyzer.Status(msg)]++
		return m, nil

	case DoneMsg:
		m.err = msg.Err
		m.stage = StageDone
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// reviewed is the number of requirements that already have a verdict
func (m Model) reviewed() int {
	n := 0
	for _, c := range m.tally {
		n += c
	}
	return n
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	switch m.stage {
	case StageTrainModel:
		fmt.Fprintf(&sb, "%s Training ambiguity classifier", m.spinner.View())

	case StageReadInput:
		fmt.Fprintf(&sb, "%s Reading requirements", m.spinner.View())
		if m.source != "" {
			fmt.Fprintf(&sb, " from %s", m.source)
		}

	case StageAnalyze:
		if m.total > 0 {
			fmt.Fprintf(&sb, "%s %d/%d\n", m.bar.ViewAs(float64(m.reviewed())/float64(m.total)), m.reviewed(), m.total)
		}
		fmt.Fprintf(&sb, "%s Requirement %d", m.spinner.View(), m.index)
		if m.total > 0 {
			fmt.Fprintf(&sb, " of %d", m.total)
		}
		if m.current != "" {
			fmt.Fprintf(&sb, ": %s", truncate(m.current, 50))
		}
		fmt.Fprintf(&sb, "\n  %s %d · %s %d · %s %d",
			analyzer.StatusClear, m.tally[analyzer.StatusClear],
			analyzer.StatusPartiallyClear, m.tally[analyzer.StatusPartiallyClear],
			analyzer.StatusUnclear, m.tally[analyzer.StatusUnclear])
	}

	return sb.String()
}
