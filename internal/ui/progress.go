package ui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pthm/reqlint/internal/analyzer"
)

// program runs a bubbletea model in the background and remembers how it ended.
type program struct {
	tea  *tea.Program
	done chan struct{}
	err  error
}

func launch(m tea.Model, w io.Writer) *program {
	p := &program{
		tea:  tea.NewProgram(m, tea.WithOutput(w), tea.WithInput(nil)),
		done: make(chan struct{}),
	}
	go func() {
		defer close(p.done)
		_, p.err = p.tea.Run()
	}()
	return p
}

// stop asks the model to quit and waits for the program to exit.
func (p *program) stop(err error) error {
	p.tea.Send(DoneMsg{Err: err})
	<-p.done
	return p.err
}

// BatchProgress drives the progress display of a batch run. A nil
// *BatchProgress is valid and ignores every call, which is what
// StartProgress returns when output is not interactive.
type BatchProgress struct {
	p *program
}

// StartProgress starts the progress display on the error writer when
// output is interactive, and returns nil otherwise.
func (ui *UI) StartProgress() *BatchProgress {
	if ui.Mode != OutputModeInteractive {
		return nil
	}
	return &BatchProgress{p: launch(NewModel(), ui.ErrWriter)}
}

func (bp *BatchProgress) send(msg tea.Msg) {
	if bp != nil && bp.p != nil {
		bp.p.tea.Send(msg)
	}
}

// SetStage updates the current stage
func (bp *BatchProgress) SetStage(stage Stage) {
	bp.send(StageMsg(stage))
}

// SetSource names where requirements are being read from
func (bp *BatchProgress) SetSource(source string) {
	bp.send(SourceMsg(source))
}

// SetTotal sets the number of requirements in the batch
func (bp *BatchProgress) SetTotal(total int) {
	bp.send(TotalMsg(total))
}

// Requirement announces that the nth requirement (1-based) is being analyzed
func (bp *BatchProgress) Requirement(n int, text string) {
	bp.send(RequirementMsg{Index: n, Text: text})
}

// Verdict records the status the current requirement received
func (bp *BatchProgress) Verdict(status analyzer.Status) {
	bp.send(VerdictMsg(status))
}

// Done clears the display and returns the error the display itself hit,
// if any. It must be called exactly once.
func (bp *BatchProgress) Done(err error) error {
	if bp == nil || bp.p == nil {
		return nil
	}
	return bp.p.stop(err)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// Spinner shows a single status line while a short operation runs.
type Spinner struct {
	p *program
}

// spinnerModel renders the spinner line until DoneMsg arrives
type spinnerModel struct {
	message  string
	quitting bool
}

func (m spinnerModel) Init() tea.Cmd {
	return nil
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(DoneMsg); ok {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.quitting {
		return ""
	}
	return "  " + m.message
}

// StartSpinner shows message on the error writer. Without a terminal
// the message is printed once and nil is returned.
func (ui *UI) StartSpinner(message string) *Spinner {
	if ui.Mode != OutputModeInteractive {
		fmt.Fprintln(ui.ErrWriter, message)
		return nil
	}
	return &Spinner{p: launch(spinnerModel{message: message}, ui.ErrWriter)}
}

// Stop removes the spinner line. Stop on a nil *Spinner is a no-op.
func (s *Spinner) Stop() {
	if s != nil && s.p != nil {
		_ = s.p.stop(nil)
	}
}
