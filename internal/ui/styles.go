package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pthm/reqlint/internal/analyzer"
	"github.com/pthm/reqlint/internal/lexicon"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Severity styles
	Warning    lipgloss.Style
	Suggestion lipgloss.Style
	Success    lipgloss.Style

	// Status styles
	Clear          lipgloss.Style
	PartiallyClear lipgloss.Style
	Unclear        lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Tag       lipgloss.Style
	Highlight lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconWarning    string
	IconSuggestion string
	IconSuccess    string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		// Severity styles
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))    // Yellow
		s.Suggestion = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // Cyan
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))    // Green

		// Status styles
		s.Clear = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))          // Green
		s.PartiallyClear = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")) // Orange
		s.Unclear = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))         // Red

		// Structural styles
		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))    // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))             // Gray
		s.Tag = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))                  // Magenta
		s.Highlight = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))  // Red bold
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))             // Gray

		// Unicode icons
		s.IconWarning = "\u26a0"
		s.IconSuggestion = "\U0001f4a1"
		s.IconSuccess = "\u2713"
	} else {
		// No-op styles for non-TTY (plain text output)
		s.Warning = lipgloss.NewStyle()
		s.Suggestion = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()

		s.Clear = lipgloss.NewStyle()
		s.PartiallyClear = lipgloss.NewStyle()
		s.Unclear = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Tag = lipgloss.NewStyle()
		s.Highlight = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		// ASCII fallback icons
		s.IconWarning = "WARN:"
		s.IconSuggestion = "HINT:"
		s.IconSuccess = "OK:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Status renders a status in its color
func (s *Styles) Status(status analyzer.Status) string {
	switch status {
	case analyzer.StatusClear:
		return s.Clear.Render(string(status))
	case analyzer.StatusPartiallyClear:
		return s.PartiallyClear.Render(string(status))
	default:
		return s.Unclear.Render(string(status))
	}
}

// HighlightWrapper emphasizes vague terms. With styling disabled it falls
// back to markdown bold so the emphasis survives plain output.
func (s *Styles) HighlightWrapper() lexicon.Wrapper {
	if !s.enabled {
		return lexicon.Markdown
	}
	return func(term string) string {
		return s.Highlight.Render(term)
	}
}
