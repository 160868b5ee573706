package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/reqlint/internal/lexicon"
	"github.com/pthm/reqlint/internal/ui"
)

var highlightStyle string

var highlightCmd = &cobra.Command{
	Use:   "highlight [text...]",
	Short: "Emphasize vague terms in a requirement",
	Long: `Print the requirement with every vague term emphasized.

The markdown style wraps terms in **bold**; the color style renders them in
bold red when writing to a terminal.

Examples:
  reqlint highlight "The system shall be fast and user-friendly."
  reqlint highlight --style color "Provide a robust API."`,
	RunE: runHighlight,
}

func init() {
	highlightCmd.Flags().StringVarP(&highlightStyle, "style", "s", "markdown", "Emphasis style (markdown, color)")
	RootCmd.AddCommand(highlightCmd)
}

func runHighlight(cmd *cobra.Command, args []string) error {
	text, err := readStatement(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	var wrap lexicon.Wrapper
	switch highlightStyle {
	case "markdown":
		wrap = lexicon.Markdown
	case "color":
		wrap = ui.NewStyles(GetUI().IsInteractive()).HighlightWrapper()
	default:
		return fmt.Errorf("unknown style %q (expected markdown or color)", highlightStyle)
	}

	fmt.Fprintln(cmd.OutOrStdout(), lexicon.Highlight(text, wrap))
	return nil
}
