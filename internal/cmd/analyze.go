package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/reqlint/internal/analyzer"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Analyze a single requirement",
	Long: `Classify one requirement statement as Clear, Partially Clear or Unclear.

The statement is taken from the arguments, or read from stdin when no
arguments are given. Vague terms are highlighted and every reason is listed
along with the classifier's most influential words.

Examples:
  reqlint analyze "The system shall be fast and scalable."
  echo "The API must be secure." | reqlint analyze
  reqlint analyze --format json "Respond within 2 seconds."`,
	RunE: runAnalyze,
}

func init() {
	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readStatement(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	a, err := newAnalyzer()
	if err != nil {
		return err
	}

	verdict := a.Analyze(text, cfg.Options())

	rep, err := newReporter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := rep.Report([]analyzer.Verdict{verdict}); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
