package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pthm/reqlint/internal/analyzer"
	"github.com/pthm/reqlint/internal/parser"
	"github.com/pthm/reqlint/internal/ui"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Analyze every requirement in a file",
	Long: `Analyze a list of requirements and print one verdict per requirement
followed by a summary of counts per status.

Plain text files hold one requirement per line; blank lines are ignored.
Markdown files contribute list items and paragraphs, with headings used as
section labels. YAML and JSON files hold a list of strings or of
{id, text} objects, optionally under a "requirements" key. Without a file,
plain text is read from stdin.

Examples:
  reqlint batch requirements.txt
  reqlint batch docs/requirements.md
  reqlint batch --format csv requirements.yaml > review.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	RootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	u := GetUI()

	// Start progress tracking if in interactive mode
	progress := u.StartProgress()
	defer func() {
		_ = progress.Done(nil)
	}()

	// Stage 1: Train the classifier
	progress.SetStage(ui.StageTrainModel)

	a, err := newAnalyzer()
	if err != nil {
		return err
	}

	// Stage 2: Read requirements
	progress.SetStage(ui.StageReadInput)

	file, err := readBatch(args, cmd.InOrStdin(), progress)
	if err != nil {
		return err
	}

	logger.Debug("Parsed requirements",
		zap.String("path", file.Path),
		zap.String("type", file.FileType.String()),
		zap.Int("count", len(file.Requirements)))

	// Stage 3: Analyze each requirement
	progress.SetStage(ui.StageAnalyze)
	progress.SetTotal(len(file.Requirements))

	opts := cfg.Options()
	verdicts := make([]analyzer.Verdict, 0, len(file.Requirements))
	for i, req := range file.Requirements {
		progress.Requirement(i+1, req.Text)
		v := a.Analyze(req.Text, opts)
		progress.Verdict(v.Status)
		verdicts = append(verdicts, v)
	}

	// Stop progress before reporting
	if err := progress.Done(nil); err != nil {
		logger.Debug("Progress display failed", zap.Error(err))
	}
	progress = nil

	// Stage 4: Report results
	rep, err := newReporter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := rep.Report(verdicts); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// readBatch parses the file named by args, or plain text from stdin.
func readBatch(args []string, stdin io.Reader, progress *ui.BatchProgress) (*parser.ParsedFile, error) {
	if len(args) == 0 {
		progress.SetSource("stdin")
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return parser.ParseContent("stdin.txt", data)
	}

	progress.SetSource(args[0])
	file, err := parser.Parse(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", args[0], err)
	}
	return file, nil
}
