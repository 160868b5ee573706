package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pthm/reqlint/internal/agent"
	"github.com/pthm/reqlint/internal/ui"
)

var (
	agentRounds int
	agentEdit   string
)

var agentCmd = &cobra.Command{
	Use:   "agent [text...]",
	Short: "Iteratively rewrite a requirement until it is clear",
	Long: `Run the rewrite agent on one requirement.

The agent analyzes the statement, proposes a template-based rewrite and
re-analyzes it, replacing two more vague terms each round. It stops when
severity reaches 1 or after --rounds re-analyses, then compares the
latest verdict against the original.

Use --edit to supply your own rewrite in place of the first suggestion;
the agent refines and re-analyzes that text instead.

Placeholders such as [X] and [N] must be confirmed by stakeholders.

Examples:
  reqlint agent "The system shall be fast, secure and scalable."
  reqlint agent --rounds 5 --format json "The UI must be simple and easy."
  reqlint agent --edit "Respond in under 2 seconds." "Respond fast."`,
	RunE: runAgent,
}

func init() {
	agentCmd.Flags().IntVarP(&agentRounds, "rounds", "r", 3, "Maximum number of re-analysis rounds")
	agentCmd.Flags().StringVarP(&agentEdit, "edit", "e", "", "Replace the first suggestion with this rewrite")
	RootCmd.AddCommand(agentCmd)
}

func runAgent(cmd *cobra.Command, args []string) error {
	if agentRounds < 0 {
		return fmt.Errorf("--rounds must not be negative, got %d", agentRounds)
	}

	text, err := readStatement(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	a, err := newAnalyzer()
	if err != nil {
		return err
	}

	u := GetUI()
	var spinner *ui.Spinner
	if u.IsInteractive() {
		spinner = u.StartSpinner(fmt.Sprintf("Running rewrite agent (up to %d rounds)...", agentRounds))
	}

	controller := agent.NewController(a, cfg.Options(), logger)
	session, err := controller.Run(text, agent.RunOptions{Rounds: agentRounds, Edit: agentEdit})
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("agent run failed: %w", err)
	}

	logger.Debug("Agent run finished",
		zap.String("session", session.ID),
		zap.Int("rounds", len(session.Rounds)),
		zap.Bool("converged", session.Converged()))

	rep, err := newReporter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := rep.ReportSession(session); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
