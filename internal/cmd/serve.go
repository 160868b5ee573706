package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pthm/reqlint/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `Expose the analyzer to MCP clients over stdin/stdout.

Tools: analyze_requirement, suggest_rewrite, highlight_requirement,
agent_rationale and agent_run. Logs go to stderr.

Example client configuration:
  {"command": "reqlint", "args": ["serve"]}`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newAnalyzer()
	if err != nil {
		return err
	}

	return server.Serve(server.Deps{
		Analyzer: a,
		Config:   cfg,
		Logger:   logger,
	})
}
