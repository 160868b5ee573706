// Package server exposes the requirement analyzer as MCP tools over stdio.
package server

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/pthm/reqlint/internal/analyzer"
	"github.com/pthm/reqlint/internal/config"
	"github.com/pthm/reqlint/internal/version"
)

// Name is the MCP server name reported to clients
const Name = "reqlint"

// Deps are the shared dependencies of every tool
type Deps struct {
	Analyzer *analyzer.Analyzer
	Config   config.Config
	Logger   *zap.Logger
}

// New creates the MCP server with all tools registered
func New(deps Deps) *server.MCPServer {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	s := server.NewMCPServer(
		Name,
		version.Short(),
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	for _, tool := range Tools(deps) {
		s.AddTool(tool.Definition(), tool.Handle)
	}

	return s
}

// Serve runs the server on stdin/stdout until the client disconnects
func Serve(deps Deps) error {
	deps.Logger.Info("Starting MCP server", zap.String("transport", "stdio"))
	return server.ServeStdio(New(deps))
}

const instructions = `reqlint reviews natural-language software requirements.
Use analyze_requirement to classify a statement as Clear, Partially Clear or Unclear,
suggest_rewrite and agent_run to propose measurable rewrites, highlight_requirement
to emphasize vague wording, and agent_rationale to explain a rewrite.
Placeholders such as [X] and [N] in rewrites must be confirmed by stakeholders.`
