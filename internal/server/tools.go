package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/pthm/reqlint/internal/agent"
	"github.com/pthm/reqlint/internal/analyzer"
	"github.com/pthm/reqlint/internal/fixer"
	"github.com/pthm/reqlint/internal/lexicon"
	"github.com/pthm/reqlint/internal/reporter"
)

// DefaultRounds is the agent_run round limit when none is given
const DefaultRounds = 3

// Tool is one MCP tool with its handler
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Tools returns every tool backed by deps
func Tools(deps Deps) []Tool {
	return []Tool{
		&AnalyzeTool{deps: deps},
		&SuggestTool{deps: deps},
		&HighlightTool{deps: deps},
		&RationaleTool{deps: deps},
		&AgentRunTool{deps: deps},
	}
}

func requirementParam() mcp.ToolOption {
	return mcp.WithString("requirement",
		mcp.Required(),
		mcp.Description("The requirement statement to review."),
	)
}

func tunableParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("max_length",
			mcp.Description("Token count above which a sentence is too complex. Defaults to the server configuration."),
		),
		mcp.WithNumber("ml_threshold",
			mcp.Description("Unclear probability above which the classifier flags ambiguity, in (0,1)."),
		),
	}
}

// AnalyzeTool handles the analyze_requirement MCP tool.
type AnalyzeTool struct {
	deps Deps
}

// Definition returns the MCP tool definition for registration.
func (t *AnalyzeTool) Definition() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Classify a requirement as Clear, Partially Clear or Unclear with severity, issue tags, reasons and the classifier's most influential words."),
		requirementParam(),
	}, tunableParams()...)
	return mcp.NewTool("analyze_requirement", opts...)
}

// Handle processes the analyze_requirement tool call.
func (t *AnalyzeTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.deps.Logger.Info("Tool called", zap.String("tool", "analyze_requirement"))

	text := req.GetString("requirement", "")
	opts, err := options(t.deps, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(t.deps.Analyzer.Analyze(text, opts))
}

// SuggestTool handles the suggest_rewrite MCP tool.
type SuggestTool struct {
	deps Deps
}

// Definition returns the MCP tool definition for registration.
func (t *SuggestTool) Definition() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Propose a template-based rewrite of a requirement, replacing vague terms with measurable placeholders."),
		requirementParam(),
		mcp.WithNumber("iteration",
			mcp.Description("Rewrite round, starting at 1. Each round replaces the next two vague terms."),
		),
	}, tunableParams()...)
	return mcp.NewTool("suggest_rewrite", opts...)
}

type suggestion struct {
	Suggestion string           `json:"suggestion"`
	Iteration  int              `json:"iteration"`
	Verdict    analyzer.Verdict `json:"verdict"`
	Rationale  []string         `json:"rationale"`
	Note       string           `json:"note"`
}

// Handle processes the suggest_rewrite tool call.
func (t *SuggestTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.deps.Logger.Info("Tool called", zap.String("tool", "suggest_rewrite"))

	text := strings.TrimSpace(req.GetString("requirement", ""))
	if text == "" {
		return mcp.NewToolResultError("'requirement' is required"), nil
	}
	opts, err := options(t.deps, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	iteration := intArg(req, "iteration", 1)
	if iteration < 1 {
		return mcp.NewToolResultError("'iteration' must be at least 1"), nil
	}

	verdict := t.deps.Analyzer.Analyze(text, opts)
	return jsonResult(suggestion{
		Suggestion: fixer.Suggest(text, verdict.Tags, iteration),
		Iteration:  iteration,
		Verdict:    verdict,
		Rationale:  fixer.Rationale(verdict.Tags),
		Note:       fixer.PlaceholderNote,
	})
}

// HighlightTool handles the highlight_requirement MCP tool.
type HighlightTool struct {
	deps Deps
}

// Definition returns the MCP tool definition for registration.
func (t *HighlightTool) Definition() mcp.Tool {
	return mcp.NewTool("highlight_requirement",
		mcp.WithDescription("Return the requirement with every vague term wrapped in markdown bold."),
		requirementParam(),
	)
}

// Handle processes the highlight_requirement tool call.
func (t *HighlightTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.deps.Logger.Info("Tool called", zap.String("tool", "highlight_requirement"))

	text := req.GetString("requirement", "")
	return mcp.NewToolResultText(lexicon.Highlight(text, lexicon.Markdown)), nil
}

// RationaleTool handles the agent_rationale MCP tool.
type RationaleTool struct {
	deps Deps
}

// Definition returns the MCP tool definition for registration.
func (t *RationaleTool) Definition() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Explain, one line per issue tag, why a requirement would be rewritten."),
		requirementParam(),
	}, tunableParams()...)
	return mcp.NewTool("agent_rationale", opts...)
}

// Handle processes the agent_rationale tool call.
func (t *RationaleTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.deps.Logger.Info("Tool called", zap.String("tool", "agent_rationale"))

	text := req.GetString("requirement", "")
	opts, err := options(t.deps, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	verdict := t.deps.Analyzer.Analyze(text, opts)
	return mcp.NewToolResultText("- " + strings.Join(fixer.Rationale(verdict.Tags), "\n- ")), nil
}

// AgentRunTool handles the agent_run MCP tool.
type AgentRunTool struct {
	deps Deps
}

// Definition returns the MCP tool definition for registration.
func (t *AgentRunTool) Definition() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Run the rewrite agent: analyze, suggest, and re-analyze until severity drops to 1 or the round limit is reached."),
		requirementParam(),
		mcp.WithNumber("rounds",
			mcp.Description(fmt.Sprintf("Maximum number of re-analysis rounds. Defaults to %d.", DefaultRounds)),
		),
		mcp.WithString("suggestion",
			mcp.Description("Optional rewrite that replaces the first suggestion before re-analysis."),
		),
	}, tunableParams()...)
	return mcp.NewTool("agent_run", opts...)
}

// Handle processes the agent_run tool call.
func (t *AgentRunTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.deps.Logger.Info("Tool called", zap.String("tool", "agent_run"))

	text := strings.TrimSpace(req.GetString("requirement", ""))
	if text == "" {
		return mcp.NewToolResultError("'requirement' is required"), nil
	}
	opts, err := options(t.deps, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rounds := intArg(req, "rounds", DefaultRounds)
	if rounds < 0 {
		return mcp.NewToolResultError("'rounds' must not be negative"), nil
	}

	controller := agent.NewController(t.deps.Analyzer, opts, t.deps.Logger)
	session, err := controller.Run(text, agent.RunOptions{
		Rounds: rounds,
		Edit:   req.GetString("suggestion", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("agent run failed: %v", err)), nil
	}
	return jsonResult(reporter.NewJSONSession(session))
}
