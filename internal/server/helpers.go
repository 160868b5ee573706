package server

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pthm/reqlint/internal/analyzer"
)

// options applies per-call tunables over the server configuration
func options(deps Deps, req mcp.CallToolRequest) (analyzer.Options, error) {
	cfg := deps.Config
	if v, ok := numberArg(req, "max_length"); ok {
		cfg.MaxLength = int(v)
	}
	if v, ok := numberArg(req, "ml_threshold"); ok {
		cfg.MLThreshold = v
	}
	if err := cfg.Validate(); err != nil {
		return analyzer.Options{}, err
	}
	return cfg.Options(), nil
}

// numberArg extracts a numeric argument from a tool request.
func numberArg(req mcp.CallToolRequest, key string) (float64, bool) {
	v, ok := req.GetArguments()[key].(float64)
	return v, ok
}

// intArg extracts an integer argument from a tool request.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := numberArg(req, key)
	if !ok {
		return defaultVal
	}
	return int(v)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
