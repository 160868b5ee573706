package cmd

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/reqlint/internal/analyzer"
	"github.com/pthm/reqlint/internal/config"
	"github.com/pthm/reqlint/internal/reporter"
	"github.com/pthm/reqlint/internal/rules"
)

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	resetFlags(RootCmd)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(io.Discard)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	return out.String(), err
}

type batchJSON struct {
	Verdicts []analyzer.Verdict `json:"verdicts"`
	Summary  analyzer.Metrics   `json:"summary"`
}

func TestHighlightCommand(t *testing.T) {
	out, err := execute(t, "", "highlight", "The system shall be fast and user-friendly.")
	require.NoError(t, err)
	assert.Equal(t, "The system shall be **fast** and **user-friendly**.\n", out)
}

func TestHighlightCommandUnknownStyle(t *testing.T) {
	_, err := execute(t, "", "highlight", "--style", "html", "Be fast.")
	assert.ErrorContains(t, err, "unknown style")
}

func TestAnalyzeCommandJSON(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "analyze", "The system shall respond in under 2 seconds.")
	require.NoError(t, err)

	var got batchJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Verdicts, 1)
	assert.Equal(t, analyzer.StatusClear, got.Verdicts[0].Status)
	assert.InDelta(t, 0.202737, got.Verdicts[0].Probability, 5e-6)
}

func TestAnalyzeCommandStdin(t *testing.T) {
	out, err := execute(t, "The application must be reliable and robust.\n", "--format", "json", "analyze")
	require.NoError(t, err)

	var got batchJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Verdicts, 1)
	assert.Equal(t, "The application must be reliable and robust.", got.Verdicts[0].Text)
	assert.Equal(t, analyzer.StatusUnclear, got.Verdicts[0].Status)
}

func TestAnalyzeCommandFlagOverride(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "--max-length", "3", "analyze", "The system shall respond in under 2 seconds.")
	require.NoError(t, err)

	var got batchJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []rules.Tag{rules.TagComplexSentence}, got.Verdicts[0].Tags)
}

func TestConfigFileIsApplied(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_length: 3\n"), 0o644))

	out, err := execute(t, "", "--format", "json", "--config", path, "analyze", "The system shall respond in under 2 seconds.")
	require.NoError(t, err)

	var got batchJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Verdicts[0].HasTag(rules.TagComplexSentence))
}

func TestInvalidConfigIsRejected(t *testing.T) {
	_, err := execute(t, "", "--ml-threshold", "1.5", "analyze", "Be fast.")
	assert.True(t, errors.Is(err, config.ErrInvalid))
}

func TestUnknownFormat(t *testing.T) {
	_, err := execute(t, "", "--format", "xml", "analyze", "Be fast.")
	assert.True(t, errors.Is(err, reporter.ErrUnknownFormat))
}

func TestBatchCommandCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reqs.txt")
	content := "The system shall be fast and scalable.\n\nThe system shall respond in under 2 seconds.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := execute(t, "", "--format", "csv", "batch", path)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, reporter.CSVHeader, records[0])
	assert.Equal(t, "Unclear", records[1][1])
	assert.Equal(t, "Clear", records[2][1])
}

func TestBatchCommandStdin(t *testing.T) {
	stdin := "The system shall be fast and scalable.\nThe API must be secure.\n"
	out, err := execute(t, stdin, "--format", "json", "batch")
	require.NoError(t, err)

	var got batchJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2, got.Summary.Total)
	assert.Len(t, got.Verdicts, 2)
}

func TestBatchCommandTerminal(t *testing.T) {
	stdin := "The system shall be fast and scalable.\nThe system shall respond in under 2 seconds.\n"
	out, err := execute(t, stdin, "batch")
	require.NoError(t, err)
	assert.Contains(t, out, "Analyzed 2 requirements: 1 Clear, 0 Partially Clear, 1 Unclear")
}

func TestAgentCommand(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "agent", "--rounds", "1", "The system shall be fast and scalable.")
	require.NoError(t, err)

	var got reporter.JSONSession
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 3, got.OriginalSeverity)
	assert.Len(t, got.Rounds, 1)
	assert.Contains(t, got.Rounds[0].Suggestion, "respond within [X seconds]")
}

func TestAgentCommandEdit(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "agent",
		"--edit", "The system shall respond in under 2 seconds.",
		"Respond fast within 2 seconds.")
	require.NoError(t, err)

	var got reporter.JSONSession
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Rounds, 1)
	assert.Equal(t, "The system shall respond in under 2 seconds.", got.Rounds[0].Suggestion)
	assert.True(t, got.Converged)
}

func TestAgentCommandEmpty(t *testing.T) {
	_, err := execute(t, "", "agent")
	assert.ErrorContains(t, err, "empty requirement")
}

func TestModelCommandJSON(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "model", "--top", "3")
	require.NoError(t, err)

	var got modelSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, -0.227047, got.Bias, 1e-4)
	assert.Positive(t, got.Iterations)
	assert.Greater(t, got.Vocabulary, 3)
	require.Len(t, got.Weights, 3)

	assert.ElementsMatch(t, []string{"and", "be"}, []string{got.Weights[0].Word, got.Weights[1].Word})
	assert.InDelta(t, 0.579967, got.Weights[0].Coefficient, 1e-4)
	assert.Equal(t, "seconds", got.Weights[2].Word)
	assert.InDelta(t, -0.382382, got.Weights[2].Coefficient, 1e-4)
}

func TestModelCommandTerminal(t *testing.T) {
	out, err := execute(t, "", "model")
	require.NoError(t, err)
	assert.Contains(t, out, "Ambiguity classifier")
	assert.Contains(t, out, "Bias:       -0.2270")
	assert.Regexp(t, `(?m)^  fast +\+0\.2257\d\d$`, out)
}

func TestModelCommandNegativeTop(t *testing.T) {
	_, err := execute(t, "", "model", "--top", "-1")
	assert.ErrorContains(t, err, "--top must not be negative")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "reqlint "))
}
