package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pthm/reqlint/internal/analyzer"
	"github.com/pthm/reqlint/internal/classifier"
	"github.com/pthm/reqlint/internal/config"
	"github.com/pthm/reqlint/internal/reporter"
	"github.com/pthm/reqlint/internal/ui"
)

var (
	// Global flags
	verbose     bool
	format      string
	configPath  string
	maxLength   int
	mlThreshold float64

	logger *zap.Logger
	cfg    config.Config
	gui    *ui.UI
)

// RootCmd is the reqlint command tree
var RootCmd = &cobra.Command{
	Use:   "reqlint",
	Short: "A linter for natural-language software requirements",
	Long: `reqlint reviews requirement statements for ambiguity.

Each statement is checked for vague quality words, missing measurable
constraints and overly long sentences, and scored by a small logistic
classifier. Statements are classified as Clear, Partially Clear or
Unclear, and an agent loop proposes measurable rewrites.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if err := validateFormat(format); err != nil {
			return err
		}

		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}

		gui = ui.New(os.Stdout, os.Stderr, format)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format ("+strings.Join(reporter.Formats, ", ")+")")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default "+config.DefaultFile+" if present)")
	RootCmd.PersistentFlags().IntVar(&maxLength, "max-length", config.Default().MaxLength, "Token count above which a sentence is too complex")
	RootCmd.PersistentFlags().Float64Var(&mlThreshold, "ml-threshold", config.Default().MLThreshold, "Unclear probability above which the classifier flags ambiguity")
}

// GetUI returns the UI for the current invocation
func GetUI() *ui.UI {
	if gui == nil {
		gui = ui.New(os.Stdout, os.Stderr, format)
	}
	return gui
}

func validateFormat(f string) error {
	for _, known := range reporter.Formats {
		if f == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (expected one of %s)", reporter.ErrUnknownFormat, f, strings.Join(reporter.Formats, ", "))
}

// loadConfig reads the config file, then applies explicitly set flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("max-length") {
		c.MaxLength = maxLength
	}
	if cmd.Flags().Changed("ml-threshold") {
		c.MLThreshold = mlThreshold
	}

	if err := c.Validate(); err != nil {
		return config.Config{}, err
	}

	logger.Debug("Loaded config",
		zap.Int("max_length", c.MaxLength),
		zap.Float64("ml_threshold", c.MLThreshold))
	return c, nil
}

// newAnalyzer trains the classifier on the built-in corpus.
func newAnalyzer() (*analyzer.Analyzer, error) {
	model, err := classifier.Default(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to train classifier: %w", err)
	}
	return analyzer.New(model, logger), nil
}

// newReporter returns the reporter selected by --format
func newReporter(w io.Writer) (reporter.Reporter, error) {
	return reporter.New(format, w, GetUI().Styles)
}

// readStatement joins args, or reads all of stdin when there are none.
func readStatement(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(bufio.NewReader(stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
