package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pthm/reqlint/internal/classifier"
)

var modelTop int

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Show the trained ambiguity classifier",
	Long: `Train the built-in classifier and print its parameters.

Lists the intercept, the number of Newton steps training took and the
learned weight of every vocabulary word. Positive weights push a
statement towards Unclear.

Examples:
  reqlint model
  reqlint model --top 10
  reqlint model --format json`,
	Args: cobra.NoArgs,
	RunE: runModel,
}

func init() {
	modelCmd.Flags().IntVarP(&modelTop, "top", "n", 0, "Only list the N words with the largest absolute weight (0 for all)")
	RootCmd.AddCommand(modelCmd)
}

// modelWeight is one vocabulary word and its learned coefficient
type modelWeight struct {
	Word        string  `json:"word"`
	Coefficient float64 `json:"coefficient"`
}

type modelSummary struct {
	Bias       float64       `json:"bias"`
	Iterations int           `json:"iterations"`
	Vocabulary int           `json:"vocabulary_size"`
	Weights    []modelWeight `json:"weights"`
}

func runModel(cmd *cobra.Command, args []string) error {
	if modelTop < 0 {
		return fmt.Errorf("--top must not be negative, got %d", modelTop)
	}

	model, err := classifier.Default(logger)
	if err != nil {
		return fmt.Errorf("failed to train classifier: %w", err)
	}

	summary := summarizeModel(model, modelTop)
	w := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	case "csv":
		return writeModelCSV(w, summary)
	default:
		return writeModelTerminal(w, summary)
	}
}

// summarizeModel lists weights in vocabulary order, or the top n by
// absolute weight when n is positive.
func summarizeModel(m *classifier.Model, n int) modelSummary {
	vocab := m.Vocabulary()
	weights := make([]modelWeight, 0, len(vocab))
	for _, word := range vocab {
		coef, _ := m.Coefficient(word)
		weights = append(weights, modelWeight{Word: word, Coefficient: coef})
	}

	if n > 0 {
		sort.SliceStable(weights, func(i, j int) bool {
			return math.Abs(weights[i].Coefficient) > math.Abs(weights[j].Coefficient)
		})
		if n < len(weights) {
			weights = weights[:n]
		}
	}

	return modelSummary{
		Bias:       m.Bias(),
		Iterations: m.Iterations(),
		Vocabulary: len(vocab),
		Weights:    weights,
	}
}

func writeModelCSV(w io.Writer, s modelSummary) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"word", "coefficient"})
	for _, wt := range s.Weights {
		_ = cw.Write([]string{wt.Word, strconv.FormatFloat(wt.Coefficient, 'f', 6, 64)})
	}
	cw.Flush()
	return cw.Error()
}

func writeModelTerminal(w io.Writer, s modelSummary) error {
	styles := GetUI().Styles

	fmt.Fprintln(w, styles.Header.Render("Ambiguity classifier"))
	fmt.Fprintf(w, "  Bias:       %+.6f\n", s.Bias)
	fmt.Fprintf(w, "  Iterations: %d\n", s.Iterations)
	fmt.Fprintf(w, "  Vocabulary: %d words\n\n", s.Vocabulary)

	for _, wt := range s.Weights {
		line := fmt.Sprintf("  %-16s %+.6f", wt.Word, wt.Coefficient)
		if wt.Coefficient > 0 {
			line = styles.Warning.Render(line)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
