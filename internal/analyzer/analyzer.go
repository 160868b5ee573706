// Package analyzer fuses the lexical, structural and model rules into a
// single verdict for a requirement statement.
package analyzer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pthm/reqlint/internal/classifier"
	"github.com/pthm/reqlint/internal/rules"
	"go.uber.org/zap"
)

// Status is the clarity classification of a statement
type Status string

const (
	StatusClear          Status = "Clear"
	StatusPartiallyClear Status = "Partially Clear"
	StatusUnclear        Status = "Unclear"
)

// Severity bounds
const (
	MinSeverity = 1
	MaxSeverity = 3
)

const (
	// WellDefinedReason is reported when no rule raised an issue.
	WellDefinedReason = "Sentence appears well-defined."

	// FeaturesReasonPrefix starts the informational model-weights reason.
	FeaturesReasonPrefix = "Top influential words (ML): "
)

// Options holds the analysis tunables
type Options struct {
	// MaxLength is the token count above which a sentence is too complex.
	MaxLength int
	// Threshold is the unclear probability above which the model flags ambiguity.
	Threshold float64
}

// DefaultOptions returns max length 20 and threshold 0.6.
func DefaultOptions() Options {
	return Options{
		MaxLength: rules.DefaultMaxLength,
		Threshold: rules.DefaultThreshold,
	}
}

// Verdict is the result of analyzing one statement
type Verdict struct {
	Text     string      `json:"requirement"`
	Status   Status      `json:"status"`
	Severity int         `json:"severity"`
	Reasons  []string    `json:"reasons"`
	Tags     []rules.Tag `json:"tags"`

	// Probability is the classifier's unclear probability.
	Probability float64 `json:"probability"`

	// Features are the model's most influential words for the statement.
	Features []classifier.Feature `json:"features,omitempty"`
}

// HasTag reports whether the verdict carries tag
func (v Verdict) HasTag(tag rules.Tag) bool {
	for _, t := range v.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Analyzer runs the rule registry and the classifier over statements.
// It holds no per-call state and is safe for concurrent use.
type Analyzer struct {
	registry *rules.Registry
	model    classifier.Classifier
	logger   *zap.Logger
}

// New creates an Analyzer with the default rules. model may be nil, in
// which case model rules and feature explanations are skipped.
func New(model classifier.Classifier, logger *zap.Logger) *Analyzer {
	return NewWithRegistry(rules.DefaultRegistry(), model, logger)
}

// NewWithRegistry creates an Analyzer with a custom rule registry
func NewWithRegistry(registry *rules.Registry, model classifier.Classifier, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{registry: registry, model: model, logger: logger}
}

// Analyze classifies text. Reasons are ordered by rule registration.
// Status and severity depend only on how many rules raised an issue; the
// informational feature-weights reason is appended afterwards and never
// changes them.
func (a *Analyzer) Analyze(text string, opts Options) Verdict {
	ctx := &rules.AnalysisContext{
		Text:      text,
		MaxLength: opts.MaxLength,
		Threshold: opts.Threshold,
	}
	if a.model != nil {
		ctx.Model = a.model
	}

	tagSet := make(map[rules.Tag]bool)
	for _, rule := range a.registry.Rules(a.model != nil) {
		issues, err := rule.Run(ctx)
		if err != nil {
			a.logger.Warn("Rule failed", zap.String("rule", rule.Name()), zap.Error(err))
			continue
		}
		ctx.Record(issues)
		for _, issue := range issues {
			tagSet[issue.Tag] = true
		}
	}

	status, severity := Classify(len(ctx.Reasons))

	verdict := Verdict{
		Text:     text,
		Status:   status,
		Severity: severity,
		Reasons:  ctx.Reasons,
		Tags:     sortedTags(tagSet),
	}
	if len(verdict.Reasons) == 0 {
		verdict.Reasons = []string{WellDefinedReason}
	}

	if a.model != nil {
		verdict.Probability = a.model.PredictUnclear(text)
		verdict.Features = a.model.Explain(text, classifier.DefaultTopN)
		if len(verdict.Features) > 0 {
			verdict.Reasons = append(verdict.Reasons, FormatFeatures(verdict.Features))
		}
	}

	a.logger.Debug("Analyzed requirement",
		zap.String("status", string(verdict.Status)),
		zap.Int("severity", verdict.Severity),
		zap.Strings("tags", tagStrings(verdict.Tags)),
		zap.Float64("probability", verdict.Probability))

	return verdict
}

// Classify maps the number of issue reasons to a status and severity:
// 0 is Clear/1, 1 is Partially Clear/2, 2 or more is Unclear/3.
func Classify(reasons int) (Status, int) {
	switch {
	case reasons <= 0:
		return StatusClear, 1
	case reasons == 1:
		return StatusPartiallyClear, 2
	default:
		return StatusUnclear, 3
	}
}

// FormatFeatures renders features as "w1 (r1), w2 (r2)" with weights
// rounded to two decimals, prefixed with FeaturesReasonPrefix. Weights
// always print with exactly two decimals, so a zero weight reads "0.00"
// and one half reads "0.50", never "0.0" or "0.5".
func FormatFeatures(features []classifier.Feature) string {
	parts := make([]string, len(features))
	for i, f := range features {
		parts[i] = fmt.Sprintf("%s (%.2f)", f.Word, round2(f.Weight))
	}
	return FeaturesReasonPrefix + strings.Join(parts, ", ")
}

func round2(x float64) float64 {
	r := math.Round(x*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

func sortedTags(set map[rules.Tag]bool) []rules.Tag {
	tags := make([]rules.Tag, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

func tagStrings(tags []rules.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}
