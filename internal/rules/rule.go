package rules

// Tag is an issue category attached to a verdict, one per rule family.
type Tag string

const (
	TagVagueTerms      Tag = "VAGUE_TERMS"
	TagComplexSentence Tag = "COMPLEX_SENTENCE"
	TagNoConstraints   Tag = "NO_CONSTRAINTS"
	TagMLAmbiguity     Tag = "ML_AMBIGUITY"
)

// AllTags lists every tag in rationale priority order.
var AllTags = []Tag{TagVagueTerms, TagNoConstraints, TagComplexSentence, TagMLAmbiguity}

func (t Tag) String() string {
	return string(t)
}

// ParseTag converts a tag name into a Tag.
func ParseTag(s string) (Tag, bool) {
	for _, tag := range AllTags {
		if string(tag) == s {
			return tag, true
		}
	}
	return "", false
}

// Issue is a single triggered rule for one requirement statement
type Issue struct {
	Rule    string
	Tag     Tag
	Message string
	// Terms holds the lexicon terms that triggered the issue, if any.
	Terms []string
}

// Predictor estimates the probability that a statement is unclear.
type Predictor interface {
	PredictUnclear(text string) float64
}

// AnalysisContext provides context for rule analysis
type AnalysisContext struct {
	Text string

	// MaxLength is the token count above which a sentence is too complex.
	MaxLength int

	// Threshold is the unclear probability above which the model flags ambiguity.
	Threshold float64

	// Model backs rules that need the ambiguity classifier.
	Model Predictor

	// Reasons accumulates the messages of issues raised so far, in order.
	// Rules run sequentially and may inspect what earlier rules reported.
	Reasons []string
}

// Record appends issue messages to the accumulated reasons.
func (ctx *AnalysisContext) Record(issues []Issue) {
	for _, issue := range issues {
		ctx.Reasons = append(ctx.Reasons, issue.Message)
	}
}

// RuleConfig defines how a rule should be invoked
type RuleConfig struct {
	// RequiresModel indicates this rule needs the ambiguity classifier.
	// Model rules are skipped when no model is available.
	RequiresModel bool
}

// Rule defines the interface for requirement rules
type Rule interface {
	// Name returns the unique identifier for this rule
	Name() string

	// Description returns a human-readable description
	Description() string

	// Config returns the rule's configuration
	Config() RuleConfig

	// Run executes the rule and returns any issues found.
	Run(ctx *AnalysisContext) ([]Issue, error)
}
