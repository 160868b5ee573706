package rules

// DefaultMaxLength is the default token count above which a sentence is complex.
const DefaultMaxLength = 20

// ComplexSentenceRule checks for sentences with too many tokens
type ComplexSentenceRule struct{}

func (r *ComplexSentenceRule) Name() string {
	return "complex-sentence"
}

func (r *ComplexSentenceRule) Description() string {
	return "Checks for sentences that are too long to read as a single requirement"
}

func (r *ComplexSentenceRule) Config() RuleConfig {
	return RuleConfig{}
}

func (r *ComplexSentenceRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	maxLength := ctx.MaxLength
	if maxLength < 1 {
		maxLength = DefaultMaxLength
	}

	if len(Tokenize(ctx.Text)) <= maxLength {
		return nil, nil
	}

	return []Issue{{
		Rule:    r.Name(),
		Tag:     TagComplexSentence,
		Message: "Sentence too long or complex.",
	}}, nil
}
