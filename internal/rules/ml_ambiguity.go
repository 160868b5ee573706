package rules

import (
	"strings"
)

// DefaultThreshold is the default unclear probability above which the
// model flags a statement.
const DefaultThreshold = 0.6

// MLAmbiguityRule flags statements the ambiguity classifier considers unclear.
//
// The rule stays silent when an earlier reason mentions "Vague terms". The
// check is on reason text, not on TagVagueTerms: only the vague-terms rule's
// own message suppresses it.
type MLAmbiguityRule struct{}

func (r *MLAmbiguityRule) Name() string {
	return "ml-ambiguity"
}

func (r *MLAmbiguityRule) Description() string {
	return "Flags statements the trained classifier scores as likely unclear"
}

func (r *MLAmbiguityRule) Config() RuleConfig {
	return RuleConfig{RequiresModel: true}
}

func (r *MLAmbiguityRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	if ctx.Model == nil {
		return nil, nil
	}

	threshold := ctx.Threshold
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultThreshold
	}

	if ctx.Model.PredictUnclear(ctx.Text) <= threshold {
		return nil, nil
	}
	if strings.Contains(strings.Join(ctx.Reasons, ""), "Vague terms") {
		return nil, nil
	}

	return []Issue{{
		Rule:    r.Name(),
		Tag:     TagMLAmbiguity,
		Message: "ML model suggests possible ambiguity.",
	}}, nil
}
