package rules

import (
	"strings"

	"github.com/pthm/reqlint/internal/lexicon"
)

// VagueTermsReasonPrefix starts the reason reported for vague terms.
const VagueTermsReasonPrefix = "Vague terms detected: "

// VagueTermsRule checks for subjective, unquantified quality words
type VagueTermsRule struct{}

func (r *VagueTermsRule) Name() string {
	return "vague-terms"
}

func (r *VagueTermsRule) Description() string {
	return "Checks for vague quality terms such as 'fast' or 'scalable'"
}

func (r *VagueTermsRule) Config() RuleConfig {
	return RuleConfig{}
}

func (r *VagueTermsRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	terms := lexicon.Match(ctx.Text)
	if len(terms) == 0 {
		return nil, nil
	}

	return []Issue{{
		Rule:    r.Name(),
		Tag:     TagVagueTerms,
		Message: VagueTermsReasonPrefix + strings.Join(terms, ", "),
		Terms:   terms,
	}}, nil
}
