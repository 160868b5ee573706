package rules

import "regexp"

// measurablePattern matches a number followed by a unit. Word units need a
// trailing word boundary; "%" does not. The gap may hold any Unicode space
// separator, so "2\u00a0seconds" counts. \d and \b stay ASCII in RE2: only
// ASCII digits count as numbers.
var measurablePattern = regexp.MustCompile(`(?i)\b\d+[\s\p{Zs}]*(?:(?:seconds?|minutes?|ms|mb|gb|users?)\b|%)`)

// MissingConstraintsRule checks that a requirement states a measurable value
type MissingConstraintsRule struct{}

func (r *MissingConstraintsRule) Name() string {
	return "missing-constraints"
}

func (r *MissingConstraintsRule) Description() string {
	return "Checks for a measurable constraint such as '2 seconds' or '500 users'"
}

func (r *MissingConstraintsRule) Config() RuleConfig {
	return RuleConfig{}
}

func (r *MissingConstraintsRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	if HasMeasurableConstraint(ctx.Text) {
		return nil, nil
	}

	return []Issue{{
		Rule:    r.Name(),
		Tag:     TagNoConstraints,
		Message: "No measurable constraints provided.",
	}}, nil
}

// HasMeasurableConstraint reports whether text contains a number-plus-unit value.
func HasMeasurableConstraint(text string) bool {
	return measurablePattern.MatchString(text)
}

// MeasurableConstraints returns every number-plus-unit value found in text.
func MeasurableConstraints(text string) []string {
	return measurablePattern.FindAllString(text, -1)
}
