package rules

// Registry holds all registered rules in execution order
type Registry struct {
	rules []Rule
}

// NewRegistry creates a new rule registry
func NewRegistry() *Registry {
	return &Registry{
		rules: make([]Rule, 0),
	}
}

// Register adds a rule to the registry
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// Rules returns all registered rules, optionally filtering by model requirement.
// If includeModel is false, rules with RequiresModel=true are excluded.
func (r *Registry) Rules(includeModel bool) []Rule {
	if includeModel {
		return r.rules
	}

	var result []Rule
	for _, rule := range r.rules {
		if !rule.Config().RequiresModel {
			result = append(result, rule)
		}
	}
	return result
}

// Get returns a rule by name
func (r *Registry) Get(name string) Rule {
	for _, rule := range r.rules {
		if rule.Name() == name {
			return rule
		}
	}
	return nil
}

// DefaultRegistry returns a registry with all default rules.
// Registration order fixes the order of reasons in a verdict.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Lexical and structural rules
	r.Register(&VagueTermsRule{})
	r.Register(&ComplexSentenceRule{})
	r.Register(&MissingConstraintsRule{})

	// Model rules
	r.Register(&MLAmbiguityRule{})

	return r
}
