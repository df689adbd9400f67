package domain

// RuleError is one failure reported by a declaration rule.
type RuleError struct {
	RuleCode    string   `json:"rule_code"`
	Field       string   `json:"field"`
	Message     string   `json:"message"`
	Reference   string   `json:"reference,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// RuleOutcome records whether a single rule passed during a validation run.
type RuleOutcome struct {
	RuleCode   string `json:"rule_code"`
	Passed     bool   `json:"passed"`
	ErrorCount int    `json:"error_count"`
}

// ValidationResult aggregates every rule outcome of one validation run. It is
// built fresh on each run and never persisted.
type ValidationResult struct {
	Valid    bool          `json:"valid"`
	Errors   []RuleError   `json:"errors"`
	Outcomes []RuleOutcome `json:"outcomes"`
}

// FailedRules returns the codes of rules that reported at least one error.
func (r *ValidationResult) FailedRules() []string {
	var codes []string
	for _, o := range r.Outcomes {
		if !o.Passed {
			codes = append(codes, o.RuleCode)
		}
	}
	return codes
}
