// Package validation runs prioritized, non-short-circuiting rule sets over
// customs declarations.
package validation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/iho/customscore/internal/domain"
)

var (
	ErrDuplicateRule = errors.New("rule code already registered")
	ErrRuleNotFound  = errors.New("rule not found")
	ErrInvalidRule   = errors.New("rule requires a code and a check")
)

// CheckFunc evaluates one rule. Business failures are returned as RuleErrors;
// the error return is reserved for failed reference lookups.
type CheckFunc func(ctx context.Context, d *domain.Declaration, ref ReferenceLookup) ([]domain.RuleError, error)

// Rule is a named, prioritized predicate over a declaration. Lower priority
// runs first. Rules must not mutate the declaration.
type Rule struct {
	Code      string
	Field     string
	Priority  int
	Active    bool
	Reference string
	Check     CheckFunc
}

// Registry holds the rule set in registration order.
type Registry struct {
	mu    sync.RWMutex
	rules []Rule
	index map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a rule. Codes are unique.
func (r *Registry) Register(rule Rule) error {
	if rule.Code == "" || rule.Check == nil {
		return ErrInvalidRule
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[rule.Code]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, rule.Code)
	}
	r.index[rule.Code] = len(r.rules)
	r.rules = append(r.rules, rule)
	return nil
}

// SetActive enables or disables a rule by code.
func (r *Registry) SetActive(code string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[code]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, code)
	}
	r.rules[i].Active = active
	return nil
}

// Active returns a copy of the active rules sorted by priority, then code.
func (r *Registry) Active() []Rule {
	r.mu.RLock()
	out := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		if rule.Active {
			out = append(out, rule)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// Codes lists every registered rule code in registration order.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, len(r.rules))
	for i, rule := range r.rules {
		codes[i] = rule.Code
	}
	return codes
}

// DefaultRegistry returns the standard declaration rule set.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, rule := range StandardRules() {
		// codes are distinct constants
		_ = r.Register(rule)
	}
	return r
}
