package validation

import (
	"context"
	"fmt"

	"github.com/iho/customscore/internal/domain"
)

// Observer receives the outcome of each validation run.
type Observer interface {
	ObserveValidation(result *domain.ValidationResult)
}

// Pipeline runs every active rule of a registry against a declaration.
type Pipeline struct {
	registry *Registry
	ref      ReferenceLookup
	observer Observer
}

// NewPipeline creates a pipeline. observer may be nil.
func NewPipeline(registry *Registry, ref ReferenceLookup, observer Observer) *Pipeline {
	return &Pipeline{registry: registry, ref: ref, observer: observer}
}

// Validate runs all active rules in ascending priority. A failing rule never
// stops later rules. The returned error is non-nil only when reference data
// could not be read.
func (p *Pipeline) Validate(ctx context.Context, d *domain.Declaration) (*domain.ValidationResult, error) {
	rules := p.registry.Active()

	result := &domain.ValidationResult{
		Errors:   []domain.RuleError{},
		Outcomes: make([]domain.RuleOutcome, 0, len(rules)),
	}

	for _, rule := range rules {
		errs, err := rule.Check(ctx, d, p.ref)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.Code, err)
		}

		for _, e := range errs {
			e.RuleCode = rule.Code
			if e.Reference == "" {
				e.Reference = rule.Reference
			}
			if e.Field == "" {
				e.Field = rule.Field
			}
			result.Errors = append(result.Errors, e)
		}

		result.Outcomes = append(result.Outcomes, domain.RuleOutcome{
			RuleCode:   rule.Code,
			Passed:     len(errs) == 0,
			ErrorCount: len(errs),
		})
	}

	result.Valid = len(result.Errors) == 0

	if p.observer != nil {
		p.observer.ObserveValidation(result)
	}

	return result, nil
}
