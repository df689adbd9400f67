package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/customscore/internal/domain"
)

func noop(context.Context, *domain.Declaration, ReferenceLookup) ([]domain.RuleError, error) {
	return nil, nil
}

func TestRegistry_OrdersByPriorityThenCode(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Rule{Code: "C", Priority: 5, Active: true, Check: noop}))
	require.NoError(t, r.Register(Rule{Code: "B", Priority: 1, Active: true, Check: noop}))
	require.NoError(t, r.Register(Rule{Code: "A", Priority: 5, Active: true, Check: noop}))
	require.NoError(t, r.Register(Rule{Code: "D", Priority: 0, Active: false, Check: noop}))

	var codes []string
	for _, rule := range r.Active() {
		codes = append(codes, rule.Code)
	}
	assert.Equal(t, []string{"B", "A", "C"}, codes)
	assert.Equal(t, []string{"C", "B", "A", "D"}, r.Codes())
}

func TestRegistry_RejectsDuplicatesAndInvalid(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Rule{Code: "A", Check: noop}))

	assert.ErrorIs(t, r.Register(Rule{Code: "A", Check: noop}), ErrDuplicateRule)
	assert.ErrorIs(t, r.Register(Rule{Code: "", Check: noop}), ErrInvalidRule)
	assert.ErrorIs(t, r.Register(Rule{Code: "B"}), ErrInvalidRule)
}

func TestRegistry_SetActive(t *testing.T) {
	r := DefaultRegistry()
	require.NoError(t, r.SetActive(RuleTariffExists, false))
	assert.Len(t, r.Active(), 3)

	assert.ErrorIs(t, r.SetActive("UNKNOWN", true), ErrRuleNotFound)
}

func TestRegistry_ActiveReturnsCopy(t *testing.T) {
	r := DefaultRegistry()
	rules := r.Active()
	rules[0].Active = false

	assert.Len(t, r.Active(), 4)
}

func TestIsWellFormedTariffCode(t *testing.T) {
	assert.True(t, IsWellFormedTariffCode("0101210000"))
	assert.False(t, IsWellFormedTariffCode("12345"))
	assert.False(t, IsWellFormedTariffCode("01012100000"))
	assert.False(t, IsWellFormedTariffCode("01012100 0"))
}

func TestSuggest_ShortCode(t *testing.T) {
	got, err := Suggest(context.Background(), testReference(), "847")
	require.NoError(t, err)
	assert.Empty(t, got)
}
