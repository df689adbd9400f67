package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuaranteeAccount_ValidateDebit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int64
		balance   int64
		amount    int64
		active    bool
		expectErr error
	}{
		{name: "fits under limit", limit: 500000, balance: 0, amount: 200000, active: true},
		{name: "exactly at limit", limit: 500000, balance: 200000, amount: 300000, active: true},
		{name: "exceeds limit", limit: 500000, balance: 200000, amount: 350000, active: true, expectErr: ErrInsufficientCapacity},
		{name: "inactive account", limit: 500000, balance: 0, amount: 1, active: false, expectErr: ErrAccountInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &GuaranteeAccount{TotalLimit: decimal.NewFromInt(tt.limit), Active: tt.active}
			err := acc.ValidateDebit(decimal.NewFromInt(tt.balance), decimal.NewFromInt(tt.amount))
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewExposure(t *testing.T) {
	acc := &GuaranteeAccount{ID: "acc-1", Currency: "EUR", TotalLimit: decimal.NewFromInt(500000), Active: true}
	open := []*LedgerEntry{
		{Type: EntryTypeDebit, Amount: decimal.NewFromInt(120000)},
		{Type: EntryTypeDebit, Amount: decimal.NewFromInt(80000)},
	}

	exp := NewExposure(acc, decimal.NewFromInt(200000), open)

	assert.True(t, exp.Balance.Equal(decimal.NewFromInt(200000)))
	assert.True(t, exp.Available.Equal(decimal.NewFromInt(300000)))
	assert.Equal(t, "40", exp.UtilizationPercent.String())
	assert.Equal(t, 2, exp.ActiveCount)
	assert.True(t, exp.ActiveAmount.Equal(decimal.NewFromInt(200000)))
}

func TestNewExposure_ZeroLimit(t *testing.T) {
	acc := &GuaranteeAccount{ID: "acc-1", TotalLimit: decimal.Zero, Active: true}
	exp := NewExposure(acc, decimal.Zero, nil)

	assert.True(t, exp.UtilizationPercent.IsZero())
	assert.Equal(t, 0, exp.ActiveCount)
}

func TestComputeBalance_SkipsDeleted(t *testing.T) {
	deleted := time.Now()
	entries := []*LedgerEntry{
		{Type: EntryTypeDebit, Amount: decimal.NewFromInt(200)},
		{Type: EntryTypeCredit, Amount: decimal.NewFromInt(50)},
		{Type: EntryTypeDebit, Amount: decimal.NewFromInt(1000), DeletedAt: &deleted},
	}

	assert.True(t, ComputeBalance(entries).Equal(decimal.NewFromInt(150)))
}

func TestSortByExpectedRelease(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := base.AddDate(0, 2, 0)
	earlier := base.AddDate(0, 1, 0)

	entries := []*LedgerEntry{
		{ID: "undated", CreatedAt: base},
		{ID: "later", ExpectedRelease: &later, CreatedAt: base},
		{ID: "earlier", ExpectedRelease: &earlier, CreatedAt: base.Add(time.Hour)},
	}

	SortByExpectedRelease(entries)

	ids := []string{entries[0].ID, entries[1].ID, entries[2].ID}
	require.Equal(t, []string{"earlier", "later", "undated"}, ids)
}

func TestLedgerEntry_IsOpenDebit(t *testing.T) {
	now := time.Now()
	assert.True(t, (&LedgerEntry{Type: EntryTypeDebit}).IsOpenDebit())
	assert.False(t, (&LedgerEntry{Type: EntryTypeDebit, Released: true}).IsOpenDebit())
	assert.False(t, (&LedgerEntry{Type: EntryTypeCredit}).IsOpenDebit())
	assert.False(t, (&LedgerEntry{Type: EntryTypeDebit, DeletedAt: &now}).IsOpenDebit())
}
