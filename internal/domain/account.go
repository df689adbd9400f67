package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GuaranteeAccount is a bank-backed ceiling against which customs duties are
// provisionally secured.
type GuaranteeAccount struct {
	ID            string
	AccountNumber string
	Currency      string
	TotalLimit    decimal.Decimal
	Active        bool
	Version       int64
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidateDebit checks that posting amount on top of balance stays within the limit.
func (a *GuaranteeAccount) ValidateDebit(balance, amount decimal.Decimal) error {
	if !a.Active {
		return ErrAccountInactive
	}
	if balance.Add(amount).GreaterThan(a.TotalLimit) {
		return ErrInsufficientCapacity
	}
	return nil
}

// Available returns the unused part of the limit for the given balance.
func (a *GuaranteeAccount) Available(balance decimal.Decimal) decimal.Decimal {
	return a.TotalLimit.Sub(balance)
}

// Exposure summarizes how much of a guarantee account is in use.
type Exposure struct {
	AccountID          string
	Currency           string
	TotalLimit         decimal.Decimal
	Balance            decimal.Decimal
	Available          decimal.Decimal
	UtilizationPercent decimal.Decimal
	ActiveCount        int
	ActiveAmount       decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// NewExposure computes the exposure of account from its balance and open debits.
func NewExposure(account *GuaranteeAccount, balance decimal.Decimal, openDebits []*LedgerEntry) *Exposure {
	activeAmount := decimal.Zero
	for _, e := range openDebits {
		activeAmount = activeAmount.Add(e.Amount)
	}

	utilization := decimal.Zero
	if account.TotalLimit.IsPositive() {
		utilization = balance.Div(account.TotalLimit).Mul(hundred).Round(2)
	}

	return &Exposure{
		AccountID:          account.ID,
		Currency:           account.Currency,
		TotalLimit:         account.TotalLimit,
		Balance:            balance,
		Available:          account.Available(balance),
		UtilizationPercent: utilization,
		ActiveCount:        len(openDebits),
		ActiveAmount:       activeAmount,
	}
}
