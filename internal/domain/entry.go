package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the direction of a ledger movement.
type EntryType string

const (
	EntryTypeDebit  EntryType = "debit"
	EntryTypeCredit EntryType = "credit"
)

// LedgerEntry is a signed movement against a guarantee account. Entries are
// append-only; only Released/ReleasedAt/ReleasedBy may change after insert.
type LedgerEntry struct {
	ID              string
	AccountID       string
	Type            EntryType
	Amount          decimal.Decimal
	Currency        string
	MRN             string
	Description     string
	ReleasesEntryID string
	Released        bool
	ExpectedRelease *time.Time
	ReleasedAt      *time.Time
	ReleasedBy      string
	CreatedBy       string
	CreatedAt       time.Time
	DeletedAt       *time.Time
}

// IsOpenDebit reports whether the entry is a debit still securing exposure.
func (e *LedgerEntry) IsOpenDebit() bool {
	return e.Type == EntryTypeDebit && !e.Released && e.DeletedAt == nil
}

// Signed returns the amount as it contributes to the balance.
func (e *LedgerEntry) Signed() decimal.Decimal {
	if e.Type == EntryTypeCredit {
		return e.Amount.Neg()
	}
	return e.Amount
}

// ComputeBalance is Σdebits − Σcredits over entries that are not soft-deleted.
func ComputeBalance(entries []*LedgerEntry) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		if e.DeletedAt != nil {
			continue
		}
		balance = balance.Add(e.Signed())
	}
	return balance
}

// SortByExpectedRelease orders open debits earliest expected release first;
// debits without an expected date go last, ties broken by creation time.
func SortByExpectedRelease(entries []*LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].ExpectedRelease, entries[j].ExpectedRelease
		switch {
		case a == nil && b == nil:
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		default:
			return a.Before(*b)
		}
	})
}
