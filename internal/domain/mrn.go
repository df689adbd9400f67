package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MRNState is derived from the remaining quantity on every read.
type MRNState string

const (
	MRNStateActive   MRNState = "active"
	MRNStateDepleted MRNState = "depleted"
)

// MRNRegistry tracks cumulative usage of one import MRN.
type MRNRegistry struct {
	ID            string
	MRN           string
	DeclarationID string
	TotalQuantity decimal.Decimal
	UsedQuantity  decimal.Decimal
	ExpiryDate    *time.Time
	Active        bool
	CreatedBy     string
	UpdatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RemainingQuantity is total − used. It is not clamped at zero.
func (m *MRNRegistry) RemainingQuantity() decimal.Decimal {
	return m.TotalQuantity.Sub(m.UsedQuantity)
}

// IsFullyUsed reports whether nothing remains on the MRN.
func (m *MRNRegistry) IsFullyUsed() bool {
	return m.RemainingQuantity().LessThanOrEqual(decimal.Zero)
}

// IsOverConsumed reports usage beyond the imported quantity.
func (m *MRNRegistry) IsOverConsumed() bool {
	return m.RemainingQuantity().IsNegative()
}

// State returns Active while quantity remains and Depleted otherwise.
func (m *MRNRegistry) State() MRNState {
	if m.IsFullyUsed() {
		return MRNStateDepleted
	}
	return MRNStateActive
}

// IsExpired reports whether the MRN validity ended before now.
func (m *MRNRegistry) IsExpired(now time.Time) bool {
	return m.ExpiryDate != nil && m.ExpiryDate.Before(now)
}

// MRNFilter narrows MRN registry listings.
type MRNFilter struct {
	MRN      string
	IsActive *bool
	Limit    int
	Offset   int
}
