// Package duty allocates the import duty of an MRN across the production
// events that consumed it.
package duty

import (
	"github.com/shopspring/decimal"

	"github.com/iho/customscore/internal/domain"
)

// Anomaly codes surfaced on an allocation.
const (
	AnomalyDutyOverAllocated = "DUTY_OVER_ALLOCATED"
	AnomalyQuantityOverUsed  = "QUANTITY_OVER_CONSUMED"
	AnomalyMissingValue      = "ORIGINAL_VALUE_MISSING"
)

// Origin is the import side of an MRN, fixed at clearance time.
type Origin struct {
	MRN              string
	OriginalQuantity decimal.Decimal
	OriginalValue    decimal.Decimal
	TotalDuty        decimal.Decimal
}

// UnitValue is the customs value of one unit of the imported quantity.
func (o Origin) UnitValue() decimal.Decimal {
	if o.OriginalQuantity.IsZero() {
		return decimal.Zero
	}
	return o.OriginalValue.Div(o.OriginalQuantity)
}

// ConsumerAllocation is the duty share of one consumption event.
type ConsumerAllocation struct {
	LinkID        string
	TargetType    string
	TargetID      string
	TargetBatch   string
	Quantity      decimal.Decimal
	ConsumedValue decimal.Decimal
	Share         decimal.Decimal
	AllocatedDuty decimal.Decimal
}

// Allocation is the full breakdown for one MRN.
type Allocation struct {
	MRN                string
	OriginalQuantity   decimal.Decimal
	OriginalValue      decimal.Decimal
	TotalDuty          decimal.Decimal
	ConsumedQuantity   decimal.Decimal
	ConsumedValue      decimal.Decimal
	Consumers          []ConsumerAllocation
	TotalAllocatedDuty decimal.Decimal
	RemainingDuty      decimal.Decimal
	Anomalies          []string
}

// DutyPrecision is the number of decimals an allocated amount is rounded to.
const DutyPrecision = 2

// Allocate spreads origin.TotalDuty over links proportionally to
// consumedValue / originalValue. A link without a recorded value is valued at
// quantity × unit value. The remaining duty is not clamped: over-reported
// consumption yields a negative remainder and an anomaly.
func Allocate(origin Origin, links []domain.TraceLink) *Allocation {
	a := &Allocation{
		MRN:                origin.MRN,
		OriginalQuantity:   origin.OriginalQuantity,
		OriginalValue:      origin.OriginalValue,
		TotalDuty:          origin.TotalDuty,
		ConsumedQuantity:   decimal.Zero,
		ConsumedValue:      decimal.Zero,
		Consumers:          make([]ConsumerAllocation, 0, len(links)),
		TotalAllocatedDuty: decimal.Zero,
	}

	unit := origin.UnitValue()
	for _, l := range links {
		value := l.ConsumedValue
		if value.IsZero() {
			value = l.Quantity.Mul(unit)
		}

		share := decimal.Zero
		if origin.OriginalValue.IsPositive() {
			share = value.Div(origin.OriginalValue)
		}
		allocated := origin.TotalDuty.Mul(share).Round(DutyPrecision)

		a.Consumers = append(a.Consumers, ConsumerAllocation{
			LinkID:        l.ID,
			TargetType:    l.TargetType,
			TargetID:      l.TargetID,
			TargetBatch:   l.TargetBatch,
			Quantity:      l.Quantity,
			ConsumedValue: value,
			Share:         share,
			AllocatedDuty: allocated,
		})
		a.ConsumedQuantity = a.ConsumedQuantity.Add(l.Quantity)
		a.ConsumedValue = a.ConsumedValue.Add(value)
		a.TotalAllocatedDuty = a.TotalAllocatedDuty.Add(allocated)
	}

	a.RemainingDuty = origin.TotalDuty.Sub(a.TotalAllocatedDuty)

	if !origin.OriginalValue.IsPositive() && len(links) > 0 {
		a.Anomalies = append(a.Anomalies, AnomalyMissingValue)
	}
	if a.RemainingDuty.IsNegative() {
		a.Anomalies = append(a.Anomalies, AnomalyDutyOverAllocated)
	}
	if a.ConsumedQuantity.GreaterThan(origin.OriginalQuantity) {
		a.Anomalies = append(a.Anomalies, AnomalyQuantityOverUsed)
	}

	return a
}

// HasAnomalies reports whether the allocation surfaced inconsistent data.
func (a *Allocation) HasAnomalies() bool {
	return len(a.Anomalies) > 0
}
