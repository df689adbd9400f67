package duty

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/customscore/internal/domain"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func origin() Origin {
	return Origin{
		MRN:              "26DE000000000001A1",
		OriginalQuantity: d("1000"),
		OriginalValue:    d("15000"),
		TotalDuty:        d("1500"),
	}
}

func TestAllocate_Proportional(t *testing.T) {
	links := []domain.TraceLink{
		{ID: "c1", TargetBatch: "FG-1", Quantity: d("300"), ConsumedValue: d("4500")},
		{ID: "c2", TargetBatch: "FG-2", Quantity: d("250"), ConsumedValue: d("3750")},
	}

	a := Allocate(origin(), links)

	require.Len(t, a.Consumers, 2)
	assert.Equal(t, "450", a.Consumers[0].AllocatedDuty.String())
	assert.Equal(t, "375", a.Consumers[1].AllocatedDuty.String())
	assert.Equal(t, "825", a.TotalAllocatedDuty.String())
	assert.Equal(t, "675", a.RemainingDuty.String())
	assert.Equal(t, "8250", a.ConsumedValue.String())
	assert.Equal(t, "550", a.ConsumedQuantity.String())
	assert.False(t, a.HasAnomalies())
}

func TestAllocate_ValueDerivedFromQuantity(t *testing.T) {
	links := []domain.TraceLink{{ID: "c1", Quantity: d("100")}}

	a := Allocate(origin(), links)

	assert.Equal(t, "1500", a.Consumers[0].ConsumedValue.String())
	assert.Equal(t, "150", a.Consumers[0].AllocatedDuty.String())
	assert.Equal(t, "1350", a.RemainingDuty.String())
}

func TestAllocate_OverReportedIsNotClamped(t *testing.T) {
	links := []domain.TraceLink{
		{ID: "c1", Quantity: d("700"), ConsumedValue: d("10500")},
		{ID: "c2", Quantity: d("500"), ConsumedValue: d("7500")},
	}

	a := Allocate(origin(), links)

	assert.Equal(t, "1800", a.TotalAllocatedDuty.String())
	assert.Equal(t, "-300", a.RemainingDuty.String())
	assert.Contains(t, a.Anomalies, AnomalyDutyOverAllocated)
	assert.Contains(t, a.Anomalies, AnomalyQuantityOverUsed)
}

func TestAllocate_NoConsumers(t *testing.T) {
	a := Allocate(origin(), nil)

	assert.Empty(t, a.Consumers)
	assert.True(t, a.TotalAllocatedDuty.IsZero())
	assert.Equal(t, "1500", a.RemainingDuty.String())
}

func TestAllocate_ZeroOriginalValue(t *testing.T) {
	o := origin()
	o.OriginalValue = decimal.Zero

	a := Allocate(o, []domain.TraceLink{{ID: "c1", Quantity: d("10")}})

	assert.True(t, a.Consumers[0].AllocatedDuty.IsZero())
	assert.Contains(t, a.Anomalies, AnomalyMissingValue)
}

func TestAllocate_Rounding(t *testing.T) {
	o := Origin{OriginalQuantity: d("3"), OriginalValue: d("3"), TotalDuty: d("1")}
	links := []domain.TraceLink{
		{ID: "a", Quantity: d("1")},
		{ID: "b", Quantity: d("1")},
		{ID: "c", Quantity: d("1")},
	}

	a := Allocate(o, links)

	for _, c := range a.Consumers {
		assert.Equal(t, "0.33", c.AllocatedDuty.String())
	}
	assert.Equal(t, "0.01", a.RemainingDuty.String())
}
