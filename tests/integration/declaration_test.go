package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/duty"
	"github.com/iho/customscore/internal/tracegraph"
	"github.com/iho/customscore/internal/usecase"
	"github.com/iho/customscore/tests/testutil"
)

const tariff = "8471300000"

func TestSubmitRejectsUnknownReferencesWithoutPersisting(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testutil.NewTestDB(t)
	ctx := context.Background()
	db.TruncateAll(ctx)
	db.SeedTariffs(ctx, tariff)
	app := db.NewApp()

	draft := testutil.NewDeclaration("9999", "8471309999", "10")
	saved, result, err := app.Declarations.Submit(ctx, "broker", draft)
	require.NoError(t, err)
	assert.Nil(t, saved)
	require.False(t, result.Valid)

	codes := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		codes = append(codes, e.RuleCode)
	}
	assert.Contains(t, codes, "TARIFF_EXISTS")
	assert.Contains(t, codes, "PROCEDURE_CODE")

	var count int
	require.NoError(t, db.Pool.QueryRow(ctx, `SELECT count(*) FROM declarations`).Scan(&count))
	assert.Zero(t, count)
}

func TestAcceptOpensRegistryAndAllocatesDuty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testutil.NewTestDB(t)
	ctx := context.Background()
	db.TruncateAll(ctx)
	db.SeedTariffs(ctx, tariff)
	app := db.NewApp()

	account := app.CreateGuaranteeAccount(t, ctx, "10000")

	saved, result, err := app.Declarations.Submit(ctx, "broker", testutil.NewDeclaration("5100", tariff, "10", "5"))
	require.NoError(t, err)
	require.True(t, result.Valid, "errors: %+v", result.Errors)
	require.NotEmpty(t, saved.ID)

	const mrn = "24DE123456789012"
	accepted, err := app.Declarations.Accept(ctx, "officer", saved.ID, usecase.AcceptInput{
		MRN:                mrn,
		GuaranteeAccountID: account.ID,
	})
	require.NoError(t, err)
	assert.True(t, accepted.Declaration.Cleared)
	assert.True(t, accepted.Registry.TotalQuantity.Equal(decimal.NewFromInt(15)))
	require.NotNil(t, accepted.GuaranteeEntry)
	assert.True(t, accepted.GuaranteeEntry.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, mrn, accepted.GuaranteeEntry.MRN)

	_, err = app.Declarations.Accept(ctx, "officer", saved.ID, usecase.AcceptInput{MRN: mrn})
	require.ErrorIs(t, err, domain.ErrDeclarationCleared)

	_, err = app.Traces.RecordLink(ctx, "planner", domain.TraceLink{
		SourceType:  "declaration",
		SourceMRN:   mrn,
		SourceBatch: "IMPORT-1",
		TargetType:  "production",
		TargetBatch: "PROD-1",
		Quantity:    decimal.NewFromInt(6),
	})
	require.NoError(t, err)

	_, err = app.Traces.RecordLink(ctx, "planner", domain.TraceLink{
		SourceType:  "production",
		SourceBatch: "PROD-1",
		TargetType:  "shipment",
		TargetBatch: "SHIP-1",
		Quantity:    decimal.NewFromInt(6),
	})
	require.NoError(t, err)

	registry, err := app.MRNs.Get(ctx, mrn)
	require.NoError(t, err)
	assert.True(t, registry.UsedQuantity.Equal(decimal.NewFromInt(6)))
	assert.Equal(t, domain.MRNStateActive, registry.State())

	alloc, err := app.Duty.AllocateDuty(ctx, mrn)
	require.NoError(t, err)
	require.Len(t, alloc.Consumers, 1)
	assert.True(t, alloc.TotalDuty.Equal(decimal.NewFromInt(100)), "total duty %s", alloc.TotalDuty)
	assert.True(t, alloc.Consumers[0].AllocatedDuty.Equal(decimal.NewFromInt(40)), "allocated %s", alloc.Consumers[0].AllocatedDuty)
	assert.True(t, alloc.RemainingDuty.Equal(decimal.NewFromInt(60)))
	assert.NotContains(t, alloc.Anomalies, duty.AnomalyQuantityOverUsed)

	path, err := app.Traces.TraceFullPath(ctx, "SHIP-1", tracegraph.Backward)
	require.NoError(t, err)
	assert.False(t, path.Truncated)
	require.Len(t, path.Links, 2)
	assert.Equal(t, 1, path.Links[0].Depth)
	assert.Equal(t, 2, path.Links[1].Depth)

	_, err = app.Traces.GetGenealogy(ctx, "SHIP-1")
	require.ErrorIs(t, err, domain.ErrGenealogyNotFound)

	genealogy, err := app.Traces.RebuildGenealogy(ctx, "SHIP-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"PROD-1", "IMPORT-1"}, genealogy.ParentBatches)
	assert.Equal(t, []string{mrn}, genealogy.ParentMRNs)
}
