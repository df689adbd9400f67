package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/validation"
)

type countingLookup struct {
	validation.ReferenceLookup
	tariffCalls    int
	procedureCalls int
}

func (c *countingLookup) GetTariffCode(ctx context.Context, code string) (*domain.TariffCode, error) {
	c.tariffCalls++
	return c.ReferenceLookup.GetTariffCode(ctx, code)
}

func (c *countingLookup) ListProcedureCodes(ctx context.Context, v domain.Visibility) ([]domain.ProcedureCode, error) {
	c.procedureCalls++
	return c.ReferenceLookup.ListProcedureCodes(ctx, v)
}

func newCountingLookup() *countingLookup {
	return &countingLookup{
		ReferenceLookup: validation.NewMemoryReference(
			[]domain.TariffCode{{Code: "8471300000", Description: "Laptops", DutyRate: decimal.Zero, Active: true}},
			[]domain.ProcedureCode{{Code: "4000", Active: true}, {Code: "5100", RequiresGuarantee: true, Active: true}},
		),
	}
}

func TestCachedReferenceServesRepeatedTariffLookups(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	next := newCountingLookup()
	ref := NewCachedReference(next, NewCache(client, nil), time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		tc, err := ref.GetTariffCode(ctx, "8471300000")
		if err != nil {
			t.Fatalf("lookup failed: %v", err)
		}
		if tc.Description != "Laptops" {
			t.Fatalf("unexpected tariff %+v", tc)
		}
	}

	if next.tariffCalls != 1 {
		t.Fatalf("expected 1 underlying lookup, got %d", next.tariffCalls)
	}
}

func TestCachedReferenceCachesMisses(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	next := newCountingLookup()
	ref := NewCachedReference(next, NewCache(client, nil), time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := ref.GetTariffCode(ctx, "0000000000"); !errors.Is(err, domain.ErrReferenceNotFound) {
			t.Fatalf("expected ErrReferenceNotFound, got %v", err)
		}
	}

	if next.tariffCalls != 1 {
		t.Fatalf("expected 1 underlying lookup, got %d", next.tariffCalls)
	}
}

func TestCachedReferenceProcedureCodesExpire(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	next := newCountingLookup()
	ref := NewCachedReference(next, NewCache(client, nil), time.Minute)
	ctx := context.Background()

	codes, err := ref.ListProcedureCodes(ctx, domain.ActiveOnly)
	if err != nil || len(codes) != 2 {
		t.Fatalf("unexpected result: %v %v", codes, err)
	}
	if _, err := ref.ListProcedureCodes(ctx, domain.ActiveOnly); err != nil {
		t.Fatalf("cached read failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := ref.ListProcedureCodes(ctx, domain.ActiveOnly); err != nil {
		t.Fatalf("read after expiry failed: %v", err)
	}
	if next.procedureCalls != 2 {
		t.Fatalf("expected 2 underlying lookups, got %d", next.procedureCalls)
	}
}
