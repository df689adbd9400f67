package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/usecase"
	"github.com/iho/customscore/internal/usecase/mocks"
)

func newMRNUseCase(rows ...*domain.MRNRegistry) (*usecase.MRNUseCase, *mocks.FakeMRNRepository, *mocks.FakeOutboxRepository) {
	repo := mocks.NewFakeMRNRepository(rows...)
	outbox := mocks.NewFakeOutboxRepository()
	uc := usecase.NewMRNUseCase(mocks.NewFakeTransactionManager(), repo, outbox, mocks.NewFakeAuditRepository(), &mocks.SequenceIDGenerator{}, nil, nil)
	return uc, repo, outbox
}

func registryRow(mrn, total, used string, active bool) *domain.MRNRegistry {
	return &domain.MRNRegistry{
		ID:            "reg-" + mrn,
		MRN:           mrn,
		TotalQuantity: dec(total),
		UsedQuantity:  dec(used),
		Active:        active,
	}
}

func TestMRNUseCase_RecordUsage(t *testing.T) {
	uc, _, outbox := newMRNUseCase(registryRow("MRN1", "1000", "0", true))
	ctx := context.Background()

	r, err := uc.RecordUsage(ctx, testActor, "MRN1", dec("550"))
	if err != nil {
		t.Fatalf("record usage: %v", err)
	}
	if !r.RemainingQuantity().Equal(dec("450")) || r.IsFullyUsed() {
		t.Errorf("expected 450 remaining and not fully used, got %s", r.RemainingQuantity())
	}
	if r.State() != domain.MRNStateActive {
		t.Errorf("expected active state, got %s", r.State())
	}

	r, err = uc.RecordUsage(ctx, testActor, "MRN1", dec("450"))
	if err != nil {
		t.Fatalf("record usage: %v", err)
	}
	if !r.IsFullyUsed() || r.State() != domain.MRNStateDepleted {
		t.Errorf("expected depleted MRN, got used %s", r.UsedQuantity)
	}

	stored, _ := uc.Get(ctx, "MRN1")
	if !stored.UsedQuantity.Equal(dec("1000")) || stored.UpdatedBy != testActor {
		t.Errorf("unexpected stored row: %+v", stored)
	}
	if n := len(outbox.EventTypes()); n != 2 {
		t.Errorf("expected 2 usage events, got %d", n)
	}
}

func TestMRNUseCase_OverConsumptionIsNotClamped(t *testing.T) {
	uc, _, _ := newMRNUseCase(registryRow("MRN1", "100", "90", true))

	r, err := uc.RecordUsage(context.Background(), testActor, "MRN1", dec("30"))
	if err != nil {
		t.Fatalf("over-consumption should be recorded, got %v", err)
	}
	if !r.RemainingQuantity().Equal(dec("-20")) || !r.IsOverConsumed() {
		t.Errorf("expected remaining -20, got %s", r.RemainingQuantity())
	}
}

func TestMRNUseCase_RecordUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		actor   string
		mrn     string
		qty     string
		wantErr error
	}{
		{"missing actor", "", "MRN1", "1", domain.ErrActorRequired},
		{"missing mrn", testActor, "", "1", domain.ErrMRNRequired},
		{"zero quantity", testActor, "MRN1", "0", domain.ErrInvalidQuantity},
		{"unknown mrn", testActor, "MRN9", "1", domain.ErrMRNNotFound},
		{"inactive mrn", testActor, "OFF", "1", domain.ErrMRNInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newMRNUseCase(registryRow("MRN1", "10", "0", true), registryRow("OFF", "10", "0", false))
			_, err := uc.RecordUsage(context.Background(), tt.actor, tt.mrn, dec(tt.qty))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMRNUseCase_List(t *testing.T) {
	uc, _, _ := newMRNUseCase(
		registryRow("A", "10", "0", true),
		registryRow("B", "10", "10", true),
		registryRow("C", "10", "0", false),
	)
	active := true

	rows, err := uc.List(context.Background(), domain.MRNFilter{IsActive: &active})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 active rows, got %d", len(rows))
	}
	if rows[1].State() != domain.MRNStateDepleted {
		t.Errorf("expected B depleted, got %s", rows[1].State())
	}

	rows, _ = uc.List(context.Background(), domain.MRNFilter{MRN: "C"})
	if len(rows) != 1 || rows[0].Active {
		t.Errorf("expected inactive C, got %+v", rows)
	}
}
