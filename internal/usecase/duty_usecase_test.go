package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/duty"
	"github.com/iho/customscore/internal/usecase"
	"github.com/iho/customscore/internal/usecase/mocks"
)

func clearedDeclaration(mrn string) *domain.Declaration {
	return &domain.Declaration{
		ID:                "decl-1",
		MRN:               mrn,
		Cleared:           true,
		TotalCustomsValue: dec("15000"),
		TotalDuty:         dec("1500"),
		Lines:             []domain.DeclarationLine{{Quantity: dec("1000")}},
	}
}

func TestDutyUseCase_AllocateDuty(t *testing.T) {
	links := mocks.NewFakeTraceLinkRepository(
		domain.TraceLink{ID: "c1", SourceMRN: "MRN1", TargetBatch: "FG-1", Quantity: dec("300"), ConsumedValue: dec("4500")},
		domain.TraceLink{ID: "c2", SourceMRN: "MRN1", TargetBatch: "FG-2", Quantity: dec("250"), ConsumedValue: dec("3750")},
		domain.TraceLink{ID: "other", SourceMRN: "MRN2", TargetBatch: "FG-3", Quantity: dec("1")},
	)
	uc := usecase.NewDutyUseCase(
		mocks.NewFakeDeclarationRepository(clearedDeclaration("MRN1")),
		mocks.NewFakeMRNRepository(registryRow("MRN1", "1000", "550", true)),
		links,
		nil,
	)

	a, err := uc.AllocateDuty(context.Background(), "MRN1")
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if len(a.Consumers) != 2 {
		t.Fatalf("expected 2 consumers, got %d", len(a.Consumers))
	}
	if !a.Consumers[0].AllocatedDuty.Equal(dec("450")) || !a.Consumers[1].AllocatedDuty.Equal(dec("375")) {
		t.Errorf("unexpected allocations: %s, %s", a.Consumers[0].AllocatedDuty, a.Consumers[1].AllocatedDuty)
	}
	if !a.RemainingDuty.Equal(dec("675")) || a.HasAnomalies() {
		t.Errorf("expected remaining 675 without anomalies, got %s %v", a.RemainingDuty, a.Anomalies)
	}
}

func TestDutyUseCase_OverReportedValueSurfacesAnomaly(t *testing.T) {
	links := mocks.NewFakeTraceLinkRepository(
		domain.TraceLink{ID: "c1", SourceMRN: "MRN1", TargetBatch: "FG-1", Quantity: dec("1200"), ConsumedValue: dec("18000")},
	)
	uc := usecase.NewDutyUseCase(
		mocks.NewFakeDeclarationRepository(clearedDeclaration("MRN1")),
		mocks.NewFakeMRNRepository(),
		links,
		nil,
	)

	a, err := uc.AllocateDuty(context.Background(), "MRN1")
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if !a.RemainingDuty.Equal(dec("-300")) {
		t.Errorf("remaining duty must stay unclamped, got %s", a.RemainingDuty)
	}
	want := map[string]bool{duty.AnomalyDutyOverAllocated: false, duty.AnomalyQuantityOverUsed: false}
	for _, an := range a.Anomalies {
		want[an] = true
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("expected anomaly %s in %v", k, a.Anomalies)
		}
	}
}

func TestDutyUseCase_UnknownMRN(t *testing.T) {
	uc := usecase.NewDutyUseCase(mocks.NewFakeDeclarationRepository(), mocks.NewFakeMRNRepository(), mocks.NewFakeTraceLinkRepository(), nil)

	if _, err := uc.AllocateDuty(context.Background(), "nope"); !errors.Is(err, domain.ErrDeclarationNotFound) {
		t.Errorf("expected ErrDeclarationNotFound, got %v", err)
	}
	if _, err := uc.AllocateDuty(context.Background(), ""); !errors.Is(err, domain.ErrMRNRequired) {
		t.Errorf("expected ErrMRNRequired, got %v", err)
	}
}
