package usecase

import (
	"context"
	"errors"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/duty"
	"github.com/iho/customscore/internal/infrastructure/metrics"
)

// DutyUseCase allocates the duty paid on an MRN to its consumers.
type DutyUseCase struct {
	declRepo DeclarationRepository
	mrnRepo  MRNRepository
	linkRepo TraceLinkRepository
	metrics  *metrics.Metrics
}

func NewDutyUseCase(
	declRepo DeclarationRepository,
	mrnRepo MRNRepository,
	linkRepo TraceLinkRepository,
	metrics *metrics.Metrics,
) *DutyUseCase {
	return &DutyUseCase{
		declRepo: declRepo,
		mrnRepo:  mrnRepo,
		linkRepo: linkRepo,
		metrics:  metrics,
	}
}

// AllocateDuty splits the duty of the declaration cleared under mrn across
// every link consuming that MRN.
func (uc *DutyUseCase) AllocateDuty(ctx context.Context, mrn string) (*duty.Allocation, error) {
	if mrn == "" {
		return nil, domain.ErrMRNRequired
	}

	d, err := uc.declRepo.GetByMRN(ctx, mrn)
	if err != nil {
		return nil, err
	}

	origin := duty.Origin{
		MRN:              mrn,
		OriginalQuantity: d.TotalQuantity(),
		OriginalValue:    d.TotalCustomsValue,
		TotalDuty:        d.TotalDuty,
	}

	registry, err := uc.mrnRepo.GetByMRN(ctx, mrn)
	switch {
	case err == nil:
		origin.OriginalQuantity = registry.TotalQuantity
	case !errors.Is(err, domain.ErrMRNNotFound):
		return nil, err
	}

	links, err := uc.linkRepo.ListBySource(ctx, domain.TraceQuery{MRN: mrn})
	if err != nil {
		return nil, err
	}

	allocation := duty.Allocate(origin, links)

	if uc.metrics != nil {
		uc.metrics.DutyAllocations.Inc()
		for _, a := range allocation.Anomalies {
			uc.metrics.DutyAnomalies.WithLabelValues(a).Inc()
		}
	}

	return allocation, nil
}
