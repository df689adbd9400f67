package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/infrastructure/metrics"
)

// MRNUseCase tracks how much of each imported MRN has been consumed.
type MRNUseCase struct {
	txManager  TransactionManager
	mrnRepo    MRNRepository
	outboxRepo OutboxRepository
	auditRepo  AuditRepository
	idGen      IDGenerator
	retrier    Retrier
	metrics    *metrics.Metrics
}

func NewMRNUseCase(
	txManager TransactionManager,
	mrnRepo MRNRepository,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *MRNUseCase {
	return &MRNUseCase{
		txManager:  txManager,
		mrnRepo:    mrnRepo,
		outboxRepo: outboxRepo,
		auditRepo:  auditRepo,
		idGen:      idGen,
		retrier:    retrier,
		metrics:    metrics,
	}
}

func (uc *MRNUseCase) List(ctx context.Context, filter domain.MRNFilter) ([]*domain.MRNRegistry, error) {
	limit, offset, err := domain.ValidatePagination(filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	filter.Limit, filter.Offset = limit, offset
	return uc.mrnRepo.List(ctx, filter)
}

func (uc *MRNUseCase) Get(ctx context.Context, mrn string) (*domain.MRNRegistry, error) {
	if mrn == "" {
		return nil, domain.ErrMRNRequired
	}
	return uc.mrnRepo.GetByMRN(ctx, mrn)
}

// RecordUsage adds quantity to the used quantity of mrn.
func (uc *MRNUseCase) RecordUsage(ctx context.Context, actor, mrn string, quantity decimal.Decimal) (*domain.MRNRegistry, error) {
	start := time.Now()
	defer observeDuration(uc.metrics, "mrn_usage", start)

	var registry *domain.MRNRegistry
	err := retry(ctx, uc.retrier, func() error {
		return inTx(ctx, uc.txManager, func(ctx context.Context, tx Transaction) error {
			r, err := uc.RecordUsageTx(ctx, tx, actor, mrn, quantity)
			registry = r
			return err
		})
	})
	if err != nil {
		return nil, err
	}

	uc.observeUsage(ctx, registry)
	return registry, nil
}

// RecordUsageTx applies a usage increment inside the caller's transaction.
// Usage beyond the total quantity is accepted and left unclamped.
func (uc *MRNUseCase) RecordUsageTx(ctx context.Context, tx Transaction, actor, mrn string, quantity decimal.Decimal) (*domain.MRNRegistry, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if mrn == "" {
		return nil, domain.ErrMRNRequired
	}
	if !quantity.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}

	registry, err := uc.mrnRepo.GetByMRNForUpdate(ctx, tx, mrn)
	if err != nil {
		return nil, err
	}
	if !registry.Active {
		return nil, domain.ErrMRNInactive
	}

	now := time.Now().UTC()
	registry.UsedQuantity = registry.UsedQuantity.Add(quantity)
	registry.UpdatedBy = actor
	registry.UpdatedAt = now
	if err := uc.mrnRepo.UpdateUsedQuantity(ctx, tx, mrn, registry.UsedQuantity, actor, now); err != nil {
		return nil, err
	}

	event := domain.NewOutboxEvent(uc.idGen.Generate(), domain.AggregateTypeMRN, mrn, domain.EventTypeMRNUsageRecorded, map[string]any{
		"mrn":                mrn,
		"quantity":           quantity.String(),
		"used_quantity":      registry.UsedQuantity.String(),
		"remaining_quantity": registry.RemainingQuantity().String(),
		"state":              string(registry.State()),
	}, now)
	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	if uc.auditRepo != nil {
		log := domain.NewAuditLog(uc.idGen.Generate(), actor, domain.AuditActionMRNUsage, "mrn", registry.ID, registry, now)
		if err := uc.auditRepo.CreateTx(ctx, tx, log); err != nil {
			return nil, err
		}
		recordAudit(uc.metrics, log)
	}

	return registry, nil
}

func (uc *MRNUseCase) observeUsage(ctx context.Context, registry *domain.MRNRegistry) {
	if uc.metrics != nil {
		uc.metrics.MRNUsageRecorded.Inc()
	}
	if !registry.IsOverConsumed() {
		return
	}
	if uc.metrics != nil {
		uc.metrics.MRNOverConsumption.Inc()
	}
	zerolog.Ctx(ctx).Warn().
		Str("mrn", registry.MRN).
		Str("total_quantity", registry.TotalQuantity.String()).
		Str("used_quantity", registry.UsedQuantity.String()).
		Msg("mrn over-consumed")
}
