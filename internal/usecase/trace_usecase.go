package usecase

import (
	"context"
	"time"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/infrastructure/metrics"
	"github.com/iho/customscore/internal/tracegraph"
)

// TraceUseCase records trace links and answers traceability queries.
type TraceUseCase struct {
	txManager     TransactionManager
	linkRepo      TraceLinkRepository
	genealogyRepo GenealogyRepository
	outboxRepo    OutboxRepository
	auditRepo     AuditRepository
	usage         UsageRecorder
	idGen         IDGenerator
	metrics       *metrics.Metrics
	walker        *tracegraph.Walker
}

func NewTraceUseCase(
	txManager TransactionManager,
	linkRepo TraceLinkRepository,
	genealogyRepo GenealogyRepository,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	usage UsageRecorder,
	idGen IDGenerator,
	metrics *metrics.Metrics,
	maxExpansions int,
) *TraceUseCase {
	uc := &TraceUseCase{
		txManager:     txManager,
		linkRepo:      linkRepo,
		genealogyRepo: genealogyRepo,
		outboxRepo:    outboxRepo,
		auditRepo:     auditRepo,
		usage:         usage,
		idGen:         idGen,
		metrics:       metrics,
	}
	uc.walker = tracegraph.NewWalker(linkEdges{repo: linkRepo}, maxExpansions)
	return uc
}

// linkEdges exposes the link repository to the walker.
type linkEdges struct {
	repo TraceLinkRepository
}

func (e linkEdges) DirectEdges(ctx context.Context, batch string, dir tracegraph.Direction) ([]domain.TraceLink, error) {
	q := domain.TraceQuery{BatchNumber: batch}
	if dir == tracegraph.Backward {
		return e.repo.ListByTarget(ctx, q)
	}
	return e.repo.ListBySource(ctx, q)
}

// TraceForward returns the direct links leaving a batch or MRN.
func (uc *TraceUseCase) TraceForward(ctx context.Context, q domain.TraceQuery) ([]domain.TraceLink, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return uc.linkRepo.ListBySource(ctx, q)
}

// TraceBackward returns the direct links entering a batch or MRN.
func (uc *TraceUseCase) TraceBackward(ctx context.Context, q domain.TraceQuery) ([]domain.TraceLink, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return uc.linkRepo.ListByTarget(ctx, q)
}

// TraceFullPath walks every link reachable from batch in dir.
func (uc *TraceUseCase) TraceFullPath(ctx context.Context, batch string, dir tracegraph.Direction) (*tracegraph.Path, error) {
	if batch == "" {
		return nil, domain.ErrTraceKeyRequired
	}

	path, err := uc.walker.FullPath(ctx, batch, dir)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TraversalLinks.WithLabelValues(dir.String()).Observe(float64(len(path.Links)))
		if path.Truncated {
			uc.metrics.TraversalTruncated.Inc()
		}
	}

	return path, nil
}

// GetGenealogy reads the precomputed genealogy of a batch. There is no
// fallback to a live traversal.
func (uc *TraceUseCase) GetGenealogy(ctx context.Context, batch string) (*domain.BatchGenealogy, error) {
	if batch == "" {
		return nil, domain.ErrTraceKeyRequired
	}
	return uc.genealogyRepo.Get(ctx, batch)
}

// RebuildGenealogy recomputes the genealogy of batch from a backward walk.
func (uc *TraceUseCase) RebuildGenealogy(ctx context.Context, batch string) (*domain.BatchGenealogy, error) {
	path, err := uc.TraceFullPath(ctx, batch, tracegraph.Backward)
	if err != nil {
		return nil, err
	}

	g := tracegraph.Ancestry(path)
	g.BuiltAt = time.Now().UTC()
	if err := uc.genealogyRepo.Upsert(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// RecordLink appends a trace link. A link consuming a source MRN also
// increments that MRN's usage in the same transaction.
func (uc *TraceUseCase) RecordLink(ctx context.Context, actor string, link domain.TraceLink) (*domain.TraceLink, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := link.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	link.ID = uc.idGen.Generate()
	link.CreatedBy = actor
	link.CreatedAt = now

	var registry *domain.MRNRegistry
	err := inTx(ctx, uc.txManager, func(ctx context.Context, tx Transaction) error {
		if err := uc.linkRepo.Create(ctx, tx, &link); err != nil {
			return err
		}

		if link.SourceMRN != "" && link.Quantity.IsPositive() && uc.usage != nil {
			r, err := uc.usage.RecordUsageTx(ctx, tx, actor, link.SourceMRN, link.Quantity)
			if err != nil {
				return err
			}
			registry = r
		}

		event := domain.NewOutboxEvent(uc.idGen.Generate(), domain.AggregateTypeTraceLink, link.ID, domain.EventTypeTraceLinkRecorded, map[string]any{
			"link_id":      link.ID,
			"source_batch": link.SourceBatch,
			"source_mrn":   link.SourceMRN,
			"target_batch": link.TargetBatch,
			"target_mrn":   link.TargetMRN,
			"quantity":     link.Quantity.String(),
		}, now)
		if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
			return err
		}

		if uc.auditRepo == nil {
			return nil
		}
		log := domain.NewAuditLog(uc.idGen.Generate(), actor, domain.AuditActionTraceLinkCreate, "trace_link", link.ID, &link, now)
		if err := uc.auditRepo.CreateTx(ctx, tx, log); err != nil {
			return err
		}
		recordAudit(uc.metrics, log)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TraceLinksRecorded.Inc()
		if registry != nil {
			uc.metrics.MRNUsageRecorded.Inc()
			if registry.IsOverConsumed() {
				uc.metrics.MRNOverConsumption.Inc()
			}
		}
	}

	return &link, nil
}
