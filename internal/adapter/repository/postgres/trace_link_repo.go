package postgres

import (
	"context"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/infrastructure/postgres/generated"
	"github.com/iho/customscore/internal/usecase"
)

// TraceLinkRepository implements usecase.TraceLinkRepository.
type TraceLinkRepository struct {
	queries *generated.Queries
}

// NewTraceLinkRepository creates a new TraceLinkRepository.
func NewTraceLinkRepository(db generated.DBTX) *TraceLinkRepository {
	return &TraceLinkRepository{queries: generated.New(db)}
}

// Create appends a link. Duplicate (source, target) pairs are allowed.
func (r *TraceLinkRepository) Create(ctx context.Context, tx usecase.Transaction, link *domain.TraceLink) error {
	queries := generated.New(pgxTx(tx).PgxTx())

	return queries.CreateTraceLink(ctx, generated.CreateTraceLinkParams{
		ID:            link.ID,
		SourceType:    link.SourceType,
		SourceID:      link.SourceID,
		SourceBatch:   link.SourceBatch,
		SourceMRN:     link.SourceMRN,
		TargetType:    link.TargetType,
		TargetID:      link.TargetID,
		TargetBatch:   link.TargetBatch,
		TargetMRN:     link.TargetMRN,
		ItemID:        link.ItemID,
		Quantity:      decimalToNumeric(link.Quantity),
		ConsumedValue: decimalToNumeric(link.ConsumedValue),
		CreatedBy:     link.CreatedBy,
		CreatedAt:     timeToPgTimestamptz(link.CreatedAt),
	})
}

// ListBySource returns links leaving the queried batch or MRN.
func (r *TraceLinkRepository) ListBySource(ctx context.Context, query domain.TraceQuery) ([]domain.TraceLink, error) {
	rows, err := r.queries.ListTraceLinksBySource(ctx, generated.ListTraceLinksBySourceParams{
		BatchNumber: query.BatchNumber,
		MRN:         query.MRN,
	})
	if err != nil {
		return nil, err
	}

	return rowsToTraceLinks(rows), nil
}

// ListByTarget returns links arriving at the queried batch or MRN.
func (r *TraceLinkRepository) ListByTarget(ctx context.Context, query domain.TraceQuery) ([]domain.TraceLink, error) {
	rows, err := r.queries.ListTraceLinksByTarget(ctx, generated.ListTraceLinksByTargetParams{
		BatchNumber: query.BatchNumber,
		MRN:         query.MRN,
	})
	if err != nil {
		return nil, err
	}

	return rowsToTraceLinks(rows), nil
}

func rowsToTraceLinks(rows []generated.TraceLink) []domain.TraceLink {
	links := make([]domain.TraceLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, domain.TraceLink{
			ID:            row.ID,
			SourceType:    row.SourceType,
			SourceID:      row.SourceID,
			SourceBatch:   row.SourceBatch,
			SourceMRN:     row.SourceMRN,
			TargetType:    row.TargetType,
			TargetID:      row.TargetID,
			TargetBatch:   row.TargetBatch,
			TargetMRN:     row.TargetMRN,
			ItemID:        row.ItemID,
			Quantity:      numericToDecimal(row.Quantity),
			ConsumedValue: numericToDecimal(row.ConsumedValue),
			CreatedBy:     row.CreatedBy,
			CreatedAt:     row.CreatedAt.Time,
		})
	}

	return links
}
