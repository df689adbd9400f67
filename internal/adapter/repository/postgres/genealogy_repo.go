package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/infrastructure/postgres/generated"
)

// GenealogyRepository implements usecase.GenealogyRepository.
type GenealogyRepository struct {
	queries *generated.Queries
}

// NewGenealogyRepository creates a new GenealogyRepository.
func NewGenealogyRepository(db generated.DBTX) *GenealogyRepository {
	return &GenealogyRepository{queries: generated.New(db)}
}

// Get reads the precomputed genealogy of a batch.
func (r *GenealogyRepository) Get(ctx context.Context, batchNumber string) (*domain.BatchGenealogy, error) {
	row, err := r.queries.GetBatchGenealogy(ctx, batchNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGenealogyNotFound
		}

		return nil, err
	}

	return &domain.BatchGenealogy{
		BatchNumber:   row.BatchNumber,
		ParentBatches: row.ParentBatches,
		ParentMRNs:    row.ParentMRNs,
		Depth:         int(row.Depth),
		LinkCount:     int(row.LinkCount),
		BuiltAt:       row.BuiltAt.Time,
	}, nil
}

// Upsert replaces the genealogy record of a batch.
func (r *GenealogyRepository) Upsert(ctx context.Context, g *domain.BatchGenealogy) error {
	parents := g.ParentBatches
	if parents == nil {
		parents = []string{}
	}
	mrns := g.ParentMRNs
	if mrns == nil {
		mrns = []string{}
	}

	return r.queries.UpsertBatchGenealogy(ctx, generated.UpsertBatchGenealogyParams{
		BatchNumber:   g.BatchNumber,
		ParentBatches: parents,
		ParentMRNs:    mrns,
		Depth:         int32(g.Depth),
		LinkCount:     int32(g.LinkCount),
		BuiltAt:       timeToPgTimestamptz(g.BuiltAt),
	})
}
