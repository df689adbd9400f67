package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/infrastructure/postgres/generated"
	"github.com/iho/customscore/internal/usecase"
)

// MRNRepository implements usecase.MRNRepository.
type MRNRepository struct {
	queries *generated.Queries
}

// NewMRNRepository creates a new MRNRepository.
func NewMRNRepository(db generated.DBTX) *MRNRepository {
	return &MRNRepository{queries: generated.New(db)}
}

// Create opens a registry row. A second row for the same MRN is rejected.
func (r *MRNRepository) Create(ctx context.Context, tx usecase.Transaction, m *domain.MRNRegistry) error {
	queries := generated.New(pgxTx(tx).PgxTx())

	err := queries.CreateMRNRegistry(ctx, generated.CreateMRNRegistryParams{
		ID:            m.ID,
		MRN:           m.MRN,
		DeclarationID: m.DeclarationID,
		TotalQuantity: decimalToNumeric(m.TotalQuantity),
		UsedQuantity:  decimalToNumeric(m.UsedQuantity),
		ExpiryDate:    optionalTimestamptz(m.ExpiryDate),
		Active:        m.Active,
		CreatedBy:     m.CreatedBy,
		UpdatedBy:     m.UpdatedBy,
		CreatedAt:     timeToPgTimestamptz(m.CreatedAt),
		UpdatedAt:     timeToPgTimestamptz(m.UpdatedAt),
	})
	if isUniqueViolation(err) {
		return domain.ErrMRNAlreadyExists
	}

	return err
}

// GetByMRN retrieves a registry row.
func (r *MRNRepository) GetByMRN(ctx context.Context, mrn string) (*domain.MRNRegistry, error) {
	row, err := r.queries.GetMRNRegistry(ctx, mrn)
	if err != nil {
		return nil, mrnErr(err)
	}

	return rowToMRNRegistry(row), nil
}

// GetByMRNForUpdate retrieves a registry row with a FOR UPDATE lock.
func (r *MRNRepository) GetByMRNForUpdate(ctx context.Context, tx usecase.Transaction, mrn string) (*domain.MRNRegistry, error) {
	queries := generated.New(pgxTx(tx).PgxTx())

	row, err := queries.GetMRNRegistryForUpdate(ctx, mrn)
	if err != nil {
		return nil, mrnErr(err)
	}

	return rowToMRNRegistry(row), nil
}

// UpdateUsedQuantity overwrites the cumulative used quantity.
func (r *MRNRepository) UpdateUsedQuantity(ctx context.Context, tx usecase.Transaction, mrn string, used decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	queries := generated.New(pgxTx(tx).PgxTx())

	n, err := queries.UpdateMRNUsedQuantity(ctx, generated.UpdateMRNUsedQuantityParams{
		MRN:          mrn,
		UsedQuantity: decimalToNumeric(used),
		UpdatedBy:    updatedBy,
		UpdatedAt:    timeToPgTimestamptz(updatedAt),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrMRNNotFound
	}

	return nil
}

// List returns registry rows, newest first.
func (r *MRNRepository) List(ctx context.Context, filter domain.MRNFilter) ([]*domain.MRNRegistry, error) {
	params := generated.ListMRNRegistryParams{
		MRN:    filter.MRN,
		Limit:  int32(filter.Limit),
		Offset: int32(filter.Offset),
	}
	if filter.IsActive != nil {
		params.FilterActive = true
		params.IsActive = *filter.IsActive
	}

	rows, err := r.queries.ListMRNRegistry(ctx, params)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.MRNRegistry, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToMRNRegistry(row))
	}

	return out, nil
}

func mrnErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrMRNNotFound
	}
	return err
}

func rowToMRNRegistry(row generated.MrnRegistry) *domain.MRNRegistry {
	return &domain.MRNRegistry{
		ID:            row.ID,
		MRN:           row.MRN,
		DeclarationID: row.DeclarationID,
		TotalQuantity: numericToDecimal(row.TotalQuantity),
		UsedQuantity:  numericToDecimal(row.UsedQuantity),
		ExpiryDate:    timestamptzPtr(row.ExpiryDate),
		Active:        row.Active,
		CreatedBy:     row.CreatedBy,
		UpdatedBy:     row.UpdatedBy,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
