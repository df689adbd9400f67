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

// LedgerEntryRepository implements usecase.LedgerEntryRepository.
type LedgerEntryRepository struct {
	queries *generated.Queries
}

// NewLedgerEntryRepository creates a new LedgerEntryRepository.
func NewLedgerEntryRepository(db generated.DBTX) *LedgerEntryRepository {
	return &LedgerEntryRepository{queries: generated.New(db)}
}

// Create appends an entry.
func (r *LedgerEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	queries := generated.New(pgxTx(tx).PgxTx())

	return queries.CreateLedgerEntry(ctx, generated.CreateLedgerEntryParams{
		ID:              entry.ID,
		AccountID:       entry.AccountID,
		EntryType:       string(entry.Type),
		Amount:          decimalToNumeric(entry.Amount),
		Currency:        entry.Currency,
		MRN:             entry.MRN,
		Description:     entry.Description,
		ReleasesEntryID: optionalText(entry.ReleasesEntryID),
		Released:        entry.Released,
		ExpectedRelease: optionalTimestamptz(entry.ExpectedRelease),
		ReleasedAt:      optionalTimestamptz(entry.ReleasedAt),
		ReleasedBy:      entry.ReleasedBy,
		CreatedBy:       entry.CreatedBy,
		CreatedAt:       timeToPgTimestamptz(entry.CreatedAt),
		DeletedAt:       optionalTimestamptz(entry.DeletedAt),
	})
}

// GetByID retrieves a non-deleted entry.
func (r *LedgerEntryRepository) GetByID(ctx context.Context, id string) (*domain.LedgerEntry, error) {
	row, err := r.queries.GetLedgerEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLedgerEntryNotFound
		}

		return nil, err
	}

	return rowToLedgerEntry(row), nil
}

// GetByIDForUpdate retrieves a non-deleted entry with a FOR UPDATE lock.
func (r *LedgerEntryRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.LedgerEntry, error) {
	queries := generated.New(pgxTx(tx).PgxTx())

	row, err := queries.GetLedgerEntryByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLedgerEntryNotFound
		}

		return nil, err
	}

	return rowToLedgerEntry(row), nil
}

// MarkReleased flips the released flag of an open debit.
func (r *LedgerEntryRepository) MarkReleased(ctx context.Context, tx usecase.Transaction, id string, releasedAt time.Time, releasedBy string) error {
	queries := generated.New(pgxTx(tx).PgxTx())

	n, err := queries.MarkLedgerEntryReleased(ctx, generated.MarkLedgerEntryReleasedParams{
		ID:         id,
		ReleasedAt: timeToPgTimestamptz(releasedAt),
		ReleasedBy: releasedBy,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrAlreadyReleased
	}

	return nil
}

// Balance sums debits minus credits of an account.
func (r *LedgerEntryRepository) Balance(ctx context.Context, accountID string, visibility domain.Visibility) (decimal.Decimal, error) {
	return sumBalance(ctx, r.queries, accountID, visibility)
}

// BalanceTx sums the balance inside tx, after the caller locked the account.
func (r *LedgerEntryRepository) BalanceTx(ctx context.Context, tx usecase.Transaction, accountID string, visibility domain.Visibility) (decimal.Decimal, error) {
	return sumBalance(ctx, generated.New(pgxTx(tx).PgxTx()), accountID, visibility)
}

func sumBalance(ctx context.Context, queries *generated.Queries, accountID string, visibility domain.Visibility) (decimal.Decimal, error) {
	n, err := queries.SumLedgerBalance(ctx, generated.SumLedgerBalanceParams{
		AccountID:      accountID,
		IncludeDeleted: includeDeleted(visibility),
	})
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(n), nil
}

// ListOpenDebits returns unreleased debits, earliest expected release first.
func (r *LedgerEntryRepository) ListOpenDebits(ctx context.Context, accountID string, visibility domain.Visibility) ([]*domain.LedgerEntry, error) {
	rows, err := r.queries.ListOpenDebits(ctx, generated.ListOpenDebitsParams{
		AccountID:      accountID,
		IncludeDeleted: includeDeleted(visibility),
	})
	if err != nil {
		return nil, err
	}

	return rowsToLedgerEntries(rows), nil
}

// ListByAccount returns the newest entries of an account first.
func (r *LedgerEntryRepository) ListByAccount(ctx context.Context, accountID string, visibility domain.Visibility, limit, offset int) ([]*domain.LedgerEntry, error) {
	rows, err := r.queries.ListLedgerEntriesByAccount(ctx, generated.ListLedgerEntriesByAccountParams{
		AccountID:      accountID,
		IncludeDeleted: includeDeleted(visibility),
		Limit:          int32(limit),
		Offset:         int32(offset),
	})
	if err != nil {
		return nil, err
	}

	return rowsToLedgerEntries(rows), nil
}

func rowsToLedgerEntries(rows []generated.GuaranteeLedgerEntry) []*domain.LedgerEntry {
	entries := make([]*domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToLedgerEntry(row))
	}

	return entries
}

func rowToLedgerEntry(row generated.GuaranteeLedgerEntry) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:              row.ID,
		AccountID:       row.AccountID,
		Type:            domain.EntryType(row.EntryType),
		Amount:          numericToDecimal(row.Amount),
		Currency:        row.Currency,
		MRN:             row.MRN,
		Description:     row.Description,
		ReleasesEntryID: row.ReleasesEntryID.String,
		Released:        row.Released,
		ExpectedRelease: timestamptzPtr(row.ExpectedRelease),
		ReleasedAt:      timestamptzPtr(row.ReleasedAt),
		ReleasedBy:      row.ReleasedBy,
		CreatedBy:       row.CreatedBy,
		CreatedAt:       row.CreatedAt.Time,
		DeletedAt:       timestamptzPtr(row.DeletedAt),
	}
}
