package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/infrastructure/postgres/generated"
	"github.com/iho/customscore/internal/usecase"
)

// GuaranteeAccountRepository implements usecase.GuaranteeAccountRepository.
type GuaranteeAccountRepository struct {
	queries *generated.Queries
}

// NewGuaranteeAccountRepository creates a new GuaranteeAccountRepository.
func NewGuaranteeAccountRepository(db generated.DBTX) *GuaranteeAccountRepository {
	return &GuaranteeAccountRepository{queries: generated.New(db)}
}

// Create inserts an account.
func (r *GuaranteeAccountRepository) Create(ctx context.Context, tx usecase.Transaction, account *domain.GuaranteeAccount) error {
	queries := generated.New(pgxTx(tx).PgxTx())

	return queries.CreateGuaranteeAccount(ctx, generated.CreateGuaranteeAccountParams{
		ID:            account.ID,
		AccountNumber: account.AccountNumber,
		Currency:      account.Currency,
		TotalLimit:    decimalToNumeric(account.TotalLimit),
		Active:        account.Active,
		Version:       account.Version,
		CreatedBy:     account.CreatedBy,
		CreatedAt:     timeToPgTimestamptz(account.CreatedAt),
		UpdatedAt:     timeToPgTimestamptz(account.UpdatedAt),
	})
}

// GetByID retrieves an account by ID.
func (r *GuaranteeAccountRepository) GetByID(ctx context.Context, id string) (*domain.GuaranteeAccount, error) {
	row, err := r.queries.GetGuaranteeAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return rowToGuaranteeAccount(row), nil
}

// GetByIDForUpdate retrieves an account by ID with a FOR UPDATE lock.
func (r *GuaranteeAccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.GuaranteeAccount, error) {
	queries := generated.New(pgxTx(tx).PgxTx())

	row, err := queries.GetGuaranteeAccountByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return rowToGuaranteeAccount(row), nil
}

func rowToGuaranteeAccount(row generated.GuaranteeAccount) *domain.GuaranteeAccount {
	return &domain.GuaranteeAccount{
		ID:            row.ID,
		AccountNumber: row.AccountNumber,
		Currency:      row.Currency,
		TotalLimit:    numericToDecimal(row.TotalLimit),
		Active:        row.Active,
		Version:       row.Version,
		CreatedBy:     row.CreatedBy,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
