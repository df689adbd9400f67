package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/infrastructure/postgres/generated"
)

// ReferenceRepository reads tariff and procedure reference tables. It
// implements validation.ReferenceLookup.
type ReferenceRepository struct {
	queries *generated.Queries
}

// NewReferenceRepository creates a new ReferenceRepository.
func NewReferenceRepository(db generated.DBTX) *ReferenceRepository {
	return &ReferenceRepository{queries: generated.New(db)}
}

func (r *ReferenceRepository) GetTariffCode(ctx context.Context, code string) (*domain.TariffCode, error) {
	row, err := r.queries.GetTariffCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReferenceNotFound
		}

		return nil, err
	}

	t := rowToTariffCode(row)

	return &t, nil
}

func (r *ReferenceRepository) ListTariffCodesByPrefix(ctx context.Context, prefix string, limit int) ([]domain.TariffCode, error) {
	rows, err := r.queries.ListTariffCodesByPrefix(ctx, generated.ListTariffCodesByPrefixParams{
		Prefix: prefix,
		Limit:  int32(limit),
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.TariffCode, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToTariffCode(row))
	}

	return out, nil
}

func (r *ReferenceRepository) ListProcedureCodes(ctx context.Context, visibility domain.Visibility) ([]domain.ProcedureCode, error) {
	rows, err := r.queries.ListProcedureCodes(ctx, includeDeleted(visibility))
	if err != nil {
		return nil, err
	}

	out := make([]domain.ProcedureCode, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ProcedureCode{
			Code:              row.Code,
			Description:       row.Description,
			RequiresGuarantee: row.RequiresGuarantee,
			Active:            row.Active,
		})
	}

	return out, nil
}

func rowToTariffCode(row generated.TariffCode) domain.TariffCode {
	return domain.TariffCode{
		Code:        row.Code,
		Description: row.Description,
		DutyRate:    numericToDecimal(row.DutyRate),
		Active:      row.Active,
	}
}
