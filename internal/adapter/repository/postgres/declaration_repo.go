package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/infrastructure/postgres/generated"
	"github.com/iho/customscore/internal/usecase"
)

// DeclarationRepository implements usecase.DeclarationRepository.
type DeclarationRepository struct {
	queries *generated.Queries
}

// NewDeclarationRepository creates a new DeclarationRepository.
func NewDeclarationRepository(db generated.DBTX) *DeclarationRepository {
	return &DeclarationRepository{queries: generated.New(db)}
}

// Create inserts the declaration header and its lines.
func (r *DeclarationRepository) Create(ctx context.Context, tx usecase.Transaction, d *domain.Declaration) error {
	queries := generated.New(pgxTx(tx).PgxTx())

	err := queries.CreateDeclaration(ctx, generated.CreateDeclarationParams{
		ID:                 d.ID,
		Number:             d.Number,
		Type:               string(d.Type),
		MRN:                optionalText(d.MRN),
		ProcedureCode:      d.ProcedureCode,
		ExporterID:         d.ExporterID,
		ImporterID:         d.ImporterID,
		Currency:           d.Currency,
		TotalCustomsValue:  decimalToNumeric(d.TotalCustomsValue),
		TotalDuty:          decimalToNumeric(d.TotalDuty),
		TotalVAT:           decimalToNumeric(d.TotalVAT),
		GuaranteeAccountID: optionalText(d.GuaranteeAccountID),
		Cleared:            d.Cleared,
		ClearedAt:          optionalTimestamptz(d.ClearedAt),
		DueDate:            optionalTimestamptz(d.DueDate),
		CreatedBy:          d.CreatedBy,
		UpdatedBy:          d.UpdatedBy,
		CreatedAt:          timeToPgTimestamptz(d.CreatedAt),
		UpdatedAt:          timeToPgTimestamptz(d.UpdatedAt),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrMRNAlreadyExists
		}
		return err
	}

	for _, l := range d.Lines {
		err := queries.CreateDeclarationLine(ctx, generated.CreateDeclarationLineParams{
			ID:              l.ID,
			DeclarationID:   d.ID,
			LineNumber:      int32(l.LineNumber),
			ItemID:          l.ItemID,
			Description:     l.Description,
			TariffCode:      l.TariffCode,
			Quantity:        decimalToNumeric(l.Quantity),
			UnitOfMeasure:   l.UnitOfMeasure,
			CountryOfOrigin: l.CountryOfOrigin,
			CustomsValue:    decimalToNumeric(l.CustomsValue),
			DutyRate:        decimalToNumeric(l.DutyRate),
			DutyAmount:      decimalToNumeric(l.DutyAmount),
			VATRate:         decimalToNumeric(l.VATRate),
			VATAmount:       decimalToNumeric(l.VATAmount),
		})
		if err != nil {
			return fmt.Errorf("insert line %d: %w", l.LineNumber, err)
		}
	}

	return nil
}

// GetByID retrieves a declaration with its lines.
func (r *DeclarationRepository) GetByID(ctx context.Context, id string) (*domain.Declaration, error) {
	row, err := r.queries.GetDeclarationByID(ctx, id)
	if err != nil {
		return nil, declarationErr(err)
	}

	return r.withLines(ctx, r.queries, row)
}

// GetByIDForUpdate locks the declaration header for the rest of tx.
func (r *DeclarationRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Declaration, error) {
	queries := generated.New(pgxTx(tx).PgxTx())

	row, err := queries.GetDeclarationByIDForUpdate(ctx, id)
	if err != nil {
		return nil, declarationErr(err)
	}

	return r.withLines(ctx, queries, row)
}

// GetByMRN retrieves the declaration cleared under mrn.
func (r *DeclarationRepository) GetByMRN(ctx context.Context, mrn string) (*domain.Declaration, error) {
	row, err := r.queries.GetDeclarationByMRN(ctx, optionalText(mrn))
	if err != nil {
		return nil, declarationErr(err)
	}

	return r.withLines(ctx, r.queries, row)
}

// MarkCleared stamps the MRN and clearance fields of a draft.
func (r *DeclarationRepository) MarkCleared(ctx context.Context, tx usecase.Transaction, d *domain.Declaration) error {
	queries := generated.New(pgxTx(tx).PgxTx())

	n, err := queries.MarkDeclarationCleared(ctx, generated.MarkDeclarationClearedParams{
		ID:                 d.ID,
		MRN:                optionalText(d.MRN),
		ClearedAt:          optionalTimestamptz(d.ClearedAt),
		GuaranteeAccountID: optionalText(d.GuaranteeAccountID),
		UpdatedBy:          d.UpdatedBy,
		UpdatedAt:          timeToPgTimestamptz(d.UpdatedAt),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrMRNAlreadyExists
		}
		return err
	}
	if n == 0 {
		return domain.ErrDeclarationCleared
	}

	return nil
}

func (r *DeclarationRepository) withLines(ctx context.Context, queries *generated.Queries, row generated.Declaration) (*domain.Declaration, error) {
	lines, err := queries.ListDeclarationLines(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("list lines: %w", err)
	}

	d := rowToDeclaration(row)
	d.Lines = make([]domain.DeclarationLine, 0, len(lines))
	for _, l := range lines {
		d.Lines = append(d.Lines, rowToDeclarationLine(l))
	}

	return d, nil
}

func declarationErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrDeclarationNotFound
	}
	return err
}

func rowToDeclaration(row generated.Declaration) *domain.Declaration {
	return &domain.Declaration{
		ID:                 row.ID,
		Number:             row.Number,
		Type:               domain.DeclarationType(row.Type),
		MRN:                row.MRN.String,
		ProcedureCode:      row.ProcedureCode,
		ExporterID:         row.ExporterID,
		ImporterID:         row.ImporterID,
		Currency:           row.Currency,
		TotalCustomsValue:  numericToDecimal(row.TotalCustomsValue),
		TotalDuty:          numericToDecimal(row.TotalDuty),
		TotalVAT:           numericToDecimal(row.TotalVAT),
		GuaranteeAccountID: row.GuaranteeAccountID.String,
		Cleared:            row.Cleared,
		ClearedAt:          timestamptzPtr(row.ClearedAt),
		DueDate:            timestamptzPtr(row.DueDate),
		CreatedBy:          row.CreatedBy,
		UpdatedBy:          row.UpdatedBy,
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}
}

func rowToDeclarationLine(row generated.DeclarationLine) domain.DeclarationLine {
	return domain.DeclarationLine{
		ID:              row.ID,
		DeclarationID:   row.DeclarationID,
		LineNumber:      int(row.LineNumber),
		ItemID:          row.ItemID,
		Description:     row.Description,
		TariffCode:      row.TariffCode,
		Quantity:        numericToDecimal(row.Quantity),
		UnitOfMeasure:   row.UnitOfMeasure,
		CountryOfOrigin: row.CountryOfOrigin,
		CustomsValue:    numericToDecimal(row.CustomsValue),
		DutyRate:        numericToDecimal(row.DutyRate),
		DutyAmount:      numericToDecimal(row.DutyAmount),
		VATRate:         numericToDecimal(row.VATRate),
		VATAmount:       numericToDecimal(row.VATAmount),
	}
}
