package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/usecase"
)

// DeclarationLineRequest is one goods item of a submitted declaration.
type DeclarationLineRequest struct {
	ItemID          string          `json:"item_id"           validate:"max=64"`
	Description     string          `json:"description"       validate:"max=512"`
	TariffCode      string          `json:"tariff_code"       validate:"max=64"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitOfMeasure   string          `json:"unit_of_measure"   validate:"max=16"`
	CountryOfOrigin string          `json:"country_of_origin" validate:"omitempty,len=2,alpha"`
	CustomsValue    decimal.Decimal `json:"customs_value"`
	DutyRate        decimal.Decimal `json:"duty_rate"`
	DutyAmount      decimal.Decimal `json:"duty_amount"`
	VATRate         decimal.Decimal `json:"vat_rate"`
	VATAmount       decimal.Decimal `json:"vat_amount"`
}

// SubmitDeclarationRequest is a draft declaration. Business completeness is
// checked by the rule pipeline, so only the shape is validated here.
type SubmitDeclarationRequest struct {
	Number             string                   `json:"number"               validate:"max=64"`
	Type               string                   `json:"type"                 validate:"max=32"`
	ProcedureCode      string                   `json:"procedure_code"       validate:"max=8"`
	ExporterID         string                   `json:"exporter_id"          validate:"max=64"`
	ImporterID         string                   `json:"importer_id"          validate:"max=64"`
	Currency           string                   `json:"currency"             validate:"omitempty,len=3,alpha"`
	TotalCustomsValue  decimal.Decimal          `json:"total_customs_value"`
	TotalDuty          decimal.Decimal          `json:"total_duty"`
	TotalVAT           decimal.Decimal          `json:"total_vat"`
	GuaranteeAccountID string                   `json:"guarantee_account_id" validate:"max=64"`
	DueDate            *time.Time               `json:"due_date,omitempty"`
	Lines              []DeclarationLineRequest `json:"lines"                validate:"max=999,dive"`
}

// ToDomain converts the request to a draft declaration.
func (r *SubmitDeclarationRequest) ToDomain() *domain.Declaration {
	d := &domain.Declaration{
		Number:             r.Number,
		Type:               domain.DeclarationType(r.Type),
		ProcedureCode:      r.ProcedureCode,
		ExporterID:         r.ExporterID,
		ImporterID:         r.ImporterID,
		Currency:           r.Currency,
		TotalCustomsValue:  r.TotalCustomsValue,
		TotalDuty:          r.TotalDuty,
		TotalVAT:           r.TotalVAT,
		GuaranteeAccountID: r.GuaranteeAccountID,
		DueDate:            r.DueDate,
	}

	for _, l := range r.Lines {
		d.Lines = append(d.Lines, domain.DeclarationLine{
			ItemID:          l.ItemID,
			Description:     l.Description,
			TariffCode:      l.TariffCode,
			Quantity:        l.Quantity,
			UnitOfMeasure:   l.UnitOfMeasure,
			CountryOfOrigin: l.CountryOfOrigin,
			CustomsValue:    l.CustomsValue,
			DutyRate:        l.DutyRate,
			DutyAmount:      l.DutyAmount,
			VATRate:         l.VATRate,
			VATAmount:       l.VATAmount,
		})
	}

	return d
}

// AcceptDeclarationRequest carries the MRN issued on clearance.
type AcceptDeclarationRequest struct {
	MRN                string `json:"mrn"                  validate:"required,max=32"`
	GuaranteeAccountID string `json:"guarantee_account_id" validate:"max=64"`
}

// ToUseCaseInput converts to use case input.
func (r *AcceptDeclarationRequest) ToUseCaseInput() usecase.AcceptInput {
	return usecase.AcceptInput{
		MRN:                r.MRN,
		GuaranteeAccountID: r.GuaranteeAccountID,
	}
}

// RecordUsageRequest increments the used quantity of an MRN.
type RecordUsageRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// CreateGuaranteeAccountRequest opens a guarantee account.
type CreateGuaranteeAccountRequest struct {
	AccountNumber string          `json:"account_number" validate:"required,max=64"`
	Currency      string          `json:"currency"       validate:"required,len=3,alpha"`
	TotalLimit    decimal.Decimal `json:"total_limit"`
	Active        *bool           `json:"active,omitempty"`
}

// ToUseCaseInput converts to use case input. Accounts are active unless
// the request says otherwise.
func (r *CreateGuaranteeAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return usecase.CreateAccountInput{
		AccountNumber: r.AccountNumber,
		Currency:      r.Currency,
		TotalLimit:    r.TotalLimit,
		Active:        active,
	}
}

// DebitRequest secures an amount on a guarantee account.
type DebitRequest struct {
	AccountID       string          `json:"account_id"  validate:"required,max=64"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"    validate:"omitempty,len=3,alpha"`
	MRN             string          `json:"mrn"         validate:"max=32"`
	Description     string          `json:"description" validate:"max=512"`
	ExpectedRelease *time.Time      `json:"expected_release,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *DebitRequest) ToUseCaseInput() usecase.DebitInput {
	return usecase.DebitInput{
		AccountID:       r.AccountID,
		Amount:          r.Amount,
		Currency:        r.Currency,
		MRN:             r.MRN,
		Description:     r.Description,
		ExpectedRelease: r.ExpectedRelease,
	}
}

// CreditRequest either releases an existing debit (entry_id) or posts a
// fresh credit (account_id and amount).
type CreditRequest struct {
	EntryID     string          `json:"entry_id"    validate:"max=64"`
	AccountID   string          `json:"account_id"  validate:"required_without=EntryID,max=64"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"    validate:"omitempty,len=3,alpha"`
	MRN         string          `json:"mrn"         validate:"max=32"`
	Description string          `json:"description" validate:"max=512"`
}

// IsRelease reports whether the request releases an existing debit.
func (r *CreditRequest) IsRelease() bool {
	return r.EntryID != ""
}

// ToUseCaseInput converts to use case input for a fresh credit.
func (r *CreditRequest) ToUseCaseInput() usecase.CreditInput {
	return usecase.CreditInput{
		AccountID:   r.AccountID,
		Amount:      r.Amount,
		Currency:    r.Currency,
		MRN:         r.MRN,
		Description: r.Description,
	}
}

// TraceLinkRequest records one unit of material flow.
type TraceLinkRequest struct {
	SourceType    string          `json:"source_type"  validate:"max=32"`
	SourceID      string          `json:"source_id"    validate:"max=64"`
	SourceBatch   string          `json:"source_batch" validate:"max=64"`
	SourceMRN     string          `json:"source_mrn"   validate:"max=32"`
	TargetType    string          `json:"target_type"  validate:"max=32"`
	TargetID      string          `json:"target_id"    validate:"max=64"`
	TargetBatch   string          `json:"target_batch" validate:"max=64"`
	TargetMRN     string          `json:"target_mrn"   validate:"max=32"`
	ItemID        string          `json:"item_id"      validate:"max=64"`
	Quantity      decimal.Decimal `json:"quantity"`
	ConsumedValue decimal.Decimal `json:"consumed_value"`
}

// ToDomain converts the request to a link.
func (r *TraceLinkRequest) ToDomain() domain.TraceLink {
	return domain.TraceLink{
		SourceType:    r.SourceType,
		SourceID:      r.SourceID,
		SourceBatch:   r.SourceBatch,
		SourceMRN:     r.SourceMRN,
		TargetType:    r.TargetType,
		TargetID:      r.TargetID,
		TargetBatch:   r.TargetBatch,
		TargetMRN:     r.TargetMRN,
		ItemID:        r.ItemID,
		Quantity:      r.Quantity,
		ConsumedValue: r.ConsumedValue,
	}
}
