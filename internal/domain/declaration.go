package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeclarationType distinguishes import and export filings.
type DeclarationType string

const (
	DeclarationTypeImport DeclarationType = "import"
	DeclarationTypeExport DeclarationType = "export"
)

// IsValid reports whether t is a known declaration type.
func (t DeclarationType) IsValid() bool {
	return t == DeclarationTypeImport || t == DeclarationTypeExport
}

// Declaration is a customs filing. It is created as a draft by an upstream
// system, validated, and becomes immutable once cleared.
type Declaration struct {
	ID                 string
	Number             string
	Type               DeclarationType
	MRN                string
	ProcedureCode      string
	ExporterID         string
	ImporterID         string
	Currency           string
	TotalCustomsValue  decimal.Decimal
	TotalDuty          decimal.Decimal
	TotalVAT           decimal.Decimal
	GuaranteeAccountID string
	Lines              []DeclarationLine
	Cleared            bool
	ClearedAt          *time.Time
	DueDate            *time.Time
	CreatedBy          string
	UpdatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DeclarationLine is one goods item of a declaration.
type DeclarationLine struct {
	ID              string
	DeclarationID   string
	LineNumber      int
	ItemID          string
	Description     string
	TariffCode      string
	Quantity        decimal.Decimal
	UnitOfMeasure   string
	CountryOfOrigin string
	CustomsValue    decimal.Decimal
	DutyRate        decimal.Decimal
	DutyAmount      decimal.Decimal
	VATRate         decimal.Decimal
	VATAmount       decimal.Decimal
}

// TotalQuantity sums the quantity of every line.
func (d *Declaration) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, l := range d.Lines {
		total = total.Add(l.Quantity)
	}
	return total
}

// GuaranteeAmount is the exposure secured when the procedure requires a guarantee.
func (d *Declaration) GuaranteeAmount() decimal.Decimal {
	return d.TotalDuty.Add(d.TotalVAT)
}

// Clear marks the declaration accepted under mrn.
func (d *Declaration) Clear(mrn, actor string, at time.Time) error {
	if d.Cleared {
		return ErrDeclarationCleared
	}
	if mrn == "" {
		return ErrMRNRequired
	}
	d.MRN = mrn
	d.Cleared = true
	d.ClearedAt = &at
	d.UpdatedBy = actor
	d.UpdatedAt = at
	return nil
}

// TariffCode is a row of the tariff reference table.
type TariffCode struct {
	Code        string
	Description string
	DutyRate    decimal.Decimal
	Active      bool
}

// ProcedureCode is a row of the customs procedure reference list.
type ProcedureCode struct {
	Code              string
	Description       string
	RequiresGuarantee bool
	Active            bool
}
