package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/duty"
	"github.com/iho/customscore/internal/tracegraph"
	"github.com/iho/customscore/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string             `json:"error"`
	Message string             `json:"message,omitempty"`
	Details []ValidationDetail `json:"details,omitempty"`
}

// DeclarationLineResponse represents a declaration line in API responses.
type DeclarationLineResponse struct {
	ID              string          `json:"id"`
	LineNumber      int             `json:"line_number"`
	ItemID          string          `json:"item_id,omitempty"`
	Description     string          `json:"description,omitempty"`
	TariffCode      string          `json:"tariff_code"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitOfMeasure   string          `json:"unit_of_measure,omitempty"`
	CountryOfOrigin string          `json:"country_of_origin,omitempty"`
	CustomsValue    decimal.Decimal `json:"customs_value"`
	DutyAmount      decimal.Decimal `json:"duty_amount"`
	VATAmount       decimal.Decimal `json:"vat_amount"`
}

// DeclarationResponse represents a declaration in API responses.
type DeclarationResponse struct {
	ID                 string                    `json:"id"`
	Number             string                    `json:"number,omitempty"`
	Type               string                    `json:"type"`
	MRN                string                    `json:"mrn,omitempty"`
	ProcedureCode      string                    `json:"procedure_code"`
	ExporterID         string                    `json:"exporter_id"`
	ImporterID         string                    `json:"importer_id,omitempty"`
	Currency           string                    `json:"currency"`
	TotalCustomsValue  decimal.Decimal           `json:"total_customs_value"`
	TotalDuty          decimal.Decimal           `json:"total_duty"`
	TotalVAT           decimal.Decimal           `json:"total_vat"`
	GuaranteeAccountID string                    `json:"guarantee_account_id,omitempty"`
	Cleared            bool                      `json:"cleared"`
	ClearedAt          *time.Time                `json:"cleared_at,omitempty"`
	DueDate            *time.Time                `json:"due_date,omitempty"`
	Lines              []DeclarationLineResponse `json:"lines"`
	CreatedBy          string                    `json:"created_by"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

// DeclarationFromDomain converts a domain declaration to a response.
func DeclarationFromDomain(d *domain.Declaration) *DeclarationResponse {
	if d == nil {
		return nil
	}

	lines := make([]DeclarationLineResponse, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = DeclarationLineResponse{
			ID:              l.ID,
			LineNumber:      l.LineNumber,
			ItemID:          l.ItemID,
			Description:     l.Description,
			TariffCode:      l.TariffCode,
			Quantity:        l.Quantity,
			UnitOfMeasure:   l.UnitOfMeasure,
			CountryOfOrigin: l.CountryOfOrigin,
			CustomsValue:    l.CustomsValue,
			DutyAmount:      l.DutyAmount,
			VATAmount:       l.VATAmount,
		}
	}

	return &DeclarationResponse{
		ID:                 d.ID,
		Number:             d.Number,
		Type:               string(d.Type),
		MRN:                d.MRN,
		ProcedureCode:      d.ProcedureCode,
		ExporterID:         d.ExporterID,
		ImporterID:         d.ImporterID,
		Currency:           d.Currency,
		TotalCustomsValue:  d.TotalCustomsValue,
		TotalDuty:          d.TotalDuty,
		TotalVAT:           d.TotalVAT,
		GuaranteeAccountID: d.GuaranteeAccountID,
		Cleared:            d.Cleared,
		ClearedAt:          d.ClearedAt,
		DueDate:            d.DueDate,
		Lines:              lines,
		CreatedBy:          d.CreatedBy,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

// SubmitDeclarationResponse carries the persisted draft (absent when
// validation failed) and the validation result.
type SubmitDeclarationResponse struct {
	Declaration *DeclarationResponse     `json:"declaration,omitempty"`
	Validation  *domain.ValidationResult `json:"validation"`
}

// AcceptDeclarationResponse is everything an acceptance changed.
type AcceptDeclarationResponse struct {
	Declaration    *DeclarationResponse     `json:"declaration"`
	Validation     *domain.ValidationResult `json:"validation"`
	Registry       *MRNRegistryResponse     `json:"mrn_registry,omitempty"`
	GuaranteeEntry *LedgerEntryResponse     `json:"guarantee_entry,omitempty"`
}

// AcceptResultFromUseCase converts an acceptance result to a response.
func AcceptResultFromUseCase(res *usecase.AcceptResult) *AcceptDeclarationResponse {
	return &AcceptDeclarationResponse{
		Declaration:    DeclarationFromDomain(res.Declaration),
		Validation:     res.Validation,
		Registry:       MRNRegistryFromDomain(res.Registry),
		GuaranteeEntry: LedgerEntryFromDomain(res.GuaranteeEntry),
	}
}

// MRNRegistryResponse represents an MRN registry row with derived fields.
type MRNRegistryResponse struct {
	ID                string          `json:"id"`
	MRN               string          `json:"mrn"`
	DeclarationID     string          `json:"declaration_id"`
	TotalQuantity     decimal.Decimal `json:"total_quantity"`
	UsedQuantity      decimal.Decimal `json:"used_quantity"`
	RemainingQuantity decimal.Decimal `json:"remaining_quantity"`
	FullyUsed         bool            `json:"fully_used"`
	OverConsumed      bool            `json:"over_consumed"`
	State             string          `json:"state"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
	Active            bool            `json:"active"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// MRNRegistryFromDomain converts a registry row, recomputing derived state.
func MRNRegistryFromDomain(m *domain.MRNRegistry) *MRNRegistryResponse {
	if m == nil {
		return nil
	}

	return &MRNRegistryResponse{
		ID:                m.ID,
		MRN:               m.MRN,
		DeclarationID:     m.DeclarationID,
		TotalQuantity:     m.TotalQuantity,
		UsedQuantity:      m.UsedQuantity,
		RemainingQuantity: m.RemainingQuantity(),
		FullyUsed:         m.IsFullyUsed(),
		OverConsumed:      m.IsOverConsumed(),
		State:             string(m.State()),
		ExpiryDate:        m.ExpiryDate,
		Active:            m.Active,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ListMRNRegistryResponse is a page of registry rows.
type ListMRNRegistryResponse struct {
	Items []*MRNRegistryResponse `json:"items"`
	Total int                    `json:"total"`
}

// GuaranteeAccountResponse represents a guarantee account in API responses.
type GuaranteeAccountResponse struct {
	ID            string          `json:"id"`
	AccountNumber string          `json:"account_number"`
	Currency      string          `json:"currency"`
	TotalLimit    decimal.Decimal `json:"total_limit"`
	Active        bool            `json:"active"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// GuaranteeAccountFromDomain converts a domain account to a response.
func GuaranteeAccountFromDomain(a *domain.GuaranteeAccount) *GuaranteeAccountResponse {
	return &GuaranteeAccountResponse{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		Currency:      a.Currency,
		TotalLimit:    a.TotalLimit,
		Active:        a.Active,
		CreatedBy:     a.CreatedBy,
		CreatedAt:     a.CreatedAt,
	}
}

// ExposureResponse summarizes the use of a guarantee account.
type ExposureResponse struct {
	AccountID          string          `json:"account_id"`
	Currency           string          `json:"currency"`
	TotalLimit         decimal.Decimal `json:"total_limit"`
	Balance            decimal.Decimal `json:"balance"`
	Available          decimal.Decimal `json:"available"`
	UtilizationPercent decimal.Decimal `json:"utilization_percent"`
	ActiveCount        int             `json:"active_count"`
	ActiveAmount       decimal.Decimal `json:"active_amount"`
}

// ExposureFromDomain converts a domain exposure to a response.
func ExposureFromDomain(e *domain.Exposure) *ExposureResponse {
	return &ExposureResponse{
		AccountID:          e.AccountID,
		Currency:           e.Currency,
		TotalLimit:         e.TotalLimit,
		Balance:            e.Balance,
		Available:          e.Available,
		UtilizationPercent: e.UtilizationPercent,
		ActiveCount:        e.ActiveCount,
		ActiveAmount:       e.ActiveAmount,
	}
}

// LedgerEntryResponse represents a ledger entry in API responses.
type LedgerEntryResponse struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"account_id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	MRN             string          `json:"mrn,omitempty"`
	Description     string          `json:"description,omitempty"`
	ReleasesEntryID string          `json:"releases_entry_id,omitempty"`
	Released        bool            `json:"released"`
	ExpectedRelease *time.Time      `json:"expected_release,omitempty"`
	ReleasedAt      *time.Time      `json:"released_at,omitempty"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
}

// LedgerEntryFromDomain converts a domain entry to a response.
func LedgerEntryFromDomain(e *domain.LedgerEntry) *LedgerEntryResponse {
	if e == nil {
		return nil
	}

	return &LedgerEntryResponse{
		ID:              e.ID,
		AccountID:       e.AccountID,
		Type:            string(e.Type),
		Amount:          e.Amount,
		Currency:        e.Currency,
		MRN:             e.MRN,
		Description:     e.Description,
		ReleasesEntryID: e.ReleasesEntryID,
		Released:        e.Released,
		ExpectedRelease: e.ExpectedRelease,
		ReleasedAt:      e.ReleasedAt,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
	}
}

// LedgerEntriesFromDomain converts domain entries to responses.
func LedgerEntriesFromDomain(entries []*domain.LedgerEntry) []*LedgerEntryResponse {
	result := make([]*LedgerEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = LedgerEntryFromDomain(e)
	}
	return result
}

// AccountSummaryResponse is an account with exposure and recent entries.
type AccountSummaryResponse struct {
	Account       *GuaranteeAccountResponse `json:"account"`
	Exposure      *ExposureResponse         `json:"exposure"`
	RecentEntries []*LedgerEntryResponse    `json:"recent_entries"`
}

// AccountSummaryFromUseCase converts an account summary to a response.
func AccountSummaryFromUseCase(s *usecase.AccountSummary) *AccountSummaryResponse {
	return &AccountSummaryResponse{
		Account:       GuaranteeAccountFromDomain(s.Account),
		Exposure:      ExposureFromDomain(s.Exposure),
		RecentEntries: LedgerEntriesFromDomain(s.RecentEntries),
	}
}

// ActiveDebitsResponse lists open debits, earliest expected release first.
type ActiveDebitsResponse struct {
	Items []*LedgerEntryResponse `json:"items"`
	Count int                    `json:"count"`
}

// TraceLinkResponse represents a trace link in API responses.
type TraceLinkResponse struct {
	ID            string          `json:"id"`
	SourceType    string          `json:"source_type,omitempty"`
	SourceID      string          `json:"source_id,omitempty"`
	SourceBatch   string          `json:"source_batch,omitempty"`
	SourceMRN     string          `json:"source_mrn,omitempty"`
	TargetType    string          `json:"target_type,omitempty"`
	TargetID      string          `json:"target_id,omitempty"`
	TargetBatch   string          `json:"target_batch,omitempty"`
	TargetMRN     string          `json:"target_mrn,omitempty"`
	ItemID        string          `json:"item_id,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	ConsumedValue decimal.Decimal `json:"consumed_value"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TraceLinkFromDomain converts a domain link to a response.
func TraceLinkFromDomain(l domain.TraceLink) TraceLinkResponse {
	return TraceLinkResponse{
		ID:            l.ID,
		SourceType:    l.SourceType,
		SourceID:      l.SourceID,
		SourceBatch:   l.SourceBatch,
		SourceMRN:     l.SourceMRN,
		TargetType:    l.TargetType,
		TargetID:      l.TargetID,
		TargetBatch:   l.TargetBatch,
		TargetMRN:     l.TargetMRN,
		ItemID:        l.ItemID,
		Quantity:      l.Quantity,
		ConsumedValue: l.ConsumedValue,
		CreatedAt:     l.CreatedAt,
	}
}

// TraceLinksResponse lists direct links in insertion order.
type TraceLinksResponse struct {
	Links []TraceLinkResponse `json:"links"`
	Count int                 `json:"count"`
}

// TraceLinksFromDomain converts domain links to a response.
func TraceLinksFromDomain(links []domain.TraceLink) *TraceLinksResponse {
	out := make([]TraceLinkResponse, len(links))
	for i, l := range links {
		out[i] = TraceLinkFromDomain(l)
	}
	return &TraceLinksResponse{Links: out, Count: len(out)}
}

// PathLinkResponse is a link of a full traversal with its position.
type PathLinkResponse struct {
	TraceLinkResponse
	FromBatch string `json:"from_batch"`
	NextBatch string `json:"next_batch,omitempty"`
	Depth     int    `json:"depth"`
}

// PathResponse is the result of a full-path traversal.
type PathResponse struct {
	Start     string             `json:"start"`
	Direction string             `json:"direction"`
	Links     []PathLinkResponse `json:"links"`
	Visited   []string           `json:"visited"`
	Truncated bool               `json:"truncated"`
}

// PathFromTraversal converts a traversal result to a response.
func PathFromTraversal(p *tracegraph.Path) *PathResponse {
	links := make([]PathLinkResponse, len(p.Links))
	for i, l := range p.Links {
		links[i] = PathLinkResponse{
			TraceLinkResponse: TraceLinkFromDomain(l.Link),
			FromBatch:         l.FromBatch,
			NextBatch:         l.NextBatch,
			Depth:             l.Depth,
		}
	}

	return &PathResponse{
		Start:     p.Start,
		Direction: p.Direction.String(),
		Links:     links,
		Visited:   p.Visited,
		Truncated: p.Truncated,
	}
}

// GenealogyResponse represents a precomputed batch genealogy.
type GenealogyResponse struct {
	BatchNumber   string    `json:"batch_number"`
	ParentBatches []string  `json:"parent_batches"`
	ParentMRNs    []string  `json:"parent_mrns"`
	Depth         int       `json:"depth"`
	LinkCount     int       `json:"link_count"`
	BuiltAt       time.Time `json:"built_at"`
}

// GenealogyFromDomain converts a domain genealogy to a response.
func GenealogyFromDomain(g *domain.BatchGenealogy) *GenealogyResponse {
	return &GenealogyResponse{
		BatchNumber:   g.BatchNumber,
		ParentBatches: g.ParentBatches,
		ParentMRNs:    g.ParentMRNs,
		Depth:         g.Depth,
		LinkCount:     g.LinkCount,
		BuiltAt:       g.BuiltAt,
	}
}

// ConsumerAllocationResponse is the duty share of one consumption.
type ConsumerAllocationResponse struct {
	LinkID        string          `json:"link_id"`
	TargetType    string          `json:"target_type,omitempty"`
	TargetID      string          `json:"target_id,omitempty"`
	TargetBatch   string          `json:"target_batch,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	ConsumedValue decimal.Decimal `json:"consumed_value"`
	Share         decimal.Decimal `json:"share"`
	AllocatedDuty decimal.Decimal `json:"allocated_duty"`
}

// DutyAllocationResponse is the duty breakdown of one MRN.
type DutyAllocationResponse struct {
	MRN                string                       `json:"mrn"`
	OriginalQuantity   decimal.Decimal              `json:"original_quantity"`
	OriginalValue      decimal.Decimal              `json:"original_value"`
	TotalDuty          decimal.Decimal              `json:"total_duty"`
	ConsumedQuantity   decimal.Decimal              `json:"consumed_quantity"`
	ConsumedValue      decimal.Decimal              `json:"consumed_value"`
	Consumers          []ConsumerAllocationResponse `json:"consumers"`
	TotalAllocatedDuty decimal.Decimal              `json:"total_allocated_duty"`
	RemainingDuty      decimal.Decimal              `json:"remaining_duty"`
	Anomalies          []string                     `json:"anomalies"`
}

// DutyAllocationFromDomain converts an allocation to a response.
func DutyAllocationFromDomain(a *duty.Allocation) *DutyAllocationResponse {
	consumers := make([]ConsumerAllocationResponse, len(a.Consumers))
	for i, c := range a.Consumers {
		consumers[i] = ConsumerAllocationResponse{
			LinkID:        c.LinkID,
			TargetType:    c.TargetType,
			TargetID:      c.TargetID,
			TargetBatch:   c.TargetBatch,
			Quantity:      c.Quantity,
			ConsumedValue: c.ConsumedValue,
			Share:         c.Share,
			AllocatedDuty: c.AllocatedDuty,
		}
	}

	anomalies := a.Anomalies
	if anomalies == nil {
		anomalies = []string{}
	}

	return &DutyAllocationResponse{
		MRN:                a.MRN,
		OriginalQuantity:   a.OriginalQuantity,
		OriginalValue:      a.OriginalValue,
		TotalDuty:          a.TotalDuty,
		ConsumedQuantity:   a.ConsumedQuantity,
		ConsumedValue:      a.ConsumedValue,
		Consumers:          consumers,
		TotalAllocatedDuty: a.TotalAllocatedDuty,
		RemainingDuty:      a.RemainingDuty,
		Anomalies:          anomalies,
	}
}
