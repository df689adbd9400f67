package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/customscore/internal/adapter/http/dto"
	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/usecase"
)

// GuaranteeService defines the behavior needed by GuaranteeHandler.
type GuaranteeService interface {
	CreateAccount(ctx context.Context, actor string, input usecase.CreateAccountInput) (*domain.GuaranteeAccount, error)
	GetAccount(ctx context.Context, accountID string, recent int) (*usecase.AccountSummary, error)
	Exposure(ctx context.Context, accountID string) (*domain.Exposure, error)
	ActiveDebits(ctx context.Context, accountID string) ([]*domain.LedgerEntry, error)
	Debit(ctx context.Context, actor string, input usecase.DebitInput) (*domain.LedgerEntry, error)
	Release(ctx context.Context, actor, entryID string) (*domain.LedgerEntry, error)
	CreditNew(ctx context.Context, actor string, input usecase.CreditInput) (*domain.LedgerEntry, error)
}

// GuaranteeHandler handles guarantee ledger HTTP requests.
type GuaranteeHandler struct {
	guaranteeUC GuaranteeService
}

// NewGuaranteeHandler creates a new GuaranteeHandler.
func NewGuaranteeHandler(guaranteeUC GuaranteeService) *GuaranteeHandler {
	return &GuaranteeHandler{guaranteeUC: guaranteeUC}
}

// CreateAccount opens a guarantee account.
func (h *GuaranteeHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGuaranteeAccountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	account, err := h.guaranteeUC.CreateAccount(r.Context(), actorFromRequest(r), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, r, "failed to create guarantee account", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.GuaranteeAccountFromDomain(account))
}

// GetAccount returns an account with its exposure and latest entries.
func (h *GuaranteeHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	summary, err := h.guaranteeUC.GetAccount(r.Context(), id, parseIntQuery(r, "recent", 20))
	if err != nil {
		writeDomainError(w, r, "failed to get guarantee account", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountSummaryFromUseCase(summary))
}

// Exposure reports how much of an account is in use.
func (h *GuaranteeHandler) Exposure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	exposure, err := h.guaranteeUC.Exposure(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, "failed to get exposure", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ExposureFromDomain(exposure))
}

// ActiveDebits lists open debits, optionally for one account.
func (h *GuaranteeHandler) ActiveDebits(w http.ResponseWriter, r *http.Request) {
	entries, err := h.guaranteeUC.ActiveDebits(r.Context(), r.URL.Query().Get("accountId"))
	if err != nil {
		writeDomainError(w, r, "failed to list active debits", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ActiveDebitsResponse{
		Items: dto.LedgerEntriesFromDomain(entries),
		Count: len(entries),
	})
}

// Debit secures an amount against an account's limit.
func (h *GuaranteeHandler) Debit(w http.ResponseWriter, r *http.Request) {
	var req dto.DebitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := h.guaranteeUC.Debit(r.Context(), actorFromRequest(r), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, r, "failed to debit guarantee", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.LedgerEntryFromDomain(entry))
}

// Credit releases an open debit when entry_id is given, otherwise posts a
// fresh credit to account_id.
func (h *GuaranteeHandler) Credit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreditRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var (
		entry *domain.LedgerEntry
		err   error
	)
	if req.IsRelease() {
		entry, err = h.guaranteeUC.Release(r.Context(), actorFromRequest(r), req.EntryID)
	} else {
		entry, err = h.guaranteeUC.CreditNew(r.Context(), actorFromRequest(r), req.ToUseCaseInput())
	}
	if err != nil {
		writeDomainError(w, r, "failed to credit guarantee", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.LedgerEntryFromDomain(entry))
}
