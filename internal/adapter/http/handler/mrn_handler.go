package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/customscore/internal/adapter/http/dto"
	"github.com/iho/customscore/internal/domain"
)

// MRNService defines the behavior needed by MRNHandler.
type MRNService interface {
	List(ctx context.Context, filter domain.MRNFilter) ([]*domain.MRNRegistry, error)
	RecordUsage(ctx context.Context, actor, mrn string, quantity decimal.Decimal) (*domain.MRNRegistry, error)
}

// MRNHandler handles MRN registry HTTP requests.
type MRNHandler struct {
	mrnUC MRNService
}

// NewMRNHandler creates a new MRNHandler.
func NewMRNHandler(mrnUC MRNService) *MRNHandler {
	return &MRNHandler{mrnUC: mrnUC}
}

// List lists registry rows, optionally narrowed by MRN and activity.
func (h *MRNHandler) List(w http.ResponseWriter, r *http.Request) {
	isActive, err := parseBoolQuery(r, "isActive")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid isActive", err.Error())
		return
	}

	rows, err := h.mrnUC.List(r.Context(), domain.MRNFilter{
		MRN:      r.URL.Query().Get("mrn"),
		IsActive: isActive,
		Limit:    parseIntQuery(r, "limit", 50),
		Offset:   parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeDomainError(w, r, "failed to list mrn registry", err)
		return
	}

	items := make([]*dto.MRNRegistryResponse, len(rows))
	for i, m := range rows {
		items[i] = dto.MRNRegistryFromDomain(m)
	}

	writeJSON(w, http.StatusOK, dto.ListMRNRegistryResponse{Items: items, Total: len(items)})
}

// RecordUsage adds consumed quantity to an MRN.
func (h *MRNHandler) RecordUsage(w http.ResponseWriter, r *http.Request) {
	mrn := chi.URLParam(r, "mrn")
	if mrn == "" {
		writeError(w, http.StatusBadRequest, "missing mrn", "")
		return
	}

	var req dto.RecordUsageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	registry, err := h.mrnUC.RecordUsage(r.Context(), actorFromRequest(r), mrn, req.Quantity)
	if err != nil {
		writeDomainError(w, r, "failed to record usage", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MRNRegistryFromDomain(registry))
}
