package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/customscore/internal/adapter/http/dto"
	"github.com/iho/customscore/internal/duty"
)

// DutyService defines the behavior needed by DutyHandler.
type DutyService interface {
	AllocateDuty(ctx context.Context, mrn string) (*duty.Allocation, error)
}

// DutyHandler handles duty allocation HTTP requests.
type DutyHandler struct {
	dutyUC DutyService
}

// NewDutyHandler creates a new DutyHandler.
func NewDutyHandler(dutyUC DutyService) *DutyHandler {
	return &DutyHandler{dutyUC: dutyUC}
}

// Allocate splits the duty paid under an MRN across its consumers.
func (h *DutyHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	alloc, err := h.dutyUC.AllocateDuty(r.Context(), chi.URLParam(r, "mrn"))
	if err != nil {
		writeDomainError(w, r, "failed to allocate duty", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DutyAllocationFromDomain(alloc))
}
