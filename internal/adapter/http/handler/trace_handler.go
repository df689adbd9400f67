package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/customscore/internal/adapter/http/dto"
	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/tracegraph"
)

// TraceService defines the behavior needed by TraceHandler.
type TraceService interface {
	TraceForward(ctx context.Context, q domain.TraceQuery) ([]domain.TraceLink, error)
	TraceBackward(ctx context.Context, q domain.TraceQuery) ([]domain.TraceLink, error)
	TraceFullPath(ctx context.Context, batch string, dir tracegraph.Direction) (*tracegraph.Path, error)
	GetGenealogy(ctx context.Context, batch string) (*domain.BatchGenealogy, error)
	RebuildGenealogy(ctx context.Context, batch string) (*domain.BatchGenealogy, error)
	RecordLink(ctx context.Context, actor string, link domain.TraceLink) (*domain.TraceLink, error)
}

// TraceHandler handles traceability HTTP requests.
type TraceHandler struct {
	traceUC TraceService
}

// NewTraceHandler creates a new TraceHandler.
func NewTraceHandler(traceUC TraceService) *TraceHandler {
	return &TraceHandler{traceUC: traceUC}
}

func traceQuery(r *http.Request) domain.TraceQuery {
	return domain.TraceQuery{
		BatchNumber: r.URL.Query().Get("batchNumber"),
		MRN:         r.URL.Query().Get("mrn"),
	}
}

// Forward lists the direct links leaving a batch or MRN.
func (h *TraceHandler) Forward(w http.ResponseWriter, r *http.Request) {
	links, err := h.traceUC.TraceForward(r.Context(), traceQuery(r))
	if err != nil {
		writeDomainError(w, r, "failed to trace forward", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TraceLinksFromDomain(links))
}

// Backward lists the direct links entering a batch or MRN.
func (h *TraceHandler) Backward(w http.ResponseWriter, r *http.Request) {
	links, err := h.traceUC.TraceBackward(r.Context(), traceQuery(r))
	if err != nil {
		writeDomainError(w, r, "failed to trace backward", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TraceLinksFromDomain(links))
}

// FullPath walks every link reachable from a batch.
func (h *TraceHandler) FullPath(w http.ResponseWriter, r *http.Request) {
	dir, err := tracegraph.ParseDirection(r.URL.Query().Get("direction"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid direction", err.Error())
		return
	}

	path, err := h.traceUC.TraceFullPath(r.Context(), r.URL.Query().Get("batchNumber"), dir)
	if err != nil {
		writeDomainError(w, r, "failed to trace full path", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PathFromTraversal(path))
}

// Genealogy returns the precomputed genealogy of a batch.
func (h *TraceHandler) Genealogy(w http.ResponseWriter, r *http.Request) {
	g, err := h.traceUC.GetGenealogy(r.Context(), chi.URLParam(r, "batchNumber"))
	if err != nil {
		writeDomainError(w, r, "failed to get genealogy", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.GenealogyFromDomain(g))
}

// RebuildGenealogy recomputes and stores the genealogy of a batch.
func (h *TraceHandler) RebuildGenealogy(w http.ResponseWriter, r *http.Request) {
	g, err := h.traceUC.RebuildGenealogy(r.Context(), chi.URLParam(r, "batchNumber"))
	if err != nil {
		writeDomainError(w, r, "failed to rebuild genealogy", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.GenealogyFromDomain(g))
}

// RecordLink appends a trace link.
func (h *TraceHandler) RecordLink(w http.ResponseWriter, r *http.Request) {
	var req dto.TraceLinkRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	link, err := h.traceUC.RecordLink(r.Context(), actorFromRequest(r), req.ToDomain())
	if err != nil {
		writeDomainError(w, r, "failed to record trace link", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.TraceLinkFromDomain(*link))
}
