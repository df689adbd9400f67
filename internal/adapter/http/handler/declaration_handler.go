package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/customscore/internal/adapter/http/dto"
	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/usecase"
)

// DeclarationService defines the behavior needed by DeclarationHandler.
type DeclarationService interface {
	Validate(ctx context.Context, d *domain.Declaration) (*domain.ValidationResult, error)
	Submit(ctx context.Context, actor string, d *domain.Declaration) (*domain.Declaration, *domain.ValidationResult, error)
	Accept(ctx context.Context, actor, id string, input usecase.AcceptInput) (*usecase.AcceptResult, error)
	Get(ctx context.Context, id string) (*domain.Declaration, error)
}

// DeclarationHandler handles declaration HTTP requests.
type DeclarationHandler struct {
	declarationUC DeclarationService
}

// NewDeclarationHandler creates a new DeclarationHandler.
func NewDeclarationHandler(declarationUC DeclarationService) *DeclarationHandler {
	return &DeclarationHandler{declarationUC: declarationUC}
}

// Submit validates and stores a draft declaration. A draft that fails
// validation is answered with 400 and the full validation result.
func (h *DeclarationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitDeclarationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	decl, result, err := h.declarationUC.Submit(r.Context(), actorFromRequest(r), req.ToDomain())
	if err != nil {
		writeDomainError(w, r, "failed to submit declaration", err)
		return
	}

	if !result.Valid {
		writeJSON(w, http.StatusBadRequest, dto.SubmitDeclarationResponse{Validation: result})
		return
	}

	writeJSON(w, http.StatusCreated, dto.SubmitDeclarationResponse{
		Declaration: dto.DeclarationFromDomain(decl),
		Validation:  result,
	})
}

// Validate runs the rule pipeline without storing anything.
func (h *DeclarationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitDeclarationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.declarationUC.Validate(r.Context(), req.ToDomain())
	if err != nil {
		writeDomainError(w, r, "failed to validate declaration", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Get retrieves a declaration by ID.
func (h *DeclarationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing declaration ID", "")
		return
	}

	decl, err := h.declarationUC.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, "failed to get declaration", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DeclarationFromDomain(decl))
}

// Accept clears a declaration under the issued MRN.
func (h *DeclarationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing declaration ID", "")
		return
	}

	var req dto.AcceptDeclarationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.declarationUC.Accept(r.Context(), actorFromRequest(r), id, req.ToUseCaseInput())
	if errors.Is(err, domain.ErrDeclarationInvalid) && res != nil {
		writeJSON(w, http.StatusBadRequest, dto.SubmitDeclarationResponse{
			Declaration: dto.DeclarationFromDomain(res.Declaration),
			Validation:  res.Validation,
		})
		return
	}
	if err != nil {
		writeDomainError(w, r, "failed to accept declaration", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AcceptResultFromUseCase(res))
}
