package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/customscore/internal/adapter/http/dto"
	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/usecase"
)

type declarationServiceStub struct {
	validateFn func(ctx context.Context, d *domain.Declaration) (*domain.ValidationResult, error)
	submitFn   func(ctx context.Context, actor string, d *domain.Declaration) (*domain.Declaration, *domain.ValidationResult, error)
	acceptFn   func(ctx context.Context, actor, id string, input usecase.AcceptInput) (*usecase.AcceptResult, error)
	getFn      func(ctx context.Context, id string) (*domain.Declaration, error)
}

func (s *declarationServiceStub) Validate(ctx context.Context, d *domain.Declaration) (*domain.ValidationResult, error) {
	return s.validateFn(ctx, d)
}

func (s *declarationServiceStub) Submit(ctx context.Context, actor string, d *domain.Declaration) (*domain.Declaration, *domain.ValidationResult, error) {
	return s.submitFn(ctx, actor, d)
}

func (s *declarationServiceStub) Accept(ctx context.Context, actor, id string, input usecase.AcceptInput) (*usecase.AcceptResult, error) {
	return s.acceptFn(ctx, actor, id, input)
}

func (s *declarationServiceStub) Get(ctx context.Context, id string) (*domain.Declaration, error) {
	return s.getFn(ctx, id)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to encode body: %v", err)
	}
	return bytes.NewReader(body)
}

func validDraftRequest() dto.SubmitDeclarationRequest {
	return dto.SubmitDeclarationRequest{
		Type:          "import",
		ProcedureCode: "4000",
		ExporterID:    "EX-1",
		Currency:      "EUR",
		Lines: []dto.DeclarationLineRequest{
			{TariffCode: "8471300000", Quantity: decimal.NewFromInt(10), CustomsValue: decimal.NewFromInt(1000)},
		},
	}
}

func TestDeclarationHandler_Submit_Created(t *testing.T) {
	var gotActor string
	h := NewDeclarationHandler(&declarationServiceStub{
		submitFn: func(ctx context.Context, actor string, d *domain.Declaration) (*domain.Declaration, *domain.ValidationResult, error) {
			gotActor = actor
			saved := *d
			saved.ID = "decl-1"
			return &saved, &domain.ValidationResult{Valid: true}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/customs/declarations", jsonBody(t, validDraftRequest()))
	req.Header.Set(HeaderActorID, "broker-1")
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotActor != "broker-1" {
		t.Fatalf("expected actor broker-1, got %s", gotActor)
	}

	var resp dto.SubmitDeclarationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Declaration == nil || resp.Declaration.ID != "decl-1" || len(resp.Declaration.Lines) != 1 {
		t.Fatalf("unexpected declaration in response: %+v", resp.Declaration)
	}
}

func TestDeclarationHandler_Submit_InvalidReturnsResult(t *testing.T) {
	h := NewDeclarationHandler(&declarationServiceStub{
		submitFn: func(ctx context.Context, actor string, d *domain.Declaration) (*domain.Declaration, *domain.ValidationResult, error) {
			return nil, &domain.ValidationResult{
				Valid: false,
				Errors: []domain.RuleError{
					{RuleCode: "TARIFF_FORMAT", Field: "lines[0].tariffCode", Message: "tariff code must be 10 digits"},
				},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/customs/declarations", jsonBody(t, validDraftRequest()))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp dto.SubmitDeclarationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Declaration != nil {
		t.Fatalf("expected no declaration for an invalid draft")
	}
	if resp.Validation == nil || len(resp.Validation.Errors) != 1 {
		t.Fatalf("expected validation errors in response, got %+v", resp.Validation)
	}
}

func TestDeclarationHandler_Submit_RejectsMalformedBody(t *testing.T) {
	h := NewDeclarationHandler(&declarationServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/customs/declarations", bytes.NewBufferString(`{"currency":"EURO"}`))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Details) != 1 || resp.Details[0].Field != "currency" {
		t.Fatalf("expected a detail for currency, got %+v", resp.Details)
	}
}

func TestDeclarationHandler_Accept(t *testing.T) {
	tests := []struct {
		name       string
		result     *usecase.AcceptResult
		err        error
		wantStatus int
	}{
		{
			name: "cleared",
			result: &usecase.AcceptResult{
				Declaration: &domain.Declaration{ID: "decl-1", MRN: "24DE000000000001", Cleared: true},
				Validation:  &domain.ValidationResult{Valid: true},
				Registry:    &domain.MRNRegistry{MRN: "24DE000000000001", TotalQuantity: decimal.NewFromInt(10)},
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "fails revalidation",
			result: &usecase.AcceptResult{
				Declaration: &domain.Declaration{ID: "decl-1"},
				Validation:  &domain.ValidationResult{Valid: false},
			},
			err:        domain.ErrDeclarationInvalid,
			wantStatus: http.StatusBadRequest,
		},
		{name: "already cleared", err: domain.ErrDeclarationCleared, wantStatus: http.StatusConflict},
		{name: "unknown", err: domain.ErrDeclarationNotFound, wantStatus: http.StatusNotFound},
		{name: "over capacity", err: domain.ErrInsufficientCapacity, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotInput usecase.AcceptInput
			h := NewDeclarationHandler(&declarationServiceStub{
				acceptFn: func(ctx context.Context, actor, id string, input usecase.AcceptInput) (*usecase.AcceptResult, error) {
					gotInput = input
					return tt.result, tt.err
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/customs/declarations/decl-1/accept",
				jsonBody(t, dto.AcceptDeclarationRequest{MRN: "24DE000000000001", GuaranteeAccountID: "ga-1"}))
			req = withURLParam(req, "id", "decl-1")
			rec := httptest.NewRecorder()

			h.Accept(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if gotInput.MRN != "24DE000000000001" || gotInput.GuaranteeAccountID != "ga-1" {
				t.Fatalf("unexpected accept input: %+v", gotInput)
			}
		})
	}
}

func TestDeclarationHandler_Accept_RequiresMRN(t *testing.T) {
	h := NewDeclarationHandler(&declarationServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/customs/declarations/decl-1/accept", bytes.NewBufferString(`{}`))
	req = withURLParam(req, "id", "decl-1")
	rec := httptest.NewRecorder()

	h.Accept(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDeclarationHandler_Validate(t *testing.T) {
	h := NewDeclarationHandler(&declarationServiceStub{
		validateFn: func(ctx context.Context, d *domain.Declaration) (*domain.ValidationResult, error) {
			if d.ProcedureCode != "4000" {
				t.Fatalf("expected procedure code to be passed through, got %q", d.ProcedureCode)
			}
			return &domain.ValidationResult{Valid: true}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/customs/declarations/validate", jsonBody(t, validDraftRequest()))
	rec := httptest.NewRecorder()

	h.Validate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDeclarationHandler_Get_NotFound(t *testing.T) {
	h := NewDeclarationHandler(&declarationServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Declaration, error) {
			return nil, domain.ErrDeclarationNotFound
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/customs/declarations/missing", nil), "id", "missing")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
