package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/customscore/internal/adapter/http/dto"
	"github.com/iho/customscore/internal/domain"
)

type mrnServiceStub struct {
	listFn   func(ctx context.Context, filter domain.MRNFilter) ([]*domain.MRNRegistry, error)
	recordFn func(ctx context.Context, actor, mrn string, quantity decimal.Decimal) (*domain.MRNRegistry, error)
}

func (s *mrnServiceStub) List(ctx context.Context, filter domain.MRNFilter) ([]*domain.MRNRegistry, error) {
	return s.listFn(ctx, filter)
}

func (s *mrnServiceStub) RecordUsage(ctx context.Context, actor, mrn string, quantity decimal.Decimal) (*domain.MRNRegistry, error) {
	return s.recordFn(ctx, actor, mrn, quantity)
}

func TestMRNHandler_List(t *testing.T) {
	var gotFilter domain.MRNFilter
	h := NewMRNHandler(&mrnServiceStub{
		listFn: func(ctx context.Context, filter domain.MRNFilter) ([]*domain.MRNRegistry, error) {
			gotFilter = filter
			return []*domain.MRNRegistry{
				{MRN: "24DE000000000001", TotalQuantity: decimal.NewFromInt(100), UsedQuantity: decimal.NewFromInt(40), Active: true},
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/customs/mrn-registry?mrn=24DE&isActive=true", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotFilter.MRN != "24DE" || gotFilter.IsActive == nil || !*gotFilter.IsActive {
		t.Fatalf("unexpected filter: %+v", gotFilter)
	}

	var resp dto.ListMRNRegistryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 || !resp.Items[0].RemainingQuantity.Equal(decimal.NewFromInt(60)) || resp.Items[0].State != "active" {
		t.Fatalf("unexpected registry: %+v", resp.Items[0])
	}
}

func TestMRNHandler_List_InvalidActiveFlag(t *testing.T) {
	h := NewMRNHandler(&mrnServiceStub{})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/customs/mrn-registry?isActive=perhaps", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMRNHandler_RecordUsage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "recorded", wantStatus: http.StatusOK},
		{name: "unknown mrn", err: domain.ErrMRNNotFound, wantStatus: http.StatusNotFound},
		{name: "non-positive", err: domain.ErrInvalidQuantity, wantStatus: http.StatusBadRequest},
		{name: "storage failure", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewMRNHandler(&mrnServiceStub{
				recordFn: func(ctx context.Context, actor, mrn string, quantity decimal.Decimal) (*domain.MRNRegistry, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.MRNRegistry{MRN: mrn, TotalQuantity: decimal.NewFromInt(100), UsedQuantity: quantity}, nil
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/customs/mrn-registry/24DE000000000001/usage", bytes.NewBufferString(`{"quantity":"25"}`))
			req = withURLParam(req, "mrn", "24DE000000000001")
			rec := httptest.NewRecorder()

			h.RecordUsage(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}
