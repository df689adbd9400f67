package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/customscore/internal/adapter/http/dto"
	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/duty"
	"github.com/iho/customscore/internal/tracegraph"
)

type traceServiceStub struct {
	forwardFn  func(ctx context.Context, q domain.TraceQuery) ([]domain.TraceLink, error)
	backwardFn func(ctx context.Context, q domain.TraceQuery) ([]domain.TraceLink, error)
	fullPathFn func(ctx context.Context, batch string, dir tracegraph.Direction) (*tracegraph.Path, error)
	getGenFn   func(ctx context.Context, batch string) (*domain.BatchGenealogy, error)
	rebuildFn  func(ctx context.Context, batch string) (*domain.BatchGenealogy, error)
	recordFn   func(ctx context.Context, actor string, link domain.TraceLink) (*domain.TraceLink, error)
}

func (s *traceServiceStub) TraceForward(ctx context.Context, q domain.TraceQuery) ([]domain.TraceLink, error) {
	return s.forwardFn(ctx, q)
}

func (s *traceServiceStub) TraceBackward(ctx context.Context, q domain.TraceQuery) ([]domain.TraceLink, error) {
	return s.backwardFn(ctx, q)
}

func (s *traceServiceStub) TraceFullPath(ctx context.Context, batch string, dir tracegraph.Direction) (*tracegraph.Path, error) {
	return s.fullPathFn(ctx, batch, dir)
}

func (s *traceServiceStub) GetGenealogy(ctx context.Context, batch string) (*domain.BatchGenealogy, error) {
	return s.getGenFn(ctx, batch)
}

func (s *traceServiceStub) RebuildGenealogy(ctx context.Context, batch string) (*domain.BatchGenealogy, error) {
	return s.rebuildFn(ctx, batch)
}

func (s *traceServiceStub) RecordLink(ctx context.Context, actor string, link domain.TraceLink) (*domain.TraceLink, error) {
	return s.recordFn(ctx, actor, link)
}

func TestTraceHandler_Forward(t *testing.T) {
	var gotQuery domain.TraceQuery
	h := NewTraceHandler(&traceServiceStub{
		forwardFn: func(ctx context.Context, q domain.TraceQuery) ([]domain.TraceLink, error) {
			gotQuery = q
			return []domain.TraceLink{{ID: "l-1", SourceBatch: "B1", TargetBatch: "B2"}}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.Forward(rec, httptest.NewRequest(http.MethodGet, "/traceability/trace-forward?batchNumber=B1", nil))

	if rec.Code != http.StatusOK || gotQuery.BatchNumber != "B1" {
		t.Fatalf("expected 200 for B1, got %d for %+v", rec.Code, gotQuery)
	}

	var resp dto.TraceLinksResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 1 || resp.Links[0].TargetBatch != "B2" {
		t.Fatalf("unexpected links: %+v", resp)
	}
}

func TestTraceHandler_Backward_MissingKey(t *testing.T) {
	h := NewTraceHandler(&traceServiceStub{
		backwardFn: func(ctx context.Context, q domain.TraceQuery) ([]domain.TraceLink, error) {
			return nil, q.Validate()
		},
	})

	rec := httptest.NewRecorder()
	h.Backward(rec, httptest.NewRequest(http.MethodGet, "/traceability/trace-backward", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTraceHandler_FullPath(t *testing.T) {
	var gotDir tracegraph.Direction
	h := NewTraceHandler(&traceServiceStub{
		fullPathFn: func(ctx context.Context, batch string, dir tracegraph.Direction) (*tracegraph.Path, error) {
			gotDir = dir
			return &tracegraph.Path{
				Start:     batch,
				Direction: dir,
				Links: []tracegraph.AnnotatedLink{
					{Link: domain.TraceLink{ID: "l-1", SourceBatch: "B0", TargetBatch: batch}, FromBatch: batch, NextBatch: "B0", Depth: 1},
				},
				Visited:   []string{batch, "B0"},
				Truncated: true,
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.FullPath(rec, httptest.NewRequest(http.MethodGet, "/traceability/trace-full?batchNumber=B1&direction=backward", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotDir != tracegraph.Backward {
		t.Fatalf("expected backward traversal, got %s", gotDir)
	}

	var resp dto.PathResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Truncated || resp.Direction != "backward" || len(resp.Links) != 1 || resp.Links[0].Depth != 1 {
		t.Fatalf("unexpected path: %+v", resp)
	}
}

func TestTraceHandler_FullPath_InvalidDirection(t *testing.T) {
	h := NewTraceHandler(&traceServiceStub{})

	rec := httptest.NewRecorder()
	h.FullPath(rec, httptest.NewRequest(http.MethodGet, "/traceability/trace-full?batchNumber=B1&direction=sideways", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTraceHandler_Genealogy_NotFound(t *testing.T) {
	h := NewTraceHandler(&traceServiceStub{
		getGenFn: func(ctx context.Context, batch string) (*domain.BatchGenealogy, error) {
			return nil, domain.ErrGenealogyNotFound
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/traceability/genealogy/B1", nil), "batchNumber", "B1")
	rec := httptest.NewRecorder()

	h.Genealogy(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTraceHandler_RecordLink(t *testing.T) {
	h := NewTraceHandler(&traceServiceStub{
		recordFn: func(ctx context.Context, actor string, link domain.TraceLink) (*domain.TraceLink, error) {
			if actor != "plant-3" {
				t.Fatalf("expected actor plant-3, got %s", actor)
			}
			link.ID = "l-9"
			return &link, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/traceability/links",
		bytes.NewBufferString(`{"source_batch":"B1","source_mrn":"24DE000000000001","target_batch":"B2","quantity":"40"}`))
	req.Header.Set(HeaderActorID, "plant-3")
	rec := httptest.NewRecorder()

	h.RecordLink(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.TraceLinkResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "l-9" || !resp.Quantity.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("unexpected link: %+v", resp)
	}
}

type dutyServiceStub struct {
	allocateFn func(ctx context.Context, mrn string) (*duty.Allocation, error)
}

func (s *dutyServiceStub) AllocateDuty(ctx context.Context, mrn string) (*duty.Allocation, error) {
	return s.allocateFn(ctx, mrn)
}

func TestDutyHandler_Allocate(t *testing.T) {
	h := NewDutyHandler(&dutyServiceStub{
		allocateFn: func(ctx context.Context, mrn string) (*duty.Allocation, error) {
			return &duty.Allocation{
				MRN:           mrn,
				TotalDuty:     decimal.NewFromInt(100),
				RemainingDuty: decimal.NewFromInt(-5),
				Anomalies:     []string{"allocated duty exceeds total duty"},
			}, nil
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/traceability/duty-allocation/24DE000000000001", nil), "mrn", "24DE000000000001")
	rec := httptest.NewRecorder()

	h.Allocate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.DutyAllocationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.RemainingDuty.IsNegative() || len(resp.Anomalies) != 1 || resp.Consumers == nil {
		t.Fatalf("unexpected allocation: %+v", resp)
	}
}

func TestDutyHandler_Allocate_UnknownMRN(t *testing.T) {
	h := NewDutyHandler(&dutyServiceStub{
		allocateFn: func(ctx context.Context, mrn string) (*duty.Allocation, error) {
			return nil, domain.ErrDeclarationNotFound
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/traceability/duty-allocation/X", nil), "mrn", "X")
	rec := httptest.NewRecorder()

	h.Allocate(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
