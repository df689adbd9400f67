package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/tracegraph"
	"github.com/iho/customscore/internal/usecase"
	"github.com/iho/customscore/internal/usecase/mocks"
)

type traceFixture struct {
	uc        *usecase.TraceUseCase
	links     *mocks.FakeTraceLinkRepository
	genealogy *mocks.FakeGenealogyRepository
	mrns      *mocks.FakeMRNRepository
	outbox    *mocks.FakeOutboxRepository
}

func newTraceFixture(maxExpansions int, links ...domain.TraceLink) *traceFixture {
	txMgr := mocks.NewFakeTransactionManager()
	idGen := &mocks.SequenceIDGenerator{Prefix: "tl"}
	f := &traceFixture{
		links:     mocks.NewFakeTraceLinkRepository(links...),
		genealogy: mocks.NewFakeGenealogyRepository(),
		mrns:      mocks.NewFakeMRNRepository(registryRow("MRN-IMP", "1000", "0", true)),
		outbox:    mocks.NewFakeOutboxRepository(),
	}
	usage := usecase.NewMRNUseCase(txMgr, f.mrns, f.outbox, nil, idGen, nil, nil)
	f.uc = usecase.NewTraceUseCase(txMgr, f.links, f.genealogy, f.outbox, nil, usage, idGen, nil, maxExpansions)
	return f
}

func edge(id, from, to string) domain.TraceLink {
	return domain.TraceLink{ID: id, SourceBatch: from, TargetBatch: to}
}

func TestTraceUseCase_FullPathCycle(t *testing.T) {
	f := newTraceFixture(0, edge("ab", "A", "B"), edge("bc", "B", "C"), edge("ca", "C", "A"))

	path, err := f.uc.TraceFullPath(context.Background(), "A", tracegraph.Forward)
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if len(path.Links) != 3 {
		t.Fatalf("expected 3 links, got %d", len(path.Links))
	}
	if len(path.Visited) != 3 {
		t.Errorf("expected each batch visited once, got %v", path.Visited)
	}
	if path.Truncated {
		t.Error("path should not be truncated")
	}
}

func TestTraceUseCase_FullPathTruncates(t *testing.T) {
	f := newTraceFixture(2, edge("ab", "A", "B"), edge("bc", "B", "C"), edge("cd", "C", "D"))

	path, err := f.uc.TraceFullPath(context.Background(), "A", tracegraph.Forward)
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if !path.Truncated {
		t.Error("expected truncated path")
	}
	if len(path.Links) != 2 {
		t.Errorf("expected 2 links before the bound, got %d", len(path.Links))
	}
}

func TestTraceUseCase_DirectQueries(t *testing.T) {
	f := newTraceFixture(0,
		domain.TraceLink{ID: "l1", SourceMRN: "MRN-IMP", TargetBatch: "B1"},
		domain.TraceLink{ID: "l2", SourceBatch: "B1", TargetBatch: "B2"},
	)
	ctx := context.Background()

	fwd, err := f.uc.TraceForward(ctx, domain.TraceQuery{MRN: "MRN-IMP"})
	if err != nil || len(fwd) != 1 || fwd[0].ID != "l1" {
		t.Errorf("forward by MRN: %v %+v", err, fwd)
	}

	back, err := f.uc.TraceBackward(ctx, domain.TraceQuery{BatchNumber: "B2"})
	if err != nil || len(back) != 1 || back[0].ID != "l2" {
		t.Errorf("backward by batch: %v %+v", err, back)
	}

	if _, err := f.uc.TraceForward(ctx, domain.TraceQuery{}); !errors.Is(err, domain.ErrTraceKeyRequired) {
		t.Errorf("expected ErrTraceKeyRequired, got %v", err)
	}
}

func TestTraceUseCase_GenealogyHasNoLiveFallback(t *testing.T) {
	f := newTraceFixture(0,
		domain.TraceLink{ID: "l1", SourceBatch: "RAW", SourceMRN: "MRN-IMP", TargetBatch: "MID"},
		domain.TraceLink{ID: "l2", SourceBatch: "MID", TargetBatch: "FG"},
	)
	ctx := context.Background()

	if _, err := f.uc.GetGenealogy(ctx, "FG"); !errors.Is(err, domain.ErrGenealogyNotFound) {
		t.Fatalf("expected ErrGenealogyNotFound before rebuild, got %v", err)
	}

	g, err := f.uc.RebuildGenealogy(ctx, "FG")
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if g.Depth != 2 || len(g.ParentBatches) != 2 || len(g.ParentMRNs) != 1 {
		t.Errorf("unexpected genealogy: %+v", g)
	}

	stored, err := f.uc.GetGenealogy(ctx, "FG")
	if err != nil || stored.BatchNumber != "FG" {
		t.Errorf("expected stored genealogy, got %v %+v", err, stored)
	}
}

func TestTraceUseCase_RecordLinkConsumesMRN(t *testing.T) {
	f := newTraceFixture(0)
	ctx := context.Background()

	link, err := f.uc.RecordLink(ctx, testActor, domain.TraceLink{
		SourceMRN:   "MRN-IMP",
		TargetBatch: "FG-1",
		Quantity:    dec("250"),
	})
	if err != nil {
		t.Fatalf("record link: %v", err)
	}
	if link.ID == "" || link.CreatedBy != testActor {
		t.Errorf("link not stamped: %+v", link)
	}

	row, _ := f.mrns.GetByMRN(ctx, "MRN-IMP")
	if !row.UsedQuantity.Equal(dec("250")) {
		t.Errorf("expected used quantity 250, got %s", row.UsedQuantity)
	}

	types := f.outbox.EventTypes()
	if len(types) != 2 || types[0] != domain.EventTypeMRNUsageRecorded || types[1] != domain.EventTypeTraceLinkRecorded {
		t.Errorf("unexpected events: %v", types)
	}
}

func TestTraceUseCase_RecordLinkValidation(t *testing.T) {
	f := newTraceFixture(0)

	if _, err := f.uc.RecordLink(context.Background(), testActor, domain.TraceLink{TargetBatch: "B"}); !errors.Is(err, domain.ErrInvalidTraceLink) {
		t.Errorf("expected ErrInvalidTraceLink, got %v", err)
	}
	_, err := f.uc.RecordLink(context.Background(), testActor, domain.TraceLink{SourceMRN: "UNKNOWN", TargetBatch: "B", Quantity: dec("1")})
	if !errors.Is(err, domain.ErrMRNNotFound) {
		t.Errorf("expected ErrMRNNotFound, got %v", err)
	}
}
