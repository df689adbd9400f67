package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	"github.com/iho/customscore/internal/domain"
)

func TestLedgerEntryRepositoryGetByIDNotFound(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery("FROM guarantee_ledger_entries").WithArgs(anyArgs(1)...).WillReturnError(pgx.ErrNoRows)

	repo := NewLedgerEntryRepository(pool)
	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrLedgerEntryNotFound) {
		t.Fatalf("expected ErrLedgerEntryNotFound, got %v", err)
	}

	assertExpectations(t, pool)
}

func TestLedgerEntryRepositoryMarkReleasedTwice(t *testing.T) {
	pool := newMockPool(t)
	tx := beginMockTx(t, pool)
	pool.ExpectExec("UPDATE guarantee_ledger_entries").
		WithArgs(anyArgs(3)...).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewLedgerEntryRepository(pool)
	err := repo.MarkReleased(context.Background(), tx, "entry-1", time.Now(), "alice")
	if !errors.Is(err, domain.ErrAlreadyReleased) {
		t.Fatalf("expected ErrAlreadyReleased, got %v", err)
	}

	assertExpectations(t, pool)
}

func TestMRNRepositoryCreateDuplicate(t *testing.T) {
	pool := newMockPool(t)
	tx := beginMockTx(t, pool)
	pool.ExpectExec("INSERT INTO mrn_registry").
		WithArgs(anyArgs(11)...).
		WillReturnError(&pgconn.PgError{Code: pgErrUniqueViolation})

	repo := NewMRNRepository(pool)
	err := repo.Create(context.Background(), tx, &domain.MRNRegistry{
		ID:            "reg-1",
		MRN:           "24DE000000000001",
		TotalQuantity: decimal.NewFromInt(1000),
		Active:        true,
	})
	if !errors.Is(err, domain.ErrMRNAlreadyExists) {
		t.Fatalf("expected ErrMRNAlreadyExists, got %v", err)
	}

	assertExpectations(t, pool)
}

func TestMRNRepositoryUpdateUnknown(t *testing.T) {
	pool := newMockPool(t)
	tx := beginMockTx(t, pool)
	pool.ExpectExec("UPDATE mrn_registry").
		WithArgs(anyArgs(4)...).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewMRNRepository(pool)
	err := repo.UpdateUsedQuantity(context.Background(), tx, "unknown", decimal.NewFromInt(5), "alice", time.Now())
	if !errors.Is(err, domain.ErrMRNNotFound) {
		t.Fatalf("expected ErrMRNNotFound, got %v", err)
	}

	assertExpectations(t, pool)
}

func TestDeclarationRepositoryMarkClearedAlreadyCleared(t *testing.T) {
	pool := newMockPool(t)
	tx := beginMockTx(t, pool)
	pool.ExpectExec("UPDATE declarations").
		WithArgs(anyArgs(6)...).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	now := time.Now()
	repo := NewDeclarationRepository(pool)
	err := repo.MarkCleared(context.Background(), tx, &domain.Declaration{
		ID:        "decl-1",
		MRN:       "24DE000000000001",
		Cleared:   true,
		ClearedAt: &now,
		UpdatedAt: now,
	})
	if !errors.Is(err, domain.ErrDeclarationCleared) {
		t.Fatalf("expected ErrDeclarationCleared, got %v", err)
	}

	assertExpectations(t, pool)
}

func TestDeclarationRepositoryGetByMRNNotFound(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery("FROM declarations").WithArgs(anyArgs(1)...).WillReturnError(pgx.ErrNoRows)

	repo := NewDeclarationRepository(pool)
	_, err := repo.GetByMRN(context.Background(), "unknown")
	if !errors.Is(err, domain.ErrDeclarationNotFound) {
		t.Fatalf("expected ErrDeclarationNotFound, got %v", err)
	}

	assertExpectations(t, pool)
}

func TestReferenceRepositoryUnknownTariff(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery("FROM tariff_codes").WithArgs(anyArgs(1)...).WillReturnError(pgx.ErrNoRows)

	repo := NewReferenceRepository(pool)
	_, err := repo.GetTariffCode(context.Background(), "9999999999")
	if !errors.Is(err, domain.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}

	assertExpectations(t, pool)
}

func TestGenealogyRepositoryNotFound(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery("FROM batch_genealogy").WithArgs(anyArgs(1)...).WillReturnError(pgx.ErrNoRows)

	repo := NewGenealogyRepository(pool)
	_, err := repo.Get(context.Background(), "B-404")
	if !errors.Is(err, domain.ErrGenealogyNotFound) {
		t.Fatalf("expected ErrGenealogyNotFound, got %v", err)
	}

	assertExpectations(t, pool)
}

func TestAuditRepositoryListFilters(t *testing.T) {
	pool := newMockPool(t)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{
		"id", "actor", "action", "resource_type", "resource_id", "request_id",
		"before_state", "after_state", "status", "error_message", "created_at",
	}).AddRow(
		"audit-1", "alice", "guarantee.debit", "ledger_entry", "entry-1", "",
		[]byte(nil), []byte(`{"amount":"200"}`), "success", "", created,
	)

	pool.ExpectQuery(`FROM audit_logs WHERE actor = \$1 AND action = \$2 ORDER BY created_at DESC, id LIMIT \$3`).
		WithArgs("alice", "guarantee.debit", 10).
		WillReturnRows(rows)

	repo := NewAuditRepository(pool)
	logs, err := repo.List(context.Background(), domain.AuditFilter{
		Actor:  "alice",
		Action: "guarantee.debit",
		Limit:  10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	if logs[0].AfterState["amount"] != "200" {
		t.Errorf("unexpected after state: %v", logs[0].AfterState)
	}
	if logs[0].BeforeState != nil {
		t.Errorf("expected empty before state, got %v", logs[0].BeforeState)
	}
	if !logs[0].CreatedAt.Equal(created) {
		t.Errorf("created_at = %v, want %v", logs[0].CreatedAt, created)
	}

	assertExpectations(t, pool)
}

func TestNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1650.00", "-300.5", "123456789.123456"} {
		d := decimal.RequireFromString(s)
		got := numericToDecimal(decimalToNumeric(d))
		if !got.Equal(d) {
			t.Errorf("round trip %s = %s", s, got)
		}
	}
}

func TestULIDGeneratorMonotonic(t *testing.T) {
	g := NewULIDGenerator()
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	prev := g.Generate()
	for i := 0; i < 100; i++ {
		next := g.Generate()
		if next <= prev {
			t.Fatalf("id %s not greater than %s", next, prev)
		}
		prev = next
	}
}

// anyArgs matches n bound query arguments of any value.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}
