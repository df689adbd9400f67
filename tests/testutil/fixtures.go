package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	postgresRepo "github.com/iho/customscore/internal/adapter/repository/postgres"
	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/infrastructure/metrics"
	"github.com/iho/customscore/internal/infrastructure/postgres"
	"github.com/iho/customscore/internal/infrastructure/postgres/generated"
	"github.com/iho/customscore/internal/usecase"
	"github.com/iho/customscore/internal/validation"
)

// TestDB provides isolated test database connections.
type TestDB struct {
	Pool    *pgxpool.Pool
	Queries *generated.Queries
	t       *testing.T
}

// NewTestDB connects to DATABASE_URL and migrates it. The test is skipped
// when no database is configured.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	migrationsPath := "../../migrations"
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		migrationsPath = "migrations"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(ctx, dbURL, migrationsPath); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	db := &TestDB{Pool: pool, Queries: generated.New(pool), t: t}
	t.Cleanup(db.Cleanup)
	return db
}

// Cleanup closes the database connection.
func (db *TestDB) Cleanup() {
	db.Pool.Close()
}

// TruncateAll removes all transactional data. Seeded procedure codes stay.
func (db *TestDB) TruncateAll(ctx context.Context) {
	db.t.Helper()

	_, err := db.Pool.Exec(ctx, `
		TRUNCATE TABLE
			guarantee_ledger_entries,
			guarantee_accounts,
			declaration_lines,
			declarations,
			mrn_registry,
			trace_links,
			batch_genealogy,
			outbox_events,
			audit_logs,
			tariff_codes
		CASCADE
	`)
	if err != nil {
		db.t.Fatalf("failed to truncate tables: %v", err)
	}
}

// SeedTariffs inserts active tariff codes.
func (db *TestDB) SeedTariffs(ctx context.Context, codes ...string) {
	db.t.Helper()

	for _, code := range codes {
		_, err := db.Pool.Exec(ctx,
			`INSERT INTO tariff_codes (code, description, duty_rate, active) VALUES ($1, $2, $3, TRUE)
			 ON CONFLICT (code) DO UPDATE SET active = TRUE`,
			code, "test tariff "+code, "0.05")
		if err != nil {
			db.t.Fatalf("failed to seed tariff %s: %v", code, err)
		}
	}
}

// App bundles the use cases over a real database.
type App struct {
	Outbox       usecase.OutboxRepository
	Guarantees   *usecase.GuaranteeUseCase
	MRNs         *usecase.MRNUseCase
	Declarations *usecase.DeclarationUseCase
	Traces       *usecase.TraceUseCase
	Duty         *usecase.DutyUseCase
	Metrics      *metrics.Metrics
}

// NewApp wires the use cases the way cmd/server does, minus Redis.
func (db *TestDB) NewApp() *App {
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	txManager := postgresRepo.NewTxManager(db.Pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	accountRepo := postgresRepo.NewGuaranteeAccountRepository(db.Pool)
	entryRepo := postgresRepo.NewLedgerEntryRepository(db.Pool)
	declRepo := postgresRepo.NewDeclarationRepository(db.Pool)
	mrnRepo := postgresRepo.NewMRNRepository(db.Pool)
	linkRepo := postgresRepo.NewTraceLinkRepository(db.Pool)
	genealogyRepo := postgresRepo.NewGenealogyRepository(db.Pool)
	outboxRepo := postgresRepo.NewOutboxRepository(db.Pool)
	auditRepo := postgresRepo.NewAuditRepository(db.Pool)
	references := postgresRepo.NewReferenceRepository(db.Pool)

	pipeline := validation.NewPipeline(validation.DefaultRegistry(), references, m)
	guarantees := usecase.NewGuaranteeUseCase(txManager, accountRepo, entryRepo, outboxRepo, auditRepo, idGen, retrier, m)
	mrns := usecase.NewMRNUseCase(txManager, mrnRepo, outboxRepo, auditRepo, idGen, retrier, m)

	return &App{
		Outbox:     outboxRepo,
		Guarantees: guarantees,
		MRNs:       mrns,
		Declarations: usecase.NewDeclarationUseCase(
			txManager, declRepo, mrnRepo, outboxRepo, auditRepo,
			pipeline, references, guarantees, idGen, retrier, m, 90*24*time.Hour,
		),
		Traces: usecase.NewTraceUseCase(
			txManager, linkRepo, genealogyRepo, outboxRepo, auditRepo,
			mrns, idGen, m, 1000,
		),
		Duty:    usecase.NewDutyUseCase(declRepo, mrnRepo, linkRepo, m),
		Metrics: m,
	}
}

// CreateGuaranteeAccount opens an active account with the given limit.
func (a *App) CreateGuaranteeAccount(t *testing.T, ctx context.Context, limit string) *domain.GuaranteeAccount {
	t.Helper()

	account, err := a.Guarantees.CreateAccount(ctx, "tester", usecase.CreateAccountInput{
		AccountNumber: "GA-" + GenerateID(),
		Currency:      "EUR",
		TotalLimit:    decimal.RequireFromString(limit),
		Active:        true,
	})
	if err != nil {
		t.Fatalf("failed to create guarantee account: %v", err)
	}
	return account
}

// NewDeclaration builds a valid import draft with one line per quantity.
func NewDeclaration(procedure, tariff string, quantities ...string) *domain.Declaration {
	d := &domain.Declaration{
		Number:        "DECL-" + GenerateID(),
		Type:          domain.DeclarationTypeImport,
		ProcedureCode: procedure,
		ExporterID:    "EXP-1",
		ImporterID:    "IMP-1",
		Currency:      "EUR",
	}
	for i, q := range quantities {
		d.Lines = append(d.Lines, domain.DeclarationLine{
			LineNumber:      i + 1,
			ItemID:          "ITEM-1",
			TariffCode:      tariff,
			Quantity:        decimal.RequireFromString(q),
			UnitOfMeasure:   "KG",
			CountryOfOrigin: "CN",
			CustomsValue:    decimal.NewFromInt(1000),
			DutyAmount:      decimal.NewFromInt(50),
			VATAmount:       decimal.NewFromInt(200),
		})
	}
	return d
}

// GenerateID generates a new ULID.
func GenerateID() string {
	return ulid.Make().String()
}
