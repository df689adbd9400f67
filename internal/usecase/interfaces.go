package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/customscore/internal/domain"
)

// DeclarationRepository defines data access for declarations and their lines.
type DeclarationRepository interface {
	Create(ctx context.Context, tx Transaction, declaration *domain.Declaration) error
	GetByID(ctx context.Context, id string) (*domain.Declaration, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Declaration, error)
	GetByMRN(ctx context.Context, mrn string) (*domain.Declaration, error)
	MarkCleared(ctx context.Context, tx Transaction, declaration *domain.Declaration) error
}

// GuaranteeAccountRepository defines data access for guarantee accounts.
type GuaranteeAccountRepository interface {
	Create(ctx context.Context, tx Transaction, account *domain.GuaranteeAccount) error
	GetByID(ctx context.Context, id string) (*domain.GuaranteeAccount, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.GuaranteeAccount, error)
}

// LedgerEntryRepository defines data access for guarantee ledger entries.
type LedgerEntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.LedgerEntry) error
	GetByID(ctx context.Context, id string) (*domain.LedgerEntry, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.LedgerEntry, error)
	MarkReleased(ctx context.Context, tx Transaction, id string, releasedAt time.Time, releasedBy string) error
	// Balance sums debits minus credits of an account.
	Balance(ctx context.Context, accountID string, visibility domain.Visibility) (decimal.Decimal, error)
	BalanceTx(ctx context.Context, tx Transaction, accountID string, visibility domain.Visibility) (decimal.Decimal, error)
	// ListOpenDebits returns unreleased debits; an empty accountID means all accounts.
	ListOpenDebits(ctx context.Context, accountID string, visibility domain.Visibility) ([]*domain.LedgerEntry, error)
	ListByAccount(ctx context.Context, accountID string, visibility domain.Visibility, limit, offset int) ([]*domain.LedgerEntry, error)
}

// MRNRepository defines data access for the MRN usage registry.
type MRNRepository interface {
	Create(ctx context.Context, tx Transaction, registry *domain.MRNRegistry) error
	GetByMRN(ctx context.Context, mrn string) (*domain.MRNRegistry, error)
	GetByMRNForUpdate(ctx context.Context, tx Transaction, mrn string) (*domain.MRNRegistry, error)
	UpdateUsedQuantity(ctx context.Context, tx Transaction, mrn string, used decimal.Decimal, updatedBy string, updatedAt time.Time) error
	List(ctx context.Context, filter domain.MRNFilter) ([]*domain.MRNRegistry, error)
}

// TraceLinkRepository defines data access for trace links.
type TraceLinkRepository interface {
	Create(ctx context.Context, tx Transaction, link *domain.TraceLink) error
	// ListBySource returns links whose source batch or source MRN matches, in insertion order.
	ListBySource(ctx context.Context, query domain.TraceQuery) ([]domain.TraceLink, error)
	// ListByTarget returns links whose target batch or target MRN matches, in insertion order.
	ListByTarget(ctx context.Context, query domain.TraceQuery) ([]domain.TraceLink, error)
}

// GenealogyRepository defines data access for precomputed batch genealogy.
type GenealogyRepository interface {
	Get(ctx context.Context, batchNumber string) (*domain.BatchGenealogy, error)
	Upsert(ctx context.Context, genealogy *domain.BatchGenealogy) error
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	CreateTx(ctx context.Context, tx Transaction, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

// DeclarationValidator runs the declaration validation pipeline.
type DeclarationValidator interface {
	Validate(ctx context.Context, declaration *domain.Declaration) (*domain.ValidationResult, error)
}

// ProcedureLookup resolves the customs procedure reference list.
type ProcedureLookup interface {
	ListProcedureCodes(ctx context.Context, visibility domain.Visibility) ([]domain.ProcedureCode, error)
}

// GuaranteeDebitor posts a guarantee debit inside an open transaction.
type GuaranteeDebitor interface {
	DebitTx(ctx context.Context, tx Transaction, actor string, input DebitInput) (*domain.LedgerEntry, error)
}

// UsageRecorder applies an MRN usage increment inside an open transaction.
type UsageRecorder interface {
	RecordUsageTx(ctx context.Context, tx Transaction, actor, mrn string, quantity decimal.Decimal) (*domain.MRNRegistry, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient storage conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a claimed key so the request can be retried.
	Release(ctx context.Context, key string) error
}
