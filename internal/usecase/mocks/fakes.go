package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/usecase"
)

// FakeTransactionManager hands out no-op transactions and counts outcomes.
type FakeTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	Commits   atomic.Int64
	Rollbacks atomic.Int64
}

func NewFakeTransactionManager() *FakeTransactionManager {
	return &FakeTransactionManager{}
}

func (m *FakeTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &fakeTx{mgr: m}, nil
}

type fakeTx struct {
	mgr  *FakeTransactionManager
	done bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.done = true
	t.mgr.Commits.Add(1)
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if !t.done {
		t.done = true
		t.mgr.Rollbacks.Add(1)
	}
	return nil
}

// SequenceIDGenerator returns prefix-1, prefix-2, ...
type SequenceIDGenerator struct {
	Prefix string
	n      atomic.Int64
}

func (g *SequenceIDGenerator) Generate() string {
	prefix := g.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d", prefix, g.n.Add(1))
}

// FakeGuaranteeAccountRepository keeps accounts in memory.
type FakeGuaranteeAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.GuaranteeAccount
}

func NewFakeGuaranteeAccountRepository(accounts ...*domain.GuaranteeAccount) *FakeGuaranteeAccountRepository {
	r := &FakeGuaranteeAccountRepository{accounts: make(map[string]*domain.GuaranteeAccount)}
	for _, a := range accounts {
		r.accounts[a.ID] = a
	}
	return r
}

func (r *FakeGuaranteeAccountRepository) Create(_ context.Context, _ usecase.Transaction, account *domain.GuaranteeAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.ID] = account
	return nil
}

func (r *FakeGuaranteeAccountRepository) GetByID(_ context.Context, id string) (*domain.GuaranteeAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *FakeGuaranteeAccountRepository) GetByIDForUpdate(ctx context.Context, _ usecase.Transaction, id string) (*domain.GuaranteeAccount, error) {
	return r.GetByID(ctx, id)
}

// FakeLedgerEntryRepository keeps ledger entries in insertion order.
type FakeLedgerEntryRepository struct {
	mu      sync.RWMutex
	entries []*domain.LedgerEntry
}

func NewFakeLedgerEntryRepository(entries ...*domain.LedgerEntry) *FakeLedgerEntryRepository {
	return &FakeLedgerEntryRepository{entries: entries}
}

func (r *FakeLedgerEntryRepository) Create(_ context.Context, _ usecase.Transaction, entry *domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *FakeLedgerEntryRepository) GetByID(_ context.Context, id string) (*domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.ID == id && e.DeletedAt == nil {
			cp := *e
			return &cp, nil
		}
	}
	return nil, domain.ErrLedgerEntryNotFound
}

func (r *FakeLedgerEntryRepository) GetByIDForUpdate(ctx context.Context, _ usecase.Transaction, id string) (*domain.LedgerEntry, error) {
	return r.GetByID(ctx, id)
}

func (r *FakeLedgerEntryRepository) MarkReleased(_ context.Context, _ usecase.Transaction, id string, releasedAt time.Time, releasedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.ID == id {
			e.Released = true
			e.ReleasedAt = &releasedAt
			e.ReleasedBy = releasedBy
			return nil
		}
	}
	return domain.ErrLedgerEntryNotFound
}

func (r *FakeLedgerEntryRepository) Balance(_ context.Context, accountID string, visibility domain.Visibility) (decimal.Decimal, error) {
	return domain.ComputeBalance(r.filter(accountID, visibility, nil)), nil
}

func (r *FakeLedgerEntryRepository) BalanceTx(ctx context.Context, _ usecase.Transaction, accountID string, visibility domain.Visibility) (decimal.Decimal, error) {
	return r.Balance(ctx, accountID, visibility)
}

func (r *FakeLedgerEntryRepository) ListOpenDebits(_ context.Context, accountID string, visibility domain.Visibility) ([]*domain.LedgerEntry, error) {
	return r.filter(accountID, visibility, (*domain.LedgerEntry).IsOpenDebit), nil
}

func (r *FakeLedgerEntryRepository) ListByAccount(_ context.Context, accountID string, visibility domain.Visibility, limit, offset int) ([]*domain.LedgerEntry, error) {
	all := r.filter(accountID, visibility, nil)
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return []*domain.LedgerEntry{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// Entries returns a copy of every stored entry, deleted ones included.
func (r *FakeLedgerEntryRepository) Entries() []*domain.LedgerEntry {
	return r.filter("", domain.IncludeInactive, nil)
}

func (r *FakeLedgerEntryRepository) filter(accountID string, visibility domain.Visibility, keep func(*domain.LedgerEntry) bool) []*domain.LedgerEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.LedgerEntry{}
	for _, e := range r.entries {
		if accountID != "" && e.AccountID != accountID {
			continue
		}
		if visibility == domain.ActiveOnly && e.DeletedAt != nil {
			continue
		}
		if keep != nil && !keep(e) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out
}

// FakeMRNRepository keeps MRN registry rows keyed by MRN.
type FakeMRNRepository struct {
	mu   sync.RWMutex
	rows map[string]*domain.MRNRegistry
}

func NewFakeMRNRepository(rows ...*domain.MRNRegistry) *FakeMRNRepository {
	r := &FakeMRNRepository{rows: make(map[string]*domain.MRNRegistry)}
	for _, row := range rows {
		r.rows[row.MRN] = row
	}
	return r
}

func (r *FakeMRNRepository) Create(_ context.Context, _ usecase.Transaction, registry *domain.MRNRegistry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[registry.MRN]; ok {
		return domain.ErrMRNAlreadyExists
	}
	cp := *registry
	r.rows[registry.MRN] = &cp
	return nil
}

func (r *FakeMRNRepository) GetByMRN(_ context.Context, mrn string) (*domain.MRNRegistry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[mrn]
	if !ok {
		return nil, domain.ErrMRNNotFound
	}
	cp := *row
	return &cp, nil
}

func (r *FakeMRNRepository) GetByMRNForUpdate(ctx context.Context, _ usecase.Transaction, mrn string) (*domain.MRNRegistry, error) {
	return r.GetByMRN(ctx, mrn)
}

func (r *FakeMRNRepository) UpdateUsedQuantity(_ context.Context, _ usecase.Transaction, mrn string, used decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[mrn]
	if !ok {
		return domain.ErrMRNNotFound
	}
	row.UsedQuantity = used
	row.UpdatedBy = updatedBy
	row.UpdatedAt = updatedAt
	return nil
}

func (r *FakeMRNRepository) List(_ context.Context, filter domain.MRNFilter) ([]*domain.MRNRegistry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.MRNRegistry{}
	for _, row := range r.rows {
		if filter.MRN != "" && row.MRN != filter.MRN {
			continue
		}
		if filter.IsActive != nil && row.Active != *filter.IsActive {
			continue
		}
		cp := *row
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MRN < out[j].MRN })
	return out, nil
}

// FakeTraceLinkRepository keeps links in insertion order.
type FakeTraceLinkRepository struct {
	mu    sync.RWMutex
	links []domain.TraceLink
}

func NewFakeTraceLinkRepository(links ...domain.TraceLink) *FakeTraceLinkRepository {
	return &FakeTraceLinkRepository{links: links}
}

func (r *FakeTraceLinkRepository) Create(_ context.Context, _ usecase.Transaction, link *domain.TraceLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.links = append(r.links, *link)
	return nil
}

func (r *FakeTraceLinkRepository) ListBySource(_ context.Context, q domain.TraceQuery) ([]domain.TraceLink, error) {
	return r.match(func(l domain.TraceLink) bool {
		return (q.BatchNumber != "" && l.SourceBatch == q.BatchNumber) || (q.MRN != "" && l.SourceMRN == q.MRN)
	}), nil
}

func (r *FakeTraceLinkRepository) ListByTarget(_ context.Context, q domain.TraceQuery) ([]domain.TraceLink, error) {
	return r.match(func(l domain.TraceLink) bool {
		return (q.BatchNumber != "" && l.TargetBatch == q.BatchNumber) || (q.MRN != "" && l.TargetMRN == q.MRN)
	}), nil
}

func (r *FakeTraceLinkRepository) match(keep func(domain.TraceLink) bool) []domain.TraceLink {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.TraceLink{}
	for _, l := range r.links {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

// FakeGenealogyRepository keeps genealogy records keyed by batch.
type FakeGenealogyRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.BatchGenealogy
}

func NewFakeGenealogyRepository() *FakeGenealogyRepository {
	return &FakeGenealogyRepository{records: make(map[string]*domain.BatchGenealogy)}
}

func (r *FakeGenealogyRepository) Get(_ context.Context, batch string) (*domain.BatchGenealogy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.records[batch]
	if !ok {
		return nil, domain.ErrGenealogyNotFound
	}
	return g, nil
}

func (r *FakeGenealogyRepository) Upsert(_ context.Context, g *domain.BatchGenealogy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[g.BatchNumber] = g
	return nil
}

// FakeDeclarationRepository keeps declarations in memory.
type FakeDeclarationRepository struct {
	mu    sync.RWMutex
	decls map[string]*domain.Declaration
}

func NewFakeDeclarationRepository(decls ...*domain.Declaration) *FakeDeclarationRepository {
	r := &FakeDeclarationRepository{decls: make(map[string]*domain.Declaration)}
	for _, d := range decls {
		r.decls[d.ID] = d
	}
	return r
}

func (r *FakeDeclarationRepository) Create(_ context.Context, _ usecase.Transaction, d *domain.Declaration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	r.decls[d.ID] = &cp
	return nil
}

func (r *FakeDeclarationRepository) GetByID(_ context.Context, id string) (*domain.Declaration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.decls[id]
	if !ok {
		return nil, domain.ErrDeclarationNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *FakeDeclarationRepository) GetByIDForUpdate(ctx context.Context, _ usecase.Transaction, id string) (*domain.Declaration, error) {
	return r.GetByID(ctx, id)
}

func (r *FakeDeclarationRepository) GetByMRN(_ context.Context, mrn string) (*domain.Declaration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.decls {
		if d.MRN == mrn {
			cp := *d
			return &cp, nil
		}
	}
	return nil, domain.ErrDeclarationNotFound
}

func (r *FakeDeclarationRepository) MarkCleared(_ context.Context, _ usecase.Transaction, d *domain.Declaration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.decls[d.ID]; !ok {
		return domain.ErrDeclarationNotFound
	}
	cp := *d
	r.decls[d.ID] = &cp
	return nil
}

// FakeOutboxRepository records outbox events.
type FakeOutboxRepository struct {
	mu     sync.Mutex
	events []*domain.OutboxEvent
}

func NewFakeOutboxRepository() *FakeOutboxRepository {
	return &FakeOutboxRepository{}
}

func (r *FakeOutboxRepository) Create(_ context.Context, _ usecase.Transaction, event *domain.OutboxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *FakeOutboxRepository) GetUnpublished(_ context.Context, limit int) ([]*domain.OutboxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.OutboxEvent{}
	for _, e := range r.events {
		if !e.Published && (limit <= 0 || len(out) < limit) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *FakeOutboxRepository) MarkPublished(_ context.Context, id string, publishedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.ID == id {
			e.Published = true
			e.PublishedAt = &publishedAt
		}
	}
	return nil
}

func (r *FakeOutboxRepository) DeletePublished(_ context.Context, before time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.events[:0]
	for _, e := range r.events {
		if e.Published && e.PublishedAt != nil && e.PublishedAt.Before(before) {
			continue
		}
		kept = append(kept, e)
	}
	r.events = kept
	return nil
}

// EventTypes lists the recorded event types in order.
func (r *FakeOutboxRepository) EventTypes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, len(r.events))
	for i, e := range r.events {
		types[i] = e.EventType
	}
	return types
}

// FakeAuditRepository records audit logs.
type FakeAuditRepository struct {
	mu   sync.Mutex
	logs []*domain.AuditLog
}

func NewFakeAuditRepository() *FakeAuditRepository {
	return &FakeAuditRepository{}
}

func (r *FakeAuditRepository) CreateTx(_ context.Context, _ usecase.Transaction, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, log)
	return nil
}

func (r *FakeAuditRepository) List(_ context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.AuditLog{}
	for _, l := range r.logs {
		if filter.Actor != "" && l.Actor != filter.Actor {
			continue
		}
		if filter.Action != "" && l.Action != filter.Action {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}
