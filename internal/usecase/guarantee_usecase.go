package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/infrastructure/metrics"
)

// GuaranteeUseCase maintains the guarantee ledger. Every mutation locks the
// account row so the balance-versus-limit check and the insert are
// serialized per account.
type GuaranteeUseCase struct {
	txManager   TransactionManager
	accountRepo GuaranteeAccountRepository
	entryRepo   LedgerEntryRepository
	outboxRepo  OutboxRepository
	auditRepo   AuditRepository
	idGen       IDGenerator
	retrier     Retrier
	metrics     *metrics.Metrics
}

func NewGuaranteeUseCase(
	txManager TransactionManager,
	accountRepo GuaranteeAccountRepository,
	entryRepo LedgerEntryRepository,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *GuaranteeUseCase {
	return &GuaranteeUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		outboxRepo:  outboxRepo,
		auditRepo:   auditRepo,
		idGen:       idGen,
		retrier:     retrier,
		metrics:     metrics,
	}
}

// CreateAccountInput represents input for opening a guarantee account.
type CreateAccountInput struct {
	AccountNumber string
	Currency      string
	TotalLimit    decimal.Decimal
	Active        bool
}

// DebitInput represents input for securing an amount on an account.
type DebitInput struct {
	AccountID       string
	Amount          decimal.Decimal
	Currency        string
	MRN             string
	Description     string
	ExpectedRelease *time.Time
}

// CreditInput represents input for a standalone credit entry.
type CreditInput struct {
	AccountID   string
	Amount      decimal.Decimal
	Currency    string
	MRN         string
	Description string
}

// AccountSummary is an account with its exposure and latest entries.
type AccountSummary struct {
	Account       *domain.GuaranteeAccount
	Exposure      *domain.Exposure
	RecentEntries []*domain.LedgerEntry
}

func (uc *GuaranteeUseCase) CreateAccount(ctx context.Context, actor string, input CreateAccountInput) (*domain.GuaranteeAccount, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := domain.ValidateAccountNumber(input.AccountNumber); err != nil {
		return nil, err
	}
	if err := domain.ValidateCurrency(input.Currency); err != nil {
		return nil, err
	}
	if input.TotalLimit.IsNegative() {
		return nil, domain.ErrInvalidLimit
	}

	now := time.Now().UTC()
	account := &domain.GuaranteeAccount{
		ID:            uc.idGen.Generate(),
		AccountNumber: strings.TrimSpace(input.AccountNumber),
		Currency:      strings.ToUpper(input.Currency),
		TotalLimit:    input.TotalLimit,
		Active:        input.Active,
		CreatedBy:     actor,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := inTx(ctx, uc.txManager, func(ctx context.Context, tx Transaction) error {
		if err := uc.accountRepo.Create(ctx, tx, account); err != nil {
			return err
		}
		return uc.audit(ctx, tx, actor, domain.AuditActionAccountCreate, "guarantee_account", account.ID, account, now)
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// Debit secures amount on an account. It fails with ErrInsufficientCapacity,
// posting nothing, when balance + amount would exceed the total limit.
func (uc *GuaranteeUseCase) Debit(ctx context.Context, actor string, input DebitInput) (*domain.LedgerEntry, error) {
	start := time.Now()
	defer observeDuration(uc.metrics, "debit", start)

	var entry *domain.LedgerEntry
	err := retry(ctx, uc.retrier, func() error {
		return inTx(ctx, uc.txManager, func(ctx context.Context, tx Transaction) error {
			e, err := uc.DebitTx(ctx, tx, actor, input)
			entry = e
			return err
		})
	})
	if err != nil {
		uc.reject(err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.GuaranteeDebits.Inc()
		uc.metrics.GuaranteeAmount.Observe(entry.Amount.InexactFloat64())
	}

	return entry, nil
}

// DebitTx posts a debit inside the caller's transaction. The account row is
// locked before the balance is summed, so a concurrent debit re-checks the
// balance only after this transaction commits.
func (uc *GuaranteeUseCase) DebitTx(ctx context.Context, tx Transaction, actor string, input DebitInput) (*domain.LedgerEntry, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}
	if input.Currency != "" && !strings.EqualFold(input.Currency, account.Currency) {
		return nil, domain.ErrCurrencyMismatch
	}

	balance, err := uc.entryRepo.BalanceTx(ctx, tx, account.ID, domain.ActiveOnly)
	if err != nil {
		return nil, err
	}
	if err := account.ValidateDebit(balance, input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.LedgerEntry{
		ID:              uc.idGen.Generate(),
		AccountID:       account.ID,
		Type:            domain.EntryTypeDebit,
		Amount:          input.Amount,
		Currency:        account.Currency,
		MRN:             input.MRN,
		Description:     input.Description,
		ExpectedRelease: input.ExpectedRelease,
		CreatedBy:       actor,
		CreatedAt:       now,
	}
	if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	event := domain.NewOutboxEvent(uc.idGen.Generate(), domain.AggregateTypeGuarantee, account.ID, domain.EventTypeGuaranteeDebited, map[string]any{
		"entry_id":   entry.ID,
		"account_id": account.ID,
		"amount":     entry.Amount.String(),
		"currency":   account.Currency,
		"mrn":        entry.MRN,
		"balance":    balance.Add(entry.Amount).String(),
	}, now)
	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	if err := uc.audit(ctx, tx, actor, domain.AuditActionGuaranteeDebit, "ledger_entry", entry.ID, entry, now); err != nil {
		return nil, err
	}

	return entry, nil
}

// Release marks an open debit released and appends the offsetting credit.
func (uc *GuaranteeUseCase) Release(ctx context.Context, actor, entryID string) (*domain.LedgerEntry, error) {
	start := time.Now()
	defer observeDuration(uc.metrics, "release", start)

	if err := requireActor(actor); err != nil {
		return nil, err
	}

	// Learn the account first so the lock order matches Debit: account, then entry.
	probe, err := uc.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	var credit *domain.LedgerEntry
	err = retry(ctx, uc.retrier, func() error {
		return inTx(ctx, uc.txManager, func(ctx context.Context, tx Transaction) error {
			account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, probe.AccountID)
			if err != nil {
				return err
			}

			debit, err := uc.entryRepo.GetByIDForUpdate(ctx, tx, entryID)
			if err != nil {
				return err
			}
			if debit.Type != domain.EntryTypeDebit {
				return domain.ErrNotADebit
			}
			if debit.Released {
				return domain.ErrAlreadyReleased
			}

			now := time.Now().UTC()
			if err := uc.entryRepo.MarkReleased(ctx, tx, debit.ID, now, actor); err != nil {
				return err
			}

			credit = &domain.LedgerEntry{
				ID:              uc.idGen.Generate(),
				AccountID:       account.ID,
				Type:            domain.EntryTypeCredit,
				Amount:          debit.Amount,
				Currency:        debit.Currency,
				MRN:             debit.MRN,
				Description:     "release of " + debit.ID,
				ReleasesEntryID: debit.ID,
				CreatedBy:       actor,
				CreatedAt:       now,
			}
			if err := uc.entryRepo.Create(ctx, tx, credit); err != nil {
				return err
			}

			event := domain.NewOutboxEvent(uc.idGen.Generate(), domain.AggregateTypeGuarantee, account.ID, domain.EventTypeGuaranteeReleased, map[string]any{
				"entry_id":        debit.ID,
				"credit_entry_id": credit.ID,
				"account_id":      account.ID,
				"amount":          debit.Amount.String(),
				"mrn":             debit.MRN,
			}, now)
			if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
				return err
			}

			return uc.audit(ctx, tx, actor, domain.AuditActionGuaranteeRelease, "ledger_entry", debit.ID, credit, now)
		})
	})
	if err != nil {
		uc.reject(err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.GuaranteeReleases.Inc()
	}

	return credit, nil
}

// CreditNew appends a fresh credit entry. Credits only lower the balance and
// are never capacity-checked.
func (uc *GuaranteeUseCase) CreditNew(ctx context.Context, actor string, input CreditInput) (*domain.LedgerEntry, error) {
	start := time.Now()
	defer observeDuration(uc.metrics, "credit", start)

	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	var entry *domain.LedgerEntry
	err := retry(ctx, uc.retrier, func() error {
		return inTx(ctx, uc.txManager, func(ctx context.Context, tx Transaction) error {
			account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
			if err != nil {
				return err
			}
			if input.Currency != "" && !strings.EqualFold(input.Currency, account.Currency) {
				return domain.ErrCurrencyMismatch
			}

			now := time.Now().UTC()
			entry = &domain.LedgerEntry{
				ID:          uc.idGen.Generate(),
				AccountID:   account.ID,
				Type:        domain.EntryTypeCredit,
				Amount:      input.Amount,
				Currency:    account.Currency,
				MRN:         input.MRN,
				Description: input.Description,
				CreatedBy:   actor,
				CreatedAt:   now,
			}
			if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
				return err
			}

			event := domain.NewOutboxEvent(uc.idGen.Generate(), domain.AggregateTypeGuarantee, account.ID, domain.EventTypeGuaranteeCredited, map[string]any{
				"entry_id":   entry.ID,
				"account_id": account.ID,
				"amount":     entry.Amount.String(),
				"mrn":        entry.MRN,
			}, now)
			if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
				return err
			}

			return uc.audit(ctx, tx, actor, domain.AuditActionGuaranteeCredit, "ledger_entry", entry.ID, entry, now)
		})
	})
	if err != nil {
		uc.reject(err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.GuaranteeCredits.Inc()
	}

	return entry, nil
}

// Balance returns Σdebits − Σcredits over non-deleted entries.
func (uc *GuaranteeUseCase) Balance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	if _, err := uc.accountRepo.GetByID(ctx, accountID); err != nil {
		return decimal.Zero, err
	}
	return uc.entryRepo.Balance(ctx, accountID, domain.ActiveOnly)
}

// ActiveDebits lists open debits, earliest expected release first. An empty
// accountID lists open debits of every account.
func (uc *GuaranteeUseCase) ActiveDebits(ctx context.Context, accountID string) ([]*domain.LedgerEntry, error) {
	if accountID != "" {
		if _, err := uc.accountRepo.GetByID(ctx, accountID); err != nil {
			return nil, err
		}
	}

	entries, err := uc.entryRepo.ListOpenDebits(ctx, accountID, domain.ActiveOnly)
	if err != nil {
		return nil, err
	}
	domain.SortByExpectedRelease(entries)
	return entries, nil
}

// Exposure reports balance, available limit and open debit totals.
func (uc *GuaranteeUseCase) Exposure(ctx context.Context, accountID string) (*domain.Exposure, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return uc.exposure(ctx, account)
}

// GetAccount returns the account with its exposure and most recent entries.
func (uc *GuaranteeUseCase) GetAccount(ctx context.Context, accountID string, recent int) (*AccountSummary, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	exposure, err := uc.exposure(ctx, account)
	if err != nil {
		return nil, err
	}

	if recent <= 0 {
		recent = DefaultRecentEntries
	}
	entries, err := uc.entryRepo.ListByAccount(ctx, accountID, domain.ActiveOnly, recent, 0)
	if err != nil {
		return nil, err
	}

	return &AccountSummary{Account: account, Exposure: exposure, RecentEntries: entries}, nil
}

func (uc *GuaranteeUseCase) exposure(ctx context.Context, account *domain.GuaranteeAccount) (*domain.Exposure, error) {
	balance, err := uc.entryRepo.Balance(ctx, account.ID, domain.ActiveOnly)
	if err != nil {
		return nil, err
	}
	open, err := uc.entryRepo.ListOpenDebits(ctx, account.ID, domain.ActiveOnly)
	if err != nil {
		return nil, err
	}
	return domain.NewExposure(account, balance, open), nil
}

func (uc *GuaranteeUseCase) audit(ctx context.Context, tx Transaction, actor string, action domain.AuditAction, resourceType, resourceID string, after any, at time.Time) error {
	if uc.auditRepo == nil {
		return nil
	}
	log := domain.NewAuditLog(uc.idGen.Generate(), actor, action, resourceType, resourceID, after, at)
	if err := uc.auditRepo.CreateTx(ctx, tx, log); err != nil {
		return err
	}
	recordAudit(uc.metrics, log)
	return nil
}

func (uc *GuaranteeUseCase) reject(err error) {
	if uc.metrics == nil {
		return
	}
	reason := "error"
	switch {
	case errors.Is(err, domain.ErrInsufficientCapacity):
		reason = "insufficient_capacity"
	case errors.Is(err, domain.ErrAlreadyReleased):
		reason = "already_released"
	case errors.Is(err, domain.ErrAccountInactive):
		reason = "account_inactive"
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrLedgerEntryNotFound):
		reason = "not_found"
	}
	uc.metrics.GuaranteeRejections.WithLabelValues(reason).Inc()
}
