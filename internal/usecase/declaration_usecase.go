package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/infrastructure/metrics"
)

// DeclarationUseCase drives a declaration from draft to cleared.
type DeclarationUseCase struct {
	txManager   TransactionManager
	declRepo    DeclarationRepository
	mrnRepo     MRNRepository
	outboxRepo  OutboxRepository
	auditRepo   AuditRepository
	validator   DeclarationValidator
	procedures  ProcedureLookup
	guarantee   GuaranteeDebitor
	idGen       IDGenerator
	retrier     Retrier
	metrics     *metrics.Metrics
	mrnValidity time.Duration
}

func NewDeclarationUseCase(
	txManager TransactionManager,
	declRepo DeclarationRepository,
	mrnRepo MRNRepository,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	validator DeclarationValidator,
	procedures ProcedureLookup,
	guarantee GuaranteeDebitor,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
	mrnValidity time.Duration,
) *DeclarationUseCase {
	if mrnValidity <= 0 {
		mrnValidity = DefaultMRNValidity
	}
	return &DeclarationUseCase{
		txManager:   txManager,
		declRepo:    declRepo,
		mrnRepo:     mrnRepo,
		outboxRepo:  outboxRepo,
		auditRepo:   auditRepo,
		validator:   validator,
		procedures:  procedures,
		guarantee:   guarantee,
		idGen:       idGen,
		retrier:     retrier,
		metrics:     metrics,
		mrnValidity: mrnValidity,
	}
}

// AcceptInput carries the clearance data issued by customs.
type AcceptInput struct {
	MRN                string
	GuaranteeAccountID string
}

// AcceptResult is everything Accept changed.
type AcceptResult struct {
	Declaration    *domain.Declaration
	Validation     *domain.ValidationResult
	Registry       *domain.MRNRegistry
	GuaranteeEntry *domain.LedgerEntry
}

// Validate runs the pipeline without persisting anything.
func (uc *DeclarationUseCase) Validate(ctx context.Context, d *domain.Declaration) (*domain.ValidationResult, error) {
	return uc.validator.Validate(ctx, d)
}

// Submit validates a draft and persists it when valid. An invalid draft is
// not stored; the returned result explains why.
func (uc *DeclarationUseCase) Submit(ctx context.Context, actor string, d *domain.Declaration) (*domain.Declaration, *domain.ValidationResult, error) {
	if err := requireActor(actor); err != nil {
		return nil, nil, err
	}

	result, err := uc.validator.Validate(ctx, d)
	if err != nil {
		return nil, nil, err
	}
	if !result.Valid {
		uc.countSubmit("invalid")
		return nil, result, nil
	}

	now := time.Now().UTC()
	draft := *d
	draft.ID = uc.idGen.Generate()
	draft.Currency = strings.ToUpper(draft.Currency)
	draft.Cleared = false
	draft.ClearedAt = nil
	draft.MRN = ""
	draft.CreatedBy = actor
	draft.UpdatedBy = actor
	draft.CreatedAt = now
	draft.UpdatedAt = now
	draft.Lines = make([]domain.DeclarationLine, len(d.Lines))
	for i, l := range d.Lines {
		l.ID = uc.idGen.Generate()
		l.DeclarationID = draft.ID
		if l.LineNumber == 0 {
			l.LineNumber = i + 1
		}
		draft.Lines[i] = l
	}
	fillTotals(&draft)

	err = inTx(ctx, uc.txManager, func(ctx context.Context, tx Transaction) error {
		if err := uc.declRepo.Create(ctx, tx, &draft); err != nil {
			return err
		}
		return uc.audit(ctx, tx, actor, domain.AuditActionDeclarationSubmit, draft.ID, &draft, now)
	})
	if err != nil {
		uc.countSubmit("error")
		return nil, nil, err
	}

	uc.countSubmit("accepted")
	return &draft, result, nil
}

// Accept clears a declaration under mrn. The declaration is re-validated
// first; in one transaction it is then marked cleared, its MRN registry row
// is opened and, when the procedure requires it, duty plus VAT is debited
// from the guarantee account.
func (uc *DeclarationUseCase) Accept(ctx context.Context, actor, id string, input AcceptInput) (*AcceptResult, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if input.MRN == "" {
		return nil, domain.ErrMRNRequired
	}

	current, err := uc.declRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Cleared {
		return nil, domain.ErrDeclarationCleared
	}

	result, err := uc.validator.Validate(ctx, current)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return &AcceptResult{Declaration: current, Validation: result}, domain.ErrDeclarationInvalid
	}

	requiresGuarantee, err := uc.requiresGuarantee(ctx, current.ProcedureCode)
	if err != nil {
		return nil, err
	}

	out := &AcceptResult{Validation: result}
	err = retry(ctx, uc.retrier, func() error {
		return inTx(ctx, uc.txManager, func(ctx context.Context, tx Transaction) error {
			d, err := uc.declRepo.GetByIDForUpdate(ctx, tx, id)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			if err := d.Clear(input.MRN, actor, now); err != nil {
				return err
			}

			accountID := input.GuaranteeAccountID
			if accountID == "" {
				accountID = d.GuaranteeAccountID
			}
			d.GuaranteeAccountID = accountID
			if err := uc.declRepo.MarkCleared(ctx, tx, d); err != nil {
				return err
			}

			expiry := now.Add(uc.mrnValidity)
			registry := &domain.MRNRegistry{
				ID:            uc.idGen.Generate(),
				MRN:           input.MRN,
				DeclarationID: d.ID,
				TotalQuantity: d.TotalQuantity(),
				UsedQuantity:  decimal.Zero,
				ExpiryDate:    &expiry,
				Active:        true,
				CreatedBy:     actor,
				UpdatedBy:     actor,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := uc.mrnRepo.Create(ctx, tx, registry); err != nil {
				return err
			}

			var entry *domain.LedgerEntry
			if requiresGuarantee {
				if accountID == "" {
					return domain.ErrGuaranteeRequired
				}
				if amount := d.GuaranteeAmount(); amount.IsPositive() {
					entry, err = uc.guarantee.DebitTx(ctx, tx, actor, DebitInput{
						AccountID:       accountID,
						Amount:          amount,
						Currency:        d.Currency,
						MRN:             input.MRN,
						Description:     "declaration " + d.Number,
						ExpectedRelease: d.DueDate,
					})
					if err != nil {
						return err
					}
				}
			}

			payload := map[string]any{
				"declaration_id": d.ID,
				"number":         d.Number,
				"mrn":            input.MRN,
				"total_quantity": registry.TotalQuantity.String(),
			}
			if entry != nil {
				payload["guarantee_entry_id"] = entry.ID
				payload["guarantee_amount"] = entry.Amount.String()
			}
			event := domain.NewOutboxEvent(uc.idGen.Generate(), domain.AggregateTypeDeclaration, d.ID, domain.EventTypeDeclarationAccepted, payload, now)
			if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
				return err
			}

			if err := uc.audit(ctx, tx, actor, domain.AuditActionDeclarationAccept, d.ID, d, now); err != nil {
				return err
			}

			out.Declaration = d
			out.Registry = registry
			out.GuaranteeEntry = entry
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DeclarationsAccepted.Inc()
		if out.GuaranteeEntry != nil {
			uc.metrics.GuaranteeDebits.Inc()
			uc.metrics.GuaranteeAmount.Observe(out.GuaranteeEntry.Amount.InexactFloat64())
		}
	}

	return out, nil
}

func (uc *DeclarationUseCase) Get(ctx context.Context, id string) (*domain.Declaration, error) {
	return uc.declRepo.GetByID(ctx, id)
}

func (uc *DeclarationUseCase) GetByMRN(ctx context.Context, mrn string) (*domain.Declaration, error) {
	if mrn == "" {
		return nil, domain.ErrMRNRequired
	}
	return uc.declRepo.GetByMRN(ctx, mrn)
}

func (uc *DeclarationUseCase) requiresGuarantee(ctx context.Context, code string) (bool, error) {
	codes, err := uc.procedures.ListProcedureCodes(ctx, domain.ActiveOnly)
	if err != nil {
		return false, fmt.Errorf("load procedure codes: %w", err)
	}
	for _, pc := range codes {
		if pc.Code == code {
			return pc.RequiresGuarantee, nil
		}
	}
	return false, nil
}

func (uc *DeclarationUseCase) audit(ctx context.Context, tx Transaction, actor string, action domain.AuditAction, id string, after any, at time.Time) error {
	if uc.auditRepo == nil {
		return nil
	}
	log := domain.NewAuditLog(uc.idGen.Generate(), actor, action, "declaration", id, after, at)
	if err := uc.auditRepo.CreateTx(ctx, tx, log); err != nil {
		return err
	}
	recordAudit(uc.metrics, log)
	return nil
}

func (uc *DeclarationUseCase) countSubmit(outcome string) {
	if uc.metrics != nil {
		uc.metrics.DeclarationsSubmitted.WithLabelValues(outcome).Inc()
	}
}

// fillTotals derives declaration totals from the lines when none were given.
func fillTotals(d *domain.Declaration) {
	value, duty, vat := decimal.Zero, decimal.Zero, decimal.Zero
	for _, l := range d.Lines {
		value = value.Add(l.CustomsValue)
		duty = duty.Add(l.DutyAmount)
		vat = vat.Add(l.VATAmount)
	}
	if d.TotalCustomsValue.IsZero() {
		d.TotalCustomsValue = value
	}
	if d.TotalDuty.IsZero() {
		d.TotalDuty = duty
	}
	if d.TotalVAT.IsZero() {
		d.TotalVAT = vat
	}
}
