package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/infrastructure/metrics"
)

func requireActor(actor string) error {
	if strings.TrimSpace(actor) == "" {
		return domain.ErrActorRequired
	}
	return nil
}

// retry runs op through r, or once when r is nil.
func retry(ctx context.Context, r Retrier, op func() error) error {
	if r == nil {
		return op()
	}
	return r.Retry(ctx, op)
}

// inTx runs fn in a transaction bounded by DefaultTransactionTimeout and
// commits when fn succeeds.
func inTx(ctx context.Context, txManager TransactionManager, fn func(ctx context.Context, tx Transaction) error) error {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := txManager.Begin(txCtx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	if err := fn(txCtx, tx); err != nil {
		return err
	}

	return tx.Commit(txCtx)
}

func observeDuration(m *metrics.Metrics, operation string, start time.Time) {
	if m != nil {
		m.LedgerDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

func recordAudit(m *metrics.Metrics, log *domain.AuditLog) {
	if m != nil {
		m.AuditLogsCreated.WithLabelValues(log.Action, log.Status).Inc()
	}
}
