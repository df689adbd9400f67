package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

func fastRetrier(opts ...RetrierOption) *Retrier {
	r := NewRetrier(opts...)
	r.initialInterval = time.Millisecond
	r.maxInterval = 2 * time.Millisecond
	r.maxElapsedTime = time.Second
	return r
}

func TestRetrierRetriesLockConflicts(t *testing.T) {
	var hooked []int
	r := fastRetrier(WithRetryHook(func(attempt int, _ error) {
		hooked = append(hooked, attempt)
	}))

	attempts := 0
	err := r.Retry(context.Background(), func() error {
		attempts++
		switch attempts {
		case 1:
			return &pgconn.PgError{Code: pgErrDeadlock}
		case 2:
			return fmt.Errorf("debit: %w", &pgconn.PgError{Code: pgErrSerializationFailure})
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
	if len(hooked) != 2 || hooked[0] != 1 || hooked[1] != 2 {
		t.Fatalf("unexpected hook calls: %v", hooked)
	}
}

func TestRetrierGivesUpAfterMaxRetries(t *testing.T) {
	r := fastRetrier(WithMaxRetries(1))

	attempts := 0
	err := r.Retry(context.Background(), func() error {
		attempts++
		return &pgconn.PgError{Code: pgErrDeadlock}
	})

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgErrDeadlock {
		t.Fatalf("expected deadlock error, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestRetrierStopsOnBusinessError(t *testing.T) {
	r := fastRetrier()
	attempts := 0
	capacityErr := errors.New("insufficient guarantee capacity")

	err := r.Retry(context.Background(), func() error {
		attempts++
		return capacityErr
	})

	if !errors.Is(err, capacityErr) {
		t.Fatalf("expected business error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrDeadlock}, want: true},
		{name: "serialization", err: &pgconn.PgError{Code: pgErrSerializationFailure}, want: true},
		{name: "wrapped", err: fmt.Errorf("tx: %w", &pgconn.PgError{Code: pgErrDeadlock}), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain", err: errors.New("other"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.want {
				t.Fatalf("isRetryableError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
