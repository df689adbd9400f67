package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAccountNumber(t *testing.T) {
	t.Parallel()

	t.Run("valid number", func(t *testing.T) {
		if err := ValidateAccountNumber("GUA-2026-0001"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("empty number rejected", func(t *testing.T) {
		err := ValidateAccountNumber("   ")
		if !errors.Is(err, ErrInvalidAccountNumber) {
			t.Fatalf("expected ErrInvalidAccountNumber, got %v", err)
		}
	})

	t.Run("number too long", func(t *testing.T) {
		err := ValidateAccountNumber(strings.Repeat("9", MaxAccountNumberLength+1))
		if !errors.Is(err, ErrInvalidAccountNumber) {
			t.Fatalf("expected ErrInvalidAccountNumber, got %v", err)
		}
	})
}

func TestValidateCurrency(t *testing.T) {
	t.Parallel()

	if err := ValidateCurrency("eur"); err != nil {
		t.Fatalf("expected uppercase conversion to succeed, got %v", err)
	}

	if err := ValidateCurrency("XYZ"); !errors.Is(err, ErrInvalidCurrency) {
		t.Fatalf("expected ErrInvalidCurrency, got %v", err)
	}
}

func TestValidateAmount(t *testing.T) {
	t.Parallel()

	valid := decimal.NewFromFloat(100.25)
	if err := ValidateAmount(valid); err != nil {
		t.Fatalf("expected valid amount, got %v", err)
	}

	if err := ValidateAmount(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for zero, got %v", err)
	}

	if err := ValidateAmount(decimal.NewFromFloat(0.001)); !errors.Is(err, ErrAmountTooSmall) {
		t.Fatalf("expected ErrAmountTooSmall, got %v", err)
	}

	huge := decimal.RequireFromString(MaxLedgerAmount).Add(decimal.NewFromInt(1))
	if err := ValidateAmount(huge); !errors.Is(err, ErrAmountTooLarge) {
		t.Fatalf("expected ErrAmountTooLarge, got %v", err)
	}
}

func TestValidatePagination(t *testing.T) {
	t.Parallel()

	limit, offset, _ := ValidatePagination(0, -5)
	if limit != 50 || offset != 0 {
		t.Fatalf("expected defaults 50/0, got %d/%d", limit, offset)
	}

	limit, _, _ = ValidatePagination(5000, 0)
	if limit != 1000 {
		t.Fatalf("expected limit capped at 1000, got %d", limit)
	}
}

func TestValidationResult_FailedRules(t *testing.T) {
	t.Parallel()

	r := &ValidationResult{Outcomes: []RuleOutcome{
		{RuleCode: "A", Passed: true},
		{RuleCode: "B", Passed: false, ErrorCount: 2},
	}}
	got := r.FailedRules()
	if len(got) != 1 || got[0] != "B" {
		t.Fatalf("expected [B], got %v", got)
	}
}
