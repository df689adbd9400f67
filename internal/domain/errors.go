package domain

import "errors"

var (
	// Guarantee errors
	ErrAccountNotFound      = errors.New("guarantee account not found")
	ErrAccountInactive      = errors.New("guarantee account is not active")
	ErrInsufficientCapacity = errors.New("insufficient guarantee capacity")
	ErrLedgerEntryNotFound  = errors.New("ledger entry not found")
	ErrAlreadyReleased      = errors.New("ledger entry already released")
	ErrNotADebit            = errors.New("ledger entry is not a debit")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidLimit         = errors.New("total limit must not be negative")
	ErrCurrencyMismatch     = errors.New("currency does not match guarantee account")

	// Declaration errors
	ErrDeclarationNotFound = errors.New("declaration not found")
	ErrDeclarationCleared  = errors.New("declaration is already cleared")
	ErrDeclarationInvalid  = errors.New("declaration failed validation")
	ErrGuaranteeRequired   = errors.New("procedure requires a guarantee account")

	// MRN errors
	ErrMRNNotFound      = errors.New("mrn not found")
	ErrMRNInactive      = errors.New("mrn is not active")
	ErrMRNRequired      = errors.New("mrn is required")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrMRNAlreadyExists = errors.New("mrn already registered")

	// Traceability errors
	ErrGenealogyNotFound = errors.New("batch genealogy not found")
	ErrTraceKeyRequired  = errors.New("batch number or mrn is required")
	ErrInvalidTraceLink  = errors.New("trace link requires a source and a target")

	// Reference data
	ErrReferenceNotFound = errors.New("reference code not found")

	ErrActorRequired = errors.New("actor is required")
)
