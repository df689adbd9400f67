package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultMRNValidity is how long an MRN stays usable after clearance.
	DefaultMRNValidity = 3 * 365 * 24 * time.Hour

	// DefaultRecentEntries is how many ledger entries an account summary carries.
	DefaultRecentEntries = 20

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
