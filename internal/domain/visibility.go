package domain

// Visibility selects whether soft-deleted or inactive rows are returned by a
// repository read.
type Visibility int

const (
	// ActiveOnly excludes soft-deleted and inactive rows.
	ActiveOnly Visibility = iota
	// IncludeInactive returns every row, deleted or not.
	IncludeInactive
)
