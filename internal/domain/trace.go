package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TraceLink is one recorded unit of material flow from a source batch/MRN to
// a target batch/MRN. Links are append-only and (source, target) pairs are not
// unique, so the graph may contain duplicates and cycles.
type TraceLink struct {
	ID            string
	SourceType    string
	SourceID      string
	SourceBatch   string
	SourceMRN     string
	TargetType    string
	TargetID      string
	TargetBatch   string
	TargetMRN     string
	ItemID        string
	Quantity      decimal.Decimal
	ConsumedValue decimal.Decimal
	CreatedBy     string
	CreatedAt     time.Time
}

// Validate checks the link has something on both ends.
func (l *TraceLink) Validate() error {
	if (l.SourceBatch == "" && l.SourceMRN == "" && l.SourceID == "") ||
		(l.TargetBatch == "" && l.TargetMRN == "" && l.TargetID == "") {
		return ErrInvalidTraceLink
	}
	if l.Quantity.IsNegative() || l.ConsumedValue.IsNegative() {
		return ErrInvalidQuantity
	}
	return nil
}

// TraceQuery selects direct links by batch number or MRN.
type TraceQuery struct {
	BatchNumber string
	MRN         string
}

// Validate requires at least one key.
func (q TraceQuery) Validate() error {
	if q.BatchNumber == "" && q.MRN == "" {
		return ErrTraceKeyRequired
	}
	return nil
}

// BatchGenealogy is a precomputed summary of a batch's upstream sources.
type BatchGenealogy struct {
	BatchNumber   string
	ParentBatches []string
	ParentMRNs    []string
	Depth         int
	LinkCount     int
	BuiltAt       time.Time
}
