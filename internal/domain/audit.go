package domain

import (
	"encoding/json"
	"time"
)

// AuditLog represents an audit trail entry for compliance review
type AuditLog struct {
	ID           string
	Actor        string // Who performed the action
	Action       string // What action (guarantee.debit, declaration.accept, etc.)
	ResourceType string // Type of resource (declaration, ledger_entry, mrn, trace_link)
	ResourceID   string // ID of the resource
	RequestID    string // Request ID for tracing
	BeforeState  JSON   // State before the action
	AfterState   JSON   // State after the action
	Status       string // success, failure, error
	ErrorMessage string // If status=error, the error message
	CreatedAt    time.Time
}

// JSON is a type alias for JSON data
type JSON map[string]any

// AuditAction represents different types of auditable actions
type AuditAction string

const (
	AuditActionDeclarationSubmit AuditAction = "declaration.submit"
	AuditActionDeclarationAccept AuditAction = "declaration.accept"

	AuditActionAccountCreate    AuditAction = "guarantee.account_create"
	AuditActionGuaranteeDebit   AuditAction = "guarantee.debit"
	AuditActionGuaranteeRelease AuditAction = "guarantee.release"
	AuditActionGuaranteeCredit  AuditAction = "guarantee.credit"

	AuditActionMRNUsage        AuditAction = "mrn.usage"
	AuditActionTraceLinkCreate AuditAction = "trace_link.create"
)

// AuditStatus represents the status of an audited action
type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailure AuditStatus = "failure"
	AuditStatusError   AuditStatus = "error"
)

// MarshalState converts a domain object to JSON for audit logging
func MarshalState(v any) JSON {
	if v == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return JSON{"error": "failed to marshal state"}
	}

	var result JSON
	if err := json.Unmarshal(data, &result); err != nil {
		return JSON{"error": "failed to unmarshal state"}
	}

	return result
}

// NewAuditLog builds a successful audit entry for actor.
func NewAuditLog(id, actor string, action AuditAction, resourceType, resourceID string, after any, at time.Time) *AuditLog {
	return &AuditLog{
		ID:           id,
		Actor:        actor,
		Action:       string(action),
		ResourceType: resourceType,
		ResourceID:   resourceID,
		AfterState:   MarshalState(after),
		Status:       string(AuditStatusSuccess),
		CreatedAt:    at,
	}
}

// AuditFilter defines filters for querying audit logs
type AuditFilter struct {
	Actor        string
	Action       string
	ResourceType string
	ResourceID   string
	StartDate    *time.Time
	EndDate      *time.Time
	Limit        int
	Offset       int
}
