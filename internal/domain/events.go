package domain

import "time"

// Event types
const (
	EventTypeDeclarationAccepted = "declaration.accepted"
	EventTypeGuaranteeDebited    = "guarantee.debited"
	EventTypeGuaranteeReleased   = "guarantee.released"
	EventTypeGuaranteeCredited   = "guarantee.credited"
	EventTypeMRNUsageRecorded    = "mrn.usage_recorded"
	EventTypeTraceLinkRecorded   = "trace_link.recorded"
)

// Aggregate types
const (
	AggregateTypeDeclaration = "declaration"
	AggregateTypeGuarantee   = "guarantee_account"
	AggregateTypeMRN         = "mrn"
	AggregateTypeTraceLink   = "trace_link"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// NewOutboxEvent builds an unpublished event.
func NewOutboxEvent(id, aggregateType, aggregateID, eventType string, payload map[string]any, at time.Time) *OutboxEvent {
	return &OutboxEvent{
		ID:            id,
		AggregateID:   aggregateID,
		AggregateType: aggregateType,
		EventType:     eventType,
		Payload:       payload,
		CreatedAt:     at,
	}
}
