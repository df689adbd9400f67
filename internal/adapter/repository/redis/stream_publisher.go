package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/infrastructure/metrics"
)

// StreamPublisher appends outbox events to a Redis stream, one entry per event.
type StreamPublisher struct {
	client  *redis.Client
	stream  string
	maxLen  int64
	metrics *metrics.Metrics
}

// NewStreamPublisher creates a publisher writing to stream. The stream is
// trimmed to roughly maxLen entries when maxLen is positive.
func NewStreamPublisher(client *redis.Client, stream string, maxLen int64, m *metrics.Metrics) *StreamPublisher {
	return &StreamPublisher{client: client, stream: stream, maxLen: maxLen, metrics: m}
}

// Publish implements eventpublisher.Publisher.
func (p *StreamPublisher) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"event_id":       event.ID,
			"event_type":     event.EventType,
			"aggregate_type": event.AggregateType,
			"aggregate_id":   event.AggregateID,
			"created_at":     event.CreatedAt.UTC().Format(time.RFC3339Nano),
			"payload":        string(payload),
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	err = p.client.XAdd(ctx, args).Err()
	observeRedis(p.metrics, "stream_publish", err)

	return err
}
