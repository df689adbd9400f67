package integration

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisRepo "github.com/iho/customscore/internal/adapter/repository/redis"
	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/infrastructure/eventpublisher"
	"github.com/iho/customscore/internal/usecase"
	"github.com/iho/customscore/tests/testutil"
)

func TestOutboxEventsReachStream(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testutil.NewTestDB(t)
	ctx := context.Background()
	db.TruncateAll(ctx)
	app := db.NewApp()

	account := app.CreateGuaranteeAccount(t, ctx, "100")
	_, err := app.Guarantees.Debit(ctx, "tester", usecase.DebitInput{
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	_, err = app.Guarantees.CreditNew(ctx, "tester", usecase.CreditInput{
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: app.Outbox,
		Publisher:  redisRepo.NewStreamPublisher(client, "customs-events", 0, app.Metrics),
		Logger:     zerolog.Nop(),
		Metrics:    app.Metrics,
		Interval:   20 * time.Millisecond,
	})

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = publisher.Start(runCtx)
	}()

	require.Eventually(t, func() bool {
		pending, err := app.Outbox.GetUnpublished(ctx, 10)
		return err == nil && len(pending) == 0
	}, 5*time.Second, 20*time.Millisecond)
	cancel()
	<-done

	messages, err := client.XRange(ctx, "customs-events", "-", "+").Result()
	require.NoError(t, err)

	types := make([]any, 0, len(messages))
	for _, msg := range messages {
		types = append(types, msg.Values["event_type"])
	}
	assert.Contains(t, types, domain.EventTypeGuaranteeCredited)
	assert.Contains(t, types, domain.EventTypeGuaranteeDebited)
}
