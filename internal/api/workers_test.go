package api

import (
	"context"
	"testing"
	"time"

	"sellerops/config"
	"sellerops/internal/shared/idempotency"
	"sellerops/internal/shared/webhook"
	"sellerops/pkg/health"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dispatchFunc func(ctx context.Context, n webhook.Notification) error

func (f dispatchFunc) Dispatch(ctx context.Context, n webhook.Notification) error { return f(ctx, n) }

func testStores() dedupStores {
	return dedupStores{received: idempotency.NewMemoryStore(), processed: idempotency.NewMemoryStore()}
}

func TestNotifications_SyncMode(t *testing.T) {
	var got []webhook.Notification
	d := dispatchFunc(func(_ context.Context, n webhook.Notification) error {
		got = append(got, n)
		return nil
	})
	cfg := config.Config{WebhookMode: config.WebhookModeSync, Queue: config.QueueConfig{DedupTTL: time.Hour}}

	notif, err := newNotifications(context.Background(), cfg, d, testStores(), health.NewRegistry())
	require.NoError(t, err)
	defer notif.Close()

	n := webhook.Notification{ID: "evt-1", Resource: "/items/MLA1", UserID: 1, Topic: webhook.TopicItems}
	require.NoError(t, notif.processor.ProcessNotification(context.Background(), n))
	require.NoError(t, notif.processor.ProcessNotification(context.Background(), n))

	assert.Equal(t, []webhook.Notification{n}, got)
	assert.NoError(t, notif.Run(context.Background()), "sync mode has no workers to run")
}

func TestNotifications_QueueMode(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	received := make(chan webhook.Notification, 4)
	d := dispatchFunc(func(_ context.Context, n webhook.Notification) error {
		received <- n
		return nil
	})
	cfg := config.Config{
		WebhookMode: config.WebhookModeQueue,
		Queue: config.QueueConfig{
			Driver:                  config.QueueDriverMemory,
			Workers:                 1,
			MaxAttempts:             1,
			InitialBackoff:          time.Millisecond,
			MaxBackoff:              time.Millisecond,
			DedupTTL:                time.Hour,
			MemoryVisibilityTimeout: time.Second,
			MemoryPollInterval:      5 * time.Millisecond,
			MemoryMaxReceives:       3,
		},
	}

	notif, err := newNotifications(ctx, cfg, d, testStores(), health.NewRegistry())
	require.NoError(t, err)
	defer notif.Close()

	runCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- notif.Run(runCtx) }()

	n := webhook.Notification{ID: "evt-9", Resource: "/orders/2000001", UserID: 123456, Topic: webhook.TopicOrdersV2}
	require.NoError(t, notif.processor.ProcessNotification(ctx, n))

	select {
	case got := <-received:
		assert.Equal(t, n, got)
	case <-ctx.Done():
		t.Fatal("notification was not consumed")
	}

	stop()
	assert.NoError(t, <-done)
}
