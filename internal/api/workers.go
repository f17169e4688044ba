package api

import (
	"context"
	"fmt"
	"log/slog"

	"sellerops/config"
	"sellerops/internal/api/consumers"
	"sellerops/internal/shared/messaging"
	"sellerops/internal/shared/queue"
	"sellerops/internal/shared/webhook"
	"sellerops/pkg/health"
)

// dedupStores keep separate marks for accepted webhooks and for queue messages
// handled by the workers, since both are keyed by the notification id.
type dedupStores struct {
	received  messaging.IdempotencyStore
	processed messaging.IdempotencyStore
}

// notifications is how accepted webhooks reach the dispatcher: inline in sync
// mode, or through the queue and its workers in queue mode.
type notifications struct {
	processor webhook.Processor
	// nil in sync mode
	runner    *messaging.Runner
	transport *queue.Transport
}

func newNotifications(
	ctx context.Context,
	cfg config.Config,
	dispatcher webhook.Dispatcher,
	stores dedupStores,
	registry *health.Registry,
) (*notifications, error) {
	if cfg.WebhookMode == config.WebhookModeSync {
		slog.Info("Webhook mode: sync - notifications are dispatched inline")
		processor := webhook.NewDedupProcessor(webhook.NewSyncProcessor(dispatcher), stores.received, cfg.Queue.DedupTTL)
		return &notifications{processor: processor}, nil
	}

	transport, err := queue.New(ctx, cfg.Queue, true)
	if err != nil {
		return nil, fmt.Errorf("queue transport: %w", err)
	}
	if transport.Checker != nil {
		registry.Register(transport.Checker)
	}

	controller := consumers.NewNotificationController(dispatcher)
	handler := transport.Handler(controller.HandleMessage, cfg.Queue, stores.processed)

	slog.Info("Webhook mode: queue",
		slog.String("driver", transport.Driver),
		slog.String("queue", transport.Name),
		slog.Int("workers", len(transport.Workers)))

	return &notifications{
		processor: webhook.NewDedupProcessor(webhook.NewAsyncProcessor(transport.Publisher), stores.received, cfg.Queue.DedupTTL),
		runner:    messaging.NewRunner(transport.Workers, handler),
		transport: transport,
	}, nil
}

// Run consumes until ctx is cancelled. It returns immediately in sync mode.
func (n *notifications) Run(ctx context.Context) error {
	if n.runner == nil {
		return nil
	}
	if err := n.runner.Start(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("notification workers: %w", err)
	}
	return nil
}

func (n *notifications) Close() error {
	if n.transport == nil {
		return nil
	}
	return n.transport.Close()
}
