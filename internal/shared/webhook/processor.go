// Package webhook receives marketplace notifications and hands them either straight
// to the dispatcher or to the queue.
package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sellerops/internal/shared/messaging"
)

// Processor defines how an accepted notification is handled.
type Processor interface {
	ProcessNotification(ctx context.Context, n Notification) error
}

// Dispatcher applies a notification to local state.
type Dispatcher interface {
	Dispatch(ctx context.Context, n Notification) error
}

// SyncProcessor dispatches inline, within the webhook request.
type SyncProcessor struct {
	dispatcher Dispatcher
}

func NewSyncProcessor(d Dispatcher) *SyncProcessor {
	return &SyncProcessor{dispatcher: d}
}

func (p *SyncProcessor) ProcessNotification(ctx context.Context, n Notification) error {
	return p.dispatcher.Dispatch(ctx, n)
}

// AsyncProcessor publishes the notification to the queue keyed by seller.
type AsyncProcessor struct {
	publisher messaging.Publisher
}

func NewAsyncProcessor(publisher messaging.Publisher) *AsyncProcessor {
	return &AsyncProcessor{publisher: publisher}
}

func (p *AsyncProcessor) ProcessNotification(ctx context.Context, n Notification) error {
	envelope, err := n.Envelope()
	if err != nil {
		return fmt.Errorf("create envelope: %w", err)
	}
	return p.publisher.Publish(ctx, envelope)
}

// DedupProcessor drops notifications whose _id was already accepted within ttl.
// The marketplace redelivers until it sees a 2xx, so retries of a failed
// notification are let through again.
type DedupProcessor struct {
	next  Processor
	store messaging.IdempotencyStore
	ttl   time.Duration
}

func NewDedupProcessor(next Processor, store messaging.IdempotencyStore, ttl time.Duration) *DedupProcessor {
	return &DedupProcessor{next: next, store: store, ttl: ttl}
}

func (p *DedupProcessor) ProcessNotification(ctx context.Context, n Notification) error {
	if n.ID == "" {
		return p.next.ProcessNotification(ctx, n)
	}

	fresh, err := p.store.MarkProcessed(ctx, n.ID, p.ttl)
	if err != nil {
		slog.WarnContext(ctx, "Dedup store unavailable, accepting notification",
			slog.String("notification_id", n.ID), slog.Any("error", err))
		return p.next.ProcessNotification(ctx, n)
	}
	if !fresh {
		slog.InfoContext(ctx, "Duplicate notification ignored",
			slog.String("notification_id", n.ID), slog.String("topic", n.Topic))
		return nil
	}

	if err := p.next.ProcessNotification(ctx, n); err != nil {
		if ferr := p.store.Forget(context.WithoutCancel(ctx), n.ID); ferr != nil {
			slog.WarnContext(ctx, "Failed to clear dedup mark",
				slog.String("notification_id", n.ID), slog.Any("error", ferr))
		}
		return err
	}
	return nil
}
