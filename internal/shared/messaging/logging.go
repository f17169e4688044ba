package messaging

import (
	"context"
	"log/slog"

	"sellerops/pkg/metrics"
)

// LoggingPublisher logs every publish failure and hands the error back to the caller.
type LoggingPublisher struct {
	next   Publisher
	driver string
}

func NewLoggingPublisher(next Publisher, driver string) *LoggingPublisher {
	return &LoggingPublisher{next: next, driver: driver}
}

func (p *LoggingPublisher) Publish(ctx context.Context, envelope Envelope) error {
	if err := p.next.Publish(ctx, envelope); err != nil {
		metrics.QueueMessagesPublished.WithLabelValues(p.driver, "error").Inc()
		slog.ErrorContext(ctx, "Failed to publish message",
			slog.String("driver", p.driver),
			slog.String("event_id", envelope.EventID),
			slog.String("type", envelope.Type),
			slog.Any("error", err))
		return err
	}
	metrics.QueueMessagesPublished.WithLabelValues(p.driver, "ok").Inc()
	slog.DebugContext(ctx, "Message published",
		slog.String("driver", p.driver),
		slog.String("event_id", envelope.EventID),
		slog.String("type", envelope.Type))
	return nil
}

func (p *LoggingPublisher) Close() error {
	return p.next.Close()
}
