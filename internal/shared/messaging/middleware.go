package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"sellerops/pkg/metrics"
)

const dlqPublishTimeout = 5 * time.Second

// RetryConfig configures retry behavior.
type RetryConfig struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     5 * time.Second,
	}
}

// WithRetry wraps a handler with exponential backoff + jitter retry logic.
// Errors marked Permanent are returned immediately.
func WithRetry(handler MessageHandler, cfg RetryConfig) MessageHandler {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return func(ctx context.Context, key, value []byte) error {
		backoff := cfg.InitialBackoff

		var lastErr error
		for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
			lastErr = handler(ctx, key, value)
			if lastErr == nil {
				return nil
			}
			if errors.Is(lastErr, ErrPermanent) {
				return lastErr
			}

			if attempt < cfg.MaxAttempts-1 {
				sleep := backoff + time.Duration(rand.Int64N(int64(100*time.Millisecond)))
				if sleep > cfg.MaxBackoff {
					sleep = cfg.MaxBackoff
				}

				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(sleep):
				}

				backoff *= 2
			}
		}

		return errors.Join(ErrMaxRetriesExceeded, lastErr)
	}
}

// WithDLQ sends messages that still fail to the dead letter queue and acknowledges them.
// The DLQ publish uses its own context so it completes during shutdown.
func WithDLQ(handler MessageHandler, dlq DLQPublisher) MessageHandler {
	return func(ctx context.Context, key, value []byte) error {
		err := handler(ctx, key, value)
		if err == nil {
			return nil
		}
		if errors.Is(err, context.Canceled) {
			return err
		}

		dlqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), dlqPublishTimeout)
		defer cancel()
		if dlqErr := dlq.PublishToDLQ(dlqCtx, key, value, err); dlqErr != nil {
			// leave the message on the queue, the transport redelivers it
			return errors.Join(err, dlqErr)
		}
		return nil
	}
}

// WithMetrics records processing duration and outcome per queue and driver.
func WithMetrics(queue, driver string, handler MessageHandler) MessageHandler {
	return func(ctx context.Context, key, value []byte) error {
		start := time.Now()
		err := handler(ctx, key, value)

		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.QueueProcessingDuration.WithLabelValues(queue, driver, status).Observe(time.Since(start).Seconds())
		metrics.QueueMessagesProcessed.WithLabelValues(queue, driver, status).Inc()
		return err
	}
}

// WithIdempotency skips envelopes whose event id was already processed.
// On handler failure the mark is removed so redelivery runs the handler again.
func WithIdempotency(handler MessageHandler, store IdempotencyStore, ttl time.Duration) MessageHandler {
	return func(ctx context.Context, key, value []byte) error {
		var env struct {
			EventID string `json:"event_id"`
		}
		if err := json.Unmarshal(value, &env); err != nil || env.EventID == "" {
			return handler(ctx, key, value)
		}

		fresh, err := store.MarkProcessed(ctx, env.EventID, ttl)
		if err != nil {
			slog.WarnContext(ctx, "Idempotency store unavailable, processing anyway",
				slog.String("event_id", env.EventID), slog.Any("error", err))
			return handler(ctx, key, value)
		}
		if !fresh {
			slog.InfoContext(ctx, "Skipping duplicate event", slog.String("event_id", env.EventID))
			return nil
		}

		if err := handler(ctx, key, value); err != nil {
			if ferr := store.Forget(context.WithoutCancel(ctx), env.EventID); ferr != nil {
				slog.WarnContext(ctx, "Failed to clear idempotency mark",
					slog.String("event_id", env.EventID), slog.Any("error", ferr))
			}
			return err
		}
		return nil
	}
}
