// Package messaging defines the transport-agnostic contract of the webhook queue:
// envelopes, publishers, workers and the handler middleware chain.
package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Envelope wraps a message with metadata for tracing and routing.
type Envelope struct {
	EventID   string          `json:"event_id"`
	Key       string          `json:"key"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewEnvelope creates an envelope. An empty eventID gets a generated one.
func NewEnvelope(eventID, key, msgType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	if eventID == "" {
		eventID = uuid.New().String()
	}

	return Envelope{
		EventID:   eventID,
		Key:       key,
		Type:      msgType,
		Payload:   data,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Publisher sends messages to the queue.
type Publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
	Close() error
}

// MessageHandler processes a single raw message. A nil return acknowledges it
// (commit / delete); an error leaves it to the transport's redelivery.
type MessageHandler func(ctx context.Context, key, value []byte) error

// Worker consumes messages from the queue until ctx is cancelled.
type Worker interface {
	Start(ctx context.Context, handler MessageHandler) error
	Close() error
}

// DLQPublisher can publish failed messages to a dead letter queue.
type DLQPublisher interface {
	PublishToDLQ(ctx context.Context, key, value []byte, err error) error
}

// IdempotencyStore remembers processed event ids.
type IdempotencyStore interface {
	// MarkProcessed returns true when eventID was not seen before and is now recorded.
	MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
	// Forget removes the mark so a failed event can be processed again.
	Forget(ctx context.Context, eventID string) error
}
