// Package memory is the in-process queue driver: an array of pending messages
// drained by a poll/delete loop. Used for local runs and tests.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"sellerops/internal/shared/messaging"
	"sellerops/pkg/correlation"

	"github.com/google/uuid"
)

var ErrClosed = errors.New("memory queue closed")

type Options struct {
	VisibilityTimeout time.Duration
	PollInterval      time.Duration
	// MaxReceives moves a message to the dead letter list once it was handed out this many times.
	MaxReceives int
}

type message struct {
	id             string
	key            []byte
	body           []byte
	correlationID  string
	receiveCount   int
	invisibleUntil time.Time
}

// DeadLetter is a message that exhausted its receives or was explicitly parked.
type DeadLetter struct {
	Key      []byte
	Body     []byte
	Reason   string
	FailedAt time.Time
}

type Queue struct {
	mu       sync.Mutex
	messages []*message
	dead     []DeadLetter
	closed   bool

	opts   Options
	notify chan struct{}
	now    func() time.Time
}

func New(opts Options) *Queue {
	if opts.VisibilityTimeout <= 0 {
		opts.VisibilityTimeout = 30 * time.Second
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 200 * time.Millisecond
	}
	if opts.MaxReceives <= 0 {
		opts.MaxReceives = 5
	}
	return &Queue{
		opts:   opts,
		notify: make(chan struct{}, 1),
		now:    time.Now,
	}
}

// Publish appends the envelope to the queue.
func (q *Queue) Publish(ctx context.Context, env messaging.Envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return err
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.messages = append(q.messages, &message{
		id:            uuid.NewString(),
		key:           []byte(env.Key),
		body:          body,
		correlationID: correlation.FromContext(ctx),
	})
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
	return nil
}

// PublishToDLQ parks a message in the dead letter list.
func (q *Queue) PublishToDLQ(_ context.Context, key, value []byte, err error) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.dead = append(q.dead, DeadLetter{Key: key, Body: value, Reason: err.Error(), FailedAt: q.now()})
	slog.Warn("Message sent to DLQ", "driver", "memory", "key", string(key), slog.Any("error", err))
	return nil
}

// Close stops accepting new messages. Pending messages stay readable.
func (q *Queue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	return nil
}

// Len reports messages not yet deleted, visible or in flight.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.messages)
}

func (q *Queue) DeadLetters() []DeadLetter {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]DeadLetter(nil), q.dead...)
}

// Worker returns a consumer bound to q. Several workers may drain the same queue.
func (q *Queue) Worker() *Worker {
	return &Worker{q: q}
}

// receive hands out the first visible message and hides it for the visibility timeout.
func (q *Queue) receive() *message {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	for i := 0; i < len(q.messages); i++ {
		m := q.messages[i]
		if now.Before(m.invisibleUntil) {
			continue
		}
		if m.receiveCount >= q.opts.MaxReceives {
			q.dead = append(q.dead, DeadLetter{Key: m.key, Body: m.body, Reason: "max receives exceeded", FailedAt: now})
			q.messages = append(q.messages[:i], q.messages[i+1:]...)
			i--
			continue
		}
		m.receiveCount++
		m.invisibleUntil = now.Add(q.opts.VisibilityTimeout)
		cp := *m
		return &cp
	}
	return nil
}

func (q *Queue) delete(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, m := range q.messages {
		if m.id == id {
			q.messages = append(q.messages[:i], q.messages[i+1:]...)
			return
		}
	}
}

// Worker implements messaging.Worker over a Queue.
type Worker struct {
	q *Queue
}

// Start polls the queue until ctx is cancelled. Messages are deleted only after
// the handler succeeds; failures reappear once the visibility timeout expires.
func (w *Worker) Start(ctx context.Context, handler messaging.MessageHandler) error {
	slog.Info("Consumer started", "driver", "memory")
	ticker := time.NewTicker(w.q.opts.PollInterval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			slog.Info("Consumer stopped (context cancelled)", "driver", "memory")
			return nil
		}

		m := w.q.receive()
		if m == nil {
			select {
			case <-ctx.Done():
			case <-w.q.notify:
			case <-ticker.C:
			}
			continue
		}

		msgCtx := correlation.Ensure(ctx)
		if m.correlationID != "" {
			msgCtx = correlation.WithID(ctx, m.correlationID)
		}

		if err := handler(msgCtx, m.key, m.body); err != nil {
			slog.ErrorContext(msgCtx, "Handler error, message not deleted",
				"driver", "memory",
				"key", string(m.key),
				"receive_count", m.receiveCount,
				slog.Any("error", err))
			continue
		}
		w.q.delete(m.id)
	}
}

func (w *Worker) Close() error {
	return nil
}
