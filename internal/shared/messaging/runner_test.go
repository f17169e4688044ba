package messaging

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWorker struct {
	start  func(ctx context.Context, h MessageHandler) error
	closed atomic.Bool
}

func (w *stubWorker) Start(ctx context.Context, h MessageHandler) error { return w.start(ctx, h) }
func (w *stubWorker) Close() error {
	w.closed.Store(true)
	return nil
}

func TestRunner_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	w := &stubWorker{start: func(ctx context.Context, h MessageHandler) error {
		<-ctx.Done()
		return nil
	}}

	done := make(chan error, 1)
	go func() { done <- NewRunner([]Worker{w, w}, nil).Start(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("runner did not stop")
	}
	assert.True(t, w.closed.Load())
}

func TestRunner_RecoversPanic(t *testing.T) {
	t.Parallel()

	panicking := &stubWorker{start: func(ctx context.Context, h MessageHandler) error {
		panic("boom")
	}}
	blocking := &stubWorker{start: func(ctx context.Context, h MessageHandler) error {
		<-ctx.Done()
		return nil
	}}

	err := NewRunner([]Worker{panicking, blocking}, nil).Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
	assert.True(t, panicking.closed.Load())
	assert.True(t, blocking.closed.Load())
}

func TestNewEnvelope(t *testing.T) {
	t.Parallel()

	env, err := NewEnvelope("", "123", "notification.items", map[string]string{"resource": "/items/MLA1"})
	require.NoError(t, err)
	assert.NotEmpty(t, env.EventID)
	assert.Equal(t, "123", env.Key)
	assert.JSONEq(t, `{"resource":"/items/MLA1"}`, string(env.Payload))

	env, err = NewEnvelope("evt-9", "123", "notification.items", nil)
	require.NoError(t, err)
	assert.Equal(t, "evt-9", env.EventID)
}
