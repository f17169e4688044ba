package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	a, err := NewState()
	require.NoError(t, err)
	b, err := NewState()
	require.NoError(t, err)

	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
}

func TestMemoryStateStore(t *testing.T) {
	ctx := context.Background()

	t.Run("should accept a state once", func(t *testing.T) {
		store := NewMemoryStateStore()
		require.NoError(t, store.Save(ctx, "abc", StateTTL))

		assert.NoError(t, store.Consume(ctx, "abc"))
		assert.ErrorIs(t, store.Consume(ctx, "abc"), ErrInvalidState)
	})

	t.Run("should reject unknown states", func(t *testing.T) {
		store := NewMemoryStateStore()

		assert.ErrorIs(t, store.Consume(ctx, "never-issued"), ErrInvalidState)
	})

	t.Run("should reject expired states", func(t *testing.T) {
		store := NewMemoryStateStore()
		now := time.Now()
		store.now = func() time.Time { return now }
		require.NoError(t, store.Save(ctx, "abc", time.Minute))

		store.now = func() time.Time { return now.Add(2 * time.Minute) }

		assert.ErrorIs(t, store.Consume(ctx, "abc"), ErrInvalidState)
	})

	t.Run("should drop expired states on save", func(t *testing.T) {
		store := NewMemoryStateStore()
		now := time.Now()
		store.now = func() time.Time { return now }
		require.NoError(t, store.Save(ctx, "old", time.Minute))

		store.now = func() time.Time { return now.Add(time.Hour) }
		require.NoError(t, store.Save(ctx, "new", time.Minute))

		assert.Len(t, store.states, 1)
	})
}
