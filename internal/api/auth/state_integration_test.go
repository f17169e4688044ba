//go:build integration

package auth

import (
	"context"
	"testing"
	"time"

	"sellerops/internal/testinfra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStateStoreIntegration(t *testing.T) {
	ctx := context.Background()

	r, err := testinfra.NewRedis(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { r.Cleanup(context.Background()) })

	store := NewRedisStateStore(r.Client)

	t.Run("should accept a state once", func(t *testing.T) {
		state, err := NewState()
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, state, StateTTL))

		assert.NoError(t, store.Consume(ctx, state))
		assert.ErrorIs(t, store.Consume(ctx, state), ErrInvalidState)
	})

	t.Run("should reject an unknown state", func(t *testing.T) {
		assert.ErrorIs(t, store.Consume(ctx, "never-issued"), ErrInvalidState)
	})

	t.Run("should reject an expired state", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "short-lived", 100*time.Millisecond))

		time.Sleep(300 * time.Millisecond)
		assert.ErrorIs(t, store.Consume(ctx, "short-lived"), ErrInvalidState)
	})
}
