//go:build integration

package settings_repo

import (
	"context"
	"testing"
	"time"

	"sellerops/internal/api/domain/account"
	"sellerops/internal/api/domain/settings"
	account_repo "sellerops/internal/api/repo/account"
	"sellerops/internal/testinfra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDueForSyncIntegration(t *testing.T) {
	ctx := context.Background()

	pg, err := testinfra.NewPostgres(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { pg.Cleanup(context.Background()) })

	accounts := account_repo.NewPgAccountRepo(pg.Pool)
	repo := NewPgSettingsRepo(pg.Pool)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	newAccount := func(userID int64) account.Account {
		a, err := accounts.UpsertAccount(ctx, account.NewAccount{MarketplaceUserID: userID})
		require.NoError(t, err)
		return a
	}

	neverSynced := newAccount(1) // no settings row, defaults apply

	stale := newAccount(2)
	require.NoError(t, repo.CreateSettings(ctx, settings.Defaults(stale.ID)))
	require.NoError(t, repo.MarkSynced(ctx, stale.ID, now.Add(-time.Hour)))

	fresh := newAccount(3)
	require.NoError(t, repo.CreateSettings(ctx, settings.Defaults(fresh.ID)))
	require.NoError(t, repo.MarkSynced(ctx, fresh.ID, now.Add(-5*time.Minute)))

	disabled := newAccount(4)
	off := settings.Defaults(disabled.ID)
	off.SyncEnabled = false
	require.NoError(t, repo.CreateSettings(ctx, off))

	due, err := repo.ListDueForSync(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{neverSynced.ID, stale.ID}, due)
}

func TestUpsertSettingsIntegration(t *testing.T) {
	ctx := context.Background()

	pg, err := testinfra.NewPostgres(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { pg.Cleanup(context.Background()) })

	a, err := account_repo.NewPgAccountRepo(pg.Pool).UpsertAccount(ctx, account.NewAccount{MarketplaceUserID: 5})
	require.NoError(t, err)

	repo := NewPgSettingsRepo(pg.Pool)
	s := settings.Defaults(a.ID)
	s.Timezone = "America/Sao_Paulo"
	s.UrgentWindowHours = 48

	saved, err := repo.UpsertSettings(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", saved.Timezone)
	assert.False(t, saved.UpdatedAt.IsZero())

	got, err := repo.GetSettings(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 48, got.UrgentWindowHours)
}
