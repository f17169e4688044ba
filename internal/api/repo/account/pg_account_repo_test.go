package account_repo

import (
	"context"
	"testing"
	"time"

	"sellerops/internal/api/domain/account"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, mock
}

func TestUpsertAccount(t *testing.T) {
	r, mock := newMockRepo(t)
	ctx := context.Background()
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO accounts \(marketplace_user_id,nickname,email,site_id\) VALUES \(\$1,\$2,\$3,\$4\) ON CONFLICT \(marketplace_user_id\) DO UPDATE SET nickname = EXCLUDED.nickname, email = EXCLUDED.email, site_id = EXCLUDED.site_id, updated_at = NOW\(\) RETURNING id, marketplace_user_id`).
		WithArgs(int64(123456), "TESTSELLER", "s@example.com", "MLA").
		WillReturnRows(mock.NewRows(accountColumns).AddRow(id, int64(123456), "TESTSELLER", "s@example.com", "MLA", now, now))

	acc, err := r.UpsertAccount(ctx, account.NewAccount{
		MarketplaceUserID: 123456,
		Nickname:          "TESTSELLER",
		Email:             "s@example.com",
		SiteID:            "MLA",
	})

	require.NoError(t, err)
	assert.Equal(t, id, acc.ID)
	assert.Equal(t, "TESTSELLER", acc.Nickname)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccountByMarketplaceUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("should return account", func(t *testing.T) {
		r, mock := newMockRepo(t)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT id, marketplace_user_id, nickname, email, site_id, created_at, updated_at FROM accounts WHERE marketplace_user_id = \$1`).
			WithArgs(int64(42)).
			WillReturnRows(mock.NewRows(accountColumns).AddRow(id, int64(42), "N", "", "MLA", now, now))

		acc, err := r.GetAccountByMarketplaceUserID(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, id, acc.ID)
	})

	t.Run("should map no rows to ErrNotFound", func(t *testing.T) {
		r, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .* FROM accounts WHERE marketplace_user_id = \$1`).
			WithArgs(int64(42)).
			WillReturnError(pgx.ErrNoRows)

		_, err := r.GetAccountByMarketplaceUserID(ctx, 42)

		assert.ErrorIs(t, err, account.ErrNotFound)
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("should delete account", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectExec(`DELETE FROM accounts WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, r.DeleteAccount(ctx, id))
	})

	t.Run("should report missing account", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectExec(`DELETE FROM accounts WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, r.DeleteAccount(ctx, id), account.ErrNotFound)
	})
}

func TestTokens(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)

	t.Run("should upsert token", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectExec(`INSERT INTO tokens \(account_id,access_token,refresh_token,token_type,scope,expires_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\) ON CONFLICT \(account_id\) DO UPDATE SET`).
			WithArgs(accountID, "sealed-a", "sealed-r", "Bearer", "read", expiresAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.UpsertToken(ctx, account.Token{
			AccountID:    accountID,
			AccessToken:  "sealed-a",
			RefreshToken: "sealed-r",
			TokenType:    "Bearer",
			Scope:        "read",
			ExpiresAt:    expiresAt,
		})

		require.NoError(t, err)
	})

	t.Run("should map missing token", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT account_id, access_token, refresh_token, token_type, scope, expires_at, updated_at FROM tokens WHERE account_id = \$1`).
			WithArgs(accountID).
			WillReturnError(pgx.ErrNoRows)

		_, err := r.GetToken(ctx, accountID)

		assert.ErrorIs(t, err, account.ErrTokenNotFound)
	})
}
