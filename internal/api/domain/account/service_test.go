package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"sellerops/internal/api/external/marketplace"
	"sellerops/pkg/cipher"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type accountMocks struct {
	repo     *MockAccountRepo
	tx       *MockTxAccountRepo
	oauth    *MockOAuthProvider
	profiles *MockProfileFetcher
	settings *MockSettingsInitializer
}

func newTestCipher(t *testing.T) *cipher.Encryptor {
	t.Helper()
	enc, err := cipher.NewEncryptor("test-encryption-key-0123456789")
	require.NoError(t, err)
	return enc
}

func accountService(t *testing.T) (*AccountService, accountMocks, *cipher.Encryptor) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := accountMocks{
		repo:     NewMockAccountRepo(ctrl),
		tx:       NewMockTxAccountRepo(ctrl),
		oauth:    NewMockOAuthProvider(ctrl),
		profiles: NewMockProfileFetcher(ctrl),
		settings: NewMockSettingsInitializer(ctrl),
	}
	enc := newTestCipher(t)
	tokens := NewTokenService(m.repo, m.oauth, enc)
	return NewAccountService(m.repo, m.oauth, m.profiles, tokens, m.settings), m, enc
}

func TestAccountService_Connect(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Now().Add(6 * time.Hour)
	grant := marketplace.Token{
		AccessToken:  "APP_USR-access",
		RefreshToken: "TG-refresh",
		TokenType:    "Bearer",
		UserID:       123456,
		ExpiresAt:    expiresAt,
	}
	user := marketplace.User{ID: 123456, Nickname: "TESTSELLER", Email: "s@example.com", SiteID: "MLA"}

	t.Run("should store account with sealed token", func(t *testing.T) {
		service, m, enc := accountService(t)
		acc := Account{ID: uuid.New(), MarketplaceUserID: user.ID, Nickname: user.Nickname}

		m.oauth.EXPECT().Exchange(ctx, "TG-code").Return(grant, nil)
		m.profiles.EXPECT().Me(ctx, grant.AccessToken).Return(user, nil)
		m.repo.EXPECT().InTransaction(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(TxAccountRepo) error) error { return fn(m.tx) })
		m.tx.EXPECT().UpsertAccount(ctx, NewAccount{
			MarketplaceUserID: 123456,
			Nickname:          "TESTSELLER",
			Email:             "s@example.com",
			SiteID:            "MLA",
		}).Return(acc, nil)
		m.tx.EXPECT().UpsertToken(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tok Token) error {
			assert.Equal(t, acc.ID, tok.AccountID)
			assert.NotEqual(t, grant.AccessToken, tok.AccessToken)
			plain, err := enc.Decrypt(tok.RefreshToken)
			require.NoError(t, err)
			assert.Equal(t, grant.RefreshToken, plain)
			return nil
		})
		m.settings.EXPECT().EnsureDefaults(ctx, acc.ID).Return(nil)

		result, err := service.Connect(ctx, "TG-code")

		require.NoError(t, err)
		assert.Equal(t, acc, result)
	})

	t.Run("should reject grant for a different seller", func(t *testing.T) {
		service, m, _ := accountService(t)
		m.oauth.EXPECT().Exchange(ctx, "TG-code").Return(grant, nil)
		m.profiles.EXPECT().Me(ctx, grant.AccessToken).Return(marketplace.User{ID: 999}, nil)

		_, err := service.Connect(ctx, "TG-code")

		assert.ErrorIs(t, err, ErrAccountMismatch)
	})

	t.Run("should fail when exchange fails", func(t *testing.T) {
		service, m, _ := accountService(t)
		m.oauth.EXPECT().Exchange(ctx, "bad").Return(marketplace.Token{}, marketplace.ErrUnauthorized)

		_, err := service.Connect(ctx, "bad")

		assert.ErrorIs(t, err, marketplace.ErrUnauthorized)
	})
}

func TestAccountService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name          string
		repoErr       error
		expectedError string
		expectedIs    error
	}{
		{name: "should delete account"},
		{name: "should pass not found through", repoErr: ErrNotFound, expectedIs: ErrNotFound},
		{name: "should wrap repository errors", repoErr: errors.New("database error"), expectedError: "delete account: database error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, m, _ := accountService(t)
			m.repo.EXPECT().DeleteAccount(ctx, id).Return(tc.repoErr)

			err := service.Delete(ctx, id)

			switch {
			case tc.expectedIs != nil:
				assert.ErrorIs(t, err, tc.expectedIs)
			case tc.expectedError != "":
				assert.EqualError(t, err, tc.expectedError)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccountService_ByMarketplaceUser(t *testing.T) {
	ctx := context.Background()
	service, m, _ := accountService(t)
	m.repo.EXPECT().GetAccountByMarketplaceUserID(ctx, int64(42)).Return(Account{}, ErrNotFound)

	_, err := service.ByMarketplaceUser(ctx, 42)

	assert.ErrorIs(t, err, ErrNotFound)
}
