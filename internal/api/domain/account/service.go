package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type AccountService struct {
	repo     AccountRepo
	oauth    OAuthProvider
	profiles ProfileFetcher
	tokens   *TokenService
	settings SettingsInitializer
}

func NewAccountService(
	repo AccountRepo,
	oauth OAuthProvider,
	profiles ProfileFetcher,
	tokens *TokenService,
	settings SettingsInitializer,
) *AccountService {
	return &AccountService{
		repo:     repo,
		oauth:    oauth,
		profiles: profiles,
		tokens:   tokens,
		settings: settings,
	}
}

// Connect completes the OAuth flow: it exchanges the code, loads the seller profile
// and stores the account with its sealed token. Reconnecting an existing seller
// updates the profile and replaces the token.
func (s *AccountService) Connect(ctx context.Context, code string) (Account, error) {
	grant, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return Account{}, fmt.Errorf("exchange code: %w", err)
	}

	user, err := s.profiles.Me(ctx, grant.AccessToken)
	if err != nil {
		return Account{}, fmt.Errorf("load profile: %w", err)
	}
	if grant.UserID != 0 && grant.UserID != user.ID {
		return Account{}, fmt.Errorf("%w: grant %d, profile %d", ErrAccountMismatch, grant.UserID, user.ID)
	}

	var acc Account
	err = s.repo.InTransaction(ctx, func(tx TxAccountRepo) error {
		acc, err = tx.UpsertAccount(ctx, NewAccount{
			MarketplaceUserID: user.ID,
			Nickname:          user.Nickname,
			Email:             user.Email,
			SiteID:            user.SiteID,
		})
		if err != nil {
			return fmt.Errorf("upsert account: %w", err)
		}

		tok, err := s.tokens.seal(tokenFromGrant(acc.ID, grant))
		if err != nil {
			return err
		}
		if err := tx.UpsertToken(ctx, tok); err != nil {
			return fmt.Errorf("store token: %w", err)
		}
		return nil
	})
	if err != nil {
		return Account{}, err
	}

	if err := s.settings.EnsureDefaults(ctx, acc.ID); err != nil {
		return Account{}, err
	}

	slog.InfoContext(ctx, "Account connected",
		slog.String("account_id", acc.ID.String()),
		slog.Int64("marketplace_user_id", acc.MarketplaceUserID))
	return acc, nil
}

func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (Account, error) {
	acc, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return Account{}, fmt.Errorf("get account: %w", err)
	}
	return acc, nil
}

// ByMarketplaceUser resolves the seller id carried by webhook notifications.
func (s *AccountService) ByMarketplaceUser(ctx context.Context, userID int64) (Account, error) {
	acc, err := s.repo.GetAccountByMarketplaceUserID(ctx, userID)
	if err != nil {
		return Account{}, fmt.Errorf("get account by marketplace user %d: %w", userID, err)
	}
	return acc, nil
}

func (s *AccountService) List(ctx context.Context) ([]Account, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// Delete removes the account; the store cascades to every synced row.
func (s *AccountService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteAccount(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete account: %w", err)
	}
	slog.InfoContext(ctx, "Account deleted", slog.String("account_id", id.String()))
	return nil
}
