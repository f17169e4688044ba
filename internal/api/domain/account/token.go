package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sellerops/internal/api/external/marketplace"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// RefreshSkew is how long before expiry a token is refreshed.
const RefreshSkew = 5 * time.Minute

// refreshTimeout bounds a refresh once it is detached from its caller.
const refreshTimeout = 30 * time.Second

type TokenStore interface {
	UpsertToken(ctx context.Context, t Token) error
	GetToken(ctx context.Context, accountID uuid.UUID) (Token, error)
}

// TokenService hands out valid access tokens, refreshing them when needed.
// Concurrent callers for the same account share one refresh, since the
// marketplace rotates the refresh token on every use.
type TokenService struct {
	store  TokenStore
	oauth  OAuthProvider
	cipher Cipher
	now    func() time.Time
	group  singleflight.Group
}

func NewTokenService(store TokenStore, oauth OAuthProvider, cipher Cipher) *TokenService {
	return &TokenService{
		store:  store,
		oauth:  oauth,
		cipher: cipher,
		now:    time.Now,
	}
}

// AccessToken returns a token valid for at least RefreshSkew.
func (s *TokenService) AccessToken(ctx context.Context, accountID uuid.UUID) (string, error) {
	tok, err := s.Token(ctx, accountID)
	if err != nil {
		return "", err
	}
	if !tok.ExpiresWithin(s.now(), RefreshSkew) {
		return tok.AccessToken, nil
	}

	tok, err = s.Refresh(ctx, accountID)
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// Token loads and decrypts the stored token without refreshing it.
func (s *TokenService) Token(ctx context.Context, accountID uuid.UUID) (Token, error) {
	sealed, err := s.store.GetToken(ctx, accountID)
	if err != nil {
		return Token{}, fmt.Errorf("get token: %w", err)
	}
	return s.open(sealed)
}

// Refresh trades the stored refresh token for a new pair and persists it.
// The flight runs detached from ctx: the marketplace invalidates the old refresh
// token as soon as it answers, so the new pair must be stored even when the
// caller that started the flight has gone away.
func (s *TokenService) Refresh(ctx context.Context, accountID uuid.UUID) (Token, error) {
	v, err, _ := s.group.Do(accountID.String(), func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		current, err := s.Token(ctx, accountID)
		if err != nil {
			return Token{}, err
		}

		grant, err := s.oauth.Refresh(ctx, current.RefreshToken)
		if err != nil {
			if errors.Is(err, marketplace.ErrUnauthorized) {
				return Token{}, fmt.Errorf("%w: %v", ErrReauthorizationRequired, err)
			}
			return Token{}, fmt.Errorf("refresh token: %w", err)
		}

		next := tokenFromGrant(accountID, grant)
		sealed, err := s.seal(next)
		if err != nil {
			return Token{}, err
		}
		if err := s.store.UpsertToken(ctx, sealed); err != nil {
			return Token{}, fmt.Errorf("store refreshed token: %w", err)
		}

		slog.DebugContext(ctx, "Token refreshed",
			slog.String("account_id", accountID.String()),
			slog.Time("expires_at", next.ExpiresAt))
		return next, nil
	})
	if err != nil {
		return Token{}, err
	}
	return v.(Token), nil
}

func (s *TokenService) seal(t Token) (Token, error) {
	var err error
	if t.AccessToken, err = s.cipher.Encrypt(t.AccessToken); err != nil {
		return Token{}, fmt.Errorf("encrypt access token: %w", err)
	}
	if t.RefreshToken, err = s.cipher.Encrypt(t.RefreshToken); err != nil {
		return Token{}, fmt.Errorf("encrypt refresh token: %w", err)
	}
	return t, nil
}

func (s *TokenService) open(t Token) (Token, error) {
	var err error
	if t.AccessToken, err = s.cipher.Decrypt(t.AccessToken); err != nil {
		return Token{}, fmt.Errorf("decrypt access token: %w", err)
	}
	if t.RefreshToken, err = s.cipher.Decrypt(t.RefreshToken); err != nil {
		return Token{}, fmt.Errorf("decrypt refresh token: %w", err)
	}
	return t, nil
}

func tokenFromGrant(accountID uuid.UUID, grant marketplace.Token) Token {
	return Token{
		AccountID:    accountID,
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		TokenType:    grant.TokenType,
		Scope:        grant.Scope,
		ExpiresAt:    grant.ExpiresAt,
	}
}
