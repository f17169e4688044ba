package account

import (
	"context"

	"sellerops/internal/api/external/marketplace"

	"github.com/google/uuid"
)

//go:generate mockgen -source ports.go -destination mock_ports.go -package account

type OAuthProvider interface {
	Exchange(ctx context.Context, code string) (marketplace.Token, error)
	Refresh(ctx context.Context, refreshToken string) (marketplace.Token, error)
}

type ProfileFetcher interface {
	Me(ctx context.Context, accessToken string) (marketplace.User, error)
}

type SettingsInitializer interface {
	EnsureDefaults(ctx context.Context, accountID uuid.UUID) error
}

// Cipher seals tokens at rest.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(encoded string) (string, error)
}
