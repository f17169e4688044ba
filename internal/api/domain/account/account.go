package account

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID                uuid.UUID `json:"id"`
	MarketplaceUserID int64     `json:"marketplace_user_id"`
	Nickname          string    `json:"nickname"`
	Email             string    `json:"email"`
	SiteID            string    `json:"site_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewAccount is the profile data written on every successful OAuth login.
type NewAccount struct {
	MarketplaceUserID int64
	Nickname          string
	Email             string
	SiteID            string
}

// Token holds the marketplace credentials of an account. AccessToken and
// RefreshToken are plaintext here; TokenService seals them before they reach the repo.
type Token struct {
	AccountID    uuid.UUID
	AccessToken  string
	RefreshToken string
	TokenType    string
	Scope        string
	ExpiresAt    time.Time
	UpdatedAt    time.Time
}

// ExpiresWithin reports whether the token is expired or will be within d.
func (t Token) ExpiresWithin(now time.Time, d time.Duration) bool {
	return !t.ExpiresAt.After(now.Add(d))
}
