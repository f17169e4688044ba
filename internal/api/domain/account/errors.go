package account

import "errors"

var (
	// ErrNotFound is returned when account is not found
	ErrNotFound = errors.New("account not found")

	ErrTokenNotFound = errors.New("token not found")

	// ErrAccountMismatch means the OAuth grant and the profile belong to different sellers.
	ErrAccountMismatch = errors.New("token user does not match profile")

	// ErrReauthorizationRequired is returned when the refresh token was revoked and the
	// seller has to go through the login flow again.
	ErrReauthorizationRequired = errors.New("reauthorization required")
)
