package settings

import "errors"

var (
	// ErrNotFound is returned by the repo when the account has no settings row.
	ErrNotFound = errors.New("settings not found")

	ErrInvalidSettings = errors.New("invalid settings")
)
