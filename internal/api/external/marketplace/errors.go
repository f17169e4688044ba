package marketplace

import "errors"

var (
	ErrBadRequest = errors.New("marketplace: bad request")
	// ErrUnauthorized means the access token is invalid or revoked.
	ErrUnauthorized = errors.New("marketplace: unauthorized")
	ErrForbidden    = errors.New("marketplace: forbidden")
	ErrNotFound     = errors.New("marketplace: resource not found")
	// ErrRateLimited is retried with backoff.
	ErrRateLimited = errors.New("marketplace: rate limited")
	// ErrServiceUnavailable covers 5xx responses and transport failures. Retried.
	ErrServiceUnavailable = errors.New("marketplace: service unavailable")
)
