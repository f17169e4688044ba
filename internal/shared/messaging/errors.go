package messaging

import "errors"

var (
	// ErrMaxRetriesExceeded is returned when all retry attempts fail.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
	ErrPermanent          = errors.New("permanent failure")
)

type permanentError struct {
	err error
}

func (e permanentError) Error() string { return e.err.Error() }
func (e permanentError) Unwrap() []error {
	return []error{ErrPermanent, e.err}
}

// Permanent marks err as not worth retrying (malformed payloads, unknown schemas).
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return permanentError{err: err}
}
