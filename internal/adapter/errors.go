package adapter

import (
	"context"
	"errors"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("document not found")

	// ErrServerUnavailable covers every 5xx answer.
	ErrServerUnavailable = errors.New("remote store unavailable")

	// ErrTransport is a request that never got an answer.
	ErrTransport = errors.New("remote store transport error")

	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMalformedDocument is a remote document that does not decode into
	// its entity type.
	ErrMalformedDocument = errors.New("malformed remote document")

	ErrInvalidAdapterConfig = errors.New("invalid adapter configuration")
)

// IsRetryable reports whether a failed remote call may succeed later:
// transport failures and server-side errors. A cancelled context is not.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrServerUnavailable)
}

// IsRejected reports whether the remote store refused the request with a
// client error that replaying it cannot fix.
func IsRejected(err error) bool {
	return errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrNotFound)
}
