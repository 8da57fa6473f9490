package adapter

import (
	"errors"
)

// Sentinel errors mapped from Remote Authority responses. Callers match them
// with [errors.Is]; the wrapped message carries the server's error text.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrUnexpectedStatus is returned for statuses without a dedicated
	// sentinel.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrNetwork wraps transport failures: refused connections, timeouts,
	// DNS errors and the like. The request may or may not have reached the
	// server.
	ErrNetwork = errors.New("network error")
)

// IsTransient reports whether err may go away on its own: network failures,
// 5xx responses and statuses this client does not understand. Rejections
// that a retry cannot fix (400, 401, 403, 404, 409) are not transient.
func IsTransient(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrForbidden),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConflict):
		return false
	default:
		return true
	}
}
