package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers transport failures and gateway-class responses
	// (502/503/504). Idempotent GETs are retried on it.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned on HTTP 401 after the credential source
	// has been notified.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned on HTTP 404.
	ErrNotFound = errors.New("not found")
)

// Error carries the status code and the server's human-readable detail
// message for non-2xx responses that are not covered by a sentinel above.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Status, e.Detail)
}
