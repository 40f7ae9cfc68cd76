// Package clients provides the outbound HTTP client used by the cdn
// catalog source.
package clients

import (
	"errors"
	"fmt"
)

// Infrastructure failures. Callers in acl translate them into domain errors.
var (
	// ErrCircuitOpen means the breaker is rejecting requests to the host.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last failure after every attempt failed.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)

// StatusError is returned by Fetch for a response outside the 2xx range.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}
