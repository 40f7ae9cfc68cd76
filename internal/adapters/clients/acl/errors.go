package acl

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jsamuelsen/logodir/internal/adapters/clients"
	"github.com/jsamuelsen/logodir/internal/domain"
)

// MapFetchError translates an error from clients.Client.Fetch into a domain
// error. entity and id name what was being fetched for not-found results.
func MapFetchError(err error, service, operation, entity, id string) error {
	if err == nil {
		return nil
	}

	var statusErr *clients.StatusError
	if errors.As(err, &statusErr) {
		return mapStatus(statusErr.StatusCode, service, operation, entity, id)
	}

	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(service, "circuit breaker open during "+operation)

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(service, "max retries exceeded during "+operation)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return domain.NewUnavailableError(service, operation+" abandoned: "+err.Error())

	default:
		return domain.NewUnavailableError(service, fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatus(status int, service, operation, entity, id string) error {
	switch status {
	case http.StatusNotFound, http.StatusGone:
		return domain.NewNotFoundError(entity, id)

	case http.StatusTooManyRequests:
		return domain.NewUnavailableError(service, "rate limit exceeded")

	default:
		return domain.NewUnavailableError(service, fmt.Sprintf("%s failed with status %d", operation, status))
	}
}
