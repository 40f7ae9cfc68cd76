package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/logodir/internal/platform/logging"
)

// Tracing headers echoed on every response.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// RequestID takes X-Request-ID from the request or generates a UUID, echoes
// it on the response and attaches it to the request context and logger.
func RequestID() gin.HandlerFunc {
	return idMiddleware(HeaderRequestID, string(ctxKeyRequestID), func(ctx context.Context, id string) context.Context {
		return logging.WithRequestID(ContextWithRequestID(ctx, id), id)
	})
}

// CorrelationID does the same for X-Correlation-ID, which callers keep
// stable across the requests of one user action.
func CorrelationID() gin.HandlerFunc {
	return idMiddleware(HeaderCorrelationID, string(ctxKeyCorrelationID), func(ctx context.Context, id string) context.Context {
		return logging.WithCorrelationID(ContextWithCorrelationID(ctx, id), id)
	})
}

// GetRequestID returns the request ID set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(ctxKeyRequestID))
}

// GetCorrelationID returns the correlation ID set by CorrelationID, or "".
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(string(ctxKeyCorrelationID))
}

func idMiddleware(header, key string, enrich func(context.Context, string) context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(header)
		if id == "" || len(id) > maxIDLength {
			id = uuid.NewString()
		}

		c.Set(key, id)
		c.Header(header, id)
		c.Request = c.Request.WithContext(enrich(c.Request.Context(), id))

		c.Next()
	}
}

// maxIDLength caps caller-supplied IDs before they reach logs and upstreams.
const maxIDLength = 128
