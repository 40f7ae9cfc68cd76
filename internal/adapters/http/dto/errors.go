// Package dto holds the request and response shapes of the catalog API and
// the error envelope every failure is written in.
package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/logodir/internal/domain"
	"github.com/jsamuelsen/logodir/internal/platform/logging"
)

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail is the body of the envelope. Details carries per-field
// messages for validation failures.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Machine-readable error codes.
const (
	ErrorCodeNotFound    = "NOT_FOUND"
	ErrorCodeConflict    = "CONFLICT"
	ErrorCodeValidation  = "VALIDATION_ERROR"
	ErrorCodeBadRequest  = "BAD_REQUEST"
	ErrorCodeUnavailable = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal    = "INTERNAL_ERROR"
)

// NewErrorResponse creates an envelope with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// WithDetails sets per-field details.
func (e *ErrorResponse) WithDetails(details map[string]string) *ErrorResponse {
	e.Error.Details = details
	return e
}

// WithTraceID sets the trace ID.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// MapError converts an error into a status and envelope. Unknown errors
// become a 500 with a generic message.
func MapError(err error) (int, *ErrorResponse) {
	var (
		code   string
		fields FieldErrors
	)

	switch {
	case errors.As(err, &fields):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeValidation, "request validation failed").WithDetails(fields)
	case domain.IsNotFound(err):
		code = ErrorCodeNotFound
	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.WithDetails(map[string]string{validationErr.Field: validationErr.Message})
		}

		return http.StatusBadRequest, resp
	case errors.Is(err, ErrBinding):
		code = ErrorCodeBadRequest
	case domain.IsConflict(err):
		code = ErrorCodeConflict
	case domain.IsUnavailable(err):
		code = ErrorCodeUnavailable
	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}

	return HTTPStatusFromCode(code), NewErrorResponse(code, err.Error())
}

// HandleError writes err as an error envelope and aborts the chain.
// Internal errors are logged with their cause.
func HandleError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	status, resp := MapError(err)
	resp.WithTraceID(TraceID(ctx))

	if status == http.StatusInternalServerError {
		logging.FromContext(ctx).ErrorContext(ctx, "internal error", slog.String("error", err.Error()))
	}

	c.AbortWithStatusJSON(status, resp)
}

// TraceID returns the active trace ID in ctx, or "".
func TraceID(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return ""
}
