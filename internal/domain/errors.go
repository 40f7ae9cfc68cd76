// Package domain holds the logo catalog model, the search and sort pipeline
// and the catalog-level errors.
//
// Domain errors describe catalog outcomes only. Adapters translate them into
// HTTP statuses or CLI exit codes.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates that a logo, or the markup it requires, cannot be resolved.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates two catalog records claim the same slug.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates a caller supplied an unusable value (sort order, variant, page).
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates the catalog backend cannot currently be reached.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError names the entity that could not be resolved.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// LogoNotFound is the error every failed logo lookup collapses into.
func LogoNotFound(slug string) error {
	return &NotFoundError{Entity: "logo", ID: slug}
}

// ConflictError reports a duplicate slug in a catalog source.
type ConflictError struct {
	Slug   string
	Source string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("duplicate slug %q in %s", e.Slug, e.Source)
	}

	return fmt.Sprintf("duplicate slug %q", e.Slug)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a duplicate slug error.
func NewConflictError(slug, source string) error {
	return &ConflictError{Slug: slug, Source: source}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a duplicate slug error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
