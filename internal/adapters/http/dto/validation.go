package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrBinding marks a query that could not be decoded, such as page=abc.
var ErrBinding = errors.New("binding failed")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Field names in messages come
// from the form tag.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
			if name == "-" {
				return ""
			}

			return name
		})
	})

	return validate
}

// BindQuery decodes the query string into v and validates it. Decoding
// failures wrap ErrBinding; rule failures are a FieldErrors.
func BindQuery(c *gin.Context, v any) error {
	if err := c.ShouldBindQuery(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	if err := Validator().Struct(v); err != nil {
		return NewFieldErrors(err)
	}

	return nil
}

// FieldErrors is a validation failure reported per query parameter.
type FieldErrors map[string]string

// NewFieldErrors collects the field messages of a validator error.
func NewFieldErrors(err error) FieldErrors {
	fields := make(FieldErrors)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
	}

	return fields
}

// Error implements the error interface.
func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for field, msg := range f {
		parts = append(parts, field+": "+msg)
	}

	return "invalid query: " + strings.Join(parts, "; ")
}

var fieldMessages = map[string]string{
	"required": "this parameter is required",
	"oneof":    "must be one of: {param}",
	"min":      "must be at least {param}",
	"max":      "must be at most {param}",
	"gte":      "must be greater than or equal to {param}",
	"lte":      "must be less than or equal to {param}",
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Tag()]; ok {
		return strings.ReplaceAll(msg, "{param}", fe.Param())
	}

	return "failed validation: " + fe.Tag()
}
