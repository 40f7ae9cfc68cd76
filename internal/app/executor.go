package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/logodir/internal/platform/logging"
)

// Operations that change the catalog run in four stages:
//
//	validate  check preconditions before anything is written
//	perform   make the change
//	verify    read the catalog back and confirm the change is visible
//	report    build the caller's result from the verified outcome
//
// A failing stage stops the run and is named in the returned StageError.

// Stage names one step of a staged operation.
type Stage string

const (
	StageValidate Stage = "validate"
	StagePerform  Stage = "perform"
	StageVerify   Stage = "verify"
	StageReport   Stage = "report"
)

// StageError records the stage an operation failed in.
type StageError struct {
	Operation string
	Stage     Stage
	Cause     error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Operation, e.Stage, e.Cause)
}

// Unwrap returns the cause so domain errors stay visible to errors.Is.
func (e *StageError) Unwrap() error {
	return e.Cause
}

// FailedStage returns the stage err was raised in.
func FailedStage(err error) (Stage, bool) {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage, true
	}

	return "", false
}

// Operation describes a staged change. P is what perform produced, V what
// verify confirmed and O what the caller gets back. Nil stages are skipped.
type Operation[P, V, O any] struct {
	Name     string
	Validate func(ctx context.Context) error
	Perform  func(ctx context.Context) (P, error)
	Verify   func(ctx context.Context, performed P) (V, error)
	Report   func(ctx context.Context, verified V) (O, error)
}

// Executor runs staged operations with logging around every stage.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates an Executor. A nil logger uses slog.Default.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Run executes op. The request logger from ctx wins over the executor's.
func Run[P, V, O any](ctx context.Context, exec *Executor, op Operation[P, V, O]) (O, error) {
	var zero O

	logger := exec.logger
	if requestLogger, ok := logging.Lookup(ctx); ok {
		logger = requestLogger
	}

	logger = logger.With(slog.String("operation", op.Name))
	start := time.Now()

	fail := func(stage Stage, err error) error {
		logger.WarnContext(ctx, "operation stage failed",
			slog.String("stage", string(stage)),
			slog.String("error", err.Error()),
		)

		return &StageError{Operation: op.Name, Stage: stage, Cause: err}
	}

	if op.Validate != nil {
		if err := op.Validate(ctx); err != nil {
			return zero, fail(StageValidate, err)
		}
	}

	var performed P

	if op.Perform != nil {
		var err error

		performed, err = op.Perform(ctx)
		if err != nil {
			return zero, fail(StagePerform, err)
		}
	}

	var verified V

	if op.Verify != nil {
		var err error

		verified, err = op.Verify(ctx, performed)
		if err != nil {
			return zero, fail(StageVerify, err)
		}
	}

	var result O

	if op.Report != nil {
		var err error

		result, err = op.Report(ctx, verified)
		if err != nil {
			return zero, fail(StageReport, err)
		}
	}

	logger.InfoContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}
