package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/logodir/internal/platform/logging"
)

func TestRun_AllStages(t *testing.T) {
	var order []Stage

	op := Operation[int, string, string]{
		Name: "test.op",
		Validate: func(context.Context) error {
			order = append(order, StageValidate)
			return nil
		},
		Perform: func(context.Context) (int, error) {
			order = append(order, StagePerform)
			return 42, nil
		},
		Verify: func(_ context.Context, performed int) (string, error) {
			order = append(order, StageVerify)
			assert.Equal(t, 42, performed)

			return "verified", nil
		},
		Report: func(_ context.Context, verified string) (string, error) {
			order = append(order, StageReport)
			return verified + "!", nil
		},
	}

	got, err := Run(context.Background(), NewExecutor(nil), op)

	require.NoError(t, err)
	assert.Equal(t, "verified!", got)
	assert.Equal(t, []Stage{StageValidate, StagePerform, StageVerify, StageReport}, order)
}

func TestRun_StopsAtFailingStage(t *testing.T) {
	cause := errors.New("disk full")

	tests := []struct {
		name  string
		op    Operation[int, int, int]
		stage Stage
	}{
		{
			name:  "validate",
			op:    Operation[int, int, int]{Validate: func(context.Context) error { return cause }},
			stage: StageValidate,
		},
		{
			name:  "perform",
			op:    Operation[int, int, int]{Perform: func(context.Context) (int, error) { return 0, cause }},
			stage: StagePerform,
		},
		{
			name:  "verify",
			op:    Operation[int, int, int]{Verify: func(context.Context, int) (int, error) { return 0, cause }},
			stage: StageVerify,
		},
		{
			name:  "report",
			op:    Operation[int, int, int]{Report: func(context.Context, int) (int, error) { return 0, cause }},
			stage: StageReport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.op.Name = "test.op"

			_, err := Run(context.Background(), NewExecutor(nil), tt.op)

			require.Error(t, err)
			assert.ErrorIs(t, err, cause)

			stage, ok := FailedStage(err)
			require.True(t, ok)
			assert.Equal(t, tt.stage, stage)
			assert.Contains(t, err.Error(), "test.op: "+string(tt.stage))
		})
	}
}

func TestRun_PrefersRequestLogger(t *testing.T) {
	var execBuf, requestBuf bytes.Buffer

	exec := NewExecutor(slog.New(slog.NewTextHandler(&execBuf, nil)))
	ctx := logging.WithContext(context.Background(), slog.New(slog.NewTextHandler(&requestBuf, nil)))

	_, err := Run(ctx, exec, Operation[int, int, int]{Name: "test.op"})

	require.NoError(t, err)
	assert.Empty(t, execBuf.String())
	assert.Contains(t, requestBuf.String(), "operation=test.op")
}

func TestFailedStage_OtherError(t *testing.T) {
	_, ok := FailedStage(errBoom)

	assert.False(t, ok)
}
