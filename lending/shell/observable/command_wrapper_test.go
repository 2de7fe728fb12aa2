package observable_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/resource-lending-go/journal"
	"github.com/AntonStoeckl/resource-lending-go/lending/core"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/borrowresource"
	"github.com/AntonStoeckl/resource-lending-go/lending/shell"
	"github.com/AntonStoeckl/resource-lending-go/lending/shell/observable"
	. "github.com/AntonStoeckl/resource-lending-go/testutil/observability/testdoubles" //nolint:revive
)

func Test_CommandWrapper_NewCommandWrapper_NilHandler(t *testing.T) {
	wrapper, err := observable.NewCommandWrapper[mockCommand](nil)

	assert.ErrorIs(t, err, observable.ErrNilCoreHandler)
	assert.Nil(t, wrapper)
}

func Test_CommandWrapper_Handle_Success(t *testing.T) {
	// arrange
	expectedResult := shell.NewSuccessResult(core.ResourceBorrowedEventType)
	handler := newMockHandler(expectedResult, nil)
	metricsCollector := NewMetricsCollectorSpy(true)
	tracingCollector := NewTracingCollectorSpy(true)
	contextualLogger := NewContextualLoggerSpy(true)

	wrapper, err := observable.NewCommandWrapper[mockCommand](
		handler,
		observable.WithCommandMetrics[mockCommand](metricsCollector),
		observable.WithCommandTracing[mockCommand](tracingCollector),
		observable.WithCommandContextualLogging[mockCommand](contextualLogger),
	)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), mockCommand{})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, expectedResult, result)
	assert.Len(t, handler.calls, 1)

	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerCallsMetric).
		WithLabel(shell.LogAttrCommandType, "TestCommand").
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.True(t, metricsCollector.HasDurationRecordForMetric(shell.CommandHandlerDurationMetric).
		WithLabel(shell.LogAttrCommandType, "TestCommand").
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.True(t, tracingCollector.HasSpanRecordForName(shell.SpanNameCommandHandle).
		WithStartAttribute(shell.LogAttrCommandType, "TestCommand").
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgCommandStarted))
	assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgCommandCompleted))
}

func Test_CommandWrapper_Handle_Idempotent(t *testing.T) {
	handler := newMockHandler(shell.NewIdempotentResult(), nil)
	metricsCollector := NewMetricsCollectorSpy(true)
	wrapper, err := observable.NewCommandWrapper[mockCommand](handler, observable.WithCommandMetrics[mockCommand](metricsCollector))
	require.NoError(t, err)

	result, err := wrapper.Handle(context.Background(), mockCommand{})

	assert.NoError(t, err)
	assert.True(t, result.Idempotent)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerIdempotentMetric).
		WithLabel(shell.LogAttrCommandType, "TestCommand").
		Assert())
}

func Test_CommandWrapper_Handle_Errors(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus string
		expectedMetric string
	}{
		{
			name:           "canceled",
			err:            fmt.Errorf("executing: %w", context.Canceled),
			expectedStatus: shell.StatusCanceled,
			expectedMetric: shell.CommandHandlerCanceledMetric,
		},
		{
			name:           "timeout",
			err:            context.DeadlineExceeded,
			expectedStatus: shell.StatusTimeout,
			expectedMetric: shell.CommandHandlerCanceledMetric,
		},
		{
			name:           "unknown member",
			err:            fmt.Errorf("%w: M404", shell.ErrMemberNotFound),
			expectedStatus: shell.StatusError,
			expectedMetric: shell.CommandHandlerCallsMetric,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			handler := newMockHandler(shell.NewErrorResult(), tc.err)
			metricsCollector := NewMetricsCollectorSpy(true)
			tracingCollector := NewTracingCollectorSpy(true)
			logger := NewContextualLoggerSpy(true)
			wrapper, err := observable.NewCommandWrapper[mockCommand](
				handler,
				observable.WithCommandMetrics[mockCommand](metricsCollector),
				observable.WithCommandTracing[mockCommand](tracingCollector),
				observable.WithCommandLogging[mockCommand](logger),
			)
			require.NoError(t, err)

			// act
			_, err = wrapper.Handle(context.Background(), mockCommand{})

			// assert
			assert.ErrorIs(t, err, tc.err)
			assert.True(t, metricsCollector.HasCounterRecordForMetric(tc.expectedMetric).
				WithStatus(tc.expectedStatus).
				Assert())
			assert.True(t, tracingCollector.HasSpanRecordForName(shell.SpanNameCommandHandle).
				WithStatus(tc.expectedStatus).
				WithEndAttribute(shell.LogAttrError, tc.err.Error()).
				Assert())
			assert.True(t, logger.HasErrorLog(shell.LogMsgCommandFailed))
		})
	}
}

func Test_CommandWrapper_Handle_RejectedBorrow(t *testing.T) {
	// arrange
	ctx := context.Background()
	library := shell.NewLibrary(journal.NewMemoryJournal())
	require.NoError(t, library.AddResource(ctx, core.Book{ID: "B001", Title: "Go"}, false))
	require.NoError(t, library.RegisterMember(ctx, core.Member{ID: "M001", Name: "Alice", Tier: core.TierStandard}))
	metricsCollector := NewMetricsCollectorSpy(true)
	logger := NewContextualLoggerSpy(true)
	wrapper, err := observable.NewCommandWrapper[borrowresource.Command](
		borrowresource.NewCommandHandler(library),
		observable.WithCommandMetrics[borrowresource.Command](metricsCollector),
		observable.WithCommandContextualLogging[borrowresource.Command](logger),
	)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(ctx, borrowresource.BuildCommand("B001", "M001", time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrResourceUnavailable)
	assert.True(t, result.Rejected)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerRejectedMetric).
		WithLabel(shell.LogAttrCommandType, "BorrowResource").
		Assert())
	assert.False(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerCallsMetric).
		WithStatus(shell.StatusError).
		Assert())
	assert.True(t, logger.HasWarnLog(shell.LogMsgCommandRejected))
	assert.False(t, logger.HasErrorLog(shell.LogMsgCommandFailed))
}

func Test_CommandWrapper_Handle_WithoutOptionsOnlyDelegates(t *testing.T) {
	handlerErr := errors.New("boom")
	handler := newMockHandler(shell.NewErrorResult(), handlerErr)
	wrapper, err := observable.NewCommandWrapper[mockCommand](handler)
	require.NoError(t, err)

	_, err = wrapper.Handle(context.Background(), mockCommand{})

	assert.ErrorIs(t, err, handlerErr)
	assert.Len(t, handler.calls, 1)
}

type mockCommand struct{}

func (c mockCommand) CommandType() string {
	return "TestCommand"
}

type mockCoreHandler struct {
	result shell.HandlerResult
	err    error
	calls  []mockCommand
}

func (h *mockCoreHandler) Handle(_ context.Context, command mockCommand) (shell.HandlerResult, error) {
	h.calls = append(h.calls, command)
	return h.result, h.err
}

func newMockHandler(result shell.HandlerResult, err error) *mockCoreHandler {
	return &mockCoreHandler{result: result, err: err}
}
