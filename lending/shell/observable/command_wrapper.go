package observable

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/resource-lending-go/lending/shell"
)

// ErrNilCoreHandler is returned when NewCommandWrapper or NewQueryWrapper gets no handler to wrap.
var ErrNilCoreHandler = errors.New("core handler must not be nil")

// CommandWrapper adds metrics, tracing and logging to a core command handler.
// A command refused by a lending rule is reported as "rejected", not as an error.
type CommandWrapper[C shell.Command] struct {
	coreHandler      shell.CoreCommandHandler[C]
	commandType      string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewCommandWrapper creates a CommandWrapper around coreHandler.
func NewCommandWrapper[C shell.Command](
	coreHandler shell.CoreCommandHandler[C],
	opts ...CommandOption[C],
) (*CommandWrapper[C], error) {
	if coreHandler == nil {
		return nil, ErrNilCoreHandler
	}

	var zeroCommand C

	wrapper := &CommandWrapper[C]{
		coreHandler: coreHandler,
		commandType: zeroCommand.CommandType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle delegates to the core handler and records the outcome.
func (w *CommandWrapper[C]) Handle(ctx context.Context, command C) (shell.HandlerResult, error) {
	start := time.Now()
	ctx, span := shell.StartCommandSpan(ctx, w.tracingCollector, w.commandType)
	shell.LogInfo(ctx, w.logger, w.contextualLogger, shell.LogMsgCommandStarted, shell.LogAttrCommandType, w.commandType)

	result, err := w.coreHandler.Handle(ctx, command)
	duration := time.Since(start)

	switch {
	case err != nil && result.Rejected:
		w.recordRejected(ctx, result, err, duration, span)
	case err != nil:
		w.recordError(ctx, err, duration, span)
	case result.Idempotent:
		w.recordSuccess(ctx, shell.StatusIdempotent, duration, span)
	default:
		w.recordSuccess(ctx, shell.StatusSuccess, duration, span)
	}

	return result, err
}

// CommandOption configures a CommandWrapper.
type CommandOption[C shell.Command] func(*CommandWrapper[C]) error

// WithCommandMetrics sets the metrics collector.
func WithCommandMetrics[C shell.Command](collector shell.MetricsCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithCommandTracing sets the tracing collector.
func WithCommandTracing[C shell.Command](collector shell.TracingCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.tracingCollector = collector
		return nil
	}
}

// WithCommandContextualLogging sets the contextual logger. It takes precedence over WithCommandLogging.
func WithCommandContextualLogging[C shell.Command](logger shell.ContextualLogger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithCommandLogging sets the basic logger.
func WithCommandLogging[C shell.Command](logger shell.Logger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.logger = logger
		return nil
	}
}

/*** Observability helper methods ***/

func (w *CommandWrapper[C]) recordSuccess(ctx context.Context, status string, duration time.Duration, span shell.SpanContext) {
	shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, status, duration)
	shell.FinishSpan(w.tracingCollector, span, status, duration, nil)
	shell.LogInfo(ctx, w.logger, w.contextualLogger, shell.LogMsgCommandCompleted,
		shell.LogAttrCommandType, w.commandType,
		shell.LogAttrBusinessOutcome, status,
		shell.LogAttrDurationMS, shell.ToMilliseconds(duration),
	)
}

func (w *CommandWrapper[C]) recordRejected(
	ctx context.Context,
	result shell.HandlerResult,
	err error,
	duration time.Duration,
	span shell.SpanContext,
) {
	shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, shell.StatusRejected, duration)
	shell.FinishSpan(w.tracingCollector, span, shell.StatusRejected, duration, err)
	shell.LogWarn(ctx, w.logger, w.contextualLogger, shell.LogMsgCommandRejected,
		shell.LogAttrCommandType, w.commandType,
		shell.LogAttrEventType, result.EventType,
		shell.LogAttrError, err.Error(),
		shell.LogAttrDurationMS, shell.ToMilliseconds(duration),
	)
}

func (w *CommandWrapper[C]) recordError(ctx context.Context, err error, duration time.Duration, span shell.SpanContext) {
	status := shell.ErrorStatus(err)

	shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, status, duration)
	shell.FinishSpan(w.tracingCollector, span, status, duration, err)
	shell.LogError(ctx, w.logger, w.contextualLogger, shell.LogMsgCommandFailed,
		shell.LogAttrCommandType, w.commandType,
		shell.LogAttrStatus, status,
		shell.LogAttrError, err.Error(),
	)
}
