package journal

import (
	"context"
	"strconv"
	"sync"
	"time"
)

const (
	// AppendDurationMetric tracks how long an append took.
	AppendDurationMetric = "journal_append_duration_seconds"

	// AppendedEventsMetric counts appended events per event type.
	AppendedEventsMetric = "journal_appended_events_total"

	// QueryDurationMetric tracks how long a query took.
	QueryDurationMetric = "journal_query_duration_seconds"

	// SizeMetric records the number of events held by the journal after an append.
	SizeMetric = "journal_size_events"

	spanNameAppend = "journal.append"
	spanNameQuery  = "journal.query"

	logMsgEventsAppended = "events appended"
	logMsgQueryCompleted = "query completed"

	logAttrEventType  = "event_type"
	logAttrEventCount = "event_count"
	logAttrMaxSeq     = "max_sequence"
	logAttrDurationMS = "duration_ms"
	logAttrOperation  = "operation"

	statusSuccess = "success"
)

// MemoryJournal is a concurrency-safe, in-memory Journal.
type MemoryJournal struct {
	mu     sync.RWMutex
	events StorableEvents

	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// Option configures a MemoryJournal.
type Option func(*MemoryJournal)

// WithLogger sets a basic logger. Appends are logged at debug level.
func WithLogger(logger Logger) Option {
	return func(j *MemoryJournal) {
		j.logger = logger
	}
}

// WithContextualLogger sets a context-aware logger; it takes precedence over WithLogger.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(j *MemoryJournal) {
		j.contextualLogger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(collector MetricsCollector) Option {
	return func(j *MemoryJournal) {
		j.metricsCollector = collector
	}
}

// WithTracing sets the tracing collector.
func WithTracing(collector TracingCollector) Option {
	return func(j *MemoryJournal) {
		j.tracingCollector = collector
	}
}

// NewMemoryJournal creates an empty MemoryJournal.
func NewMemoryJournal(opts ...Option) *MemoryJournal {
	j := &MemoryJournal{
		events: make(StorableEvents, 0),
	}

	for _, opt := range opts {
		opt(j)
	}

	return j
}

// Append assigns consecutive sequence numbers to the events and adds them to the journal.
func (j *MemoryJournal) Append(ctx context.Context, events ...StorableEvent) error {
	if len(events) == 0 {
		return ErrNilEventSupplied
	}

	start := time.Now()
	ctx, span := j.startSpan(ctx, spanNameAppend, map[string]string{logAttrEventCount: strconv.Itoa(len(events))})

	j.mu.Lock()
	for _, event := range events {
		event.SequenceNumber = uint(len(j.events)) + 1
		j.events = append(j.events, event)
	}
	size := len(j.events)
	j.mu.Unlock()

	duration := time.Since(start)
	j.finishSpan(span, map[string]string{logAttrMaxSeq: strconv.Itoa(size)})

	for _, event := range events {
		j.incrementCounter(ctx, AppendedEventsMetric, map[string]string{logAttrEventType: event.EventType})
	}
	j.recordDuration(ctx, AppendDurationMetric, duration, map[string]string{logAttrOperation: "append"})
	j.recordValue(ctx, SizeMetric, float64(size))
	j.debug(ctx, logMsgEventsAppended,
		logAttrEventCount, len(events),
		logAttrMaxSeq, size,
		logAttrDurationMS, float64(duration.Nanoseconds())/1e6,
	)

	return nil
}

// Query returns all events matching the filter in append order, plus the highest sequence number in the journal.
func (j *MemoryJournal) Query(ctx context.Context, filter Filter) (StorableEvents, MaxSequenceNumberUint, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	start := time.Now()
	ctx, span := j.startSpan(ctx, spanNameQuery, nil)

	j.mu.RLock()
	matched := make(StorableEvents, 0)
	for _, event := range j.events {
		if filter.Matches(event) {
			matched = append(matched, event)
		}
	}
	maxSeq := MaxSequenceNumberUint(len(j.events))
	j.mu.RUnlock()

	duration := time.Since(start)
	j.finishSpan(span, map[string]string{logAttrEventCount: strconv.Itoa(len(matched))})
	j.recordDuration(ctx, QueryDurationMetric, duration, map[string]string{logAttrOperation: "query"})
	j.debug(ctx, logMsgQueryCompleted,
		logAttrEventCount, len(matched),
		logAttrMaxSeq, maxSeq,
		logAttrDurationMS, float64(duration.Nanoseconds())/1e6,
	)

	return matched, maxSeq, nil
}

// Len returns the number of events in the journal.
func (j *MemoryJournal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return len(j.events)
}

func (j *MemoryJournal) debug(ctx context.Context, msg string, args ...any) {
	if j.contextualLogger != nil {
		j.contextualLogger.DebugContext(ctx, msg, args...)
	} else if j.logger != nil {
		j.logger.Debug(msg, args...)
	}
}

func (j *MemoryJournal) startSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext) {
	if j.tracingCollector == nil {
		return ctx, nil
	}

	return j.tracingCollector.StartSpan(ctx, name, attrs)
}

func (j *MemoryJournal) finishSpan(span SpanContext, attrs map[string]string) {
	if j.tracingCollector == nil || span == nil {
		return
	}

	j.tracingCollector.FinishSpan(span, statusSuccess, attrs)
}

func (j *MemoryJournal) recordDuration(ctx context.Context, metric string, d time.Duration, labels map[string]string) {
	if j.metricsCollector == nil {
		return
	}

	if c, ok := j.metricsCollector.(ContextualMetricsCollector); ok {
		c.RecordDurationContext(ctx, metric, d, labels)
		return
	}

	j.metricsCollector.RecordDuration(metric, d, labels)
}

func (j *MemoryJournal) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if j.metricsCollector == nil {
		return
	}

	if c, ok := j.metricsCollector.(ContextualMetricsCollector); ok {
		c.IncrementCounterContext(ctx, metric, labels)
		return
	}

	j.metricsCollector.IncrementCounter(metric, labels)
}

func (j *MemoryJournal) recordValue(ctx context.Context, metric string, value float64) {
	if j.metricsCollector == nil {
		return
	}

	if c, ok := j.metricsCollector.(ContextualMetricsCollector); ok {
		c.RecordValueContext(ctx, metric, value, nil)
		return
	}

	j.metricsCollector.RecordValue(metric, value, nil)
}
