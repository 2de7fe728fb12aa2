package testdoubles

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/resource-lending-go/journal"
)

// SpySpanContext identifies one span started by the TracingCollectorSpy. Status and attributes set on it directly
// are not recorded, only those passed to FinishSpan.
type SpySpanContext struct {
	index int
}

// SetStatus implements journal.SpanContext.
func (c *SpySpanContext) SetStatus(string) {}

// AddAttribute implements journal.SpanContext.
func (c *SpySpanContext) AddAttribute(string, string) {}

// SpySpanRecord is one started (and possibly finished) span.
type SpySpanRecord struct {
	Name            string
	StartAttributes map[string]string
	Status          string
	EndAttributes   map[string]string
	SpanContext     *SpySpanContext
}

// TracingCollectorSpy captures spans. It implements journal.TracingCollector.
type TracingCollectorSpy struct {
	spanRecords []SpySpanRecord
	mu          sync.Mutex
	recordCalls bool
}

// NewTracingCollectorSpy creates a TracingCollectorSpy.
func NewTracingCollectorSpy(recordCalls bool) *TracingCollectorSpy {
	return &TracingCollectorSpy{recordCalls: recordCalls}
}

// StartSpan implements journal.TracingCollector.
func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, journal.SpanContext) {
	if !s.recordCalls {
		return ctx, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	spanCtx := &SpySpanContext{index: len(s.spanRecords)}
	s.spanRecords = append(s.spanRecords, SpySpanRecord{
		Name:            name,
		StartAttributes: copyLabels(attrs),
		SpanContext:     spanCtx,
	})

	return ctx, spanCtx
}

// FinishSpan implements journal.TracingCollector.
func (s *TracingCollectorSpy) FinishSpan(spanCtx journal.SpanContext, status string, attrs map[string]string) {
	spySpan, ok := spanCtx.(*SpySpanContext)
	if !s.recordCalls || !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.spanRecords[spySpan.index].Status = status
	s.spanRecords[spySpan.index].EndAttributes = copyLabels(attrs)
}

// GetSpanRecordCount returns the number of started spans.
func (s *TracingCollectorSpy) GetSpanRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.spanRecords)
}

// SpanRecordMatcher narrows down span records by status and attributes.
type SpanRecordMatcher struct {
	candidates []SpySpanRecord
}

// HasSpanRecordForName starts a matcher chain over spans named name.
func (s *TracingCollectorSpy) HasSpanRecordForName(name string) *SpanRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &SpanRecordMatcher{}
	for _, r := range s.spanRecords {
		if r.Name == name {
			m.candidates = append(m.candidates, r)
		}
	}

	return m
}

// WithStatus keeps spans finished with status.
func (m *SpanRecordMatcher) WithStatus(status string) *SpanRecordMatcher {
	return m.keep(func(r SpySpanRecord) bool { return r.Status == status })
}

// WithStartAttribute keeps spans started with key=value.
func (m *SpanRecordMatcher) WithStartAttribute(key, value string) *SpanRecordMatcher {
	return m.keep(func(r SpySpanRecord) bool { return labelsContain(r.StartAttributes, key, value) })
}

// WithEndAttribute keeps spans finished with key=value.
func (m *SpanRecordMatcher) WithEndAttribute(key, value string) *SpanRecordMatcher {
	return m.keep(func(r SpySpanRecord) bool { return labelsContain(r.EndAttributes, key, value) })
}

func (m *SpanRecordMatcher) keep(pred func(SpySpanRecord) bool) *SpanRecordMatcher {
	kept := m.candidates[:0:0]
	for _, r := range m.candidates {
		if pred(r) {
			kept = append(kept, r)
		}
	}
	m.candidates = kept

	return m
}

// Assert reports whether at least one span survived the chain.
func (m *SpanRecordMatcher) Assert() bool {
	return len(m.candidates) > 0
}

var _ journal.TracingCollector = (*TracingCollectorSpy)(nil)
