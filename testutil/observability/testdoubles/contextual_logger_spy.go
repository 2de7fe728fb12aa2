package testdoubles

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/resource-lending-go/journal"
)

// SpyLogRecord is one recorded log call.
type SpyLogRecord struct {
	Level   string
	Message string
}

// ContextualLoggerSpy captures log calls. It implements both journal.Logger and journal.ContextualLogger.
type ContextualLoggerSpy struct {
	records     []SpyLogRecord
	mu          sync.Mutex
	recordCalls bool
}

// NewContextualLoggerSpy creates a ContextualLoggerSpy.
func NewContextualLoggerSpy(recordCalls bool) *ContextualLoggerSpy {
	return &ContextualLoggerSpy{recordCalls: recordCalls}
}

func (s *ContextualLoggerSpy) record(level, msg string) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{Level: level, Message: msg})
}

// DebugContext implements journal.ContextualLogger.
func (s *ContextualLoggerSpy) DebugContext(_ context.Context, msg string, _ ...any) {
	s.record("debug", msg)
}

// InfoContext implements journal.ContextualLogger.
func (s *ContextualLoggerSpy) InfoContext(_ context.Context, msg string, _ ...any) {
	s.record("info", msg)
}

// WarnContext implements journal.ContextualLogger.
func (s *ContextualLoggerSpy) WarnContext(_ context.Context, msg string, _ ...any) {
	s.record("warn", msg)
}

// ErrorContext implements journal.ContextualLogger.
func (s *ContextualLoggerSpy) ErrorContext(_ context.Context, msg string, _ ...any) {
	s.record("error", msg)
}

// Debug implements journal.Logger.
func (s *ContextualLoggerSpy) Debug(msg string, _ ...any) { s.record("debug", msg) }

// Info implements journal.Logger.
func (s *ContextualLoggerSpy) Info(msg string, _ ...any) { s.record("info", msg) }

// Warn implements journal.Logger.
func (s *ContextualLoggerSpy) Warn(msg string, _ ...any) { s.record("warn", msg) }

// Error implements journal.Logger.
func (s *ContextualLoggerSpy) Error(msg string, _ ...any) { s.record("error", msg) }

// HasDebugLog reports whether a debug message was logged.
func (s *ContextualLoggerSpy) HasDebugLog(message string) bool { return s.has("debug", message) }

// HasInfoLog reports whether an info message was logged.
func (s *ContextualLoggerSpy) HasInfoLog(message string) bool { return s.has("info", message) }

// HasWarnLog reports whether a warn message was logged.
func (s *ContextualLoggerSpy) HasWarnLog(message string) bool { return s.has("warn", message) }

// HasErrorLog reports whether an error message was logged.
func (s *ContextualLoggerSpy) HasErrorLog(message string) bool { return s.has("error", message) }

func (s *ContextualLoggerSpy) has(level, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.Level == level && r.Message == message {
			return true
		}
	}

	return false
}

var (
	_ journal.ContextualLogger = (*ContextualLoggerSpy)(nil)
	_ journal.Logger           = (*ContextualLoggerSpy)(nil)
)
