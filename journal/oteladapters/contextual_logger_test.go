package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/log/noop"

	"github.com/AntonStoeckl/resource-lending-go/journal/oteladapters"
)

func Test_SlogBridgeLogger_AllLevels(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)
	ctx := context.Background()

	// act
	logger.DebugContext(ctx, "debug message")
	logger.InfoContext(ctx, "info message")
	logger.WarnContext(ctx, "warn message")
	logger.ErrorContext(ctx, "error message")

	// assert
	output := buf.String()
	assert.Contains(t, output, `"level":"DEBUG","msg":"debug message"`)
	assert.Contains(t, output, `"level":"INFO","msg":"info message"`)
	assert.Contains(t, output, `"level":"WARN","msg":"warn message"`)
	assert.Contains(t, output, `"level":"ERROR","msg":"error message"`)
}

func Test_SlogBridgeLogger_WithAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(slog.NewJSONHandler(&buf, nil))

	logger.InfoContext(context.Background(), "command executed",
		"command_type", "BorrowResource",
		"event_count", 1,
		"late_fee", 1.5,
		"rejected", false,
	)

	output := buf.String()
	assert.Contains(t, output, `"command_type":"BorrowResource"`)
	assert.Contains(t, output, `"event_count":1`)
	assert.Contains(t, output, `"late_fee":1.5`)
	assert.Contains(t, output, `"rejected":false`)
}

func Test_SlogBridgeLogger_GlobalProvider(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("resource-lending-test")

	assert.NotPanics(t, func() {
		logger.InfoContext(context.Background(), "journal ready", "size", 0)
	})
}

func Test_OTelLogger_ArgumentHandling(t *testing.T) {
	logger := oteladapters.NewOTelLogger(noop.NewLoggerProvider().Logger("test"))
	ctx := context.Background()

	assert.NotPanics(t, func() {
		logger.DebugContext(ctx, "debug", "resource_id", "B001")
		logger.InfoContext(ctx, "info", "count", 3, "fee", 0.25, "ok", true, "due", struct{}{})
		logger.WarnContext(ctx, "dangling key", "key1", "value1", "key2")
		logger.ErrorContext(ctx, "non-string key", 42, "value")
	})
}
