// Package oteladapters implements the journal observability interfaces on top of OpenTelemetry.
//
// The same adapters serve the lending command handlers, because the lending shell
// reuses the journal interfaces:
//
//	logger := oteladapters.NewSlogBridgeLogger("resource-lending")
//	metrics := oteladapters.NewMetricsCollector(otel.Meter("resource-lending"))
//	tracing := oteladapters.NewTracingCollector(otel.Tracer("resource-lending"))
//
//	j := journal.NewMemoryJournal(
//		journal.WithContextualLogger(logger),
//		journal.WithMetrics(metrics),
//		journal.WithTracing(tracing),
//	)
package oteladapters
