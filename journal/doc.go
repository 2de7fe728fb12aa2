// Package journal provides an in-memory, append-only log of lending events.
//
// Every decision taken by the lending operations (successful or not) is recorded as a
// StorableEvent: an event type, the time it occurred, and JSON payload and metadata.
// The journal is process-local; it does not outlive the process and is not meant as a
// persistence layer.
//
// Events can be read back with a Filter:
//
//	filter := journal.BuildFilter().
//		Matching().
//		AnyEventTypeOf(
//			core.ResourceBorrowedEventType,
//			core.ResourceReturnedEventType).
//		AndAnyPredicateOf(journal.P("MemberID", "M001")).
//		Finalize()
//
//	events, maxSeq, err := j.Query(ctx, filter)
//
// The observability interfaces (Logger, ContextualLogger, MetricsCollector, TracingCollector)
// are declared here as well, so that both the journal and the lending shell can be instrumented
// with the same adapters (see package oteladapters).
package journal
