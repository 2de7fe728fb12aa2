// Package observable wraps command and query handlers with metrics, tracing and logging,
// keeping the feature handlers free of instrumentation.
//
// Wrappers are applied at wiring time:
//
//	core := borrowresource.NewCommandHandler(library)
//	handler, err := observable.NewCommandWrapper[borrowresource.Command](
//		core,
//		observable.WithCommandMetrics[borrowresource.Command](metricsCollector),
//		observable.WithCommandTracing[borrowresource.Command](tracingCollector),
//		observable.WithCommandContextualLogging[borrowresource.Command](logger),
//	)
//
// Every option is optional; a wrapper without options only delegates.
package observable
