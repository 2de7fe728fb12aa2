package main

import (
	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/resource-lending-go/journal"
	"github.com/AntonStoeckl/resource-lending-go/journal/oteladapters"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/borrowresource"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/cancelreservation"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/renewloan"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/reserveresource"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/returnresource"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/query/memberloans"
	"github.com/AntonStoeckl/resource-lending-go/lending/shell"
	"github.com/AntonStoeckl/resource-lending-go/lending/shell/config"
	"github.com/AntonStoeckl/resource-lending-go/lending/shell/observable"
)

const instrumentationName = "github.com/AntonStoeckl/resource-lending-go"

// lendingApp holds the library and every handler, each wrapped with observability.
type lendingApp struct {
	journal *journal.MemoryJournal
	library *shell.Library

	borrow  *observable.CommandWrapper[borrowresource.Command]
	ret     *observable.CommandWrapper[returnresource.Command]
	renew   *observable.CommandWrapper[renewloan.Command]
	reserve *observable.CommandWrapper[reserveresource.Command]
	cancel  *observable.CommandWrapper[cancelreservation.Command]
	loans   *observable.QueryWrapper[memberloans.Query, memberloans.Result]
}

// newContextualLogger emits through the OpenTelemetry LoggerProvider when the otel exporter is selected,
// otherwise through the configured slog handler.
func newContextualLogger(rt *runtime) shell.ContextualLogger {
	if rt.cfg.Log.Exporter == config.LogExporterOTel && rt.providers != nil {
		return oteladapters.NewOTelLogger(rt.providers.LoggerProvider.Logger(instrumentationName))
	}

	return oteladapters.NewSlogBridgeLoggerWithHandler(rt.logger.Handler())
}

func newLendingApp(rt *runtime, opts ...shell.LibraryOption) (*lendingApp, error) {
	logger := newContextualLogger(rt)
	metrics := oteladapters.NewMetricsCollector(otel.Meter(instrumentationName))
	tracing := oteladapters.NewTracingCollector(otel.Tracer(instrumentationName))

	j := journal.NewMemoryJournal(
		journal.WithContextualLogger(logger),
		journal.WithMetrics(metrics),
		journal.WithTracing(tracing),
	)
	library := shell.NewLibrary(j, append([]shell.LibraryOption{shell.WithLibraryContextualLogger(logger)}, opts...)...)

	app := &lendingApp{journal: j, library: library}
	var err error

	if app.borrow, err = observable.NewCommandWrapper[borrowresource.Command](
		borrowresource.NewCommandHandler(library),
		observable.WithCommandMetrics[borrowresource.Command](metrics),
		observable.WithCommandTracing[borrowresource.Command](tracing),
		observable.WithCommandContextualLogging[borrowresource.Command](logger),
	); err != nil {
		return nil, err
	}

	if app.ret, err = observable.NewCommandWrapper[returnresource.Command](
		returnresource.NewCommandHandler(library),
		observable.WithCommandMetrics[returnresource.Command](metrics),
		observable.WithCommandTracing[returnresource.Command](tracing),
		observable.WithCommandContextualLogging[returnresource.Command](logger),
	); err != nil {
		return nil, err
	}

	if app.renew, err = observable.NewCommandWrapper[renewloan.Command](
		renewloan.NewCommandHandler(library),
		observable.WithCommandMetrics[renewloan.Command](metrics),
		observable.WithCommandTracing[renewloan.Command](tracing),
		observable.WithCommandContextualLogging[renewloan.Command](logger),
	); err != nil {
		return nil, err
	}

	if app.reserve, err = observable.NewCommandWrapper[reserveresource.Command](
		reserveresource.NewCommandHandler(library),
		observable.WithCommandMetrics[reserveresource.Command](metrics),
		observable.WithCommandTracing[reserveresource.Command](tracing),
		observable.WithCommandContextualLogging[reserveresource.Command](logger),
	); err != nil {
		return nil, err
	}

	if app.cancel, err = observable.NewCommandWrapper[cancelreservation.Command](
		cancelreservation.NewCommandHandler(library),
		observable.WithCommandMetrics[cancelreservation.Command](metrics),
		observable.WithCommandTracing[cancelreservation.Command](tracing),
		observable.WithCommandContextualLogging[cancelreservation.Command](logger),
	); err != nil {
		return nil, err
	}

	if app.loans, err = observable.NewQueryWrapper[memberloans.Query, memberloans.Result](
		memberloans.NewQueryHandler(library),
		observable.WithQueryMetrics[memberloans.Query, memberloans.Result](metrics),
		observable.WithQueryTracing[memberloans.Query, memberloans.Result](tracing),
		observable.WithQueryContextualLogging[memberloans.Query, memberloans.Result](logger),
	); err != nil {
		return nil, err
	}

	return app, nil
}
