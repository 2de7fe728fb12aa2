package shell

import (
	"context"

	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

// DecideFunc is a pure decision over a lending state snapshot.
type DecideFunc = func(state core.LendingState) core.DecisionResult

// Command is implemented by every command of a feature slice.
type Command interface {
	CommandType() string
}

// CoreCommandHandler processes a command without any observability concerns.
// Wrap it with observable.CommandWrapper for metrics, tracing and logging.
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// Query is implemented by every query of a feature slice.
type Query interface {
	QueryType() string
}

// CoreQueryHandler answers a query from a library snapshot.
type CoreQueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
