package shell

import (
	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

// HandlerResult is the outcome of a command handler.
// A rejected command is returned together with the business rule error; its failure event is journaled all the same.
type HandlerResult struct {
	// Idempotent means nothing had to change.
	Idempotent bool

	// Rejected means a lending rule refused the command.
	Rejected bool

	// EventType names the journaled event, empty for idempotent results.
	EventType string
}

// NewSuccessResult creates a HandlerResult for a command that changed state.
func NewSuccessResult(eventType string) HandlerResult {
	return HandlerResult{EventType: eventType}
}

// NewIdempotentResult creates a HandlerResult for a command that needed no change.
func NewIdempotentResult() HandlerResult {
	return HandlerResult{Idempotent: true}
}

// NewRejectedResult creates a HandlerResult for a command refused by a lending rule.
func NewRejectedResult(eventType string) HandlerResult {
	return HandlerResult{Rejected: true, EventType: eventType}
}

// NewErrorResult creates a HandlerResult for a command that failed before deciding, e.g. on an unknown ID.
func NewErrorResult() HandlerResult {
	return HandlerResult{}
}

// HandlerResultFrom maps an executed decision to the handler's return values.
func HandlerResultFrom(decision core.DecisionResult) (HandlerResult, error) {
	switch {
	case decision.IsIdempotent():
		return NewIdempotentResult(), nil

	case decision.HasError() != nil:
		return NewRejectedResult(decision.Event.IsEventType()), decision.HasError()

	default:
		return NewSuccessResult(decision.Event.IsEventType()), nil
	}
}
