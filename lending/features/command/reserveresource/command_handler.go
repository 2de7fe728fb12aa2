package reserveresource

import (
	"context"

	"github.com/AntonStoeckl/resource-lending-go/lending/core"
	"github.com/AntonStoeckl/resource-lending-go/lending/shell"
)

// Library is the part of shell.Library the CommandHandler needs.
type Library interface {
	Execute(
		ctx context.Context,
		resourceID core.ResourceIDString,
		memberID core.MemberIDString,
		decide shell.DecideFunc,
	) (core.DecisionResult, error)
}

// CommandHandler records reservations.
type CommandHandler struct {
	library Library
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(library Library) CommandHandler {
	return CommandHandler{library: library}
}

// Handle journals the ResourceReserved event. It fails only on unknown IDs or a journal error.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	decision, err := h.library.Execute(ctx, command.Resource.ResourceID(), command.MemberID, func(state core.LendingState) core.DecisionResult {
		return Decide(state, command)
	})
	if err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.HandlerResultFrom(decision)
}
