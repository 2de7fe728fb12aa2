package renewloan

import (
	"context"
	"errors"

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

// CommandHandler renews loans.
type CommandHandler struct {
	library Library
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(library Library) CommandHandler {
	return CommandHandler{library: library}
}

// Handle renews the loan. A refused renewal returns a rejected result and an error wrapping core.ErrRenewalRefused.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	decision, err := h.library.Execute(ctx, command.Resource.ResourceID(), command.MemberID, func(state core.LendingState) core.DecisionResult {
		return Decide(state, command)
	})
	if err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.HandlerResultFrom(decision)
}

// Renew reports whether the renewal was granted. A refusal is not an error.
func (h CommandHandler) Renew(ctx context.Context, command Command) (bool, error) {
	_, err := h.Handle(ctx, command)

	return Granted(err)
}

// Granted maps the error of a renewal to the boolean outcome, for callers holding a wrapped handler.
func Granted(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, core.ErrRenewalRefused):
		return false, nil
	default:
		return false, err
	}
}
