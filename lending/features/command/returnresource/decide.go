package returnresource

import (
	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

// Decide determines the outcome of returning a resource.
//
// Business Rules:
//
//	GIVEN: a resource and a member known to the library
//	WHEN: ReturnResource is received
//	THEN: ResourceReturned is generated and the resource becomes available
//	      ResourceReturned carries the days late and the late fee assessed against the due date
//	      of the member's own loan at the time of the command, zero otherwise
//	ERROR: none, a return always succeeds
func Decide(state core.LendingState, command Command) core.DecisionResult {
	daysLate, lateFee := 0, 0.0
	if state.MemberHoldsResource() && state.HasActiveLoan && state.ActiveLoan.MemberID == command.MemberID {
		daysLate = state.ActiveLoan.DaysLateAt(command.OccurredAt)
		lateFee = state.ActiveLoan.LateFeeAt(command.OccurredAt)
	}

	return core.SuccessDecision(
		core.BuildResourceReturned(command.ResourceID, command.MemberID, daysLate, lateFee, command.OccurredAt),
	)
}
