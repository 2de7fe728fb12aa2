package borrowresource

import (
	"fmt"

	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

const (
	failureReasonResourceUnavailable = "resource is not available"
	failureReasonLoanLimitExceeded   = "member has reached the loan limit of the membership tier"
)

// Decide determines whether the member may borrow the resource.
//
// Business Rules:
//
//	GIVEN: a resource and a member known to the library
//	WHEN: BorrowResource is received
//	THEN: ResourceBorrowed is generated, with a due date after the loan period of the kind
//	ERROR: "resource is not available" if the resource is on loan or out of circulation,
//	       regardless of the member's capacity
//	ERROR: "member has reached the loan limit ..." if the member holds as many resources as the tier allows
func Decide(state core.LendingState, command Command) core.DecisionResult {
	if !state.ResourceAvailable {
		return failure(command, failureReasonResourceUnavailable, core.ErrResourceUnavailable)
	}

	if state.MemberAtCapacity() {
		return failure(command, failureReasonLoanLimitExceeded, core.ErrLoanLimitExceeded)
	}

	loan := core.BuildLoan(command.ResourceID, command.MemberID, state.Resource.Kind(), command.OccurredAt)

	return core.SuccessDecision(core.BuildResourceBorrowed(loan, command.OccurredAt))
}

func failure(command Command, reason string, sentinel error) core.DecisionResult {
	event := core.BuildBorrowingResourceFailed(command.ResourceID, command.MemberID, reason, command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), sentinel))
}
