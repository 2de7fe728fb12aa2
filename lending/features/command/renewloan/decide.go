package renewloan

import (
	"fmt"
	"time"

	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

const (
	failureReasonRenewalRefused = "renewal refused by the renew rule of the resource kind"
)

// Decide determines whether a renewal is granted.
//
// Business Rules:
//
//	GIVEN: a resource and a member known to the library
//	WHEN: RenewLoan is received
//	THEN: LoanRenewed is generated if the renew rule of the kind allows it:
//	      Book and Periodical only while available, DigitalContent always
//	      If the member holds the resource, the new due date is one more loan period
//	ERROR: "renewal refused ..." if the renew rule does not allow it
func Decide(state core.LendingState, command Command) core.DecisionResult {
	renewable := command.Resource
	if r, ok := state.Resource.(core.Renewable); ok {
		renewable = r
	}

	resourceID := renewable.ResourceID()

	if !renewable.CanRenew(state.ResourceAvailable) {
		event := core.BuildRenewingLoanFailed(resourceID, command.MemberID, failureReasonRenewalRefused, command.OccurredAt)

		return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), core.ErrRenewalRefused))
	}

	var dueAt time.Time
	if state.HasActiveLoan && state.ActiveLoan.MemberID == command.MemberID {
		dueAt = state.ActiveLoan.Extended().DueAt
	}

	return core.SuccessDecision(
		core.BuildLoanRenewed(resourceID, command.MemberID, renewable.Kind(), dueAt, command.OccurredAt),
	)
}
