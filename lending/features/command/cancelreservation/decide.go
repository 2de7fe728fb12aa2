package cancelreservation

import (
	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

// Decide records a withdrawn reservation.
//
// Business Rules:
//
//	GIVEN: a reservable resource and a member known to the library
//	WHEN: CancelReservation is received
//	THEN: ReservationCanceled is generated; no prior reservation is required
func Decide(_ core.LendingState, command Command) core.DecisionResult {
	return core.SuccessDecision(
		core.BuildReservationCanceled(command.Resource.ResourceID(), command.MemberID, command.OccurredAt),
	)
}
