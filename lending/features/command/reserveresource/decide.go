package reserveresource

import (
	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

// Decide records a reservation.
//
// Business Rules:
//
//	GIVEN: a reservable resource and a member known to the library
//	WHEN: ReserveResource is received
//	THEN: ResourceReserved is generated, whatever the availability of the resource
//	      Any number of members may reserve the same resource
func Decide(_ core.LendingState, command Command) core.DecisionResult {
	return core.SuccessDecision(
		core.BuildResourceReserved(command.Resource.ResourceID(), command.MemberID, command.OccurredAt),
	)
}
