package core

import (
	"slices"
)

// LendingState is the snapshot of one resource and one member a Decide function works on.
type LendingState struct {
	Resource          Resource
	ResourceAvailable bool

	// ActiveLoan is only meaningful if HasActiveLoan is true.
	ActiveLoan    Loan
	HasActiveLoan bool

	Member         Member
	MemberBorrowed []ResourceIDString
}

// MemberHoldsResource reports whether the member currently holds the resource.
func (s LendingState) MemberHoldsResource() bool {
	if s.Resource == nil {
		return false
	}

	return slices.Contains(s.MemberBorrowed, s.Resource.ResourceID())
}

// MemberAtCapacity reports whether the member cannot borrow one more resource.
func (s LendingState) MemberAtCapacity() bool {
	return len(s.MemberBorrowed) >= s.Member.Tier.Capacity()
}
