package core

import (
	"errors"
)

// Tier is the membership tier. It bounds how many resources a member may hold at once.
type Tier string

const (
	TierStandard Tier = "Standard"
	TierPremium  Tier = "Premium"
)

// Capacity returns the number of resources a member of the tier may hold, 0 for an unknown tier.
func (t Tier) Capacity() int {
	switch t {
	case TierStandard:
		return 5
	case TierPremium:
		return 10
	default:
		return 0
	}
}

// IsValid reports whether t is a known tier.
func (t Tier) IsValid() bool {
	return t.Capacity() > 0
}

// Member is a registered borrower. The set of resources a member holds lives in the library state.
type Member struct {
	ID   MemberIDString `validate:"required"`
	Name string         `validate:"required"`
	Tier Tier           `validate:"oneof=Standard Premium"`
}

// BuildMember creates a validated Member.
func BuildMember(id MemberIDString, name string, tier Tier) (Member, error) {
	m := Member{ID: id, Name: name, Tier: tier}
	if err := validate.Struct(m); err != nil {
		return Member{}, errors.Join(ErrInvalidMembership, err)
	}

	return m, nil
}
