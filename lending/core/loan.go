package core

import (
	"time"
)

// Loan is the active lending of one resource to one member.
type Loan struct {
	ResourceID ResourceIDString
	MemberID   MemberIDString
	Kind       Kind
	BorrowedAt time.Time
	DueAt      time.Time
}

// BuildLoan starts a loan at borrowedAt, due after the loan period of kind.
func BuildLoan(resourceID ResourceIDString, memberID MemberIDString, kind Kind, borrowedAt time.Time) Loan {
	return Loan{
		ResourceID: resourceID,
		MemberID:   memberID,
		Kind:       kind,
		BorrowedAt: borrowedAt,
		DueAt:      DueAt(kind, borrowedAt),
	}
}

// Extended returns the loan with its due date pushed out by one loan period.
func (l Loan) Extended() Loan {
	l.DueAt = DueAt(l.Kind, l.DueAt)

	return l
}

// DaysLateAt returns how many days past due the loan is at t. A loan without a due date is never late.
func (l Loan) DaysLateAt(t time.Time) int {
	if l.DueAt.IsZero() {
		return 0
	}

	return DaysLate(l.DueAt, t)
}

// LateFeeAt returns the late fee owed if the resource is returned at t.
func (l Loan) LateFeeAt(t time.Time) float64 {
	return CalculateLateFee(l.Kind, l.DaysLateAt(t))
}
