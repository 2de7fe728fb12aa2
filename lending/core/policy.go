package core

import (
	"math"
	"time"
)

// Renew rule names as shown in the policy table.
const (
	RenewRuleIfAvailable = "if available"
	RenewRuleAlways      = "always"
)

// Policy is the lending policy row of one resource kind.
type Policy struct {
	Kind              Kind
	FeePerLateDay     float64
	MaxLoanPeriodDays int
	RenewRule         string
	Reservable        bool
}

var policies = []Policy{
	{Kind: KindBook, FeePerLateDay: 2.00, MaxLoanPeriodDays: 14, RenewRule: RenewRuleIfAvailable, Reservable: true},
	{Kind: KindDigitalContent, FeePerLateDay: 1.00, MaxLoanPeriodDays: 7, RenewRule: RenewRuleAlways, Reservable: false},
	{Kind: KindPeriodical, FeePerLateDay: 0.50, MaxLoanPeriodDays: 7, RenewRule: RenewRuleIfAvailable, Reservable: true},
}

// PolicyFor returns the policy of kind, or false for an unknown kind.
func PolicyFor(kind Kind) (Policy, bool) {
	for _, p := range policies {
		if p.Kind == kind {
			return p, true
		}
	}

	return Policy{}, false
}

// Policies returns all policy rows in a stable order.
func Policies() []Policy {
	out := make([]Policy, len(policies))
	copy(out, policies)

	return out
}

// CalculateLateFee returns daysLate times the per-day fee of kind.
// Negative daysLate counts as zero, an unknown kind costs nothing.
func CalculateLateFee(kind Kind, daysLate int) float64 {
	p, ok := PolicyFor(kind)
	if !ok || daysLate <= 0 {
		return 0
	}

	return float64(daysLate) * p.FeePerLateDay
}

// MaxLoanPeriod returns the loan period of kind in days, 0 for an unknown kind.
func MaxLoanPeriod(kind Kind) int {
	p, _ := PolicyFor(kind)

	return p.MaxLoanPeriodDays
}

// DueAt is from plus the loan period of kind.
func DueAt(kind Kind, from time.Time) time.Time {
	return from.AddDate(0, 0, MaxLoanPeriod(kind))
}

// DaysLate counts the started days between dueAt and returnedAt. Returning on time yields 0.
func DaysLate(dueAt, returnedAt time.Time) int {
	late := returnedAt.Sub(dueAt)
	if late <= 0 {
		return 0
	}

	return int(math.Ceil(late.Hours() / 24))
}
