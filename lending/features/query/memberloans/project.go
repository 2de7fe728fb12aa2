package memberloans

import (
	"github.com/AntonStoeckl/resource-lending-go/lending/shell"
)

// Project builds the Result from a member snapshot. Fees accrue as if every loan were returned at query.AsOf.
func Project(snapshot shell.MemberSnapshot, query Query) Result {
	result := Result{
		MemberID: snapshot.Member.ID,
		Tier:     snapshot.Member.Tier,
		Capacity: snapshot.Member.Tier.Capacity(),
		Loans:    make([]LoanView, 0, len(snapshot.Holdings)),
	}

	for _, h := range snapshot.Holdings {
		view := LoanView{
			ResourceID: h.Resource.ResourceID(),
			Title:      h.Resource.ResourceTitle(),
			Kind:       h.Resource.Kind(),
			DueAt:      h.Loan.DueAt,
			DaysLate:   h.Loan.DaysLateAt(query.AsOf),
			AccruedFee: h.Loan.LateFeeAt(query.AsOf),
		}

		result.Loans = append(result.Loans, view)
		result.TotalFee += view.AccruedFee
	}

	return result
}
