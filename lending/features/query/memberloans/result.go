package memberloans

import (
	"time"

	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

// LoanView is one held resource as seen by the member.
type LoanView struct {
	ResourceID core.ResourceIDString `json:"resourceId"`
	Title      string                `json:"title"`
	Kind       core.Kind             `json:"kind"`
	DueAt      time.Time             `json:"dueAt"`
	DaysLate   int                   `json:"daysLate"`
	AccruedFee float64               `json:"accruedFee"`
}

// Result lists the member's loans, ordered by resource ID.
type Result struct {
	MemberID core.MemberIDString `json:"memberId"`
	Tier     core.Tier           `json:"tier"`
	Capacity int                 `json:"capacity"`
	Loans    []LoanView          `json:"loans"`
	TotalFee float64             `json:"totalFee"`
}
