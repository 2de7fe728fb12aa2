package core

import (
	"time"
)

// LoanRenewedEventType is the event type identifier.
const LoanRenewedEventType = "LoanRenewed"

// LoanRenewed records that a renewal was granted. DueAt is the new due date, zero if the resource was not on loan.
type LoanRenewed struct {
	EventType  EventTypeString
	ResourceID ResourceIDString
	MemberID   MemberIDString
	Kind       Kind
	DueAt      time.Time
	OccurredAt OccurredAtTS
}

// BuildLoanRenewed creates a new LoanRenewed event.
func BuildLoanRenewed(
	resourceID ResourceIDString,
	memberID MemberIDString,
	kind Kind,
	dueAt time.Time,
	occurredAt time.Time,
) LoanRenewed {
	return LoanRenewed{
		EventType:  LoanRenewedEventType,
		ResourceID: resourceID,
		MemberID:   memberID,
		Kind:       kind,
		DueAt:      dueAt,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LoanRenewed) IsEventType() string {
	return LoanRenewedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LoanRenewed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e LoanRenewed) IsErrorEvent() bool {
	return false
}
