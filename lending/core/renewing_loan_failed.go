package core

import (
	"time"
)

// RenewingLoanFailedEventType is the event type identifier.
const RenewingLoanFailedEventType = "RenewingLoanFailed"

// RenewingLoanFailed records that a renewal was refused by the renew rule of the resource kind.
type RenewingLoanFailed struct {
	EventType   EventTypeString
	ResourceID  ResourceIDString
	MemberID    MemberIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildRenewingLoanFailed creates a new RenewingLoanFailed event.
func BuildRenewingLoanFailed(
	resourceID ResourceIDString,
	memberID MemberIDString,
	failureInfo string,
	occurredAt time.Time,
) RenewingLoanFailed {
	return RenewingLoanFailed{
		EventType:   RenewingLoanFailedEventType,
		ResourceID:  resourceID,
		MemberID:    memberID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e RenewingLoanFailed) IsEventType() string {
	return RenewingLoanFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e RenewingLoanFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true: the command was refused.
func (e RenewingLoanFailed) IsErrorEvent() bool {
	return true
}
