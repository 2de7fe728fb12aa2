package core

import (
	"time"
)

// BorrowingResourceFailedEventType is the event type identifier.
const BorrowingResourceFailedEventType = "BorrowingResourceFailed"

// BorrowingResourceFailed records that a borrow was refused by a lending rule.
type BorrowingResourceFailed struct {
	EventType   EventTypeString
	ResourceID  ResourceIDString
	MemberID    MemberIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildBorrowingResourceFailed creates a new BorrowingResourceFailed event.
func BuildBorrowingResourceFailed(
	resourceID ResourceIDString,
	memberID MemberIDString,
	failureInfo string,
	occurredAt time.Time,
) BorrowingResourceFailed {
	return BorrowingResourceFailed{
		EventType:   BorrowingResourceFailedEventType,
		ResourceID:  resourceID,
		MemberID:    memberID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BorrowingResourceFailed) IsEventType() string {
	return BorrowingResourceFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BorrowingResourceFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true: the command was refused.
func (e BorrowingResourceFailed) IsErrorEvent() bool {
	return true
}
