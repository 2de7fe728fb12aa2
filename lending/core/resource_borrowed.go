package core

import (
	"time"
)

// ResourceBorrowedEventType is the event type identifier.
const ResourceBorrowedEventType = "ResourceBorrowed"

// ResourceBorrowed records that a member borrowed a resource.
type ResourceBorrowed struct {
	EventType  EventTypeString
	ResourceID ResourceIDString
	MemberID   MemberIDString
	Kind       Kind
	DueAt      time.Time
	OccurredAt OccurredAtTS
}

// BuildResourceBorrowed creates a new ResourceBorrowed event.
func BuildResourceBorrowed(
	loan Loan,
	occurredAt time.Time,
) ResourceBorrowed {
	return ResourceBorrowed{
		EventType:  ResourceBorrowedEventType,
		ResourceID: loan.ResourceID,
		MemberID:   loan.MemberID,
		Kind:       loan.Kind,
		DueAt:      ToOccurredAt(loan.DueAt),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ResourceBorrowed) IsEventType() string {
	return ResourceBorrowedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ResourceBorrowed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e ResourceBorrowed) IsErrorEvent() bool {
	return false
}
