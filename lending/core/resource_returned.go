package core

import (
	"time"
)

// ResourceReturnedEventType is the event type identifier.
const ResourceReturnedEventType = "ResourceReturned"

// ResourceReturned records that a member returned a borrowed resource. DaysLate and LateFee are assessed against the loan's due date.
type ResourceReturned struct {
	EventType  EventTypeString
	ResourceID ResourceIDString
	MemberID   MemberIDString
	DaysLate   int
	LateFee    float64
	OccurredAt OccurredAtTS
}

// BuildResourceReturned creates a new ResourceReturned event.
func BuildResourceReturned(
	resourceID ResourceIDString,
	memberID MemberIDString,
	daysLate int,
	lateFee float64,
	occurredAt time.Time,
) ResourceReturned {
	return ResourceReturned{
		EventType:  ResourceReturnedEventType,
		ResourceID: resourceID,
		MemberID:   memberID,
		DaysLate:   daysLate,
		LateFee:    lateFee,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ResourceReturned) IsEventType() string {
	return ResourceReturnedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ResourceReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e ResourceReturned) IsErrorEvent() bool {
	return false
}
