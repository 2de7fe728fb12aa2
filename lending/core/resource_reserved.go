package core

import (
	"time"
)

// ResourceReservedEventType is the event type identifier.
const ResourceReservedEventType = "ResourceReserved"

// ResourceReserved records that a member placed a reservation on a resource.
type ResourceReserved struct {
	EventType  EventTypeString
	ResourceID ResourceIDString
	MemberID   MemberIDString
	OccurredAt OccurredAtTS
}

// BuildResourceReserved creates a new ResourceReserved event.
func BuildResourceReserved(
	resourceID ResourceIDString,
	memberID MemberIDString,
	occurredAt time.Time,
) ResourceReserved {
	return ResourceReserved{
		EventType:  ResourceReservedEventType,
		ResourceID: resourceID,
		MemberID:   memberID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ResourceReserved) IsEventType() string {
	return ResourceReservedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ResourceReserved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e ResourceReserved) IsErrorEvent() bool {
	return false
}
