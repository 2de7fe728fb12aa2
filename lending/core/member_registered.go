package core

import (
	"time"
)

// MemberRegisteredEventType is the event type identifier.
const MemberRegisteredEventType = "MemberRegistered"

// MemberRegistered records that a member joined the library.
type MemberRegistered struct {
	EventType  EventTypeString
	MemberID   MemberIDString
	Name       string
	Tier       Tier
	OccurredAt OccurredAtTS
}

// BuildMemberRegistered creates a new MemberRegistered event.
func BuildMemberRegistered(
	member Member,
	occurredAt time.Time,
) MemberRegistered {
	return MemberRegistered{
		EventType:  MemberRegisteredEventType,
		MemberID:   member.ID,
		Name:       member.Name,
		Tier:       member.Tier,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e MemberRegistered) IsEventType() string {
	return MemberRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e MemberRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e MemberRegistered) IsErrorEvent() bool {
	return false
}
