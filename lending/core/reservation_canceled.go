package core

import (
	"time"
)

// ReservationCanceledEventType is the event type identifier.
const ReservationCanceledEventType = "ReservationCanceled"

// ReservationCanceled records that a member withdrew a reservation.
type ReservationCanceled struct {
	EventType  EventTypeString
	ResourceID ResourceIDString
	MemberID   MemberIDString
	OccurredAt OccurredAtTS
}

// BuildReservationCanceled creates a new ReservationCanceled event.
func BuildReservationCanceled(
	resourceID ResourceIDString,
	memberID MemberIDString,
	occurredAt time.Time,
) ReservationCanceled {
	return ReservationCanceled{
		EventType:  ReservationCanceledEventType,
		ResourceID: resourceID,
		MemberID:   memberID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ReservationCanceled) IsEventType() string {
	return ReservationCanceledEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReservationCanceled) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e ReservationCanceled) IsErrorEvent() bool {
	return false
}
