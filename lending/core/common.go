package core

import (
	"time"
)

// ResourceIDString identifies a resource within a library.
type ResourceIDString = string

// MemberIDString identifies a member within a library.
type MemberIDString = string

// EventTypeString is the type name of a domain event.
type EventTypeString = string

// OccurredAtTS is the time a domain event occurred.
type OccurredAtTS = time.Time

// ToOccurredAt normalizes t to UTC with microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
