package core

import (
	"time"
)

// DomainEvents is a slice of DomainEvent.
type DomainEvents = []DomainEvent

// DomainEvent is something that happened in the lending domain.
type DomainEvent interface {
	// IsEventType returns the event type name used in the journal.
	IsEventType() string

	// HasOccurredAt returns when the event happened.
	HasOccurredAt() time.Time

	// IsErrorEvent reports whether the event records a refused command.
	IsErrorEvent() bool
}
