package core

import (
	"time"
)

// ResourceAddedToCatalogEventType is the event type identifier.
const ResourceAddedToCatalogEventType = "ResourceAddedToCatalog"

// ResourceAddedToCatalog records that a resource was added to the library catalog.
type ResourceAddedToCatalog struct {
	EventType  EventTypeString
	ResourceID ResourceIDString
	Kind       Kind
	Title      string
	Available  bool
	OccurredAt OccurredAtTS
}

// BuildResourceAddedToCatalog creates a new ResourceAddedToCatalog event.
func BuildResourceAddedToCatalog(
	resource Resource,
	available bool,
	occurredAt time.Time,
) ResourceAddedToCatalog {
	return ResourceAddedToCatalog{
		EventType:  ResourceAddedToCatalogEventType,
		ResourceID: resource.ResourceID(),
		Kind:       resource.Kind(),
		Title:      resource.ResourceTitle(),
		Available:  available,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ResourceAddedToCatalog) IsEventType() string {
	return ResourceAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e ResourceAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e ResourceAddedToCatalog) IsErrorEvent() bool {
	return false
}
