package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/resource-lending-go/journal"
	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts StorableEvents to DomainEvents, stopping at the first failure.
func DomainEventsFrom(storableEvents journal.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its DomainEvent.
func DomainEventFrom(storableEvent journal.StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.ResourceAddedToCatalogEventType:
		return unmarshal[core.ResourceAddedToCatalog](storableEvent.PayloadJSON)
	case core.MemberRegisteredEventType:
		return unmarshal[core.MemberRegistered](storableEvent.PayloadJSON)
	case core.ResourceBorrowedEventType:
		return unmarshal[core.ResourceBorrowed](storableEvent.PayloadJSON)
	case core.BorrowingResourceFailedEventType:
		return unmarshal[core.BorrowingResourceFailed](storableEvent.PayloadJSON)
	case core.ResourceReturnedEventType:
		return unmarshal[core.ResourceReturned](storableEvent.PayloadJSON)
	case core.LoanRenewedEventType:
		return unmarshal[core.LoanRenewed](storableEvent.PayloadJSON)
	case core.RenewingLoanFailedEventType:
		return unmarshal[core.RenewingLoanFailed](storableEvent.PayloadJSON)
	case core.ResourceReservedEventType:
		return unmarshal[core.ResourceReserved](storableEvent.PayloadJSON)
	case core.ReservationCanceledEventType:
		return unmarshal[core.ReservationCanceled](storableEvent.PayloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshal[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var event E
	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}

// ErrEventEnvelopeFromStorableEventFailed is returned when event envelope conversion fails.
var ErrEventEnvelopeFromStorableEventFailed = errors.New("event envelope from storable event failed")

// EventEnvelope is a journaled domain event with its metadata and sequence number.
type EventEnvelope struct {
	SequenceNumber uint
	DomainEvent    core.DomainEvent
	EventMetadata  EventMetadata
}

// EventEnvelopesFrom converts StorableEvents to EventEnvelopes.
func EventEnvelopesFrom(storableEvents journal.StorableEvents) ([]EventEnvelope, error) {
	envelopes := make([]EventEnvelope, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		metadata, err := EventMetadataFrom(storableEvent)
		if err != nil {
			return nil, errors.Join(ErrEventEnvelopeFromStorableEventFailed, err)
		}

		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, errors.Join(ErrEventEnvelopeFromStorableEventFailed, err)
		}

		envelopes = append(envelopes, EventEnvelope{
			SequenceNumber: storableEvent.SequenceNumber,
			DomainEvent:    domainEvent,
			EventMetadata:  metadata,
		})
	}

	return envelopes, nil
}
