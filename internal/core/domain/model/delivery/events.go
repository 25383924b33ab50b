package delivery

import (
	"encoding/json"
	"fmt"
	"time"

	"messdelivery/internal/core/domain/model/kernel"
)

// Event names, also used as the broker message type.
const (
	EventCreated       = "delivery.created"
	EventAccepted      = "delivery.accepted"
	EventStatusChanged = "delivery.status_changed"
	EventProofAttached = "delivery.proof_attached"
)

// Event is the payload every delivery event carries. Fields that do not apply
// to a given event name are left empty.
type Event struct {
	ID               kernel.UUID  `json:"id"`
	Name             string       `json:"name"`
	DeliveryID       kernel.UUID  `json:"delivery_id"`
	SubscriptionID   kernel.UUID  `json:"subscription_id"`
	MessID           kernel.UUID  `json:"mess_id"`
	DeliveryPersonID *kernel.UUID `json:"delivery_person_id"`
	Status           string       `json:"status"`
	PreviousStatus   string       `json:"previous_status,omitempty"`
	Slot             string       `json:"slot,omitempty"`
	At               time.Time    `json:"occurred_at"`
}

var _ kernel.DomainEvent = Event{}

func (e Event) EventID() kernel.UUID {
	return e.ID
}

func (e Event) EventName() string {
	return e.Name
}

func (e Event) AggregateID() kernel.UUID {
	return e.DeliveryID
}

func (e Event) OccurredAt() time.Time {
	return e.At
}

// DecodeEvent restores an Event from its outbox payload.
func DecodeEvent(payload []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(payload, &e); err != nil {
		return Event{}, fmt.Errorf("decode delivery event: %w", err)
	}
	return e, nil
}

func (d *Delivery) record(name string, previous Status, slot ProofSlot, at time.Time) {
	e := Event{
		ID:               kernel.NewUUID(),
		Name:             name,
		DeliveryID:       d.id,
		SubscriptionID:   d.subscriptionID,
		MessID:           d.messID,
		DeliveryPersonID: d.DeliveryPerson(),
		Status:           d.status.String(),
		At:               at,
	}
	if previous != Unknown {
		e.PreviousStatus = previous.String()
	}
	if slot != UnknownSlot {
		e.Slot = slot.String()
	}
	d.events = append(d.events, e)
}
