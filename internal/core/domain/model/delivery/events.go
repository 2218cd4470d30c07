package delivery

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// EventKind identifies the domain event emitted after an accepted transition.
type EventKind string

const (
	// EventDeliveryRegistered is emitted when a new delivery is dispatched.
	EventDeliveryRegistered EventKind = "delivery.registered"

	// EventDeliveryCompleted is emitted when a delivery reaches the recipient.
	EventDeliveryCompleted EventKind = "delivery.completed"

	// EventDeliveryCancelled is emitted when a delivery is called off.
	EventDeliveryCancelled EventKind = "delivery.cancelled"
)

// CourierContact is the denormalized courier context carried by events so
// the notification dispatcher can act without a follow-up query.
type CourierContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RecipientAddress is the denormalized recipient context carried by events.
type RecipientAddress struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
}

// Event is the payload handed to the notification dispatcher after a
// committed transition. Delivery of the event is fire-and-forget: a failure
// to publish or send never rolls back the transition that produced it.
type Event struct {
	Kind       EventKind        `json:"kind"`
	DeliveryID kernel.UUID      `json:"delivery_id"`
	Product    string           `json:"product"`
	OccurredAt time.Time        `json:"occurred_at"`
	Courier    CourierContact   `json:"courier"`
	Recipient  RecipientAddress `json:"recipient"`
	Reason     string           `json:"reason,omitempty"`
}

// NewEvent assembles an event for the given transition with its
// denormalized notification context.
func NewEvent(
	kind EventKind,
	d *Delivery,
	occurredAt time.Time,
	courier CourierContact,
	recipient RecipientAddress,
) Event {
	return Event{
		Kind:       kind,
		DeliveryID: d.ID(),
		Product:    d.Product(),
		OccurredAt: occurredAt,
		Courier:    courier,
		Recipient:  recipient,
	}
}
