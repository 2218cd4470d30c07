package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery. This ensures all
	// deliveries are properly validated.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")
)

// Delivery is the aggregate root for a single physical delivery assignment.
//
// Identity and the dispatch details (product, courier, recipient, creation
// time) are immutable after construction. The lifecycle is tracked by three
// timestamps (pickedUpAt, deliveredAt, cancelledAt) from which Status is
// derived. Invariants:
//
//   - at most one of deliveredAt/cancelledAt is ever set; once either is
//     set the record is terminal and no timestamp may change again
//   - deliveredAt may only be set when pickedUpAt is already set
//   - cancelledAt may be set from Pending or PickedUp, never from Delivered
//
// All mutations go through MarkPickedUp, MarkDelivered and MarkCancelled,
// each of which validates the transition before writing any field and
// rejects repeat applications instead of treating them as no-ops.
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// product describes the package contents
	product string

	// courierID is the courier assigned at dispatch time
	courierID kernel.UUID

	// recipientID is the recipient the package is addressed to
	recipientID kernel.UUID

	// createdAt is the dispatch timestamp
	createdAt time.Time

	// pickedUpAt is set when the courier withdraws the package
	pickedUpAt *time.Time

	// deliveredAt is set when the package reaches the recipient
	deliveredAt *time.Time

	// cancelledAt is set when the delivery is called off
	cancelledAt *time.Time

	// proofID references the stored proof-of-delivery artifact
	proofID *kernel.UUID

	// isConstructed ensures the delivery was created via a constructor
	isConstructed bool
}

// NewDelivery creates a new Delivery in Pending status.
// All parameters are validated; the lifecycle timestamps start unset.
func NewDelivery(
	id kernel.UUID,
	product string,
	courierID kernel.UUID,
	recipientID kernel.UUID,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setProduct(product),
		d.setCourierID(courierID),
		d.setRecipientID(recipientID),
		d.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence, including its
// lifecycle timestamps. The timestamp combination is validated against the
// aggregate invariants so that corrupt rows cannot produce an impossible
// state.
func RestoreDelivery(
	id kernel.UUID,
	product string,
	courierID kernel.UUID,
	recipientID kernel.UUID,
	createdAt time.Time,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
	cancelledAt *time.Time,
	proofID *kernel.UUID,
) (*Delivery, error) {
	d, err := NewDelivery(id, product, courierID, recipientID, createdAt)
	if err != nil {
		return nil, err
	}

	if deliveredAt != nil && cancelledAt != nil {
		return nil, errs.NewValueIsInvalidError("delivery cannot be both delivered and cancelled")
	}
	if deliveredAt != nil && pickedUpAt == nil {
		return nil, errs.NewValueIsInvalidError("delivery cannot be delivered without a pickup")
	}
	if deliveredAt != nil && proofID != nil {
		if err = proofID.Validate(); err != nil {
			return nil, err
		}
	}

	d.pickedUpAt = pickedUpAt
	d.deliveredAt = deliveredAt
	d.cancelledAt = cancelledAt
	d.proofID = proofID
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
// Call this when reconstructing deliveries from external input.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Product returns the package description.
func (d *Delivery) Product() string {
	return d.product
}

// CourierID returns the assigned courier's identifier.
func (d *Delivery) CourierID() kernel.UUID {
	return d.courierID
}

// RecipientID returns the recipient's identifier.
func (d *Delivery) RecipientID() kernel.UUID {
	return d.recipientID
}

// CreatedAt returns the dispatch timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// PickedUpAt returns the withdrawal timestamp, or nil while Pending.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// DeliveredAt returns the completion timestamp, or nil unless Delivered.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// CancelledAt returns the cancellation timestamp, or nil unless Cancelled.
func (d *Delivery) CancelledAt() *time.Time {
	return d.cancelledAt
}

// ProofID returns the proof-of-delivery reference, or nil unless Delivered.
func (d *Delivery) ProofID() *kernel.UUID {
	return d.proofID
}

// BelongsTo reports whether the delivery is assigned to the given courier.
func (d *Delivery) BelongsTo(courierID kernel.UUID) bool {
	return d.courierID.IsEqual(courierID)
}

// Status derives the current lifecycle status from the timestamps.
// Cancellation and completion dominate pickup; all nil means Pending.
func (d *Delivery) Status() Status {
	switch {
	case d.cancelledAt != nil:
		return Cancelled
	case d.deliveredAt != nil:
		return Delivered
	case d.pickedUpAt != nil:
		return PickedUp
	default:
		return Pending
	}
}

// IsTerminal reports whether the delivery reached Delivered or Cancelled.
func (d *Delivery) IsTerminal() bool {
	return d.Status().IsTerminal()
}

// MarkPickedUp records the courier's withdrawal of the package.
//
// The transition is legal only from Pending. A repeated pickup returns
// DuplicateRequestError; a pickup on a terminal delivery returns
// InvalidTransitionError. On any error no field is modified.
func (d *Delivery) MarkPickedUp(at time.Time) error {
	if err := d.Status().ValidatePickUp(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("pickup time")
	}

	d.pickedUpAt = &at
	return nil
}

// MarkDelivered records the completion of the delivery with a reference to
// the stored proof-of-delivery artifact.
//
// The transition is legal only from PickedUp: a Pending package was never
// collected and a terminal delivery rejects every transition. On any error
// no field is modified.
func (d *Delivery) MarkDelivered(at time.Time, proofID kernel.UUID) error {
	if err := d.Status().ValidateDeliver(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("delivery time")
	}
	if err := proofID.Validate(); err != nil {
		return err
	}

	d.deliveredAt = &at
	d.proofID = &proofID
	return nil
}

// MarkCancelled records the cancellation of the delivery.
//
// The transition is legal from Pending and PickedUp. A delivery that is
// already Delivered or Cancelled returns InvalidTransitionError. On any
// error no field is modified.
func (d *Delivery) MarkCancelled(at time.Time) error {
	if err := d.Status().ValidateCancel(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("cancellation time")
	}

	d.cancelledAt = &at
	return nil
}

// setID validates and sets the delivery's unique identifier.
func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setProduct validates and sets the package description.
func (d *Delivery) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	d.product = product
	return nil
}

// setCourierID validates and sets the assigned courier.
func (d *Delivery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	d.courierID = courierID
	return nil
}

// setRecipientID validates and sets the recipient.
func (d *Delivery) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	d.recipientID = recipientID
	return nil
}

// setCreatedAt validates and sets the dispatch timestamp.
func (d *Delivery) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("creation time")
	}
	d.createdAt = createdAt
	return nil
}
