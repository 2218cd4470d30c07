package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
		"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
	)
)

// CompleteDeliveryCommand represents a courier's request to mark a picked-up
// delivery as delivered, referencing a previously stored proof-of-delivery
// artifact (the recipient's signature).
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID
	at         time.Time
	proofRef   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
// Validates identifiers, the timestamp and the proof reference.
func NewCompleteDeliveryCommand(
	deliveryID kernel.UUID,
	courierID kernel.UUID,
	at time.Time,
	proofRef kernel.UUID,
) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setCourierID(courierID),
		cmd.setAt(at),
		cmd.setProofRef(proofRef),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to complete.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the courier reporting the completion.
func (c CompleteDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// At returns the completion instant.
func (c CompleteDeliveryCommand) At() time.Time {
	return c.at
}

// ProofRef returns the proof-of-delivery artifact reference.
func (c CompleteDeliveryCommand) ProofRef() kernel.UUID {
	return c.proofRef
}

func (c *CompleteDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *CompleteDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}

func (c *CompleteDeliveryCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("delivery time")
	}
	c.at = at
	return nil
}

func (c *CompleteDeliveryCommand) setProofRef(proofRef kernel.UUID) error {
	if err := proofRef.Validate(); err != nil {
		return err
	}
	c.proofRef = proofRef
	return nil
}
