package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCancelDeliveryCommandIsNotConstructed = errors.New(
		"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
	)
)

// CancelDeliveryCommand represents a request to cancel a delivery that has
// not yet reached the recipient. The optional reason is carried into the
// cancellation notification.
type CancelDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	at         time.Time
	reason     string

	guard guard.ConstructorGuard
}

// NewCancelDeliveryCommand creates a command to cancel a delivery.
func NewCancelDeliveryCommand(deliveryID kernel.UUID, at time.Time, reason string) (CancelDeliveryCommand, error) {
	cmd := CancelDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setAt(at),
	); err != nil {
		return CancelDeliveryCommand{}, err
	}

	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to cancel.
func (c CancelDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// At returns the cancellation instant.
func (c CancelDeliveryCommand) At() time.Time {
	return c.at
}

// Reason returns the free-text cancellation reason, possibly empty.
func (c CancelDeliveryCommand) Reason() string {
	return c.reason
}

func (c *CancelDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *CancelDeliveryCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("cancellation time")
	}
	c.at = at
	return nil
}
