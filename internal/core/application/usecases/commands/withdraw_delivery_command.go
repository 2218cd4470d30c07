package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrWithdrawDeliveryCommandIsNotConstructed = errors.New(
		"WithdrawDeliveryCommand must be created via NewWithdrawDeliveryCommand constructor",
	)
)

// WithdrawDeliveryCommand represents a courier's request to withdraw
// (pick up) a pending delivery at a given instant. The timestamp comes from
// the caller so the transport layer can map numeric epoch input onto it.
//
// Example:
//
//	cmd, err := NewWithdrawDeliveryCommand(deliveryID, courierID, pickupTime)
//	if err != nil {
//	    return fmt.Errorf("invalid withdrawal request: %w", err)
//	}
//
//	handler := NewWithdrawDeliveryCommandHandler(uowFactory, locks, admission)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err // typed rejection: window, quota, transition or not-found
//	}
type WithdrawDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID
	at         time.Time

	guard guard.ConstructorGuard
}

// NewWithdrawDeliveryCommand creates a command to withdraw a delivery.
// Validates that both identifiers are valid and the timestamp is set.
func NewWithdrawDeliveryCommand(
	deliveryID kernel.UUID,
	courierID kernel.UUID,
	at time.Time,
) (WithdrawDeliveryCommand, error) {
	cmd := WithdrawDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setCourierID(courierID),
		cmd.setAt(at),
	); err != nil {
		return WithdrawDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to withdraw.
func (c WithdrawDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the courier requesting the withdrawal.
func (c WithdrawDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// At returns the requested pickup instant.
func (c WithdrawDeliveryCommand) At() time.Time {
	return c.at
}

func (c *WithdrawDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *WithdrawDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}

func (c *WithdrawDeliveryCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("pickup time")
	}
	c.at = at
	return nil
}
