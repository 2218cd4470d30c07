package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
)

// CreateDeliveryCommand represents a dispatcher's request to register a new
// delivery assignment: a product handed to a courier for a recipient.
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	cmd, err := NewCreateDeliveryCommand(deliveryID, "Mechanical keyboard", courierID, recipientID)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, queue, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	product     string
	courierID   kernel.UUID
	recipientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
// Validates that all identifiers are valid and the product is not empty.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	product string,
	courierID kernel.UUID,
	recipientID kernel.UUID,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setProduct(product),
		cmd.setCourierID(courierID),
		cmd.setRecipientID(recipientID),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Product returns the package description.
func (c CreateDeliveryCommand) Product() string {
	return c.product
}

// CourierID returns the assigned courier.
func (c CreateDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// RecipientID returns the addressed recipient.
func (c CreateDeliveryCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	c.product = product
	return nil
}

func (c *CreateDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}

func (c *CreateDeliveryCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	c.recipientID = recipientID
	return nil
}
