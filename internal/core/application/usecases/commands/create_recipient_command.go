package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/recipient"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateRecipientCommandIsNotConstructed = errors.New(
		"CreateRecipientCommand must be created via NewCreateRecipientCommand constructor",
	)
)

// CreateRecipientCommand represents a request to register a recipient and
// the postal address deliveries for them will be sent to.
type CreateRecipientCommand struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID
	name        string
	address     recipient.Address

	guard guard.ConstructorGuard
}

// NewCreateRecipientCommand creates a command to register a new recipient.
func NewCreateRecipientCommand(
	recipientID kernel.UUID,
	name string,
	address recipient.Address,
) (CreateRecipientCommand, error) {
	cmd := CreateRecipientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipientID(recipientID),
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return CreateRecipientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRecipientCommand) Validate() error {
	return c.guard.Validate(ErrCreateRecipientCommandIsNotConstructed)
}

// RecipientID returns the unique identifier for the recipient.
func (c CreateRecipientCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// Name returns the recipient's display name.
func (c CreateRecipientCommand) Name() string {
	return c.name
}

// Address returns the recipient's postal address.
func (c CreateRecipientCommand) Address() recipient.Address {
	return c.address
}

func (c *CreateRecipientCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	c.recipientID = recipientID
	return nil
}

func (c *CreateRecipientCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateRecipientCommand) setAddress(address recipient.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}
