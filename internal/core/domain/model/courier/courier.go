// Package courier contains the Courier aggregate: the person who withdraws
// packages and carries them to recipients. The directory itself is plumbing;
// the lifecycle core consults it for existence checks and for the contact
// details that notification events denormalize.
package courier

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrCourierIsNotConstructed is returned when a Courier instance was not
	// created through the NewCourier factory method.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a registered courier with the contact details used in
// outbound notifications.
type Courier struct {
	// id is the unique identifier for the courier
	id kernel.UUID

	// name is the courier's display name
	name string

	// email receives pickup and cancellation notifications
	email string

	// isConstructed ensures the courier was created via NewCourier
	isConstructed bool
}

// NewCourier creates a new Courier with validation.
// The email must contain an '@'; nothing stricter is enforced here because
// the mail collaborator is responsible for actual deliverability.
func NewCourier(id kernel.UUID, name, email string) (*Courier, error) {
	c := &Courier{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Courier instance was properly constructed through NewCourier.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Email returns the courier's notification address.
func (c *Courier) Email() string {
	return c.email
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Courier) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	c.email = email
	return nil
}
