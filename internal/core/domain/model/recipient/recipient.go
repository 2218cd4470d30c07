// Package recipient contains the Recipient aggregate: the party a package is
// addressed to. Like the courier directory, it is plumbing around the
// lifecycle core, which needs existence checks and the postal address that
// cancellation notifications denormalize.
package recipient

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrRecipientIsNotConstructed is returned when a Recipient instance was
	// not created through the NewRecipient factory method.
	ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")
)

// Address is the postal address value object of a recipient.
// Complement is the only optional field.
type Address struct {
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	Zip        string
}

// Validate checks that all required address fields are present.
func (a Address) Validate() error {
	return errors.Join(
		requireField("street", a.Street),
		requireField("number", a.Number),
		requireField("city", a.City),
		requireField("state", a.State),
		requireField("zip", a.Zip),
	)
}

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// Recipient represents a registered recipient with the postal address used
// in outbound notifications.
type Recipient struct {
	// id is the unique identifier for the recipient
	id kernel.UUID

	// name is the recipient's display name
	name string

	// address is the delivery address
	address Address

	// isConstructed ensures the recipient was created via NewRecipient
	isConstructed bool
}

// NewRecipient creates a new Recipient with validation.
func NewRecipient(id kernel.UUID, name string, address Address) (*Recipient, error) {
	r := &Recipient{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Recipient instance was properly constructed through NewRecipient.
func (r *Recipient) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecipientIsNotConstructed
	}
	return nil
}

// IsEqual compares two recipients by their unique identifiers.
func (r *Recipient) IsEqual(other *Recipient) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the recipient's unique identifier.
func (r *Recipient) ID() kernel.UUID {
	return r.id
}

// Name returns the recipient's display name.
func (r *Recipient) Name() string {
	return r.name
}

// Address returns the recipient's postal address.
func (r *Recipient) Address() Address {
	return r.address
}

func (r *Recipient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Recipient) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Recipient) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	r.address = address
	return nil
}
