// Package problem contains the Problem entity: a free-text report a courier
// attaches to a delivery when something goes wrong on the route. Reporting a
// problem never changes delivery state by itself; cancellation because of a
// problem is a separate, explicit action handled by the application layer.
package problem

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrProblemIsNotConstructed is returned when a Problem instance was not
	// created through the NewProblem factory method.
	ErrProblemIsNotConstructed = errors.New("Problem must be created via NewProblem constructor")
)

// Problem is a report attached to exactly one delivery. A delivery may
// accumulate any number of problems; the entity itself is immutable once
// recorded.
type Problem struct {
	// id is the unique identifier for the problem report
	id kernel.UUID

	// deliveryID references the delivery the problem was reported against
	deliveryID kernel.UUID

	// description is the courier's free-text account of the problem
	description string

	// createdAt is the report timestamp
	createdAt time.Time

	// isConstructed ensures the problem was created via NewProblem
	isConstructed bool
}

// NewProblem creates a new Problem report with validation.
func NewProblem(id, deliveryID kernel.UUID, description string, createdAt time.Time) (*Problem, error) {
	p := &Problem{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDeliveryID(deliveryID),
		p.setDescription(description),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Problem instance was properly constructed through NewProblem.
func (p *Problem) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProblemIsNotConstructed
	}
	return nil
}

// ID returns the problem's unique identifier.
func (p *Problem) ID() kernel.UUID {
	return p.id
}

// DeliveryID returns the identifier of the delivery the problem refers to.
func (p *Problem) DeliveryID() kernel.UUID {
	return p.deliveryID
}

// Description returns the free-text problem description.
func (p *Problem) Description() string {
	return p.description
}

// CreatedAt returns the report timestamp.
func (p *Problem) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Problem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Problem) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	p.deliveryID = deliveryID
	return nil
}

func (p *Problem) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}

func (p *Problem) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("creation time")
	}
	p.createdAt = createdAt
	return nil
}
