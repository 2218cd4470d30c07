package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for the courier
// directory. The lifecycle core consults it for existence checks and for
// the contact details denormalized into notification events; directory
// management beyond that is owned externally.
type CourierRepository interface {
	// Add persists a new courier.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its unique identifier.
	// Returns an ObjectNotFoundError when no such courier exists.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
}
