// Package ports defines the collaborator contracts consumed by the
// lifecycle core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The delivery must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such delivery exists.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// CountActivePickups counts the courier's deliveries whose pickup
	// timestamp falls within [from, to] and that are neither delivered nor
	// cancelled. It is the read side of the daily withdrawal quota and must
	// observe a view consistent with the surrounding critical section: the
	// caller holds the (courier, day) lock across the count and the
	// subsequent pickup write.
	CountActivePickups(ctx context.Context, courierID kernel.UUID, from, to time.Time) (int, error)
}
