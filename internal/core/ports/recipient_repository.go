package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/recipient"
)

// RecipientRepository defines the persistence contract for the recipient
// directory. Like the courier directory, the core only needs existence
// checks and the address context carried by notification events.
type RecipientRepository interface {
	// Add persists a new recipient.
	Add(ctx context.Context, aggregate *recipient.Recipient) error

	// Get retrieves a recipient by its unique identifier.
	// Returns an ObjectNotFoundError when no such recipient exists.
	Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error)
}
