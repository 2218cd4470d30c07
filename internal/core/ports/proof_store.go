package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// ProofStore is the collaborator holding proof-of-delivery artifacts
// (signatures). The core only ever checks that a referenced artifact
// exists; content and storage layout are external concerns.
type ProofStore interface {
	// Add records the metadata of a stored artifact under the given id.
	Add(ctx context.Context, id kernel.UUID, name, path string) error

	// Exists reports whether an artifact is stored under the given reference.
	Exists(ctx context.Context, ref kernel.UUID) (bool, error)
}
