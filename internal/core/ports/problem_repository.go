package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/problem"
)

// ProblemRepository defines the persistence contract for problem reports.
// Listing and filtering problems is read-side behavior served by queries,
// not by this repository.
type ProblemRepository interface {
	// Add persists a new problem report.
	Add(ctx context.Context, aggregate *problem.Problem) error

	// Get retrieves a problem report by its unique identifier.
	// Returns an ObjectNotFoundError when no such problem exists.
	Get(ctx context.Context, id kernel.UUID) (*problem.Problem, error)
}
