package problemrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/problem"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProblemRepository implements ProblemRepository using GORM.
type GormProblemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProblemRepository creates a new GORM problem repository.
func NewGormProblemRepository(db *gorm.DB, tracker aggregateTracker) *GormProblemRepository {
	return &GormProblemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new problem report to the database.
func (r *GormProblemRepository) Add(ctx context.Context, aggregate *problem.Problem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a problem report by ID.
func (r *GormProblemRepository) Get(ctx context.Context, id kernel.UUID) (*problem.Problem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProblemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("problem", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
