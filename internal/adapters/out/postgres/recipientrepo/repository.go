package recipientrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/recipient"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRecipientRepository implements RecipientRepository using GORM.
type GormRecipientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRecipientRepository creates a new GORM recipient repository.
func NewGormRecipientRepository(db *gorm.DB, tracker aggregateTracker) *GormRecipientRepository {
	return &GormRecipientRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new recipient to the database.
func (r *GormRecipientRepository) Add(ctx context.Context, aggregate *recipient.Recipient) error {
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

// Get retrieves a recipient by ID.
func (r *GormRecipientRepository) Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecipientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipient", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
