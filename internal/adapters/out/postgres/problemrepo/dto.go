// Package problemrepo persists problem reports attached to deliveries.
package problemrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/problem"

	"github.com/google/uuid"
)

// ProblemDTO represents the database structure for persisting problem
// reports. DeliveryID is indexed for the per-delivery problem listing.
type ProblemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID `gorm:"type:uuid;index"`
	Description string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for problem entities.
func (ProblemDTO) TableName() string {
	return "problems"
}

func fromDomain(p *problem.Problem) ProblemDTO {
	return ProblemDTO{
		ID:          p.ID().Bytes(),
		DeliveryID:  p.DeliveryID().Bytes(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
	}
}

func toDomain(dto ProblemDTO) (*problem.Problem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	return problem.NewProblem(id, deliveryID, dto.Description, dto.CreatedAt)
}
