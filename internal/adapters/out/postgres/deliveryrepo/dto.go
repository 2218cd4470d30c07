// Package deliveryrepo persists delivery aggregates. The lifecycle status is
// intentionally not a column: it is derived from the nullable timestamps on
// load, so the database can never hold a status that contradicts them.
package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. CourierID is indexed because the daily quota count filters
// by courier.
type DeliveryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Product     string     `gorm:"not null"`
	CourierID   uuid.UUID  `gorm:"type:uuid;index"`
	RecipientID uuid.UUID  `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	PickedUpAt  *time.Time `gorm:"index"`
	DeliveredAt *time.Time
	CancelledAt *time.Time
	ProofID     *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var proofID *uuid.UUID
	if id := d.ProofID(); id != nil {
		raw := id.Bytes()
		proofID = &raw
	}

	return DeliveryDTO{
		ID:          d.ID().Bytes(),
		Product:     d.Product(),
		CourierID:   d.CourierID().Bytes(),
		RecipientID: d.RecipientID().Bytes(),
		CreatedAt:   d.CreatedAt(),
		PickedUpAt:  d.PickedUpAt(),
		DeliveredAt: d.DeliveredAt(),
		CancelledAt: d.CancelledAt(),
		ProofID:     proofID,
	}
}

// toDomain converts a database DTO back to a delivery aggregate. The
// timestamp combination is validated by RestoreDelivery, so a corrupt row
// surfaces as an error instead of an impossible state.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	var proofID *kernel.UUID
	if dto.ProofID != nil {
		pID, proofErr := kernel.UUIDFromBytes((*dto.ProofID)[:])
		if proofErr != nil {
			return nil, proofErr
		}
		proofID = &pID
	}

	return delivery.RestoreDelivery(
		id,
		dto.Product,
		courierID,
		recipientID,
		dto.CreatedAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
		dto.CancelledAt,
		proofID,
	)
}
