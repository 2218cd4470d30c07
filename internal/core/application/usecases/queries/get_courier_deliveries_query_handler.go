package queries

import (
	"context"
	"database/sql"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierDeliveriesQueryHandler retrieves one courier's deliveries from
// the database.
type GetCourierDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierDeliveriesQueryHandler creates a handler for courier
// delivery listings.
func NewGetCourierDeliveriesQueryHandler(db *gorm.DB) GetCourierDeliveriesQueryHandler {
	return GetCourierDeliveriesQueryHandler{db: db}
}

// Handle executes the query. The completed view returns delivered packages
// newest first; the open view returns pending and picked-up packages oldest
// first, matching the order the courier should work them.
func (h GetCourierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetCourierDeliveriesQuery,
) ([]GetCourierDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetCourierDeliveriesQueryResponse, 0)
	offset := (query.Page() - 1) * query.Limit()

	stmt := `
		SELECT
			id,
			product,
			created_at,
			picked_up_at,
			delivered_at,
			cancelled_at
		FROM deliveries
		WHERE courier_id = ?
	`
	if query.Completed() {
		stmt += ` AND delivered_at IS NOT NULL ORDER BY delivered_at DESC`
	} else {
		stmt += ` AND delivered_at IS NULL AND cancelled_at IS NULL ORDER BY created_at`
	}
	stmt += ` LIMIT ? OFFSET ?`

	rows, err := h.db.WithContext(ctx).
		Raw(stmt, query.CourierID().Bytes(), query.Limit(), offset).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCourierDeliveriesQueryResponse
		var id uuid.UUID
		var pickedUpAt, deliveredAt, cancelledAt sql.NullTime

		err = rows.Scan(
			&id,
			&resp.Product,
			&resp.CreatedAt,
			&pickedUpAt,
			&deliveredAt,
			&cancelledAt,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = deliveryID

		resp.PickedUpAt = nullableTime(pickedUpAt)
		resp.DeliveredAt = nullableTime(deliveredAt)
		resp.CancelledAt = nullableTime(cancelledAt)
		resp.Status = deriveStatus(resp.PickedUpAt, resp.DeliveredAt, resp.CancelledAt).String()

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

// deriveStatus mirrors the aggregate's timestamp precedence without paying
// for a full aggregate restore on the read path.
func deriveStatus(pickedUpAt, deliveredAt, cancelledAt *time.Time) delivery.Status {
	switch {
	case cancelledAt != nil:
		return delivery.Cancelled
	case deliveredAt != nil:
		return delivery.Delivered
	case pickedUpAt != nil:
		return delivery.PickedUp
	default:
		return delivery.Pending
	}
}
