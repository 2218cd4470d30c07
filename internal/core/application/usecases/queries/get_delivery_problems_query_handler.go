package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryProblemsQueryHandler retrieves the problems reported against a
// single delivery.
type GetDeliveryProblemsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryProblemsQueryHandler creates a handler for per-delivery
// problem queries.
func NewGetDeliveryProblemsQueryHandler(db *gorm.DB) GetDeliveryProblemsQueryHandler {
	return GetDeliveryProblemsQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice when the delivery has
// no reported problems; existence of the delivery itself is not checked.
func (h GetDeliveryProblemsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryProblemsQuery,
) ([]GetDeliveryProblemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	problems := make([]GetDeliveryProblemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			description,
			created_at
		FROM problems
		WHERE delivery_id = ?
		ORDER BY created_at
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDeliveryProblemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Description,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		problemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = problemID

		problems = append(problems, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return problems, nil
}
