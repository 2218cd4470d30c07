package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProblemsQueryHandler retrieves reported problems from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetProblemsQueryHandler struct {
	db *gorm.DB
}

// NewGetProblemsQueryHandler creates a handler for problem listing queries.
func NewGetProblemsQueryHandler(db *gorm.DB) GetProblemsQueryHandler {
	return GetProblemsQueryHandler{db: db}
}

// Handle executes the query. Results come newest first; when a filter is
// set only problems whose description matches it case-insensitively are
// returned.
func (h GetProblemsQueryHandler) Handle(
	ctx context.Context,
	query GetProblemsQuery,
) ([]GetProblemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	problems := make([]GetProblemsQueryResponse, 0)
	offset := (query.Page() - 1) * query.Limit()

	stmt := `
		SELECT
			id,
			delivery_id,
			description,
			created_at
		FROM problems
	`
	args := make([]any, 0, 3)
	if query.Filter() != "" {
		stmt += ` WHERE description ILIKE ?`
		args = append(args, "%"+query.Filter()+"%")
	}
	stmt += ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, query.Limit(), offset)

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetProblemsQueryResponse
		var id, deliveryID uuid.UUID

		err = rows.Scan(
			&id,
			&deliveryID,
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

		dID, idErr := kernel.UUIDFromBytes(deliveryID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.DeliveryID = dID

		problems = append(problems, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return problems, nil
}
