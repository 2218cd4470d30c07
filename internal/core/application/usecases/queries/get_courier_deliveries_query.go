package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetCourierDeliveriesQueryIsNotConstructed = errors.New(
		"GetCourierDeliveriesQuery must be created via NewGetCourierDeliveriesQuery constructor",
	)
)

// GetCourierDeliveriesQuery retrieves one courier's deliveries, split into
// two views: completed (delivered) and open (everything not yet terminal).
// The courier app shows the open list as the work queue and the completed
// list as history.
type GetCourierDeliveriesQuery struct {
	courierID kernel.UUID
	completed bool
	page      int
	limit     int

	guard guard.ConstructorGuard
}

// NewGetCourierDeliveriesQuery creates a query for a courier's deliveries.
// With completed true only delivered packages are returned; otherwise only
// pending and picked-up ones. A page or limit of zero falls back to the
// defaults.
func NewGetCourierDeliveriesQuery(
	courierID kernel.UUID,
	completed bool,
	page, limit int,
) (GetCourierDeliveriesQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierDeliveriesQuery{}, err
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageSize
	}

	if page < 1 {
		return GetCourierDeliveriesQuery{}, errs.NewValueIsInvalidError("page")
	}
	if limit < 1 || limit > maxPageSize {
		return GetCourierDeliveriesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageSize)
	}

	return GetCourierDeliveriesQuery{
		courierID: courierID,
		completed: completed,
		page:      page,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierDeliveriesQueryIsNotConstructed)
}

// CourierID returns the courier whose deliveries are requested.
func (q GetCourierDeliveriesQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Completed reports whether the delivered view was requested.
func (q GetCourierDeliveriesQuery) Completed() bool {
	return q.completed
}

// Page returns the 1-based page number.
func (q GetCourierDeliveriesQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetCourierDeliveriesQuery) Limit() int {
	return q.limit
}

// GetCourierDeliveriesQueryResponse represents one delivery in a courier's
// listing. Status is the derived lifecycle state rendered as text.
type GetCourierDeliveriesQueryResponse struct {
	ID          kernel.UUID
	Product     string
	Status      string
	CreatedAt   time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}
