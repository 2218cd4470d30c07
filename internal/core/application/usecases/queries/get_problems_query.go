// Package queries contains read-only operations implementing the query side
// of the CQRS architecture. Handlers bypass the domain aggregates and read
// the database directly, returning flat response models.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var (
	ErrGetProblemsQueryIsNotConstructed = errors.New(
		"GetProblemsQuery must be created via NewGetProblemsQuery constructor",
	)
)

// GetProblemsQuery retrieves reported problems across all deliveries, newest
// first, with page-based pagination and an optional case-insensitive filter
// on the description.
type GetProblemsQuery struct {
	page   int
	limit  int
	filter string

	guard guard.ConstructorGuard
}

// NewGetProblemsQuery creates a query for the problem listing. A page or
// limit of zero falls back to the defaults; the filter may be empty.
func NewGetProblemsQuery(page, limit int, filter string) (GetProblemsQuery, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageSize
	}

	if page < 1 {
		return GetProblemsQuery{}, errs.NewValueIsInvalidError("page")
	}
	if limit < 1 || limit > maxPageSize {
		return GetProblemsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageSize)
	}

	return GetProblemsQuery{
		page:   page,
		limit:  limit,
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProblemsQuery) Validate() error {
	return q.guard.Validate(ErrGetProblemsQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetProblemsQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetProblemsQuery) Limit() int {
	return q.limit
}

// Filter returns the description filter, possibly empty.
func (q GetProblemsQuery) Filter() string {
	return q.filter
}

// GetProblemsQueryResponse represents one problem report in the listing.
type GetProblemsQueryResponse struct {
	ID          kernel.UUID
	DeliveryID  kernel.UUID
	Description string
	CreatedAt   time.Time
}
