package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetDeliveryProblemsQueryIsNotConstructed = errors.New(
		"GetDeliveryProblemsQuery must be created via NewGetDeliveryProblemsQuery constructor",
	)
)

// GetDeliveryProblemsQuery retrieves all problems reported against a single
// delivery, oldest first.
type GetDeliveryProblemsQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryProblemsQuery creates a query for one delivery's problems.
func NewGetDeliveryProblemsQuery(deliveryID kernel.UUID) (GetDeliveryProblemsQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryProblemsQuery{}, err
	}

	return GetDeliveryProblemsQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryProblemsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryProblemsQueryIsNotConstructed)
}

// DeliveryID returns the delivery whose problems are requested.
func (q GetDeliveryProblemsQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// GetDeliveryProblemsQueryResponse represents one problem report against
// the requested delivery.
type GetDeliveryProblemsQueryResponse struct {
	ID          kernel.UUID
	Description string
	CreatedAt   time.Time
}
