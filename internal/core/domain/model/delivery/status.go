package delivery

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Pending ──> PickedUp ──> Delivered
//	   │            │
//	   └────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
// Status is never persisted directly; it is derived from the lifecycle
// timestamps of the Delivery aggregate.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the package has been registered
	// but the courier has not yet withdrawn it.
	Pending

	// PickedUp indicates the courier has taken physical possession
	// of the package.
	PickedUp

	// Delivered indicates the package reached the recipient.
	// This is a terminal state.
	Delivered

	// Cancelled indicates the delivery was called off before completion.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values outside the defined set are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidatePickUp checks that a withdrawal is legal from the current status.
//
// Returns:
//   - nil when the status is Pending
//   - DuplicateRequestError when the package was already picked up
//   - InvalidTransitionError when the status is terminal
func (s Status) ValidatePickUp() error {
	switch s {
	case Pending:
		return nil
	case PickedUp:
		return NewDuplicateRequestError(PickedUp)
	default:
		return NewInvalidTransitionError(s, PickedUp)
	}
}

// ValidateDeliver checks that a delivery completion is legal from the
// current status. Only PickedUp qualifies: a Pending package was never
// collected, and terminal states reject every transition.
func (s Status) ValidateDeliver() error {
	if s != PickedUp {
		return NewInvalidTransitionError(s, Delivered)
	}
	return nil
}

// ValidateCancel checks that a cancellation is legal from the current
// status. Pending and PickedUp deliveries may be cancelled; terminal
// states, including an earlier cancellation, reject the request.
func (s Status) ValidateCancel() error {
	if s.IsTerminal() {
		return NewInvalidTransitionError(s, Cancelled)
	}
	return nil
}
