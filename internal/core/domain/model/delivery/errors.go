package delivery

import (
	"errors"
	"fmt"
)

// Sentinel errors for lifecycle rejections. Use errors.Is against these to
// classify a rejection without depending on the concrete struct type.
var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrDuplicateRequest  = errors.New("duplicate request")
)

// InvalidTransitionError indicates that a requested transition is illegal
// from the delivery's current status: the target is unreachable, or the
// delivery is already in a terminal state.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// rejected edge from -> to.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s is not allowed", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// DuplicateRequestError indicates a transition that would re-apply an
// already-applied change. Repeat requests surface client bugs or duplicated
// messages, so they are rejected rather than silently accepted.
type DuplicateRequestError struct {
	Applied Status
}

// NewDuplicateRequestError creates a DuplicateRequestError for a transition
// whose target status was already reached.
func NewDuplicateRequestError(applied Status) *DuplicateRequestError {
	return &DuplicateRequestError{Applied: applied}
}

func (e *DuplicateRequestError) Error() string {
	return fmt.Sprintf("%s: delivery is already %s", ErrDuplicateRequest, e.Applied)
}

func (e *DuplicateRequestError) Unwrap() error {
	return ErrDuplicateRequest
}
