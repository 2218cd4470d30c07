package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCancelDueToProblemCommandIsNotConstructed = errors.New(
		"CancelDueToProblemCommand must be created via NewCancelDueToProblemCommand constructor",
	)
)

// CancelDueToProblemCommand represents a dispatcher's decision to cancel a
// delivery because of a previously reported problem. The problem's
// description becomes the cancellation reason.
type CancelDueToProblemCommand struct { //nolint:recvcheck //using for validation
	problemID kernel.UUID
	at        time.Time

	guard guard.ConstructorGuard
}

// NewCancelDueToProblemCommand creates a command to cancel the delivery a
// problem report refers to.
func NewCancelDueToProblemCommand(problemID kernel.UUID, at time.Time) (CancelDueToProblemCommand, error) {
	cmd := CancelDueToProblemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProblemID(problemID),
		cmd.setAt(at),
	); err != nil {
		return CancelDueToProblemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDueToProblemCommand) Validate() error {
	return c.guard.Validate(ErrCancelDueToProblemCommandIsNotConstructed)
}

// ProblemID returns the problem report driving the cancellation.
func (c CancelDueToProblemCommand) ProblemID() kernel.UUID {
	return c.problemID
}

// At returns the cancellation instant.
func (c CancelDueToProblemCommand) At() time.Time {
	return c.at
}

func (c *CancelDueToProblemCommand) setProblemID(problemID kernel.UUID) error {
	if err := problemID.Validate(); err != nil {
		return err
	}
	c.problemID = problemID
	return nil
}

func (c *CancelDueToProblemCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("cancellation time")
	}
	c.at = at
	return nil
}
