package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrReportProblemCommandIsNotConstructed = errors.New(
		"ReportProblemCommand must be created via NewReportProblemCommand constructor",
	)
)

// ReportProblemCommand represents a courier's report of a problem on the
// route. Recording a problem never changes the delivery's state; it only
// attaches context that a dispatcher may later act on, possibly by
// cancelling the delivery through CancelDueToProblemCommand.
type ReportProblemCommand struct { //nolint:recvcheck //using for validation
	problemID   kernel.UUID
	deliveryID  kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewReportProblemCommand creates a command to record a problem report.
func NewReportProblemCommand(
	problemID kernel.UUID,
	deliveryID kernel.UUID,
	description string,
) (ReportProblemCommand, error) {
	cmd := ReportProblemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProblemID(problemID),
		cmd.setDeliveryID(deliveryID),
		cmd.setDescription(description),
	); err != nil {
		return ReportProblemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportProblemCommand) Validate() error {
	return c.guard.Validate(ErrReportProblemCommandIsNotConstructed)
}

// ProblemID returns the unique identifier for the report.
func (c ReportProblemCommand) ProblemID() kernel.UUID {
	return c.problemID
}

// DeliveryID returns the delivery the problem refers to.
func (c ReportProblemCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Description returns the free-text problem description.
func (c ReportProblemCommand) Description() string {
	return c.description
}

func (c *ReportProblemCommand) setProblemID(problemID kernel.UUID) error {
	if err := problemID.Validate(); err != nil {
		return err
	}
	c.problemID = problemID
	return nil
}

func (c *ReportProblemCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *ReportProblemCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}
