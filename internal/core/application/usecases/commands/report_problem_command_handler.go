package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/problem"
)

// ReportProblemCommandHandler records a problem report against an existing
// delivery. No lifecycle state changes and no event is emitted; the report
// is pure context for a later dispatcher decision.
type ReportProblemCommandHandler struct {
	uowFactory ProblemUoWFactory
	now        func() time.Time
}

// NewReportProblemCommandHandler creates a handler for problem reporting.
func NewReportProblemCommandHandler(uowFactory ProblemUoWFactory) ReportProblemCommandHandler {
	return ReportProblemCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the report command. The referenced delivery must exist;
// any number of problems may accumulate against the same delivery.
func (h *ReportProblemCommandHandler) Handle(ctx context.Context, cmd ReportProblemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID()); err != nil {
		return err
	}

	p, err := problem.NewProblem(cmd.ProblemID(), cmd.DeliveryID(), cmd.Description(), h.now())
	if err != nil {
		return err
	}

	if err = uow.ProblemRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
