package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/keylock"
)

// CancelDueToProblemCommandHandler resolves a problem report by cancelling
// the delivery it refers to. A delivery already in a terminal state rejects
// the request with a transition error, so acting twice on reports against
// the same delivery fails cleanly on the second attempt.
type CancelDueToProblemCommandHandler struct {
	uowFactory UoWFactory
	locks      *keylock.Registry
	queue      ports.NotificationQueue
	logger     *slog.Logger
}

// NewCancelDueToProblemCommandHandler creates a handler for problem-driven
// cancellation.
func NewCancelDueToProblemCommandHandler(
	uowFactory UoWFactory,
	locks *keylock.Registry,
	queue ports.NotificationQueue,
	logger *slog.Logger,
) CancelDueToProblemCommandHandler {
	return CancelDueToProblemCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		queue:      queue,
		logger:     logger.With("component", "cancel_due_to_problem_handler"),
	}
}

// Handle processes the cancellation. The problem's description is carried
// into the DeliveryCancelled notification as the cancellation reason.
func (h *CancelDueToProblemCommandHandler) Handle(ctx context.Context, cmd CancelDueToProblemCommand) error {
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

	p, err := uow.ProblemRepository().Get(ctx, cmd.ProblemID())
	if err != nil {
		return err
	}

	unlock := h.locks.Lock("delivery:" + p.DeliveryID().String())
	defer unlock()

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.Get(ctx, p.DeliveryID())
	if err != nil {
		return err
	}

	if err = d.MarkCancelled(cmd.At()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	contact, address, err := notificationContext(ctx, uow.CourierRepository(), uow.RecipientRepository(), d)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := delivery.NewEvent(delivery.EventDeliveryCancelled, d, cmd.At(), contact, address)
	event.Reason = p.Description()
	publishEvent(ctx, h.queue, h.logger, event)
	return nil
}
