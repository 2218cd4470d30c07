package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/keylock"
)

// CancelDeliveryCommandHandler drives the Pending/PickedUp -> Cancelled
// transition. On success a DeliveryCancelled event carrying the courier
// contact and recipient address is queued after the commit, so the
// notification dispatcher can act without a follow-up query.
type CancelDeliveryCommandHandler struct {
	uowFactory UoWFactory
	locks      *keylock.Registry
	queue      ports.NotificationQueue
	logger     *slog.Logger
}

// NewCancelDeliveryCommandHandler creates a handler for delivery cancellation.
func NewCancelDeliveryCommandHandler(
	uowFactory UoWFactory,
	locks *keylock.Registry,
	queue ports.NotificationQueue,
	logger *slog.Logger,
) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		queue:      queue,
		logger:     logger.With("component", "cancel_delivery_handler"),
	}
}

// Handle processes the cancellation request. Terminal deliveries reject the
// request with a transition error; nothing is written on any failure path.
func (h *CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locks.Lock("delivery:" + cmd.DeliveryID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
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
	event.Reason = cmd.Reason()
	publishEvent(ctx, h.queue, h.logger, event)
	return nil
}
