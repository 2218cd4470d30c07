package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/keylock"
)

// CompleteDeliveryCommandHandler drives the PickedUp -> Delivered
// transition. The proof reference must resolve to a stored artifact before
// any field is written; on success a DeliveryCompleted event with
// denormalized courier/recipient context is queued after the commit.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	locks      *keylock.Registry
	proofs     ports.ProofStore
	queue      ports.NotificationQueue
	logger     *slog.Logger
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory UoWFactory,
	locks *keylock.Registry,
	proofs ports.ProofStore,
	queue ports.NotificationQueue,
	logger *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		proofs:     proofs,
		queue:      queue,
		logger:     logger.With("component", "complete_delivery_handler"),
	}
}

// Handle processes the completion request. A delivery that was never picked
// up, or that is already terminal, is rejected with a transition error; a
// proof reference that does not resolve is rejected with a not-found error.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	if !d.BelongsTo(cmd.CourierID()) {
		return errs.NewValueIsInvalidError("courier is not assigned to this delivery")
	}

	if err = d.Status().ValidateDeliver(); err != nil {
		return err
	}

	exists, err := h.proofs.Exists(ctx, cmd.ProofRef())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("proof", cmd.ProofRef().String())
	}

	if err = d.MarkDelivered(cmd.At(), cmd.ProofRef()); err != nil {
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

	publishEvent(ctx, h.queue, h.logger,
		delivery.NewEvent(delivery.EventDeliveryCompleted, d, cmd.At(), contact, address))
	return nil
}
