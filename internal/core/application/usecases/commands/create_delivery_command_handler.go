package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// CreateDeliveryCommandHandler handles the registration of new deliveries.
// Both the courier and the recipient must already exist in their
// directories; the new record starts in Pending status and a registration
// notification is queued for the courier after the commit.
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	queue      ports.NotificationQueue
	logger     *slog.Logger
	now        func() time.Time
}

// NewCreateDeliveryCommandHandler creates a handler for delivery registration.
func NewCreateDeliveryCommandHandler(
	uowFactory UoWFactory,
	queue ports.NotificationQueue,
	logger *slog.Logger,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
		logger:     logger.With("component", "create_delivery_handler"),
		now:        time.Now,
	}
}

// Handle processes the registration command.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	createdAt := h.now()
	d, err := delivery.NewDelivery(cmd.DeliveryID(), cmd.Product(), cmd.CourierID(), cmd.RecipientID(), createdAt)
	if err != nil {
		return err
	}

	contact, address, err := notificationContext(ctx, uow.CourierRepository(), uow.RecipientRepository(), d)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.queue, h.logger,
		delivery.NewEvent(delivery.EventDeliveryRegistered, d, createdAt, contact, address))
	return nil
}
