package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// notificationContext loads the courier contact and recipient address a
// notification event denormalizes, so the dispatcher never needs a
// follow-up query. Must run inside the same transaction as the transition
// it accompanies.
func notificationContext(
	ctx context.Context,
	couriers ports.CourierRepository,
	recipients ports.RecipientRepository,
	d *delivery.Delivery,
) (delivery.CourierContact, delivery.RecipientAddress, error) {
	c, err := couriers.Get(ctx, d.CourierID())
	if err != nil {
		return delivery.CourierContact{}, delivery.RecipientAddress{}, err
	}

	r, err := recipients.Get(ctx, d.RecipientID())
	if err != nil {
		return delivery.CourierContact{}, delivery.RecipientAddress{}, err
	}

	contact := delivery.CourierContact{
		Name:  c.Name(),
		Email: c.Email(),
	}
	address := delivery.RecipientAddress{
		Name:       r.Name(),
		Street:     r.Address().Street,
		Number:     r.Address().Number,
		Complement: r.Address().Complement,
		City:       r.Address().City,
		State:      r.Address().State,
		Zip:        r.Address().Zip,
	}
	return contact, address, nil
}

// publishEvent hands a committed transition's event to the notification
// queue. Publishing is best-effort: failures are logged and never surfaced
// to the caller, because the state change is already durable.
func publishEvent(
	ctx context.Context,
	queue ports.NotificationQueue,
	logger *slog.Logger,
	event delivery.Event,
) {
	if queue == nil {
		return
	}
	if err := queue.Publish(ctx, event); err != nil {
		logger.ErrorContext(ctx, "failed to publish notification event",
			"kind", event.Kind,
			"delivery_id", event.DeliveryID.String(),
			"error", err,
		)
	}
}
