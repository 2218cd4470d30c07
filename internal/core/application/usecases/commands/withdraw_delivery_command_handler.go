package commands

import (
	"context"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/keylock"
)

// WithdrawDeliveryCommandHandler drives the Pending -> PickedUp transition
// through the withdrawal admission gate.
//
// The count-then-admit-then-write sequence runs under two exclusive locks:
// one keyed by delivery id (serializing transitions on the same delivery)
// and one keyed by (courier, calendar day) (serializing admission for the
// same courier's quota). Concurrent requests for a courier's last free slot
// therefore resolve to exactly one admission; the loser observes the
// updated count and receives a quota rejection.
type WithdrawDeliveryCommandHandler struct {
	uowFactory WithdrawalUoWFactory
	locks      *keylock.Registry
	admission  services.WithdrawalAdmission
}

// NewWithdrawDeliveryCommandHandler creates a handler for withdrawal operations.
func NewWithdrawDeliveryCommandHandler(
	uowFactory WithdrawalUoWFactory,
	locks *keylock.Registry,
	admission services.WithdrawalAdmission,
) WithdrawDeliveryCommandHandler {
	return WithdrawDeliveryCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		admission:  admission,
	}
}

// Handle processes the withdrawal request.
//
// All preconditions are evaluated before any field is written: delivery and
// courier existence, assignment, current status, the [8, 20) local-hour
// window and the daily quota including this in-flight request. Any
// violation returns a typed rejection and leaves the record untouched.
func (h *WithdrawDeliveryCommandHandler) Handle(ctx context.Context, cmd WithdrawDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	// Lock order is fixed (delivery, then courier-day) so the handlers
	// that take both can never deadlock against each other.
	unlockDelivery := h.locks.Lock("delivery:" + cmd.DeliveryID().String())
	defer unlockDelivery()

	unlockDay := h.locks.Lock(h.admission.DayKey(cmd.CourierID(), cmd.At()))
	defer unlockDay()

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

	if _, err = uow.CourierRepository().Get(ctx, cmd.CourierID()); err != nil {
		return err
	}

	if !d.BelongsTo(cmd.CourierID()) {
		return errs.NewValueIsInvalidError("courier is not assigned to this delivery")
	}

	if err = d.Status().ValidatePickUp(); err != nil {
		return err
	}

	from, to := h.admission.DayRange(cmd.At())
	pickupsToday, err := deliveryRepo.CountActivePickups(ctx, cmd.CourierID(), from, to)
	if err != nil {
		return err
	}

	if err = h.admission.Admit(cmd.CourierID(), cmd.At(), pickupsToday); err != nil {
		return err
	}

	if err = d.MarkPickedUp(cmd.At()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
