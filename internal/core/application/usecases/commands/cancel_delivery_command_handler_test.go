package commands_test

import (
	"errors"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	deliveryID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	at := time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, at, "recipient moved")
	require.NoError(t, err)

	d := pendingDelivery(t, deliveryID, courierID, recipientID)

	deliveryRepo := new(MockDeliveryRepository)
	courierRepo := new(MockCourierRepository)
	recipientRepo := new(MockRecipientRepository)
	queue := new(MockNotificationQueue)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, deliveryID).Return(d, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, courierID).Return(testCourier(t, courierID), nil).Once(),
		uow.On("RecipientRepository").Return(recipientRepo).Once(),
		recipientRepo.On("Get", ctx, recipientID).Return(testRecipient(t, recipientID), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		queue.On("Publish", ctx, mock.MatchedBy(func(e delivery.Event) bool {
			return e.Kind == delivery.EventDeliveryCancelled &&
				e.DeliveryID.IsEqual(deliveryID) &&
				e.Reason == "recipient moved"
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelDeliveryCommandHandler(factory, keylock.NewRegistry(), queue, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Cancelled, d.Status())
	queue.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelDeliveryCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	ctx := t.Context()

	deliveryID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, at, "")
	require.NoError(t, err)

	d := cancelledDelivery(t, deliveryID, courierID, recipientID)
	firstCancellation := *d.CancelledAt()

	deliveryRepo := new(MockDeliveryRepository)
	queue := new(MockNotificationQueue)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, deliveryID).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelDeliveryCommandHandler(factory, keylock.NewRegistry(), queue, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	assert.Equal(t, firstCancellation, *d.CancelledAt())
	deliveryRepo.AssertNotCalled(t, "Update")
	queue.AssertNotCalled(t, "Publish")
	uow.AssertNotCalled(t, "Commit")
}

func TestCancelDeliveryCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()

	deliveryID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	at := time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, at, "")
	require.NoError(t, err)

	d := deliveredDelivery(t, deliveryID, courierID, recipientID)

	deliveryRepo := new(MockDeliveryRepository)
	queue := new(MockNotificationQueue)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, deliveryID).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelDeliveryCommandHandler(factory, keylock.NewRegistry(), queue, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	assert.Equal(t, delivery.Delivered, d.Status())
	queue.AssertNotCalled(t, "Publish")
}

// A publish failure after the commit must not surface: the cancellation is
// already durable.
func TestCancelDeliveryCommandHandler_Handle_PublishFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()

	deliveryID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	at := time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, at, "")
	require.NoError(t, err)

	d := pendingDelivery(t, deliveryID, courierID, recipientID)

	deliveryRepo := new(MockDeliveryRepository)
	courierRepo := new(MockCourierRepository)
	recipientRepo := new(MockRecipientRepository)
	queue := new(MockNotificationQueue)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	uow.On("RecipientRepository").Return(recipientRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	deliveryRepo.On("Get", ctx, deliveryID).Return(d, nil).Once()
	deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()
	courierRepo.On("Get", ctx, courierID).Return(testCourier(t, courierID), nil).Once()
	recipientRepo.On("Get", ctx, recipientID).Return(testRecipient(t, recipientID), nil).Once()
	queue.On("Publish", ctx, mock.AnythingOfType("delivery.Event")).
		Return(errors.New("queue unavailable")).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelDeliveryCommandHandler(factory, keylock.NewRegistry(), queue, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Cancelled, d.Status())
	queue.AssertExpectations(t)
}
