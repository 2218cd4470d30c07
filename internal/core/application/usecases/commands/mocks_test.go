package commands_test

import (
	"context"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/problem"
	"dispatch/internal/core/domain/model/recipient"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) CountActivePickups(
	ctx context.Context,
	courierID kernel.UUID,
	from, to time.Time,
) (int, error) {
	args := m.Called(ctx, courierID, from, to)
	return args.Int(0), args.Error(1)
}

type MockProblemRepository struct{ mock.Mock }

func (m *MockProblemRepository) Add(ctx context.Context, p *problem.Problem) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProblemRepository) Get(ctx context.Context, id kernel.UUID) (*problem.Problem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*problem.Problem), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockRecipientRepository struct{ mock.Mock }

func (m *MockRecipientRepository) Add(ctx context.Context, r *recipient.Recipient) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipientRepository) Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipient.Recipient), args.Error(1)
}

// MockUoW implements every unit of work variant used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) ProblemRepository() ports.ProblemRepository {
	args := m.Called()
	return args.Get(0).(ports.ProblemRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) RecipientRepository() ports.RecipientRepository {
	args := m.Called()
	return args.Get(0).(ports.RecipientRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockWithdrawalUoWFactory struct{ mock.Mock }

func (m *MockWithdrawalUoWFactory) Create() commands.WithdrawalUoW {
	args := m.Called()
	return args.Get(0).(commands.WithdrawalUoW)
}

type MockProblemUoWFactory struct{ mock.Mock }

func (m *MockProblemUoWFactory) Create() commands.ProblemUoW {
	args := m.Called()
	return args.Get(0).(commands.ProblemUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockRecipientUoWFactory struct{ mock.Mock }

func (m *MockRecipientUoWFactory) Create() commands.RecipientUoW {
	args := m.Called()
	return args.Get(0).(commands.RecipientUoW)
}

type MockNotificationQueue struct{ mock.Mock }

func (m *MockNotificationQueue) Publish(ctx context.Context, event delivery.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockNotificationQueue) Pop(ctx context.Context) (*delivery.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Event), args.Error(1)
}

type MockProofStore struct{ mock.Mock }

func (m *MockProofStore) Add(ctx context.Context, id kernel.UUID, name, path string) error {
	args := m.Called(ctx, id, name, path)
	return args.Error(0)
}

func (m *MockProofStore) Exists(ctx context.Context, ref kernel.UUID) (bool, error) {
	args := m.Called(ctx, ref)
	return args.Bool(0), args.Error(1)
}
