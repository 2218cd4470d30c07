package redis_test

import (
	"testing"
	"time"

	redisqueue "dispatch/internal/adapters/out/redis"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T) *redisqueue.NotificationQueue {
	t.Helper()

	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return redisqueue.NewNotificationQueue(client, "test:notifications")
}

func testEvent(kind delivery.EventKind) delivery.Event {
	return delivery.Event{
		Kind:       kind,
		DeliveryID: kernel.NewUUID(),
		Product:    "Mechanical keyboard",
		OccurredAt: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		Courier: delivery.CourierContact{
			Name:  "John Doe",
			Email: "john@example.com",
		},
		Recipient: delivery.RecipientAddress{
			Name:   "Jane Smith",
			Street: "Baker Street",
			Number: "221B",
			City:   "London",
			State:  "LDN",
			Zip:    "NW1 6XE",
		},
	}
}

func TestNotificationQueue_PublishAndPop_RoundTrip(t *testing.T) {
	ctx := t.Context()
	queue := newTestQueue(t)

	published := testEvent(delivery.EventDeliveryCompleted)
	require.NoError(t, queue.Publish(ctx, published))

	popped, err := queue.Pop(ctx)

	require.NoError(t, err)
	require.NotNil(t, popped)
	assert.Equal(t, published.Kind, popped.Kind)
	assert.True(t, published.DeliveryID.IsEqual(popped.DeliveryID))
	assert.Equal(t, published.Product, popped.Product)
	assert.Equal(t, published.Courier, popped.Courier)
	assert.Equal(t, published.Recipient, popped.Recipient)
	assert.True(t, published.OccurredAt.Equal(popped.OccurredAt))
}

func TestNotificationQueue_Pop_EmptyQueue(t *testing.T) {
	ctx := t.Context()
	queue := newTestQueue(t)

	event, err := queue.Pop(ctx)

	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestNotificationQueue_Pop_PreservesFIFOOrder(t *testing.T) {
	ctx := t.Context()
	queue := newTestQueue(t)

	first := testEvent(delivery.EventDeliveryRegistered)
	second := testEvent(delivery.EventDeliveryCompleted)
	third := testEvent(delivery.EventDeliveryCancelled)

	require.NoError(t, queue.Publish(ctx, first))
	require.NoError(t, queue.Publish(ctx, second))
	require.NoError(t, queue.Publish(ctx, third))

	for _, want := range []delivery.Event{first, second, third} {
		got, err := queue.Pop(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want.Kind, got.Kind)
		assert.True(t, want.DeliveryID.IsEqual(got.DeliveryID))
	}
}
