// Package redis provides the Redis-backed notification queue. Events are
// serialized to JSON and pushed onto a list; the dispatch job drains the
// list from the other end, giving FIFO ordering across producers.
package redis

import (
	"context"
	"encoding/json"
	"errors"

	"dispatch/internal/core/domain/model/delivery"

	goredis "github.com/redis/go-redis/v9"
)

// defaultQueueKey is used when no key is configured.
const defaultQueueKey = "dispatch:notifications"

// NotificationQueue implements ports.NotificationQueue on top of a Redis
// list.
type NotificationQueue struct {
	client *goredis.Client
	key    string
}

// NewNotificationQueue creates a queue on the given client. An empty key
// falls back to the default.
func NewNotificationQueue(client *goredis.Client, key string) *NotificationQueue {
	if key == "" {
		key = defaultQueueKey
	}
	return &NotificationQueue{
		client: client,
		key:    key,
	}
}

// Publish enqueues an event for asynchronous delivery.
func (q *NotificationQueue) Publish(ctx context.Context, event delivery.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return q.client.LPush(ctx, q.key, payload).Err()
}

// Pop dequeues the oldest pending event. Returns (nil, nil) when the queue
// is empty.
func (q *NotificationQueue) Pop(ctx context.Context) (*delivery.Event, error) {
	payload, err := q.client.RPop(ctx, q.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var event delivery.Event
	if err = json.Unmarshal(payload, &event); err != nil {
		return nil, err
	}

	return &event, nil
}
