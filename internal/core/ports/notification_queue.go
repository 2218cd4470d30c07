package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
)

// NotificationQueue hands domain events to the out-of-band notification
// dispatcher. Publishing happens after the producing transaction commits
// and is best-effort: a publish failure is logged by the caller and never
// rolls back the committed transition.
type NotificationQueue interface {
	// Publish enqueues an event for asynchronous delivery.
	Publish(ctx context.Context, event delivery.Event) error

	// Pop dequeues the oldest pending event.
	// Returns (nil, nil) when the queue is empty.
	Pop(ctx context.Context) (*delivery.Event, error)
}

// Mail is an outbound notification rendered from a domain event.
type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers rendered notifications. Implementations decide the
// transport; the dispatch job treats failures as best-effort and logs them.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
