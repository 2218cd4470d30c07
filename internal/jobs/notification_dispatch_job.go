package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// NotificationDispatchJob drains the notification queue and delivers mails
// rendered from domain events. Runs every second so notifications follow
// their transitions with minimal lag.
type NotificationDispatchJob struct {
	queue  ports.NotificationQueue
	mailer ports.Mailer
	cron   *cron.Cron
	logger *slog.Logger
}

// NewNotificationDispatchJob creates a new job that dispatches queued
// notification events through the given mailer.
func NewNotificationDispatchJob(queue ports.NotificationQueue, mailer ports.Mailer, logger *slog.Logger) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		queue:  queue,
		mailer: mailer,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the notification dispatch job to run every second.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.drain(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every second)")
	return nil
}

// Stop stops the notification dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}

// drain pops and dispatches events until the queue is empty. Failures are
// logged and the loop moves on: notification delivery is best-effort and
// must never wedge the queue behind a single bad event.
func (j *NotificationDispatchJob) drain(ctx context.Context) {
	for {
		event, err := j.queue.Pop(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to pop notification event", "error", err)
			return
		}
		if event == nil {
			return
		}

		mail := RenderMail(*event)
		if err := j.mailer.Send(ctx, mail); err != nil {
			j.logger.ErrorContext(ctx, "Failed to send notification mail",
				"error", err,
				"kind", event.Kind,
				"delivery_id", event.DeliveryID.String(),
			)
			continue
		}

		j.logger.InfoContext(ctx, "Notification dispatched",
			"kind", event.Kind,
			"delivery_id", event.DeliveryID.String(),
			"to", mail.To,
		)
	}
}

// RenderMail builds the outbound notification for a domain event. The
// courier is the addressee for every kind: registration tells them what to
// pick up and where it goes, completion and cancellation confirm the
// outcome.
func RenderMail(event delivery.Event) ports.Mail {
	address := formatAddress(event.Recipient)

	switch event.Kind {
	case delivery.EventDeliveryCompleted:
		return ports.Mail{
			To:      event.Courier.Email,
			Subject: fmt.Sprintf("Delivery completed: %s", event.Product),
			Body: fmt.Sprintf(
				"Hello %s,\n\nYour delivery of %q to %s (%s) was completed at %s.\n\nThank you!",
				event.Courier.Name, event.Product, event.Recipient.Name, address,
				event.OccurredAt.Format("2006-01-02 15:04"),
			),
		}
	case delivery.EventDeliveryCancelled:
		body := fmt.Sprintf(
			"Hello %s,\n\nThe delivery of %q to %s (%s) was cancelled at %s.",
			event.Courier.Name, event.Product, event.Recipient.Name, address,
			event.OccurredAt.Format("2006-01-02 15:04"),
		)
		if event.Reason != "" {
			body += fmt.Sprintf("\n\nReason: %s", event.Reason)
		}
		return ports.Mail{
			To:      event.Courier.Email,
			Subject: fmt.Sprintf("Delivery cancelled: %s", event.Product),
			Body:    body,
		}
	default:
		return ports.Mail{
			To:      event.Courier.Email,
			Subject: fmt.Sprintf("New delivery assigned: %s", event.Product),
			Body: fmt.Sprintf(
				"Hello %s,\n\nA new delivery of %q for %s is ready for withdrawal.\n\nDestination: %s",
				event.Courier.Name, event.Product, event.Recipient.Name, address,
			),
		}
	}
}

func formatAddress(r delivery.RecipientAddress) string {
	address := fmt.Sprintf("%s, %s", r.Street, r.Number)
	if r.Complement != "" {
		address += ", " + r.Complement
	}
	return fmt.Sprintf("%s, %s/%s, %s", address, r.City, r.State, r.Zip)
}
