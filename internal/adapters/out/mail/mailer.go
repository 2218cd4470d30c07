// Package mail provides the outbound notification transport. The default
// implementation writes rendered mails to the structured log, which stands
// in for an SMTP or provider integration in environments without one.
package mail

import (
	"context"
	"log/slog"

	"dispatch/internal/core/ports"
)

// LogMailer implements ports.Mailer by logging rendered notifications.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that records sends in the structured log.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{
		logger: logger.With("component", "mailer"),
	}
}

// Send delivers the notification to the log.
func (m *LogMailer) Send(ctx context.Context, mail ports.Mail) error {
	m.logger.InfoContext(ctx, "sending notification mail",
		"to", mail.To,
		"subject", mail.Subject,
		"body", mail.Body,
	)
	return nil
}
