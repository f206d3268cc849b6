// Package mail implements the reset code mailer port. The log adapter stands
// in for a real provider: deployments without SMTP credentials still get the
// code into the operator's logs instead of silently dropping it.
package mail

import (
	"context"
	"log/slog"

	"lytefood/internal/core/ports"
)

// LogMailer writes reset codes to the structured log instead of sending mail.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that logs instead of sending.
func NewLogMailer(logger *slog.Logger) LogMailer {
	return LogMailer{logger: logger}
}

// SendResetCode logs the code for the operator to relay.
func (m LogMailer) SendResetCode(_ context.Context, email, code string) error {
	m.logger.Info("password reset code issued",
		slog.String("email", email),
		slog.String("code", code),
	)
	return nil
}

var _ ports.ResetCodeMailer = LogMailer{}
