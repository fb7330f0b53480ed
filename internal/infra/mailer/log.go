package mailer

import (
	"context"
	"log/slog"

	"github.com/Sadiya-27/Customer-support-bot/internal/domain/notify"
)

// LogMailer writes mail to the log instead of a channel. Used in dev when no
// mail API key is configured.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer constructs the fallback mailer.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger.With("component", "mailer.log")}
}

// Send implements notify.Mailer.
func (m *LogMailer) Send(_ context.Context, msg notify.Message) error {
	m.logger.Info("mail (not delivered, log mailer active)",
		"from", msg.From, "to", msg.To, "subject", msg.Subject, "body", msg.Body)
	return nil
}

var _ notify.Mailer = (*LogMailer)(nil)
