package notify

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/Sadiya-27/Customer-support-bot/pkg/errors"
)

// Message is one outbound operator email.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Mailer delivers operator notifications.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Config holds the configured sender and operator addresses.
type Config struct {
	OperatorAddress string
	SenderAddress   string
}

// Notifier composes and sends the escalation alert for unanswered queries.
// Delivery is best effort: the orchestrator ignores the returned error, it
// exists so the contract is visible in the signature.
type Notifier struct {
	cfg    Config
	mailer Mailer
	logger *slog.Logger
}

// NewNotifier wires the notifier.
func NewNotifier(cfg Config, mailer Mailer, logger *slog.Logger) *Notifier {
	return &Notifier{cfg: cfg, mailer: mailer, logger: logger.With("component", "notify.notifier")}
}

// NotifyHuman forwards an unanswered query to the operator inbox.
func (n *Notifier) NotifyHuman(ctx context.Context, queryText, queryID, userEmail string) error {
	body := fmt.Sprintf("User asked: %s\n\nQuery ID: %s", queryText, queryID)
	if userEmail != "" {
		body += fmt.Sprintf("\nUser email: %s", userEmail)
	}
	body += "\n\nPlease respond."

	msg := Message{
		From:    n.cfg.SenderAddress,
		To:      n.cfg.OperatorAddress,
		Subject: fmt.Sprintf("[CHATBOT] Unanswered query %s", queryID),
		Body:    body,
	}
	if err := n.mailer.Send(ctx, msg); err != nil {
		n.logger.Error("escalation email failed", "query_id", queryID, "error", err)
		return apperrors.Wrap("notify_error", "escalation email failed", err)
	}
	n.logger.Info("escalation email sent", "query_id", queryID, "to", n.cfg.OperatorAddress)
	return nil
}
