package notify

import (
	"context"
	"log/slog"

	"hotelbooking/internal/app/policies"
)

// LogNotifier writes each notification as a structured log record.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Send(ctx context.Context, msg policies.Notification) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "notification", "recipient", msg.Recipient, "message", msg.Message)
	return nil
}

var _ policies.Notifier = LogNotifier{}
