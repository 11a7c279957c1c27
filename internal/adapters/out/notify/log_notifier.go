package notify

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/notification"
)

// LogNotifier writes notifications to the application log. It is the
// default transport for local runs.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log_notifier")}
}

func (n *LogNotifier) Notify(ctx context.Context, msg notification.Notification) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	n.logger.InfoContext(ctx, "Notification",
		"id", msg.ID.String(),
		"kind", string(msg.Kind),
		"recipient", msg.Recipient,
		"subject", msg.Subject,
		"order_ids", msg.OrderIDs,
	)
	return nil
}

func (n *LogNotifier) Close() error { return nil }
