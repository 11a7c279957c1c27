package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/notification"
)

// Notifier delivers one notification through a transport.
type Notifier interface {
	Notify(ctx context.Context, n notification.Notification) error
}

// NotificationDispatcher sends notifications in the background. Dispatch
// never blocks on the transport and never reports delivery failures.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n notification.Notification)
}
