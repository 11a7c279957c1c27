package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/ports"
)

// FailureRecorder counts notifications that could not be delivered.
type FailureRecorder interface {
	RecordNotificationFailure(kind string)
}

type nopFailureRecorder struct{}

func (nopFailureRecorder) RecordNotificationFailure(string) {}

// Dispatcher implements ports.NotificationDispatcher. Each Dispatch starts a
// goroutine that calls the notifier with its own deadline; the caller's
// cancellation does not abort a send that already started. Errors are logged
// and counted, never returned.
type Dispatcher struct {
	notifier ports.Notifier
	timeout  time.Duration
	failures FailureRecorder
	logger   *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher builds a dispatcher. A non-positive timeout defaults to 5s;
// failures may be nil.
func NewDispatcher(notifier ports.Notifier, timeout time.Duration, failures FailureRecorder, logger *slog.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if failures == nil {
		failures = nopFailureRecorder{}
	}
	return &Dispatcher{
		notifier: notifier,
		timeout:  timeout,
		failures: failures,
		logger:   logger.With("component", "notification_dispatcher"),
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, n notification.Notification) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.WarnContext(ctx, "Notification dropped after shutdown",
			"kind", string(n.Kind), "recipient", n.Recipient, "order_ids", n.OrderIDs)
		d.failures.RecordNotificationFailure(string(n.Kind))
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	sendCtx := context.WithoutCancel(ctx)
	go func() {
		defer d.wg.Done()
		d.send(sendCtx, n)
	}()
}

func (d *Dispatcher) send(ctx context.Context, n notification.Notification) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			d.logger.ErrorContext(ctx, "Notifier panicked",
				"kind", string(n.Kind), "recipient", n.Recipient, "panic", r)
			d.failures.RecordNotificationFailure(string(n.Kind))
		}
	}()

	if err := d.notifier.Notify(ctx, n); err != nil {
		d.logger.ErrorContext(ctx, "Notification failed",
			"kind", string(n.Kind),
			"recipient", n.Recipient,
			"order_ids", n.OrderIDs,
			"error", err,
		)
		d.failures.RecordNotificationFailure(string(n.Kind))
	}
}

// Close stops accepting notifications and waits for in-flight sends or for
// ctx to end, whichever comes first.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
