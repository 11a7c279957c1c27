package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	DefaultReminderSchedule = "@hourly"
	DefaultReminderAfter    = 24 * time.Hour
)

// RemindUnshippedOrdersHandler finds stale paid orders and notifies admins.
type RemindUnshippedOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.RemindUnshippedOrdersCommand) (int, error)
}

// UnshippedOrdersReminderJob periodically reminds admins about paid orders
// that still have no rider. It never changes order state.
type UnshippedOrdersReminderJob struct {
	handler   RemindUnshippedOrdersHandler
	schedule  string
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewUnshippedOrdersReminderJob uses DefaultReminderSchedule and
// DefaultReminderAfter for empty or non-positive values. schedule uses the
// standard five field cron syntax and descriptors such as "@hourly".
func NewUnshippedOrdersReminderJob(
	handler RemindUnshippedOrdersHandler,
	schedule string,
	olderThan time.Duration,
	logger *slog.Logger,
) *UnshippedOrdersReminderJob {
	if schedule == "" {
		schedule = DefaultReminderSchedule
	}
	if olderThan <= 0 {
		olderThan = DefaultReminderAfter
	}
	return &UnshippedOrdersReminderJob{
		handler:   handler,
		schedule:  schedule,
		olderThan: olderThan,
		cron:      cron.New(),
		logger:    logger.With("component", "unshipped_orders_reminder_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *UnshippedOrdersReminderJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unshipped orders reminder job started",
		"schedule", j.schedule, "older_than", j.olderThan.String())
	return nil
}

// Run executes one pass. Failures are logged; the next tick retries.
func (j *UnshippedOrdersReminderJob) Run(ctx context.Context) {
	cmd, err := commands.NewRemindUnshippedOrdersCommand(j.olderThan)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build reminder command", "error", err)
		return
	}

	stale, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Unshipped orders reminder failed", "error", err)
		return
	}
	if stale > 0 {
		j.logger.InfoContext(ctx, "Reminded admins about unshipped orders", "orders", stale)
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *UnshippedOrdersReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Unshipped orders reminder job stopped")
}
