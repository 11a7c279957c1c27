// Package jobs provides scheduled background tasks for the fulfillment service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// UnshippedOrdersReminderJob runs on REMINDER_SCHEDULE (default hourly). Each
// pass looks for paid orders whose last update is older than REMINDER_AFTER
// (default 24h) and sends every admin one reminder listing them. It only
// reads orders.
//
// # Usage
//
//	reminder := jobs.NewUnshippedOrdersReminderJob(handler, cfg.ReminderSchedule, cfg.ReminderAfter, logger)
//	jobManager := jobs.NewJobManager(reminder)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and never stop the scheduler. A schedule that does
// not parse fails StartAll, and jobs already started are stopped.
package jobs
