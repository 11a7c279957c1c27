// Package notify delivers order notifications. Notifier adapters write one
// message to a transport (slog, Kafka or a RabbitMQ topic exchange); the
// Dispatcher runs them in the background so a slow or broken transport never
// delays an order transition.
//
// Usage:
//
//	notifier := notify.NewKafkaNotifier(brokers, "order-notifications")
//	dispatcher := notify.NewDispatcher(notifier, 5*time.Second, metrics, logger)
//	defer dispatcher.Close(shutdownCtx)
//
//	dispatcher.Dispatch(ctx, n)
package notify
