package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// RemindUnshippedOrdersCommandHandler sends one reminder per admin listing
// the stale paid orders. Orders are not modified.
type RemindUnshippedOrdersCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	dispatcher ports.NotificationDispatcher
	clock      ports.Clock
}

func NewRemindUnshippedOrdersCommandHandler(
	uowFactory FulfillmentUoWFactory,
	dispatcher ports.NotificationDispatcher,
	clock ports.Clock,
) RemindUnshippedOrdersCommandHandler {
	return RemindUnshippedOrdersCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher, clock: clock}
}

// Handle returns the number of stale orders found.
func (h RemindUnshippedOrdersCommandHandler) Handle(ctx context.Context, cmd RemindUnshippedOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.clock.Now()
	cutoff := now.Add(-cmd.OlderThan())
	paid := order.Paid

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stale, err := uow.OrderRepository().FindAll(ctx, ports.OrderFilter{Status: &paid, UpdatedBefore: &cutoff})
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, uow.Commit(ctx)
	}

	admins, err := uow.UserRepository().ListByRole(ctx, account.RoleAdmin)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	ids := make([]kernel.UUID, 0, len(stale))
	for _, o := range stale {
		ids = append(ids, o.ID())
	}
	for _, admin := range admins {
		h.dispatcher.Dispatch(ctx, notification.UnshippedOrdersReminder(admin.Email(), ids, cmd.OlderThan(), now))
	}

	return len(stale), nil
}
