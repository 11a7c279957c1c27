package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// RecordDeliveryCommandHandler closes a shipped order as delivered or
// undelivered. A rider addressing an order assigned to someone else gets
// ObjectNotFoundError and the order is left untouched.
type RecordDeliveryCommandHandler struct {
	transitioner OrderTransitioner
}

func NewRecordDeliveryCommandHandler(transitioner OrderTransitioner) RecordDeliveryCommandHandler {
	return RecordDeliveryCommandHandler{transitioner: transitioner}
}

func (h RecordDeliveryCommandHandler) Handle(ctx context.Context, cmd RecordDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.transitioner.run(ctx, cmd.Actor(), cmd.OrderID(),
		services.TransitionRequest{Action: services.ActionRecordDelivery, Target: cmd.Outcome()}, nil)
}
