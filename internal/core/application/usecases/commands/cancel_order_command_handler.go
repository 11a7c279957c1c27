package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels on behalf of the owning customer or an
// admin. Every line item is released back to stock exactly once.
type CancelOrderCommandHandler struct {
	transitioner OrderTransitioner
}

func NewCancelOrderCommandHandler(transitioner OrderTransitioner) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{transitioner: transitioner}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.transitioner.run(ctx, cmd.Actor(), cmd.OrderID(),
		services.TransitionRequest{Action: services.ActionCancel}, nil)
}
