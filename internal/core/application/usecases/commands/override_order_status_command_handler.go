package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// OverrideOrderStatusCommandHandler applies an admin status override.
//
// Unlike CancelOrderCommandHandler, an override to cancelled does not release
// stock. Every such override is logged at WARN.
type OverrideOrderStatusCommandHandler struct {
	transitioner OrderTransitioner
}

func NewOverrideOrderStatusCommandHandler(transitioner OrderTransitioner) OverrideOrderStatusCommandHandler {
	return OverrideOrderStatusCommandHandler{transitioner: transitioner}
}

func (h OverrideOrderStatusCommandHandler) Handle(ctx context.Context, cmd OverrideOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.transitioner.run(ctx, cmd.Actor(), cmd.OrderID(),
		services.TransitionRequest{Action: services.ActionOverride, Target: cmd.Status()}, nil)
}
