package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// AssignRiderCommandHandler moves a paid order to shipped. The rider must be
// an existing user with the rider role; the rider is notified best-effort.
type AssignRiderCommandHandler struct {
	transitioner OrderTransitioner
}

func NewAssignRiderCommandHandler(transitioner OrderTransitioner) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{transitioner: transitioner}
}

func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	riderID := cmd.RiderID()
	return h.transitioner.run(ctx, cmd.Actor(), cmd.OrderID(),
		services.TransitionRequest{Action: services.ActionAssignRider}, &riderID)
}
