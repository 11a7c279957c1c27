package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand ships a paid order with a rider.
//
// Example:
//
//	cmd, err := NewAssignRiderCommand(admin, orderID, riderID)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
//	// o.Status() == order.Shipped
type AssignRiderCommand struct {
	actor   *account.Actor
	orderID kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignRiderCommand(actor *account.Actor, orderID, riderID kernel.UUID) (AssignRiderCommand, error) {
	var riderErr error
	if riderID.IsZero() {
		riderErr = errs.NewValueIsRequiredError("riderId")
	}
	if err := errors.Join(orderID.Validate(), riderErr); err != nil {
		return AssignRiderCommand{}, err
	}
	return AssignRiderCommand{
		actor:   actor,
		orderID: orderID,
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignRiderCommand) Actor() *account.Actor { return c.actor }
func (c AssignRiderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c AssignRiderCommand) RiderID() kernel.UUID  { return c.riderID }

func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}
