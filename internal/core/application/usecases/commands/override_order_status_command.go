package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrOverrideOrderStatusCommandIsNotConstructed = errors.New(
	"OverrideOrderStatusCommand must be created via NewOverrideOrderStatusCommand constructor",
)

// OverrideOrderStatusCommand is the admin's generic status update.
type OverrideOrderStatusCommand struct {
	actor   *account.Actor
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewOverrideOrderStatusCommand(actor *account.Actor, orderID kernel.UUID, status order.Status) (OverrideOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), status.Validate()); err != nil {
		return OverrideOrderStatusCommand{}, err
	}
	return OverrideOrderStatusCommand{
		actor:   actor,
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c OverrideOrderStatusCommand) Actor() *account.Actor { return c.actor }
func (c OverrideOrderStatusCommand) OrderID() kernel.UUID  { return c.orderID }
func (c OverrideOrderStatusCommand) Status() order.Status  { return c.status }

func (c OverrideOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideOrderStatusCommandIsNotConstructed)
}
