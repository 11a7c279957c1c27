package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrRecordDeliveryCommandIsNotConstructed = errors.New(
	"RecordDeliveryCommand must be created via NewRecordDeliveryCommand constructor",
)

// RecordDeliveryCommand is the assigned rider reporting the delivery outcome.
type RecordDeliveryCommand struct {
	actor   *account.Actor
	orderID kernel.UUID
	outcome order.Status

	guard guard.ConstructorGuard
}

// NewRecordDeliveryCommand accepts any valid status; outcomes other than
// delivered and undelivered are rejected by the handler with a validation error.
func NewRecordDeliveryCommand(actor *account.Actor, orderID kernel.UUID, outcome order.Status) (RecordDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), outcome.Validate()); err != nil {
		return RecordDeliveryCommand{}, err
	}
	return RecordDeliveryCommand{
		actor:   actor,
		orderID: orderID,
		outcome: outcome,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RecordDeliveryCommand) Actor() *account.Actor { return c.actor }
func (c RecordDeliveryCommand) OrderID() kernel.UUID  { return c.orderID }
func (c RecordDeliveryCommand) Outcome() order.Status { return c.outcome }

func (c RecordDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryCommandIsNotConstructed)
}
