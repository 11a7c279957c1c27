package commands

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRemindUnshippedOrdersCommandIsNotConstructed = errors.New(
	"RemindUnshippedOrdersCommand must be created via NewRemindUnshippedOrdersCommand constructor",
)

// RemindUnshippedOrdersCommand asks admins to assign riders to paid orders
// that have been waiting longer than olderThan.
type RemindUnshippedOrdersCommand struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

func NewRemindUnshippedOrdersCommand(olderThan time.Duration) (RemindUnshippedOrdersCommand, error) {
	if olderThan <= 0 {
		return RemindUnshippedOrdersCommand{}, errs.NewValueIsOutOfRangeError("olderThan", olderThan, "1ns", "unbounded")
	}
	return RemindUnshippedOrdersCommand{olderThan: olderThan, guard: guard.NewConstructorGuard()}, nil
}

func (c RemindUnshippedOrdersCommand) OlderThan() time.Duration { return c.olderThan }

func (c RemindUnshippedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRemindUnshippedOrdersCommandIsNotConstructed)
}
