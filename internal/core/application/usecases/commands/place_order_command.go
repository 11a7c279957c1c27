package commands

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderItem references the variant to buy and how many units.
type PlaceOrderItem struct {
	ProductID kernel.UUID
	VariantID kernel.UUID
	Quantity  int
}

// PlaceOrderCommand checks out a customer's cart.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(actor, []PlaceOrderItem{
//	    {ProductID: fanID, VariantID: whiteID, Quantity: 2},
//	}, address, contact, "card")
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	actor           *account.Actor
	items           []PlaceOrderItem
	shippingAddress kernel.Address
	contactInfo     kernel.ContactInfo
	paymentMethod   string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the cart shape. Stock and catalog lookups
// happen in the handler.
func NewPlaceOrderCommand(
	actor *account.Actor,
	items []PlaceOrderItem,
	shippingAddress kernel.Address,
	contactInfo kernel.ContactInfo,
	paymentMethod string,
) (PlaceOrderCommand, error) {
	var itemsErr error
	if len(items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("orderItems")
	}

	itemErrs := make([]error, 0, len(items))
	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			itemErrs = append(itemErrs, errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("orderItems[%d].product", i), err))
		}
		if err := item.VariantID.Validate(); err != nil {
			itemErrs = append(itemErrs, errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("orderItems[%d].variant", i), err))
		}
		if item.Quantity < 1 {
			itemErrs = append(itemErrs, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("orderItems[%d].quantity", i), item.Quantity, 1, "unbounded"))
		}
	}

	paymentMethod = strings.TrimSpace(paymentMethod)
	var paymentErr error
	if paymentMethod == "" {
		paymentErr = errs.NewValueIsRequiredError("paymentMethod")
	}

	if err := errors.Join(
		itemsErr,
		errors.Join(itemErrs...),
		shippingAddress.Validate(),
		contactInfo.Validate(),
		paymentErr,
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		actor:           actor,
		items:           append([]PlaceOrderItem(nil), items...),
		shippingAddress: shippingAddress,
		contactInfo:     contactInfo,
		paymentMethod:   paymentMethod,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Actor() *account.Actor           { return c.actor }
func (c PlaceOrderCommand) Items() []PlaceOrderItem         { return append([]PlaceOrderItem(nil), c.items...) }
func (c PlaceOrderCommand) ShippingAddress() kernel.Address { return c.shippingAddress }
func (c PlaceOrderCommand) ContactInfo() kernel.ContactInfo { return c.contactInfo }
func (c PlaceOrderCommand) PaymentMethod() string           { return c.paymentMethod }

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}
