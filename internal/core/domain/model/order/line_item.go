package order

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// LineItem is a snapshot of a variant taken when the order is placed. Later
// catalog edits never change it.
type LineItem struct {
	productID kernel.UUID
	variantID kernel.UUID
	name      string
	color     kernel.Color
	size      string
	unitPrice kernel.Money
	quantity  int
	image     string
}

// NewLineItem validates the snapshot. Quantity must be at least 1 and the
// unit price positive.
func NewLineItem(
	productID, variantID kernel.UUID,
	name string,
	color kernel.Color,
	size string,
	unitPrice kernel.Money,
	quantity int,
	image string,
) (LineItem, error) {
	li := LineItem{
		productID: productID,
		variantID: variantID,
		name:      strings.TrimSpace(name),
		color:     color,
		size:      strings.TrimSpace(size),
		unitPrice: unitPrice,
		quantity:  quantity,
		image:     image,
	}

	var quantityErr error
	if quantity < 1 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	var priceErr error
	if unitPrice.IsZero() {
		priceErr = errs.NewValueIsInvalidError("unitPrice")
	}
	var nameErr error
	if li.name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(productID.Validate(), variantID.Validate(), nameErr, priceErr, quantityErr); err != nil {
		return LineItem{}, err
	}
	return li, nil
}

func (li LineItem) ProductID() kernel.UUID  { return li.productID }
func (li LineItem) VariantID() kernel.UUID  { return li.variantID }
func (li LineItem) Name() string            { return li.name }
func (li LineItem) Color() kernel.Color     { return li.color }
func (li LineItem) Size() string            { return li.size }
func (li LineItem) UnitPrice() kernel.Money { return li.unitPrice }
func (li LineItem) Quantity() int           { return li.quantity }
func (li LineItem) Image() string           { return li.image }

// Subtotal is unitPrice times quantity.
func (li LineItem) Subtotal() kernel.Money {
	return li.unitPrice.Times(li.quantity)
}
