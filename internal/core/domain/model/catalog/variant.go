package catalog

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Variant is a purchasable configuration of a product.
type Variant struct {
	id      kernel.UUID
	color   kernel.Color
	size    string
	price   kernel.Money
	stock   int
	sku     string
	version int64
}

// NewVariant validates a variant for a new product.
func NewVariant(id kernel.UUID, color kernel.Color, size string, price kernel.Money, stock int, sku string) (Variant, error) {
	return RestoreVariant(id, color, size, price, stock, sku, 1)
}

// RestoreVariant rebuilds a persisted variant, including its stock version.
func RestoreVariant(
	id kernel.UUID,
	color kernel.Color,
	size string,
	price kernel.Money,
	stock int,
	sku string,
	version int64,
) (Variant, error) {
	v := Variant{
		id:      id,
		color:   color,
		size:    strings.TrimSpace(size),
		price:   price,
		stock:   stock,
		sku:     strings.ToUpper(strings.TrimSpace(sku)),
		version: version,
	}

	var stockErr error
	if stock < 0 {
		stockErr = errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded")
	}
	var priceErr error
	if price.IsZero() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("variant %s must have a price", v.sku))
	}

	if err := errors.Join(
		id.Validate(),
		requiredText("variant.color.name", v.color.Name()),
		requiredText("variant.sku", v.sku),
		priceErr,
		stockErr,
	); err != nil {
		return Variant{}, err
	}

	return v, nil
}

func (v Variant) ID() kernel.UUID     { return v.id }
func (v Variant) Color() kernel.Color { return v.color }
func (v Variant) Size() string        { return v.size }
func (v Variant) Price() kernel.Money { return v.price }
func (v Variant) Stock() int          { return v.stock }
func (v Variant) SKU() string         { return v.sku }
func (v Variant) Version() int64      { return v.version }

// InStock reports whether quantity units could be reserved right now.
func (v Variant) InStock(quantity int) bool {
	return quantity > 0 && v.stock >= quantity
}

func requiredText(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
