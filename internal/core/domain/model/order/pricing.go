package order

import "fulfillment/internal/core/domain/model/kernel"

const (
	// TaxPercent is applied to the items price and rounded half-up to the cent.
	TaxPercent = 5
)

var (
	// FreeShippingAbove is the items price that must be exceeded for free shipping.
	FreeShippingAbove = kernel.MustMoney(10000)

	// FlatShippingFee is charged when the items price is at or below FreeShippingAbove.
	FlatShippingFee = kernel.MustMoney(1000)
)

// Pricing holds the four derived totals of an order.
type Pricing struct {
	ItemsPrice    kernel.Money
	TaxPrice      kernel.Money
	ShippingPrice kernel.Money
	TotalPrice    kernel.Money
}

// CalculatePricing derives every total from the line items.
//
// Example (2 x 30.00 + 1 x 50.00):
//
//	items   110.00
//	tax       5.50
//	shipping  0.00   (110.00 > 100.00)
//	total   115.50
func CalculatePricing(items []LineItem) Pricing {
	itemsPrice := kernel.ZeroMoney
	for _, li := range items {
		itemsPrice = itemsPrice.Add(li.Subtotal())
	}

	shipping := FlatShippingFee
	if itemsPrice.GreaterThan(FreeShippingAbove) {
		shipping = kernel.ZeroMoney
	}

	tax := itemsPrice.Percent(TaxPercent)

	return Pricing{
		ItemsPrice:    itemsPrice,
		TaxPrice:      tax,
		ShippingPrice: shipping,
		TotalPrice:    itemsPrice.Add(tax).Add(shipping),
	}
}
