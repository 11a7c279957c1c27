// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Orders are stored in "orders" with their immutable line item snapshots in "order_items".
package orderrepo

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Prices are stored in cents. Status is stored by its wire name so that raw
// SQL reads and reports stay readable.
type OrderDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	ShippingAddress    AddressDTO     `gorm:"embedded;embeddedPrefix:shipping_"`
	Contact            ContactDTO     `gorm:"embedded;embeddedPrefix:contact_"`
	PaymentMethod      string         `gorm:"type:varchar(64);not null"`
	ItemsPriceCents    int64          `gorm:"not null"`
	TaxPriceCents      int64          `gorm:"not null"`
	ShippingPriceCents int64          `gorm:"not null"`
	TotalPriceCents    int64          `gorm:"not null"`
	Status             string         `gorm:"type:varchar(16);not null;index"`
	RiderID            *uuid.UUID     `gorm:"type:uuid;index"`
	DeliveredAt        *time.Time     `gorm:"type:timestamptz"`
	CancelledAt        *time.Time     `gorm:"type:timestamptz"`
	CreatedAt          time.Time      `gorm:"type:timestamptz;not null;index"`
	UpdatedAt          time.Time      `gorm:"type:timestamptz;not null;index"`
	Items              []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type AddressDTO struct {
	FullName   string `gorm:"type:varchar(255);not null"`
	Street     string `gorm:"type:varchar(255);not null"`
	City       string `gorm:"type:varchar(128);not null"`
	State      string `gorm:"type:varchar(128)"`
	PostalCode string `gorm:"type:varchar(32);not null"`
	Country    string `gorm:"type:varchar(64);not null"`
}

type ContactDTO struct {
	Email string `gorm:"type:varchar(255)"`
	Phone string `gorm:"type:varchar(64)"`
}

// OrderItemDTO is one line item snapshot. Position keeps the order in which
// the customer listed the items.
type OrderItemDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position       int       `gorm:"primaryKey"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null"`
	VariantID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	ColorName      string    `gorm:"type:varchar(64)"`
	ColorCode      string    `gorm:"type:varchar(16)"`
	Size           string    `gorm:"type:varchar(64)"`
	UnitPriceCents int64     `gorm:"not null"`
	Quantity       int       `gorm:"not null"`
	Image          string    `gorm:"type:text"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id := o.Rider(); id != nil {
		raw := id.Google()
		riderID = &raw
	}

	orderID := o.ID().Google()
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, li := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:        orderID,
			Position:       i,
			ProductID:      li.ProductID().Google(),
			VariantID:      li.VariantID().Google(),
			Name:           li.Name(),
			ColorName:      li.Color().Name(),
			ColorCode:      li.Color().Code(),
			Size:           li.Size(),
			UnitPriceCents: li.UnitPrice().Cents(),
			Quantity:       li.Quantity(),
			Image:          li.Image(),
		})
	}

	addr := o.ShippingAddress()
	pricing := o.Pricing()

	return OrderDTO{
		ID:         orderID,
		CustomerID: o.CustomerID().Google(),
		ShippingAddress: AddressDTO{
			FullName:   addr.FullName(),
			Street:     addr.Street(),
			City:       addr.City(),
			State:      addr.State(),
			PostalCode: addr.PostalCode(),
			Country:    addr.Country(),
		},
		Contact: ContactDTO{
			Email: o.ContactInfo().Email(),
			Phone: o.ContactInfo().Phone(),
		},
		PaymentMethod:      o.PaymentMethod(),
		ItemsPriceCents:    pricing.ItemsPrice.Cents(),
		TaxPriceCents:      pricing.TaxPrice.Cents(),
		ShippingPriceCents: pricing.ShippingPrice.Cents(),
		TotalPriceCents:    pricing.TotalPrice.Cents(),
		Status:             o.Status().String(),
		RiderID:            riderID,
		DeliveredAt:        o.DeliveredAt(),
		CancelledAt:        o.CancelledAt(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		Items:              items,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder, which re-checks the
// stored totals against the line items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromGoogle(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromGoogle(*dto.RiderID)
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		li, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, li)
	}

	addr, err := kernel.NewAddress(
		dto.ShippingAddress.FullName,
		dto.ShippingAddress.Street,
		dto.ShippingAddress.City,
		dto.ShippingAddress.State,
		dto.ShippingAddress.PostalCode,
		dto.ShippingAddress.Country,
	)
	if err != nil {
		return nil, err
	}
	contact, err := kernel.NewContactInfo(dto.Contact.Email, dto.Contact.Phone)
	if err != nil {
		return nil, err
	}

	pricing, err := pricingToDomain(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              id,
		CustomerID:      customerID,
		Items:           items,
		ShippingAddress: addr,
		ContactInfo:     contact,
		PaymentMethod:   dto.PaymentMethod,
		Pricing:         pricing,
		Status:          status,
		RiderID:         riderID,
		DeliveredAt:     utcPtr(dto.DeliveredAt),
		CancelledAt:     utcPtr(dto.CancelledAt),
		CreatedAt:       dto.CreatedAt.UTC(),
		UpdatedAt:       dto.UpdatedAt.UTC(),
	})
}

func lineItemToDomain(dto OrderItemDTO) (order.LineItem, error) {
	productID, productErr := kernel.UUIDFromGoogle(dto.ProductID)
	variantID, variantErr := kernel.UUIDFromGoogle(dto.VariantID)
	unitPrice, priceErr := kernel.NewMoney(dto.UnitPriceCents)
	if err := errors.Join(productErr, variantErr, priceErr); err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(
		productID,
		variantID,
		dto.Name,
		kernel.NewColor(dto.ColorName, dto.ColorCode),
		dto.Size,
		unitPrice,
		dto.Quantity,
		dto.Image,
	)
}

func pricingToDomain(dto OrderDTO) (order.Pricing, error) {
	items, itemsErr := kernel.NewMoney(dto.ItemsPriceCents)
	tax, taxErr := kernel.NewMoney(dto.TaxPriceCents)
	shipping, shippingErr := kernel.NewMoney(dto.ShippingPriceCents)
	total, totalErr := kernel.NewMoney(dto.TotalPriceCents)
	if err := errors.Join(itemsErr, taxErr, shippingErr, totalErr); err != nil {
		return order.Pricing{}, err
	}
	return order.Pricing{ItemsPrice: items, TaxPrice: tax, ShippingPrice: shipping, TotalPrice: total}, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
