// Package servers holds the HTTP contract described by api/openapi.yaml:
// request and response bodies, the ServerInterface the HTTP adapter
// implements and the echo wrapper that binds path and query parameters.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for OrderStatus.
const (
	OrderStatusPending     OrderStatus = "pending"
	OrderStatusPaid        OrderStatus = "paid"
	OrderStatusShipped     OrderStatus = "shipped"
	OrderStatusDelivered   OrderStatus = "delivered"
	OrderStatusUndelivered OrderStatus = "undelivered"
	OrderStatusCancelled   OrderStatus = "cancelled"
)

// Defines values for Role.
const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleRider    Role = "rider"
)

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// Role defines model for Role.
type Role string

// Envelope wraps every response body.
type Envelope struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    any       `json:"data,omitempty"`
	Meta    *PageMeta `json:"meta,omitempty"`
}

// PageMeta defines model for PageMeta.
type PageMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Address defines model for Address.
type Address struct {
	FullName   string `json:"fullName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ContactInfo defines model for ContactInfo.
type ContactInfo struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Color defines model for Color.
type Color struct {
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	Product  openapi_types.UUID `json:"product"`
	Variant  openapi_types.UUID `json:"variant"`
	Name     string             `json:"name"`
	Color    Color              `json:"color"`
	Size     string             `json:"size,omitempty"`
	Price    float64            `json:"price"`
	Quantity int                `json:"quantity"`
	Image    string             `json:"image,omitempty"`
}

// Order defines model for Order.
type Order struct {
	Id              openapi_types.UUID  `json:"id"`
	Customer        openapi_types.UUID  `json:"customer"`
	OrderItems      []OrderItem         `json:"orderItems"`
	ShippingAddress Address             `json:"shippingAddress"`
	ContactInfo     ContactInfo         `json:"contactInfo"`
	PaymentMethod   string              `json:"paymentMethod"`
	ItemsPrice      float64             `json:"itemsPrice"`
	TaxPrice        float64             `json:"taxPrice"`
	ShippingPrice   float64             `json:"shippingPrice"`
	TotalPrice      float64             `json:"totalPrice"`
	Status          OrderStatus         `json:"status"`
	AssignedRider   *openapi_types.UUID `json:"assignedRider,omitempty"`
	DeliveredAt     *time.Time          `json:"deliveredAt,omitempty"`
	CancelledAt     *time.Time          `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// PlaceOrderItem defines model for PlaceOrderItem.
type PlaceOrderItem struct {
	Product  openapi_types.UUID `json:"product"`
	Variant  openapi_types.UUID `json:"variant"`
	Quantity int                `json:"quantity"`
}

// PlaceOrderRequest defines model for PlaceOrderRequest.
type PlaceOrderRequest struct {
	OrderItems      []PlaceOrderItem `json:"orderItems"`
	ShippingAddress Address          `json:"shippingAddress"`
	ContactInfo     ContactInfo      `json:"contactInfo"`
	PaymentMethod   string           `json:"paymentMethod"`
}

// UpdateOrderStatusRequest defines model for UpdateOrderStatusRequest.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}

// AssignRiderRequest defines model for AssignRiderRequest.
type AssignRiderRequest struct {
	RiderId openapi_types.UUID `json:"riderId"`
}

// SessionRequest defines model for SessionRequest.
type SessionRequest struct {
	Credential string `json:"credential"`
}

// User defines model for User.
type User struct {
	Id    openapi_types.UUID `json:"id"`
	Email string             `json:"email"`
	Name  string             `json:"name"`
	Phone string             `json:"phone,omitempty"`
	Role  Role               `json:"role"`
}

// Session defines model for Session.
type Session struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        User      `json:"user"`
}

// Variant defines model for Variant.
type Variant struct {
	Id    openapi_types.UUID `json:"id"`
	Color Color              `json:"color"`
	Size  string             `json:"size,omitempty"`
	Price float64            `json:"price"`
	Stock int                `json:"stock"`
	Sku   string             `json:"sku"`
}

// Product defines model for Product.
type Product struct {
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Category    string             `json:"category"`
	Images      []string           `json:"images"`
	BasePrice   float64            `json:"basePrice"`
	TotalStock  int                `json:"totalStock"`
	Variants    []Variant          `json:"variants"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// NewVariant defines model for NewVariant.
type NewVariant struct {
	Color Color   `json:"color"`
	Size  string  `json:"size,omitempty"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
	Sku   string  `json:"sku"`
}

// CreateProductRequest defines model for CreateProductRequest.
type CreateProductRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Category    string       `json:"category"`
	Images      []string     `json:"images,omitempty"`
	Variants    []NewVariant `json:"variants"`
}

// Rider defines model for Rider.
type Rider struct {
	Id    openapi_types.UUID `json:"id"`
	Email string             `json:"email"`
	Name  string             `json:"name"`
	Phone string             `json:"phone,omitempty"`
}

// ApprovedEmail defines model for ApprovedEmail.
type ApprovedEmail struct {
	Id        openapi_types.UUID  `json:"id"`
	Email     string              `json:"email"`
	Role      Role                `json:"role"`
	IsActive  bool                `json:"isActive"`
	AddedBy   *openapi_types.UUID `json:"addedBy,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}

// AddApprovedEmailRequest defines model for AddApprovedEmailRequest.
type AddApprovedEmailRequest struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// RiderCounts defines model for RiderCounts.
type RiderCounts struct {
	Total       int `json:"total"`
	Shipped     int `json:"shipped"`
	Delivered   int `json:"delivered"`
	Undelivered int `json:"undelivered"`
	Today       int `json:"today"`
}

// RiderPerformance defines model for RiderPerformance.
type RiderPerformance struct {
	DeliveryRate  float64 `json:"deliveryRate"`
	TotalAssigned int     `json:"totalAssigned"`
	Delivered     int     `json:"delivered"`
}

// RiderDashboard defines model for RiderDashboard.
type RiderDashboard struct {
	Counts       RiderCounts      `json:"counts"`
	Performance  RiderPerformance `json:"performance"`
	RecentOrders []Order          `json:"recentOrders"`
}

// AdminCounts defines model for AdminCounts.
type AdminCounts struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	Paid        int `json:"paid"`
	Shipped     int `json:"shipped"`
	Delivered   int `json:"delivered"`
	Undelivered int `json:"undelivered"`
	Cancelled   int `json:"cancelled"`
	Today       int `json:"today"`
}

// MonthlySales defines model for MonthlySales.
type MonthlySales struct {
	Month int     `json:"month"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// AdminDashboard defines model for AdminDashboard.
type AdminDashboard struct {
	Counts       AdminCounts    `json:"counts"`
	RecentOrders []Order        `json:"recentOrders"`
	MonthlySales []MonthlySales `json:"monthlySales"`
	Year         int            `json:"year"`
}

// ListProductsParams defines parameters for ListProducts.
type ListProductsParams struct {
	Page  *int `form:"page,omitempty" json:"page,omitempty"`
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// ListOrdersParams defines parameters for the paginated order lists.
type ListOrdersParams struct {
	Page   *int         `form:"page,omitempty" json:"page,omitempty"`
	Limit  *int         `form:"limit,omitempty" json:"limit,omitempty"`
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
}
