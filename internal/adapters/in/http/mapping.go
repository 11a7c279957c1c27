package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toOrder(o *order.Order) servers.Order {
	items := make([]servers.OrderItem, 0, len(o.Items()))
	for _, li := range o.Items() {
		items = append(items, servers.OrderItem{
			Product:  li.ProductID().Google(),
			Variant:  li.VariantID().Google(),
			Name:     li.Name(),
			Color:    toColor(li.Color()),
			Size:     li.Size(),
			Price:    li.UnitPrice().Float64(),
			Quantity: li.Quantity(),
			Image:    li.Image(),
		})
	}

	addr := o.ShippingAddress()
	pricing := o.Pricing()
	return servers.Order{
		Id:         o.ID().Google(),
		Customer:   o.CustomerID().Google(),
		OrderItems: items,
		ShippingAddress: servers.Address{
			FullName:   addr.FullName(),
			Street:     addr.Street(),
			City:       addr.City(),
			State:      addr.State(),
			PostalCode: addr.PostalCode(),
			Country:    addr.Country(),
		},
		ContactInfo: servers.ContactInfo{
			Email: o.ContactInfo().Email(),
			Phone: o.ContactInfo().Phone(),
		},
		PaymentMethod: o.PaymentMethod(),
		ItemsPrice:    pricing.ItemsPrice.Float64(),
		TaxPrice:      pricing.TaxPrice.Float64(),
		ShippingPrice: pricing.ShippingPrice.Float64(),
		TotalPrice:    pricing.TotalPrice.Float64(),
		Status:        servers.OrderStatus(o.Status().String()),
		AssignedRider: uuidPtr(o.Rider()),
		DeliveredAt:   o.DeliveredAt(),
		CancelledAt:   o.CancelledAt(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

func toOrders(orders []*order.Order) []servers.Order {
	out := make([]servers.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return out
}

func toColor(c kernel.Color) servers.Color {
	return servers.Color{Name: c.Name(), Code: c.Code()}
}

func toProduct(p *catalog.Product) servers.Product {
	variants := make([]servers.Variant, 0, len(p.Variants()))
	for _, v := range p.Variants() {
		variants = append(variants, servers.Variant{
			Id:    v.ID().Google(),
			Color: toColor(v.Color()),
			Size:  v.Size(),
			Price: v.Price().Float64(),
			Stock: v.Stock(),
			Sku:   v.SKU(),
		})
	}
	images := p.Images()
	if images == nil {
		images = []string{}
	}
	return servers.Product{
		Id:          p.ID().Google(),
		Name:        p.Name(),
		Description: p.Description(),
		Category:    p.Category(),
		Images:      images,
		BasePrice:   p.BasePrice().Float64(),
		TotalStock:  p.TotalStock(),
		Variants:    variants,
		CreatedAt:   p.CreatedAt(),
	}
}

func toUser(u *account.User) servers.User {
	return servers.User{
		Id:    u.ID().Google(),
		Email: u.Email(),
		Name:  u.Name(),
		Phone: u.Phone(),
		Role:  servers.Role(u.Role().String()),
	}
}

func toApprovedEmail(id kernel.UUID, email string, role account.Role, active bool, addedBy *kernel.UUID, createdAt time.Time) servers.ApprovedEmail {
	return servers.ApprovedEmail{
		Id:        id.Google(),
		Email:     email,
		Role:      servers.Role(role.String()),
		IsActive:  active,
		AddedBy:   uuidPtr(addedBy),
		CreatedAt: createdAt,
	}
}

func toPageMeta(m queries.PageMeta) *servers.PageMeta {
	return &servers.PageMeta{Page: m.Page, Limit: m.Limit, Total: m.Total, Pages: m.Pages}
}

func toRiderDashboard(d queries.RiderDashboard) servers.RiderDashboard {
	return servers.RiderDashboard{
		Counts: servers.RiderCounts{
			Total:       d.Counts.Total,
			Shipped:     d.Counts.Shipped,
			Delivered:   d.Counts.Delivered,
			Undelivered: d.Counts.Undelivered,
			Today:       d.Counts.Today,
		},
		Performance: servers.RiderPerformance{
			DeliveryRate:  d.Performance.DeliveryRate,
			TotalAssigned: d.Performance.TotalAssigned,
			Delivered:     d.Performance.Delivered,
		},
		RecentOrders: toOrders(d.RecentOrders),
	}
}

func toAdminDashboard(d queries.AdminDashboard) servers.AdminDashboard {
	return servers.AdminDashboard{
		Counts:       toAdminCounts(d.Counts),
		RecentOrders: toOrders(d.RecentOrders),
		MonthlySales: toMonthlySales(d.MonthlySales),
		Year:         d.Year,
	}
}

func toAdminCounts(c services.StatusCounts) servers.AdminCounts {
	return servers.AdminCounts{
		Total:       c.Total,
		Pending:     c.Pending,
		Paid:        c.Paid,
		Shipped:     c.Shipped,
		Delivered:   c.Delivered,
		Undelivered: c.Undelivered,
		Cancelled:   c.Cancelled,
		Today:       c.Today,
	}
}

func toMonthlySales(months []services.MonthlySales) []servers.MonthlySales {
	out := make([]servers.MonthlySales, 0, len(months))
	for _, m := range months {
		out = append(out, servers.MonthlySales{Month: m.Month, Total: m.Total.Float64(), Count: m.Count})
	}
	return out
}

func uuidPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	g := id.Google()
	return &g
}
