// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Order and catalog reads go through the aggregate stores so visibility rules
// see fully restored aggregates; flat listings read gorm directly.
package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// OrderReader is the read side of ports.OrderRepository.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	List(ctx context.Context, filter ports.OrderFilter, page ports.Pagination) ([]*order.Order, int64, error)
	FindAll(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error)
}

// ProductReader is the read side of ports.ProductRepository.
type ProductReader interface {
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
	List(ctx context.Context, page ports.Pagination) ([]*catalog.Product, int64, error)
}

// PageMeta describes one page of a list response.
type PageMeta struct {
	Page  int
	Limit int
	Total int64
	Pages int
}

func newPageMeta(p ports.Pagination, total int64) PageMeta {
	return PageMeta{Page: p.Page, Limit: p.Limit, Total: total, Pages: p.Pages(total)}
}
