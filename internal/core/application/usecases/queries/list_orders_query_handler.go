package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// ListOrdersQueryResponse is one page of orders.
type ListOrdersQueryResponse struct {
	Orders []*order.Order
	Meta   PageMeta
}

type ListOrdersQueryHandler struct {
	orders OrderReader
	gate   services.AccessGate
}

func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders, gate: services.NewAccessGate()}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	role, err := query.Scope().role()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	if err = h.gate.Authorize(query.Actor(), role); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	filter := ports.OrderFilter{Status: query.Status()}
	actorID := query.Actor().ID
	switch query.Scope() {
	case ScopeOwn:
		filter.CustomerID = &actorID
	case ScopeAssigned:
		filter.RiderID = &actorID
	}

	orders, total, err := h.orders.List(ctx, filter, query.Pagination())
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{Orders: orders, Meta: newPageMeta(query.Pagination(), total)}, nil
}
