package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// GetOrderQueryHandler applies the read visibility rules:
//   - admins see every order
//   - customers see the orders they placed
//   - riders see the orders assigned to them
//
// An existing order outside the actor's visibility yields ForbiddenError.
type GetOrderQueryHandler struct {
	orders OrderReader
	gate   services.AccessGate
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, gate: services.NewAccessGate()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	actor := query.Actor()
	if err := h.gate.Authorize(actor, account.RoleCustomer, account.RoleAdmin, account.RoleRider); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case account.RoleCustomer:
		if !o.IsOwnedBy(actor.ID) {
			return nil, errs.NewForbiddenError("order belongs to another customer")
		}
	case account.RoleRider:
		if !o.IsAssignedTo(actor.ID) {
			return nil, errs.NewForbiddenError("order is not assigned to this rider")
		}
	}

	return o, nil
}
