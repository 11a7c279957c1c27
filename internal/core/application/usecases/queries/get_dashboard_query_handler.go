package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

type RiderDashboard struct {
	Counts       services.StatusCounts
	Performance  services.RiderPerformance
	RecentOrders []*order.Order
}

type AdminDashboard struct {
	Counts       services.StatusCounts
	RecentOrders []*order.Order
	MonthlySales []services.MonthlySales
	Year         int
}

// GetDashboardQueryHandler computes both dashboards from the order store.
// Statistics are derived on every call; nothing is cached or stored.
type GetDashboardQueryHandler struct {
	orders    OrderReader
	dashboard services.Dashboard
	clock     ports.Clock
	gate      services.AccessGate
}

func NewGetDashboardQueryHandler(orders OrderReader, dashboard services.Dashboard, clock ports.Clock) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{orders: orders, dashboard: dashboard, clock: clock, gate: services.NewAccessGate()}
}

func (h GetDashboardQueryHandler) HandleRider(ctx context.Context, query GetRiderDashboardQuery) (RiderDashboard, error) {
	if err := query.Validate(); err != nil {
		return RiderDashboard{}, err
	}
	if err := h.gate.Authorize(query.Actor(), account.RoleRider); err != nil {
		return RiderDashboard{}, err
	}

	riderID := query.Actor().ID
	assigned, err := h.orders.FindAll(ctx, ports.OrderFilter{RiderID: &riderID})
	if err != nil {
		return RiderDashboard{}, err
	}

	return RiderDashboard{
		Counts:       h.dashboard.Counts(assigned, h.clock.Now()),
		Performance:  h.dashboard.RiderPerformance(assigned),
		RecentOrders: services.RecentOrders(assigned, RecentOrdersLimit),
	}, nil
}

func (h GetDashboardQueryHandler) HandleAdmin(ctx context.Context, query GetAdminDashboardQuery) (AdminDashboard, error) {
	if err := query.Validate(); err != nil {
		return AdminDashboard{}, err
	}
	if err := h.gate.Authorize(query.Actor(), account.RoleAdmin); err != nil {
		return AdminDashboard{}, err
	}

	all, err := h.orders.FindAll(ctx, ports.OrderFilter{})
	if err != nil {
		return AdminDashboard{}, err
	}

	now := h.clock.Now()
	year := h.dashboard.Year(now)

	// The rollup only reads the current year.
	from, until := h.dashboard.YearBounds(year)
	thisYear, err := h.orders.FindAll(ctx, ports.OrderFilter{CreatedFrom: &from, CreatedUntil: &until})
	if err != nil {
		return AdminDashboard{}, err
	}

	return AdminDashboard{
		Counts:       h.dashboard.Counts(all, now),
		RecentOrders: services.RecentOrders(all, RecentOrdersLimit),
		MonthlySales: h.dashboard.MonthlySales(thisYear, year),
		Year:         year,
	}, nil
}
