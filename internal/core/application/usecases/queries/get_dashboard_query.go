package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/pkg/guard"
)

// RecentOrdersLimit caps the recent order list on both dashboards.
const RecentOrdersLimit = 5

var (
	ErrGetRiderDashboardQueryIsNotConstructed = errors.New(
		"GetRiderDashboardQuery must be created via NewGetRiderDashboardQuery constructor",
	)
	ErrGetAdminDashboardQueryIsNotConstructed = errors.New(
		"GetAdminDashboardQuery must be created via NewGetAdminDashboardQuery constructor",
	)
)

// GetRiderDashboardQuery summarizes the calling rider's assignments.
type GetRiderDashboardQuery struct {
	actor *account.Actor
	guard guard.ConstructorGuard
}

func NewGetRiderDashboardQuery(actor *account.Actor) GetRiderDashboardQuery {
	return GetRiderDashboardQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q GetRiderDashboardQuery) Actor() *account.Actor { return q.actor }

func (q GetRiderDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderDashboardQueryIsNotConstructed)
}

// GetAdminDashboardQuery summarizes every order for administrators.
type GetAdminDashboardQuery struct {
	actor *account.Actor
	guard guard.ConstructorGuard
}

func NewGetAdminDashboardQuery(actor *account.Actor) GetAdminDashboardQuery {
	return GetAdminDashboardQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q GetAdminDashboardQuery) Actor() *account.Actor { return q.actor }

func (q GetAdminDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminDashboardQueryIsNotConstructed)
}
