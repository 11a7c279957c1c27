package queries

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New("ListOrdersQuery must be created via NewListOrdersQuery constructor")

// OrderScope selects whose orders a listing covers. Each scope belongs to
// exactly one role.
type OrderScope int

const (
	// ScopeOwn lists the orders placed by the calling customer.
	ScopeOwn OrderScope = iota + 1
	// ScopeAssigned lists the orders assigned to the calling rider.
	ScopeAssigned
	// ScopeAll lists every order, for admins.
	ScopeAll
)

func (s OrderScope) role() (account.Role, error) {
	switch s {
	case ScopeOwn:
		return account.RoleCustomer, nil
	case ScopeAssigned:
		return account.RoleRider, nil
	case ScopeAll:
		return account.RoleAdmin, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("scope", fmt.Errorf("unknown order scope %d", s))
	}
}

// ListOrdersQuery lists one page of orders visible in a scope, newest first.
type ListOrdersQuery struct {
	actor      *account.Actor
	scope      OrderScope
	status     *order.Status
	pagination ports.Pagination

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates paging (nil page or limit take the defaults)
// and the optional status filter.
func NewListOrdersQuery(
	actor *account.Actor,
	scope OrderScope,
	status *order.Status,
	page, limit *int,
) (ListOrdersQuery, error) {
	pagination, err := ports.NewPagination(page, limit)
	var statusErr error
	if status != nil {
		statusErr = status.Validate()
	}
	_, scopeErr := scope.role()

	if err = errors.Join(err, statusErr, scopeErr); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actor:      actor,
		scope:      scope,
		status:     status,
		pagination: pagination,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Actor() *account.Actor        { return q.actor }
func (q ListOrdersQuery) Scope() OrderScope            { return q.scope }
func (q ListOrdersQuery) Status() *order.Status        { return q.status }
func (q ListOrdersQuery) Pagination() ports.Pagination { return q.pagination }

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
