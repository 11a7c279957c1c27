package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrListApprovedEmailsQueryIsNotConstructed = errors.New(
	"ListApprovedEmailsQuery must be created via NewListApprovedEmailsQuery constructor",
)

// ListApprovedEmailsQuery lists the sign-in allowlist, including revoked entries.
type ListApprovedEmailsQuery struct {
	actor *account.Actor
	guard guard.ConstructorGuard
}

func NewListApprovedEmailsQuery(actor *account.Actor) ListApprovedEmailsQuery {
	return ListApprovedEmailsQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListApprovedEmailsQuery) Actor() *account.Actor { return q.actor }

func (q ListApprovedEmailsQuery) Validate() error {
	return q.guard.Validate(ErrListApprovedEmailsQueryIsNotConstructed)
}

type ListApprovedEmailsQueryResponse struct {
	ID        kernel.UUID
	Email     string
	Role      account.Role
	IsActive  bool
	AddedBy   *kernel.UUID
	CreatedAt time.Time
}
