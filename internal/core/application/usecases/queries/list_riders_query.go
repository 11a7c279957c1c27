package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrListRidersQueryIsNotConstructed = errors.New("ListRidersQuery must be created via NewListRidersQuery constructor")

// ListRidersQuery lists users an admin can assign orders to.
//
// Example:
//
//	riders, err := handler.Handle(ctx, queries.NewListRidersQuery(actor))
//	if err != nil {
//	    return err
//	}
//	for _, r := range riders {
//	    fmt.Printf("%s <%s>\n", r.Name, r.Email)
//	}
type ListRidersQuery struct {
	actor *account.Actor
	guard guard.ConstructorGuard
}

func NewListRidersQuery(actor *account.Actor) ListRidersQuery {
	return ListRidersQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListRidersQuery) Actor() *account.Actor { return q.actor }

func (q ListRidersQuery) Validate() error {
	return q.guard.Validate(ErrListRidersQueryIsNotConstructed)
}

// ListRidersQueryResponse is the read model of one rider.
type ListRidersQueryResponse struct {
	ID    kernel.UUID
	Email string
	Name  string
	Phone string
}
