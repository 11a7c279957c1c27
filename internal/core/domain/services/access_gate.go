package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/pkg/errs"
)

// AccessGate authorizes actors by role. It knows nothing about ownership;
// "is this the customer's own order" is decided by OrderLifecycle.
type AccessGate struct{}

func NewAccessGate() AccessGate {
	return AccessGate{}
}

// Authorize allows actor when its role is one of required.
//
// Returns:
//   - UnauthenticatedError when actor is nil
//   - ForbiddenError when the actor's role is not in required
//   - ValueIsRequiredError when required is empty (a wiring mistake)
//
// Example:
//
//	if err := gate.Authorize(actor, account.RoleAdmin); err != nil {
//	    return err
//	}
func (AccessGate) Authorize(actor *account.Actor, required ...account.Role) error {
	if len(required) == 0 {
		return errs.NewValueIsRequiredError("requiredRoles")
	}
	if actor == nil {
		return errs.NewUnauthenticatedError("no authenticated actor")
	}
	if !actor.HasAnyRole(required...) {
		return errs.NewForbiddenError(fmt.Sprintf("role %s is not allowed to perform this operation", actor.Role))
	}
	return nil
}
