package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAddApprovedEmailCommandIsNotConstructed = errors.New(
	"AddApprovedEmailCommand must be created via NewAddApprovedEmailCommand constructor",
)

// AddApprovedEmailCommand grants a role to an email before its first sign-in.
type AddApprovedEmailCommand struct {
	actor *account.Actor
	email string
	role  account.Role

	guard guard.ConstructorGuard
}

func NewAddApprovedEmailCommand(actor *account.Actor, email string, role account.Role) (AddApprovedEmailCommand, error) {
	email = kernel.NormalizeEmail(email)
	if err := errors.Join(kernel.ValidateEmail(email), role.Validate()); err != nil {
		return AddApprovedEmailCommand{}, err
	}
	return AddApprovedEmailCommand{actor: actor, email: email, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (c AddApprovedEmailCommand) Actor() *account.Actor { return c.actor }
func (c AddApprovedEmailCommand) Email() string         { return c.email }
func (c AddApprovedEmailCommand) Role() account.Role    { return c.role }

func (c AddApprovedEmailCommand) Validate() error {
	return c.guard.Validate(ErrAddApprovedEmailCommandIsNotConstructed)
}
