package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveApprovedEmailCommandIsNotConstructed = errors.New(
	"RemoveApprovedEmailCommand must be created via NewRemoveApprovedEmailCommand constructor",
)

// RemoveApprovedEmailCommand revokes an allowlist entry.
type RemoveApprovedEmailCommand struct {
	actor      *account.Actor
	approvalID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveApprovedEmailCommand(actor *account.Actor, approvalID kernel.UUID) (RemoveApprovedEmailCommand, error) {
	if err := approvalID.Validate(); err != nil {
		return RemoveApprovedEmailCommand{}, err
	}
	return RemoveApprovedEmailCommand{actor: actor, approvalID: approvalID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveApprovedEmailCommand) Actor() *account.Actor   { return c.actor }
func (c RemoveApprovedEmailCommand) ApprovalID() kernel.UUID { return c.approvalID }

func (c RemoveApprovedEmailCommand) Validate() error {
	return c.guard.Validate(ErrRemoveApprovedEmailCommandIsNotConstructed)
}
