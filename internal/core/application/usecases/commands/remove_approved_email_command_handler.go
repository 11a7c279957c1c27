package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/services"
)

// RemoveApprovedEmailCommandHandler deactivates the entry. The record is kept
// so a later sign-in with that email is denied rather than treated as unknown.
// Users that already signed in keep their account until their next sign-in.
type RemoveApprovedEmailCommandHandler struct {
	uowFactory AccountUoWFactory
	gate       services.AccessGate
}

func NewRemoveApprovedEmailCommandHandler(uowFactory AccountUoWFactory) RemoveApprovedEmailCommandHandler {
	return RemoveApprovedEmailCommandHandler{uowFactory: uowFactory, gate: services.NewAccessGate()}
}

func (h RemoveApprovedEmailCommandHandler) Handle(ctx context.Context, cmd RemoveApprovedEmailCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.gate.Authorize(cmd.Actor(), account.RoleAdmin); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	approvals := uow.ApprovedEmailRepository()
	approval, err := approvals.Get(ctx, cmd.ApprovalID())
	if err != nil {
		return err
	}

	if !approval.IsActive() {
		return uow.Commit(ctx)
	}

	approval.Deactivate()
	if err = approvals.Update(ctx, approval); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
