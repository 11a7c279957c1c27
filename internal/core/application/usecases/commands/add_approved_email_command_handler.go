package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AddApprovedEmailCommandHandler adds an allowlist entry. Adding an email
// that is already active fails with ConflictError; a revoked entry is
// reactivated with the new role instead.
type AddApprovedEmailCommandHandler struct {
	uowFactory AccountUoWFactory
	clock      ports.Clock
	gate       services.AccessGate
}

func NewAddApprovedEmailCommandHandler(uowFactory AccountUoWFactory, clock ports.Clock) AddApprovedEmailCommandHandler {
	return AddApprovedEmailCommandHandler{uowFactory: uowFactory, clock: clock, gate: services.NewAccessGate()}
}

func (h AddApprovedEmailCommandHandler) Handle(ctx context.Context, cmd AddApprovedEmailCommand) (*account.ApprovedEmail, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(cmd.Actor(), account.RoleAdmin); err != nil {
		return nil, err
	}
	addedBy := cmd.Actor().ID

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	approvals := uow.ApprovedEmailRepository()
	approval, err := approvals.GetByEmail(ctx, cmd.Email())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		approval, err = account.NewApprovedEmail(kernel.NewUUID(), cmd.Email(), cmd.Role(), &addedBy, h.clock.Now())
		if err != nil {
			return nil, err
		}
		if err = approvals.Add(ctx, approval); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	case approval.IsActive():
		return nil, errs.NewConflictError("email", cmd.Email())
	default:
		if err = approval.Reactivate(cmd.Role(), &addedBy); err != nil {
			return nil, err
		}
		if err = approvals.Update(ctx, approval); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return approval, nil
}
