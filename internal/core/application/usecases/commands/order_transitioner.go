package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// OrderTransitioner runs a lifecycle transition inside one unit of work:
// load, decide, apply, persist, restock when required, commit, then notify.
// The cancel, assign, delivery and override handlers share it.
type OrderTransitioner struct {
	uowFactory FulfillmentUoWFactory
	lifecycle  services.OrderLifecycle
	dispatcher ports.NotificationDispatcher
	clock      ports.Clock
	recorder   TransitionRecorder
	logger     *slog.Logger
}

// NewOrderTransitioner builds the shared transition runner. recorder may be nil.
func NewOrderTransitioner(
	uowFactory FulfillmentUoWFactory,
	dispatcher ports.NotificationDispatcher,
	clock ports.Clock,
	recorder TransitionRecorder,
	logger *slog.Logger,
) OrderTransitioner {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return OrderTransitioner{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(services.NewAccessGate()),
		dispatcher: dispatcher,
		clock:      clock,
		recorder:   recorder,
		logger:     logger.With("component", "order_lifecycle"),
	}
}

func (t OrderTransitioner) run(
	ctx context.Context,
	actor *account.Actor,
	orderID kernel.UUID,
	req services.TransitionRequest,
	riderID *kernel.UUID,
) (*order.Order, error) {
	uow := t.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if riderID != nil {
		rider, riderErr := uow.UserRepository().Get(ctx, *riderID)
		switch {
		case errors.Is(riderErr, errs.ErrObjectNotFound):
			// Decide reports the missing rider as an invalid riderId.
		case riderErr != nil:
			return nil, riderErr
		default:
			req.Rider = rider
		}
	}

	tr, err := t.lifecycle.Decide(o, actor, req)
	if err != nil {
		return nil, err
	}
	if !tr.Changed {
		return o, nil
	}

	now := t.clock.Now()
	if err = t.lifecycle.Apply(o, tr, req, now); err != nil {
		return nil, err
	}

	// The status write goes first: a concurrent transition that already moved
	// the order fails here, before any stock is released for it.
	if err = uow.OrderRepository().Update(ctx, o, tr.From); err != nil {
		return nil, err
	}

	if tr.Inventory == services.InventoryRestock {
		ledger := uow.InventoryLedger()
		for _, item := range o.Items() {
			if err = ledger.Release(ctx, item.VariantID(), item.Quantity()); err != nil {
				return nil, err
			}
		}
	}

	recipient, err := t.recipient(ctx, uow.UserRepository(), tr, o, req.Rider)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	t.recorder.RecordTransition(tr.Action.String(), tr.From.String(), tr.To.String())
	t.logger.Info("order status changed",
		"order_id", o.ID().String(),
		"action", tr.Action.String(),
		"from", tr.From.String(),
		"to", tr.To.String(),
		"actor_id", actor.ID.String(),
	)
	if tr.SkipsRestock {
		t.logger.Warn("order cancelled by status override, stock not restocked",
			"order_id", o.ID().String(),
			"actor_id", actor.ID.String(),
		)
	}

	if tr.Notify != "" && recipient != "" {
		t.dispatcher.Dispatch(ctx, notification.ForOrder(tr.Notify, o, recipient, now))
	}

	return o, nil
}

func (t OrderTransitioner) recipient(
	ctx context.Context,
	users ports.UserRepository,
	tr services.Transition,
	o *order.Order,
	rider *account.User,
) (string, error) {
	switch tr.Recipient {
	case services.NotifyRider:
		if rider == nil {
			return "", nil
		}
		return rider.Email(), nil
	case services.NotifyCustomer:
		customer, err := users.Get(ctx, o.CustomerID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return o.ContactInfo().Email(), nil
		}
		if err != nil {
			return "", err
		}
		return customerEmail(customer.Email(), o), nil
	default:
		return "", nil
	}
}
