package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// Checkout is recorded as one transition from no order straight to paid.
const (
	placeOrderAction = "place"
	noOrderStatus    = "none"
)

// PlaceOrderCommandHandler turns a cart into a paid order.
//
// Stock for every line is reserved through the InventoryLedger before the
// order is stored. If any reservation fails, the lines already reserved in
// this request are released again and the transaction is rolled back, so no
// partial decrement survives a failed checkout.
type PlaceOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	dispatcher ports.NotificationDispatcher
	clock      ports.Clock
	recorder   TransitionRecorder
	gate       services.AccessGate
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler builds the checkout handler. recorder may be nil.
func NewPlaceOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	dispatcher ports.NotificationDispatcher,
	clock ports.Clock,
	recorder TransitionRecorder,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		clock:      clock,
		recorder:   recorder,
		gate:       services.NewAccessGate(),
		logger:     logger.With("component", "place_order"),
	}
}

// Handle returns the stored order in Paid status.
//
// Returns:
//   - UnauthenticatedError/ForbiddenError for a missing or non-customer actor
//   - ObjectNotFoundError for an unknown product or variant
//   - InsufficientStockError when a variant cannot cover its line
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(cmd.Actor(), account.RoleCustomer); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lineItems, err := h.snapshotItems(ctx, uow.ProductRepository(), cmd.Items())
	if err != nil {
		return nil, err
	}

	if err = h.reserve(ctx, uow.InventoryLedger(), lineItems); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Actor().ID,
		lineItems,
		cmd.ShippingAddress(),
		cmd.ContactInfo(),
		cmd.PaymentMethod(),
		now,
	)
	if err != nil {
		return nil, err
	}
	if err = o.MarkPaid(now); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.recorder.RecordTransition(placeOrderAction, noOrderStatus, o.Status().String())
	h.logger.Info("order placed",
		"order_id", o.ID().String(),
		"customer_id", o.CustomerID().String(),
		"total", o.Pricing().TotalPrice.String(),
	)

	if recipient := customerEmail(cmd.Actor().Email, o); recipient != "" {
		h.dispatcher.Dispatch(ctx, notification.ForOrder(notification.OrderPlaced, o, recipient, now))
	}

	return o, nil
}

func (h PlaceOrderCommandHandler) snapshotItems(
	ctx context.Context,
	products ports.ProductRepository,
	items []PlaceOrderItem,
) ([]order.LineItem, error) {
	lineItems := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		p, err := products.Get(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		v, err := p.Variant(item.VariantID)
		if err != nil {
			return nil, err
		}

		li, err := order.NewLineItem(
			p.ID(), v.ID(), p.Name(), v.Color(), v.Size(), v.Price(), item.Quantity, p.MainImage(),
		)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, li)
	}
	return lineItems, nil
}

// reserve decrements stock line by line and undoes the lines it already
// reserved when a later one fails.
func (h PlaceOrderCommandHandler) reserve(ctx context.Context, ledger ports.InventoryLedger, items []order.LineItem) error {
	for i, item := range items {
		err := ledger.Reserve(ctx, item.VariantID(), item.Quantity())
		if err == nil {
			continue
		}

		for _, reserved := range items[:i] {
			if releaseErr := ledger.Release(ctx, reserved.VariantID(), reserved.Quantity()); releaseErr != nil {
				h.logger.Error("failed to release reservation",
					"variant_id", reserved.VariantID().String(),
					"quantity", reserved.Quantity(),
					"error", releaseErr,
				)
				err = errors.Join(err, fmt.Errorf("release variant %s: %w", reserved.VariantID(), releaseErr))
			}
		}
		return err
	}
	return nil
}

// customerEmail prefers the signed-in address and falls back to the order contact.
func customerEmail(accountEmail string, o *order.Order) string {
	if accountEmail != "" {
		return accountEmail
	}
	return o.ContactInfo().Email()
}
