package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root of the fulfillment workflow. It owns the line
// item snapshots and every lifecycle fact of one purchase.
//
// Order follows these invariants:
//   - pricing is recomputed from items and never set independently
//   - rider is non-nil if and only if status is shipped, delivered or undelivered
//   - deliveredAt is non-nil if and only if status is delivered or undelivered
//   - cancelledAt is non-nil if and only if status is cancelled
//   - customer (the owner) never changes after creation
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	items           []LineItem
	shippingAddress kernel.Address
	contactInfo     kernel.ContactInfo
	paymentMethod   string
	pricing         Pricing
	status          Status
	riderID         *kernel.UUID
	deliveredAt     *time.Time
	cancelledAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewOrder creates a Pending order and derives its pricing.
//
// Parameters:
//   - id: identifier of the new order
//   - customerID: the owning customer
//   - items: at least one line item snapshot
//   - shippingAddress, contactInfo: constructed value objects
//   - paymentMethod: pre-confirmed payment label (e.g. "card", "cod")
//   - now: creation time, also used as updatedAt
//
// Returns:
//   - *Order in Pending status if all validations pass
//   - joined validation errors otherwise
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), actor.ID, items, addr, contact, "card", now)
//	if err != nil {
//	    return err
//	}
//	if err := o.MarkPaid(now); err != nil {
//	    return err
//	}
func NewOrder(
	id, customerID kernel.UUID,
	items []LineItem,
	shippingAddress kernel.Address,
	contactInfo kernel.ContactInfo,
	paymentMethod string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		id:              id,
		customerID:      customerID,
		items:           append([]LineItem(nil), items...),
		shippingAddress: shippingAddress,
		contactInfo:     contactInfo,
		paymentMethod:   strings.TrimSpace(paymentMethod),
		status:          Pending,
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}

	if err := o.validateShape(); err != nil {
		return nil, err
	}

	o.pricing = CalculatePricing(o.items)
	return o, nil
}

// Snapshot carries every persisted attribute of an order. Repositories fill
// it from storage and hand it to RestoreOrder.
type Snapshot struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	Items           []LineItem
	ShippingAddress kernel.Address
	ContactInfo     kernel.ContactInfo
	PaymentMethod   string
	Pricing         Pricing
	Status          Status
	RiderID         *kernel.UUID
	DeliveredAt     *time.Time
	CancelledAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RestoreOrder rebuilds an order from storage and re-checks every invariant,
// including that the stored totals still match the line items.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		id:              s.ID,
		customerID:      s.CustomerID,
		items:           append([]LineItem(nil), s.Items...),
		shippingAddress: s.ShippingAddress,
		contactInfo:     s.ContactInfo,
		paymentMethod:   strings.TrimSpace(s.PaymentMethod),
		status:          s.Status,
		riderID:         s.RiderID,
		deliveredAt:     s.DeliveredAt,
		cancelledAt:     s.CancelledAt,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(o.validateShape(), o.validateLifecycle()); err != nil {
		return nil, err
	}

	o.pricing = CalculatePricing(o.items)
	if o.pricing != s.Pricing {
		return nil, errs.NewValueIsInvalidErrorWithCause("pricing", fmt.Errorf(
			"stored total %s does not match items (expected %s)", s.Pricing.TotalPrice, o.pricing.TotalPrice))
	}

	return o, nil
}

func (o *Order) validateShape() error {
	var itemsErr error
	if len(o.items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("orderItems")
	}
	var paymentErr error
	if o.paymentMethod == "" {
		paymentErr = errs.NewValueIsRequiredError("paymentMethod")
	}

	return errors.Join(
		o.id.Validate(),
		o.customerID.Validate(),
		itemsErr,
		o.shippingAddress.Validate(),
		o.contactInfo.Validate(),
		paymentErr,
	)
}

func (o *Order) validateLifecycle() error {
	if err := o.status.Validate(); err != nil {
		return err
	}

	var deliveredErr, cancelledErr error
	if (o.deliveredAt != nil) != o.status.HasDeliveryAttempt() {
		deliveredErr = errs.NewValueIsInvalidErrorWithCause("deliveredAt",
			fmt.Errorf("deliveredAt presence does not match status %s", o.status))
	}
	if (o.cancelledAt != nil) != (o.status == Cancelled) {
		cancelledErr = errs.NewValueIsInvalidErrorWithCause("cancelledAt",
			fmt.Errorf("cancelledAt presence does not match status %s", o.status))
	}

	return errors.Join(o.status.ValidateCanHaveRider(o.riderID != nil), deliveredErr, cancelledErr)
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID                 { return o.id }
func (o *Order) CustomerID() kernel.UUID         { return o.customerID }
func (o *Order) Items() []LineItem               { return append([]LineItem(nil), o.items...) }
func (o *Order) ShippingAddress() kernel.Address { return o.shippingAddress }
func (o *Order) ContactInfo() kernel.ContactInfo { return o.contactInfo }
func (o *Order) PaymentMethod() string           { return o.paymentMethod }
func (o *Order) Pricing() Pricing                { return o.pricing }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) Rider() *kernel.UUID             { return o.riderID }
func (o *Order) DeliveredAt() *time.Time         { return o.deliveredAt }
func (o *Order) CancelledAt() *time.Time         { return o.cancelledAt }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }
func (o *Order) UpdatedAt() time.Time            { return o.updatedAt }

// IsOwnedBy reports whether customerID placed this order.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// IsAssignedTo reports whether riderID is the rider carrying this order.
func (o *Order) IsAssignedTo(riderID kernel.UUID) bool {
	return o.riderID != nil && o.riderID.IsEqual(riderID)
}

// MarkPaid confirms payment. Payment is pre-confirmed at checkout, so this
// runs immediately after NewOrder.
func (o *Order) MarkPaid(now time.Time) error {
	next, err := o.status.Pay()
	if err != nil {
		return err
	}
	o.status = next
	o.updatedAt = now
	return nil
}

// Cancel moves a pending or paid order to Cancelled and stamps cancelledAt.
// Restocking the line items is the caller's responsibility.
func (o *Order) Cancel(now time.Time) error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = next
	o.cancelledAt = &now
	o.updatedAt = now
	return nil
}

// AssignRider ships a paid order with the given rider.
//
// Returns:
//   - nil on success; status becomes Shipped and Rider() returns riderID
//   - ValueIsRequiredError for a zero riderID
//   - InvalidTransitionError ("Cannot assign rider to order in status: ...") otherwise
func (o *Order) AssignRider(riderID kernel.UUID, now time.Time) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	next, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = next
	o.riderID = &riderID
	o.updatedAt = now
	return nil
}

// RecordDeliveryAttempt closes a shipped order as Delivered or Undelivered.
// deliveredAt marks the attempt time in both cases.
func (o *Order) RecordDeliveryAttempt(outcome Status, now time.Time) error {
	next, err := o.status.RecordDeliveryAttempt(outcome)
	if err != nil {
		return err
	}
	o.status = next
	o.deliveredAt = &now
	o.updatedAt = now
	return nil
}

// Override sets the status directly, bypassing the regular transitions.
// It is reserved for administrators and keeps the aggregate invariants:
//   - entering shipped, delivered or undelivered requires an already assigned rider
//   - entering pending, paid or cancelled drops the rider reference
//   - deliveredAt is stamped when entering delivered or undelivered and cleared otherwise
//   - cancelledAt is stamped when entering cancelled and cleared otherwise
//
// Overriding to the current status is a no-op and reports changed == false.
// Override never touches inventory.
func (o *Order) Override(target Status, now time.Time) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}
	if target == o.status {
		return false, nil
	}

	if target.RequiresRider() && o.riderID == nil {
		return false, errs.NewInvalidTransitionErrorWithMessage(
			o.status.String(),
			target.String(),
			fmt.Sprintf("Cannot set order status to %s without an assigned rider", target),
		)
	}
	if !target.RequiresRider() {
		o.riderID = nil
	}

	o.deliveredAt = nil
	if target.HasDeliveryAttempt() {
		o.deliveredAt = &now
	}

	o.cancelledAt = nil
	if target == Cancelled {
		o.cancelledAt = &now
	}

	o.status = target
	o.updatedAt = now
	return true, nil
}
