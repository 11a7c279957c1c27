// Package notification describes the best-effort messages emitted after
// order transitions. Delivery is an adapter concern; failures never affect
// the transition that produced the message.
package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// Kind identifies the event that triggered a notification. It doubles as the
// routing key on message brokers.
type Kind string

const (
	OrderPlaced           Kind = "order.placed"
	OrderCancelled        Kind = "order.cancelled"
	OrderShipped          Kind = "order.shipped"
	OrderDelivered        Kind = "order.delivered"
	OrderUndelivered      Kind = "order.undelivered"
	OrderStatusOverridden Kind = "order.status_overridden"
	UnshippedReminder     Kind = "orders.unshipped_reminder"
)

// Notification is a single message to a single recipient.
type Notification struct {
	ID         kernel.UUID `json:"id"`
	Kind       Kind        `json:"kind"`
	Recipient  string      `json:"recipient"`
	Subject    string      `json:"subject"`
	Body       string      `json:"body"`
	OrderIDs   []string    `json:"orderIds,omitempty"`
	OccurredAt time.Time   `json:"occurredAt"`
}

// Validate checks the fields every transport relies on.
func (n Notification) Validate() error {
	var recipientErr, kindErr error
	if strings.TrimSpace(n.Recipient) == "" {
		recipientErr = errs.NewValueIsRequiredError("recipient")
	}
	if n.Kind == "" {
		kindErr = errs.NewValueIsRequiredError("kind")
	}
	return errors.Join(n.ID.Validate(), recipientErr, kindErr)
}

// ForOrder renders the message for a transition of o.
func ForOrder(kind Kind, o *order.Order, recipient string, now time.Time) Notification {
	id := o.ID().String()
	short := id
	if len(short) > 8 {
		short = short[:8]
	}

	var subject, body string
	switch kind {
	case OrderPlaced:
		subject = fmt.Sprintf("Order %s confirmed", short)
		body = fmt.Sprintf("We received your order %s. Total: %s.", id, o.Pricing().TotalPrice)
	case OrderCancelled:
		subject = fmt.Sprintf("Order %s cancelled", short)
		body = fmt.Sprintf("Your order %s has been cancelled.", id)
	case OrderShipped:
		subject = fmt.Sprintf("New delivery assigned: %s", short)
		addr := o.ShippingAddress()
		body = fmt.Sprintf("Order %s is assigned to you. Deliver to %s, %s, %s %s.",
			id, addr.FullName(), addr.Street(), addr.PostalCode(), addr.City())
	case OrderDelivered:
		subject = fmt.Sprintf("Order %s delivered", short)
		body = fmt.Sprintf("Your order %s has been delivered.", id)
	case OrderUndelivered:
		subject = fmt.Sprintf("Delivery attempt failed for order %s", short)
		body = fmt.Sprintf("We could not deliver your order %s. We will contact you to arrange a new attempt.", id)
	default:
		subject = fmt.Sprintf("Order %s updated", short)
		body = fmt.Sprintf("The status of your order %s is now %s.", id, o.Status())
	}

	return Notification{
		ID:         kernel.NewUUID(),
		Kind:       kind,
		Recipient:  recipient,
		Subject:    subject,
		Body:       body,
		OrderIDs:   []string{id},
		OccurredAt: now,
	}
}

// UnshippedOrdersReminder tells an admin which paid orders still wait for a rider.
func UnshippedOrdersReminder(recipient string, orderIDs []kernel.UUID, olderThan time.Duration, now time.Time) Notification {
	ids := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		ids = append(ids, id.String())
	}

	return Notification{
		ID:        kernel.NewUUID(),
		Kind:      UnshippedReminder,
		Recipient: recipient,
		Subject:   fmt.Sprintf("%d paid orders waiting for a rider", len(ids)),
		Body: fmt.Sprintf("These orders have been paid for more than %s without a rider: %s",
			olderThan, strings.Join(ids, ", ")),
		OrderIDs:   ids,
		OccurredAt: now,
	}
}
