package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	(create) ──> Pending ──> Paid ──> Shipped ──┬──> Delivered
//	                │          │                └──> Undelivered
//	                └────┬─────┘
//	                     v
//	                 Cancelled
//
// Pending, Paid and Shipped are the only non-terminal states. An admin
// override may move an order between any two states; see Order.Override.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the state an order is created in, after stock was reserved.
	Pending

	// Paid orders wait for an admin to assign a rider.
	Paid

	// Shipped orders are out for delivery with the assigned rider.
	Shipped

	// Delivered is terminal: the rider handed the goods over.
	Delivered

	// Undelivered is terminal: the rider attempted delivery and failed.
	Undelivered

	// Cancelled is terminal: the order was withdrawn before shipping.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:     "pending",
	Paid:        "paid",
	Shipped:     "shipped",
	Delivered:   "delivered",
	Undelivered: "undelivered",
	Cancelled:   "cancelled",
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Paid, Shipped, Delivered, Undelivered, Cancelled}
}

// ParseStatus converts the wire form ("paid", "shipped", ...) into a Status.
//
// Returns:
//   - the matching Status
//   - ValueIsInvalidError naming the rejected value otherwise
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, name := range statusNames {
		if name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the six lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lower-case wire name, or "unknown" for invalid values.
// It is safe to call on any Status value.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no regular transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Undelivered || s == Cancelled
}

// RequiresRider reports whether an order in this status must reference a rider.
func (s Status) RequiresRider() bool {
	return s == Shipped || s == Delivered || s == Undelivered
}

// HasDeliveryAttempt reports whether deliveredAt must be set in this status.
func (s Status) HasDeliveryAttempt() bool {
	return s == Delivered || s == Undelivered
}

// CountsAsRevenue reports whether orders in this status contribute to sales.
func (s Status) CountsAsRevenue() bool {
	return s == Paid || s == Shipped || s == Delivered
}

// ValidateCanHaveRider validates the consistency between order status and rider assignment.
//
// Business Rules:
//   - Pending, Paid and Cancelled orders must not have a rider assigned
//   - Shipped, Delivered and Undelivered orders must have a rider assigned
//
// Parameters:
//   - rider: whether the order has a rider assigned
//
// Returns:
//   - error: validation error if status and rider assignment are inconsistent
func (s Status) ValidateCanHaveRider(rider bool) error {
	if rider && !s.RequiresRider() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a rider", s),
		)
	}

	if !rider && s.RequiresRider() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no rider", s),
		)
	}

	return nil
}

// Pay transitions Pending to Paid.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Paid.String())
	}
	return Paid, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Paid -> Cancelled
//
// Everything else, including Shipped, fails with InvalidTransitionError
// naming both statuses.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Paid {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// Ship transitions Paid to Shipped. This is the rider-assignment step, so
// the error message is phrased in those terms.
//
// Example:
//
//	_, err := order.Pending.Ship()
//	// err.Error() == "Cannot assign rider to order in status: pending"
func (s Status) Ship() (Status, error) {
	if s != Paid {
		return Unknown, errs.NewInvalidTransitionErrorWithMessage(
			s.String(),
			Shipped.String(),
			fmt.Sprintf("Cannot assign rider to order in status: %s", s),
		)
	}
	return Shipped, nil
}

// RecordDeliveryAttempt transitions Shipped to Delivered or Undelivered.
//
// Returns:
//   - (outcome, nil) when s is Shipped and outcome is Delivered or Undelivered
//   - ValueIsInvalidError when outcome is any other status
//   - InvalidTransitionError when s is not Shipped
func (s Status) RecordDeliveryAttempt(outcome Status) (Status, error) {
	if !outcome.HasDeliveryAttempt() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a delivery outcome, expected delivered or undelivered", outcome),
		)
	}
	if s != Shipped {
		return Unknown, errs.NewInvalidTransitionError(s.String(), outcome.String())
	}
	return outcome, nil
}
