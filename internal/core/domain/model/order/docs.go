// Package order provides the Order aggregate root of the fulfillment system.
//
// The package includes:
//   - Order: items, pricing, status, rider assignment and lifecycle timestamps
//   - Status: the state machine pending -> paid -> shipped -> delivered|undelivered,
//     with cancellation from pending or paid
//   - LineItem: immutable snapshot of a product variant at purchase time
//   - Pricing: totals derived from the line items
//
// Key business rules:
//   - pricing is always a pure function of the line items
//   - a rider is referenced if and only if the status is shipped, delivered or undelivered
//   - deliveredAt is set if and only if the status is delivered or undelivered
//   - cancelledAt is set if and only if the status is cancelled
//
// Role and ownership rules are not enforced here; the order lifecycle engine in
// the services package decides who may call which transition.
package order
