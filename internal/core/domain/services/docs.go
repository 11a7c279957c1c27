// Package services holds the domain logic that does not belong to a single
// aggregate:
//   - AccessGate: role based authorization of an actor
//   - OrderLifecycle: who may move an order to which status, and which side
//     effects (restock, notification) the move requires
//   - Dashboard: read-only projections over a collection of orders
//
// All services are pure. They never perform I/O; command handlers execute the
// side effects they describe.
package services
