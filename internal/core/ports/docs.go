// Package ports defines the contracts between the fulfillment core and its
// infrastructure: repositories bound to a unit of work, the inventory ledger,
// identity verification, token issuing and notification delivery.
package ports
