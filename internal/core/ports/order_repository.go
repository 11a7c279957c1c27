package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderFilter narrows order lookups. Zero fields do not filter.
type OrderFilter struct {
	CustomerID *kernel.UUID
	RiderID    *kernel.UUID
	Status     *order.Status

	// UpdatedBefore keeps orders whose updatedAt is strictly before the time.
	UpdatedBefore *time.Time

	// CreatedFrom and CreatedUntil bound createdAt as [from, until).
	CreatedFrom  *time.Time
	CreatedUntil *time.Time
}

// OrderRepository defines the persistence contract for order aggregates,
// including their line item snapshots.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, rider and timestamp changes of an existing order
	// whose stored status is still expected. Line items are immutable after
	// creation and are not rewritten.
	//
	// Returns VersionIsInvalidError when the stored status is no longer
	// expected, and ObjectNotFoundError when the order is gone.
	Update(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order by ID. Returns ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns one page of matching orders, newest first, and the total
	// number of matching orders.
	List(ctx context.Context, filter OrderFilter, page Pagination) ([]*order.Order, int64, error)

	// FindAll returns every matching order, newest first.
	FindAll(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
}
