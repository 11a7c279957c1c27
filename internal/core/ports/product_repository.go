package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
)

// ProductRepository stores products together with their variants.
type ProductRepository interface {
	Add(ctx context.Context, product *catalog.Product) error

	// Get returns the product with every variant and its current stock.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// List returns one page of active products, newest first.
	List(ctx context.Context, page Pagination) ([]*catalog.Product, int64, error)
}

// InventoryLedger owns the per-variant stock counters.
//
// Reserve and Release are atomic per variant. Release has no upper bound and
// is not idempotent: callers must release each reservation exactly once.
type InventoryLedger interface {
	// Reserve decrements stock by quantity. Returns InsufficientStockError
	// when stock is lower than quantity and ObjectNotFoundError for an
	// unknown variant; stock is unchanged in both cases.
	Reserve(ctx context.Context, variantID kernel.UUID, quantity int) error

	// Release increments stock by quantity.
	Release(ctx context.Context, variantID kernel.UUID, quantity int) error
}
