package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetProductQueryIsNotConstructed   = errors.New("GetProductQuery must be created via NewGetProductQuery constructor")
	ErrListProductsQueryIsNotConstructed = errors.New("ListProductsQuery must be created via NewListProductsQuery constructor")
)

// GetProductQuery reads one active catalog product. It needs no actor.
type GetProductQuery struct {
	productID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}
	return GetProductQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) ProductID() kernel.UUID { return q.productID }

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ListProductsQuery pages through the active catalog.
type ListProductsQuery struct {
	pagination ports.Pagination
	guard      guard.ConstructorGuard
}

func NewListProductsQuery(page, limit *int) (ListProductsQuery, error) {
	pagination, err := ports.NewPagination(page, limit)
	if err != nil {
		return ListProductsQuery{}, err
	}
	return ListProductsQuery{pagination: pagination, guard: guard.NewConstructorGuard()}, nil
}

func (q ListProductsQuery) Pagination() ports.Pagination { return q.pagination }

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}
