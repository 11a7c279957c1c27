package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/pkg/errs"
)

// GetProductQueryHandler hides inactive products behind ObjectNotFoundError.
type GetProductQueryHandler struct {
	products ProductReader
}

func NewGetProductQueryHandler(products ProductReader) GetProductQueryHandler {
	return GetProductQueryHandler{products: products}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (*catalog.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	p, err := h.products.Get(ctx, query.ProductID())
	if err != nil {
		return nil, err
	}
	if !p.IsActive() {
		return nil, errs.NewObjectNotFoundError("product", query.ProductID().String())
	}
	return p, nil
}

type ListProductsQueryResponse struct {
	Products []*catalog.Product
	Meta     PageMeta
}

// ListProductsQueryHandler relies on the store to return active products only.
type ListProductsQueryHandler struct {
	products ProductReader
}

func NewListProductsQueryHandler(products ProductReader) ListProductsQueryHandler {
	return ListProductsQueryHandler{products: products}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) (ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListProductsQueryResponse{}, err
	}

	products, total, err := h.products.List(ctx, query.Pagination())
	if err != nil {
		return ListProductsQueryResponse{}, err
	}
	return ListProductsQueryResponse{Products: products, Meta: newPageMeta(query.Pagination(), total)}, nil
}
