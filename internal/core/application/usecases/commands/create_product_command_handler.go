package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// CreateProductCommandHandler stores a new active product. A SKU that is
// already used by another product surfaces as ConflictError from the repository.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      ports.Clock
	gate       services.AccessGate
}

func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory, clock ports.Clock) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory, clock: clock, gate: services.NewAccessGate()}
}

func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*catalog.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(cmd.Actor(), account.RoleAdmin); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Category(),
		cmd.Images(),
		cmd.Variants(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, product); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return product, nil
}
