package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// NewVariantInput describes one variant of a product being created.
type NewVariantInput struct {
	ColorName string
	ColorCode string
	Size      string
	Price     kernel.Money
	Stock     int
	SKU       string
}

// CreateProductCommand adds a product with its variants to the catalog.
type CreateProductCommand struct {
	actor       *account.Actor
	name        string
	description string
	category    string
	images      []string
	variants    []catalog.Variant

	guard guard.ConstructorGuard
}

// NewCreateProductCommand validates every variant up front so the handler
// only deals with persistence.
func NewCreateProductCommand(
	actor *account.Actor,
	name, description, category string,
	images []string,
	variants []NewVariantInput,
) (CreateProductCommand, error) {
	built := make([]catalog.Variant, 0, len(variants))
	variantErrs := make([]error, 0)
	for _, in := range variants {
		v, err := catalog.NewVariant(
			kernel.NewUUID(), kernel.NewColor(in.ColorName, in.ColorCode), in.Size, in.Price, in.Stock, in.SKU,
		)
		if err != nil {
			variantErrs = append(variantErrs, err)
			continue
		}
		built = append(built, v)
	}
	if err := errors.Join(variantErrs...); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		actor:       actor,
		name:        name,
		description: description,
		category:    category,
		images:      append([]string(nil), images...),
		variants:    built,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Actor() *account.Actor       { return c.actor }
func (c CreateProductCommand) Name() string                { return c.name }
func (c CreateProductCommand) Description() string         { return c.description }
func (c CreateProductCommand) Category() string            { return c.category }
func (c CreateProductCommand) Images() []string            { return append([]string(nil), c.images...) }
func (c CreateProductCommand) Variants() []catalog.Variant { return append([]catalog.Variant(nil), c.variants...) }

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}
