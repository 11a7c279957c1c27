package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is the catalog aggregate.
//
// Invariants:
//   - at least one variant
//   - variant SKUs are unique within the product
//   - BasePrice is derived from the variants and never stored
type Product struct {
	id          kernel.UUID
	name        string
	description string
	category    string
	images      []string
	variants    []Variant
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewProduct creates an active product.
func NewProduct(
	id kernel.UUID,
	name, description, category string,
	images []string,
	variants []Variant,
	now time.Time,
) (*Product, error) {
	return RestoreProduct(id, name, description, category, images, variants, true, now, now)
}

func RestoreProduct(
	id kernel.UUID,
	name, description, category string,
	images []string,
	variants []Variant,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	p := &Product{
		id:            id,
		name:          strings.TrimSpace(name),
		description:   strings.TrimSpace(description),
		category:      strings.TrimSpace(category),
		images:        append([]string(nil), images...),
		variants:      append([]Variant(nil), variants...),
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		requiredText("name", p.name),
		requiredText("category", p.category),
		p.validateVariants(),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) validateVariants() error {
	if len(p.variants) == 0 {
		return errs.NewValueIsRequiredError("variants")
	}

	seen := make(map[string]struct{}, len(p.variants))
	for _, v := range p.variants {
		if _, dup := seen[v.SKU()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("variants", fmt.Errorf("duplicate sku %s", v.SKU()))
		}
		seen[v.SKU()] = struct{}{}
	}
	return nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID      { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Category() string     { return p.category }
func (p *Product) Images() []string     { return append([]string(nil), p.images...) }
func (p *Product) Variants() []Variant  { return append([]Variant(nil), p.variants...) }
func (p *Product) IsActive() bool       { return p.isActive }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// MainImage is the first image, used as the order line snapshot.
func (p *Product) MainImage() string {
	if len(p.images) == 0 {
		return ""
	}
	return p.images[0]
}

// BasePrice is the cheapest variant price.
func (p *Product) BasePrice() kernel.Money {
	lowest := p.variants[0].Price()
	for _, v := range p.variants[1:] {
		if v.Price().LessThan(lowest) {
			lowest = v.Price()
		}
	}
	return lowest
}

// TotalStock sums the stock of all variants.
func (p *Product) TotalStock() int {
	total := 0
	for _, v := range p.variants {
		total += v.Stock()
	}
	return total
}

// Variant finds a variant of this product.
func (p *Product) Variant(id kernel.UUID) (Variant, error) {
	for _, v := range p.variants {
		if v.ID().IsEqual(id) {
			return v, nil
		}
	}
	return Variant{}, errs.NewObjectNotFoundError("variant", id.String())
}
