// Package productrepo persists catalog products and owns the variant stock
// counters behind the inventory ledger.
package productrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProductDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Category    string         `gorm:"type:varchar(128);not null;index"`
	Images      pq.StringArray `gorm:"type:text[]"`
	IsActive    bool           `gorm:"not null;default:true;index"`
	CreatedAt   time.Time      `gorm:"type:timestamptz;not null;index"`
	UpdatedAt   time.Time      `gorm:"type:timestamptz;not null"`
	Variants    []VariantDTO   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// VariantDTO carries the stock counter. Version increases on every stock
// change so concurrent writers can be told apart.
type VariantDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Position   int       `gorm:"not null"`
	ColorName  string    `gorm:"type:varchar(64);not null"`
	ColorCode  string    `gorm:"type:varchar(16)"`
	Size       string    `gorm:"type:varchar(64)"`
	PriceCents int64     `gorm:"not null"`
	Stock      int       `gorm:"not null;check:stock >= 0"`
	SKU        string    `gorm:"column:sku;type:varchar(64);not null;uniqueIndex"`
	Version    int64     `gorm:"not null;default:1"`
}

func (VariantDTO) TableName() string {
	return "product_variants"
}

func fromDomain(p *catalog.Product) ProductDTO {
	productID := p.ID().Google()
	variants := make([]VariantDTO, 0, len(p.Variants()))
	for i, v := range p.Variants() {
		variants = append(variants, VariantDTO{
			ID:         v.ID().Google(),
			ProductID:  productID,
			Position:   i,
			ColorName:  v.Color().Name(),
			ColorCode:  v.Color().Code(),
			Size:       v.Size(),
			PriceCents: v.Price().Cents(),
			Stock:      v.Stock(),
			SKU:        v.SKU(),
			Version:    v.Version(),
		})
	}

	images := pq.StringArray(p.Images())
	if images == nil {
		images = pq.StringArray{}
	}

	return ProductDTO{
		ID:          productID,
		Name:        p.Name(),
		Description: p.Description(),
		Category:    p.Category(),
		Images:      images,
		IsActive:    p.IsActive(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
		Variants:    variants,
	}
}

func toDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	variants := make([]catalog.Variant, 0, len(dto.Variants))
	for _, vDTO := range dto.Variants {
		v, vErr := variantToDomain(vDTO)
		if vErr != nil {
			return nil, vErr
		}
		variants = append(variants, v)
	}

	return catalog.RestoreProduct(
		id,
		dto.Name,
		dto.Description,
		dto.Category,
		[]string(dto.Images),
		variants,
		dto.IsActive,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}

func variantToDomain(dto VariantDTO) (catalog.Variant, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return catalog.Variant{}, err
	}
	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return catalog.Variant{}, err
	}

	return catalog.RestoreVariant(
		id,
		kernel.NewColor(dto.ColorName, dto.ColorCode),
		dto.Size,
		price,
		dto.Stock,
		dto.SKU,
		dto.Version,
	)
}
