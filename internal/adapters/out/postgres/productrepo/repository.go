package productrepo

import (
	"context"
	"errors"
	"strings"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new product with its variants. A SKU already taken by another
// variant yields ConflictError.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *catalog.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "sku", strings.Join(skus(dto), ","))
	}
	return nil
}

// Get retrieves a product by ID, active or not.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.withVariants(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns one page of active products, newest first.
func (r *GormProductRepository) List(ctx context.Context, page ports.Pagination) ([]*catalog.Product, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("is_active").Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*catalog.Product{}, 0, nil
	}

	var dtos []ProductDTO
	if err := r.withVariants(ctx).
		Where("is_active").
		Order("created_at DESC, id").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&dtos).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, nil
}

func (r *GormProductRepository) withVariants(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Variants", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func skus(dto ProductDTO) []string {
	out := make([]string, 0, len(dto.Variants))
	for _, v := range dto.Variants {
		out = append(out, v.SKU)
	}
	return out
}
