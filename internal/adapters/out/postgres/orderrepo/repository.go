package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "order", aggregate.ID().String())
	}
	return nil
}

// Update writes the lifecycle columns of an existing order. Nil rider and
// timestamps are written as NULL, which is what an override away from a
// shipped status needs.
//
// The row is only written while its status is still expected. A concurrent
// transition that committed first makes the UPDATE match nothing, and the
// caller gets VersionIsInvalidError instead of applying its side effects twice.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expected.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Updates(map[string]any{
			"status":       dto.Status,
			"rider_id":     dto.RiderID,
			"delivered_at": dto.DeliveredAt,
			"cancelled_at": dto.CancelledAt,
			"updated_at":   dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var current OrderDTO
	err := r.db.WithContext(ctx).Select("status").First(&current, "id = ?", dto.ID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	case err != nil:
		return err
	}
	return errs.NewVersionIsInvalidError("order",
		fmt.Errorf("status is %s, expected %s", current.Status, expected))
}

// Get retrieves an order by ID with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns one page of matching orders, newest first, plus the total count.
func (r *GormOrderRepository) List(
	ctx context.Context,
	filter ports.OrderFilter,
	page ports.Pagination,
) ([]*order.Order, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Scopes(byFilter(filter)).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*order.Order{}, 0, nil
	}

	var dtos []OrderDTO
	if err := r.withItems(ctx).
		Scopes(byFilter(filter)).
		Order("created_at DESC, id").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&dtos).Error; err != nil {
		return nil, 0, err
	}

	orders, err := toDomainAll(dtos)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// FindAll returns every matching order, newest first.
func (r *GormOrderRepository) FindAll(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withItems(ctx).Scopes(byFilter(filter)).Order("created_at DESC, id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func byFilter(f ports.OrderFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.CustomerID != nil {
			db = db.Where("customer_id = ?", f.CustomerID.Google())
		}
		if f.RiderID != nil {
			db = db.Where("rider_id = ?", f.RiderID.Google())
		}
		if f.Status != nil {
			db = db.Where("status = ?", f.Status.String())
		}
		if f.UpdatedBefore != nil {
			db = db.Where("updated_at < ?", *f.UpdatedBefore)
		}
		if f.CreatedFrom != nil {
			db = db.Where("created_at >= ?", *f.CreatedFrom)
		}
		if f.CreatedUntil != nil {
			db = db.Where("created_at < ?", *f.CreatedUntil)
		}
		return db
	}
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
