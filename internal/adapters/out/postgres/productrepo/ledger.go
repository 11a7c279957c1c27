package productrepo

import (
	"context"
	"errors"
	"math"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryLedger implements ports.InventoryLedger on product_variants.
// Each call is a single conditional UPDATE, so concurrent reservations of
// the same variant can never drive stock below zero.
type GormInventoryLedger struct {
	db *gorm.DB
}

func NewGormInventoryLedger(db *gorm.DB) *GormInventoryLedger {
	return &GormInventoryLedger{db: db}
}

// Reserve decrements stock when at least quantity units are available.
//
// Returns:
//   - ValueIsOutOfRangeError for quantity < 1
//   - ObjectNotFoundError for an unknown variant
//   - InsufficientStockError naming the variant, the requested and the available units
func (l *GormInventoryLedger) Reserve(ctx context.Context, variantID kernel.UUID, quantity int) error {
	if err := validate(variantID, quantity); err != nil {
		return err
	}

	result := l.db.WithContext(ctx).Model(&VariantDTO{}).
		Where("id = ? AND stock >= ?", variantID.Google(), quantity).
		Updates(map[string]any{
			"stock":   gorm.Expr("stock - ?", quantity),
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var current VariantDTO
	err := l.db.WithContext(ctx).Select("stock").First(&current, "id = ?", variantID.Google()).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundError("variant", variantID.String())
	case err != nil:
		return err
	default:
		return errs.NewInsufficientStockError(variantID.String(), quantity, current.Stock)
	}
}

// Release returns quantity units to stock.
func (l *GormInventoryLedger) Release(ctx context.Context, variantID kernel.UUID, quantity int) error {
	if err := validate(variantID, quantity); err != nil {
		return err
	}

	result := l.db.WithContext(ctx).Model(&VariantDTO{}).
		Where("id = ?", variantID.Google()).
		Updates(map[string]any{
			"stock":   gorm.Expr("stock + ?", quantity),
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("variant", variantID.String())
	}
	return nil
}

func validate(variantID kernel.UUID, quantity int) error {
	if err := variantID.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt32)
	}
	return nil
}
