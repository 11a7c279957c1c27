package userrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormApprovedEmailRepository implements ports.ApprovedEmailRepository using GORM.
type GormApprovedEmailRepository struct {
	db *gorm.DB
}

func NewGormApprovedEmailRepository(db *gorm.DB) *GormApprovedEmailRepository {
	return &GormApprovedEmailRepository{db: db}
}

// Add fails with ConflictError when the email is already on the list.
func (r *GormApprovedEmailRepository) Add(ctx context.Context, approval *account.ApprovedEmail) error {
	if err := approval.Validate(); err != nil {
		return err
	}

	dto := approvalFromDomain(approval)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "email", approval.Email())
	}
	return nil
}

func (r *GormApprovedEmailRepository) Update(ctx context.Context, approval *account.ApprovedEmail) error {
	if err := approval.Validate(); err != nil {
		return err
	}

	dto := approvalFromDomain(approval)
	result := r.db.WithContext(ctx).Model(&ApprovedEmailDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"role":      dto.Role,
		"is_active": dto.IsActive,
		"added_by":  dto.AddedBy,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("approvedEmail", approval.ID().String())
	}
	return nil
}

func (r *GormApprovedEmailRepository) Get(ctx context.Context, id kernel.UUID) (*account.ApprovedEmail, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, id.String(), "id = ?", id.Google())
}

func (r *GormApprovedEmailRepository) GetByEmail(ctx context.Context, email string) (*account.ApprovedEmail, error) {
	email = kernel.NormalizeEmail(email)
	return r.first(ctx, email, "email = ?", email)
}

func (r *GormApprovedEmailRepository) first(ctx context.Context, value string, query string, args ...any) (*account.ApprovedEmail, error) {
	var dto ApprovedEmailDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("approvedEmail", value)
		}
		return nil, err
	}
	return approvalToDomain(dto)
}
