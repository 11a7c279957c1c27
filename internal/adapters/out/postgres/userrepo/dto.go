// Package userrepo persists accounts and the approved-email allowlist that
// decides their roles.
package userrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(64)"`
	Role      string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

type ApprovedEmailDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email     string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role      string     `gorm:"type:varchar(16);not null"`
	IsActive  bool       `gorm:"not null;default:true"`
	AddedBy   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time  `gorm:"type:timestamptz;not null"`
}

func (ApprovedEmailDTO) TableName() string {
	return "approved_emails"
}

func userFromDomain(u *account.User) UserDTO {
	return UserDTO{
		ID:        u.ID().Google(),
		Subject:   u.Subject(),
		Email:     u.Email(),
		Name:      u.Name(),
		Phone:     u.Phone(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func userToDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return account.RestoreUser(id, dto.Subject, dto.Email, dto.Name, dto.Phone, role,
		dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}

func approvalFromDomain(a *account.ApprovedEmail) ApprovedEmailDTO {
	var addedBy *uuid.UUID
	if id := a.AddedBy(); id != nil {
		raw := id.Google()
		addedBy = &raw
	}
	return ApprovedEmailDTO{
		ID:        a.ID().Google(),
		Email:     a.Email(),
		Role:      a.Role().String(),
		IsActive:  a.IsActive(),
		AddedBy:   addedBy,
		CreatedAt: a.CreatedAt(),
	}
}

func approvalToDomain(dto ApprovedEmailDTO) (*account.ApprovedEmail, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	var addedBy *kernel.UUID
	if dto.AddedBy != nil {
		adminID, idErr := kernel.UUIDFromGoogle(*dto.AddedBy)
		if idErr != nil {
			return nil, idErr
		}
		addedBy = &adminID
	}

	return account.RestoreApprovedEmail(id, dto.Email, role, dto.IsActive, addedBy, dto.CreatedAt.UTC())
}
