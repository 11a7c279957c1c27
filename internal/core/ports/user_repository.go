package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
)

// UserRepository persists accounts. Email is unique.
type UserRepository interface {
	Add(ctx context.Context, user *account.User) error
	Update(ctx context.Context, user *account.User) error
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)
	GetByEmail(ctx context.Context, email string) (*account.User, error)
	ListByRole(ctx context.Context, role account.Role) ([]*account.User, error)
}

// ApprovedEmailRepository persists the sign-up allowlist. Email is unique,
// so re-approving an address updates the existing record.
type ApprovedEmailRepository interface {
	Add(ctx context.Context, approval *account.ApprovedEmail) error
	Update(ctx context.Context, approval *account.ApprovedEmail) error
	Get(ctx context.Context, id kernel.UUID) (*account.ApprovedEmail, error)
	GetByEmail(ctx context.Context, email string) (*account.ApprovedEmail, error)
}
