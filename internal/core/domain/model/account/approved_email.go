package account

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

var ErrApprovedEmailIsNotConstructed = errors.New("ApprovedEmail must be created via NewApprovedEmail or RestoreApprovedEmail")

// ApprovedEmail is an allowlist entry mapping an email to the role it receives
// when that identity signs in.
type ApprovedEmail struct {
	id        kernel.UUID
	email     string
	role      Role
	isActive  bool
	addedBy   *kernel.UUID
	createdAt time.Time

	isConstructed bool
}

// NewApprovedEmail creates an active approval. addedBy is the admin who added it,
// nil for bootstrap records.
func NewApprovedEmail(id kernel.UUID, email string, role Role, addedBy *kernel.UUID, now time.Time) (*ApprovedEmail, error) {
	return RestoreApprovedEmail(id, email, role, true, addedBy, now)
}

func RestoreApprovedEmail(
	id kernel.UUID,
	email string,
	role Role,
	isActive bool,
	addedBy *kernel.UUID,
	createdAt time.Time,
) (*ApprovedEmail, error) {
	email = kernel.NormalizeEmail(email)
	if err := errors.Join(id.Validate(), kernel.ValidateEmail(email), role.Validate()); err != nil {
		return nil, err
	}

	return &ApprovedEmail{
		id:            id,
		email:         email,
		role:          role,
		isActive:      isActive,
		addedBy:       addedBy,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (a *ApprovedEmail) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrApprovedEmailIsNotConstructed
	}
	return nil
}

func (a *ApprovedEmail) ID() kernel.UUID       { return a.id }
func (a *ApprovedEmail) Email() string         { return a.email }
func (a *ApprovedEmail) Role() Role            { return a.role }
func (a *ApprovedEmail) IsActive() bool        { return a.isActive }
func (a *ApprovedEmail) AddedBy() *kernel.UUID { return a.addedBy }
func (a *ApprovedEmail) CreatedAt() time.Time  { return a.createdAt }

// Deactivate keeps the record for audit but stops it from granting access.
func (a *ApprovedEmail) Deactivate() {
	a.isActive = false
}

// Reactivate restores a revoked approval, possibly with a different role.
func (a *ApprovedEmail) Reactivate(role Role, addedBy *kernel.UUID) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	a.addedBy = addedBy
	a.isActive = true
	return nil
}
