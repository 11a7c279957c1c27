package account

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is an account created from a verified external identity.
//
// Invariants:
//   - email is non-empty, normalized and unique across users
//   - subject is the identity provider's stable identifier
//   - role is one of customer, admin, rider
type User struct {
	id        kernel.UUID
	subject   string
	email     string
	name      string
	phone     string
	role      Role
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewUser registers a user on first sign-in.
func NewUser(id kernel.UUID, subject, email, name string, role Role, now time.Time) (*User, error) {
	return RestoreUser(id, subject, email, name, "", role, now, now)
}

// RestoreUser rebuilds a user loaded from storage.
func RestoreUser(
	id kernel.UUID,
	subject, email, name, phone string,
	role Role,
	createdAt, updatedAt time.Time,
) (*User, error) {
	email = kernel.NormalizeEmail(email)
	subject = strings.TrimSpace(subject)

	if err := errors.Join(
		id.Validate(),
		requiredString("subject", subject),
		kernel.ValidateEmail(email),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		subject:       subject,
		email:         email,
		name:          strings.TrimSpace(name),
		phone:         strings.TrimSpace(phone),
		role:          role,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Subject() string      { return u.subject }
func (u *User) Email() string        { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) Phone() string        { return u.phone }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Refresh applies the outcome of a new sign-in: the provider may report a new
// display name, and the approval list may map the email to a different role.
// It returns true when anything changed.
func (u *User) Refresh(subject, name string, role Role, now time.Time) (bool, error) {
	if err := role.Validate(); err != nil {
		return false, err
	}

	subject = strings.TrimSpace(subject)
	name = strings.TrimSpace(name)
	changed := false

	if subject != "" && subject != u.subject {
		u.subject = subject
		changed = true
	}
	if name != "" && name != u.name {
		u.name = name
		changed = true
	}
	if role != u.role {
		u.role = role
		changed = true
	}
	if changed {
		u.updatedAt = now
	}
	return changed, nil
}

// Actor projects the user into the principal used by access checks.
func (u *User) Actor() Actor {
	return Actor{ID: u.id, Email: u.email, Name: u.name, Role: u.role}
}

func requiredString(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
