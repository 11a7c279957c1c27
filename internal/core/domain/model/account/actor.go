package account

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

// Actor is the authenticated principal of a request.
type Actor struct {
	ID    kernel.UUID
	Email string
	Name  string
	Role  Role
}

// NewActor validates identity and role.
func NewActor(id kernel.UUID, email, name string, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{ID: id, Email: kernel.NormalizeEmail(email), Name: name, Role: role}, nil
}

// Is reports whether the actor holds the given role.
func (a Actor) Is(role Role) bool {
	return a.Role == role
}

// HasAnyRole reports whether the actor holds one of roles.
func (a Actor) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}
