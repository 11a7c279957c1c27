package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAuthenticateIdentityCommandIsNotConstructed = errors.New(
	"AuthenticateIdentityCommand must be created via NewAuthenticateIdentityCommand constructor",
)

// AuthenticateIdentityCommand exchanges an identity provider credential for
// an access token of this service.
type AuthenticateIdentityCommand struct {
	credential string

	guard guard.ConstructorGuard
}

func NewAuthenticateIdentityCommand(credential string) (AuthenticateIdentityCommand, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return AuthenticateIdentityCommand{}, errs.NewValueIsRequiredError("credential")
	}
	return AuthenticateIdentityCommand{credential: credential, guard: guard.NewConstructorGuard()}, nil
}

func (c AuthenticateIdentityCommand) Credential() string { return c.credential }

func (c AuthenticateIdentityCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateIdentityCommandIsNotConstructed)
}
