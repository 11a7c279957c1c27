package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AuthenticateIdentityResult is the signed-in user and its bearer token.
type AuthenticateIdentityResult struct {
	User    *account.User
	Token   ports.AccessToken
	Created bool
}

// AuthenticateIdentityCommandHandler signs a verified identity in.
//
// Role derivation:
//   - an active approval for the email grants the approval's role
//   - an inactive approval denies access
//   - without an approval the identity becomes a customer when open sign-up
//     is enabled and is denied otherwise
//
// The role is re-derived on every sign-in, so changing an approval takes
// effect the next time the user authenticates.
type AuthenticateIdentityCommandHandler struct {
	uowFactory AccountUoWFactory
	verifier   ports.IdentityVerifier
	issuer     ports.TokenIssuer
	clock      ports.Clock
	openSignup bool
	logger     *slog.Logger
}

func NewAuthenticateIdentityCommandHandler(
	uowFactory AccountUoWFactory,
	verifier ports.IdentityVerifier,
	issuer ports.TokenIssuer,
	clock ports.Clock,
	openSignup bool,
	logger *slog.Logger,
) AuthenticateIdentityCommandHandler {
	return AuthenticateIdentityCommandHandler{
		uowFactory: uowFactory,
		verifier:   verifier,
		issuer:     issuer,
		clock:      clock,
		openSignup: openSignup,
		logger:     logger.With("component", "authentication"),
	}
}

func (h AuthenticateIdentityCommandHandler) Handle(
	ctx context.Context,
	cmd AuthenticateIdentityCommand,
) (AuthenticateIdentityResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthenticateIdentityResult{}, err
	}

	identity, err := h.verifier.Verify(ctx, cmd.Credential())
	if err != nil {
		return AuthenticateIdentityResult{}, err
	}
	email := kernel.NormalizeEmail(identity.Email)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AuthenticateIdentityResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	role, err := h.deriveRole(ctx, uow.ApprovedEmailRepository(), email)
	if err != nil {
		return AuthenticateIdentityResult{}, err
	}

	now := h.clock.Now()
	users := uow.UserRepository()
	created := false

	user, err := users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		user, err = account.NewUser(kernel.NewUUID(), identity.Subject, email, identity.Name, role, now)
		if err != nil {
			return AuthenticateIdentityResult{}, err
		}
		if err = users.Add(ctx, user); err != nil {
			return AuthenticateIdentityResult{}, err
		}
		created = true
	case err != nil:
		return AuthenticateIdentityResult{}, err
	default:
		previous := user.Role()
		changed, refreshErr := user.Refresh(identity.Subject, identity.Name, role, now)
		if refreshErr != nil {
			return AuthenticateIdentityResult{}, refreshErr
		}
		if changed {
			if err = users.Update(ctx, user); err != nil {
				return AuthenticateIdentityResult{}, err
			}
		}
		if previous != role {
			h.logger.Info("user role re-derived", "user_id", user.ID().String(), "from", previous, "to", role)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return AuthenticateIdentityResult{}, err
	}

	token, err := h.issuer.Issue(user, now)
	if err != nil {
		return AuthenticateIdentityResult{}, err
	}

	return AuthenticateIdentityResult{User: user, Token: token, Created: created}, nil
}

func (h AuthenticateIdentityCommandHandler) deriveRole(
	ctx context.Context,
	approvals ports.ApprovedEmailRepository,
	email string,
) (account.Role, error) {
	approval, err := approvals.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if h.openSignup {
			return account.RoleCustomer, nil
		}
		return "", errs.NewForbiddenError("email is not approved")
	case err != nil:
		return "", err
	case !approval.IsActive():
		return "", errs.NewForbiddenError("email approval has been revoked")
	default:
		return approval.Role(), nil
	}
}
