package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/account"
)

// Identity is what an external identity provider vouches for.
type Identity struct {
	Email   string
	Subject string
	Name    string
}

// IdentityVerifier turns an external credential into a verified Identity.
// Invalid or expired credentials yield UnauthenticatedError.
type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (Identity, error)
}

// AccessToken is the bearer credential issued by this service.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenIssuer signs access tokens for users.
type TokenIssuer interface {
	Issue(user *account.User, now time.Time) (AccessToken, error)
}

// Clock abstracts the wall clock for use cases.
type Clock interface {
	Now() time.Time
}
