// Package identity adapts JSON Web Tokens to the identity ports: it verifies
// credentials minted by the external identity provider and issues and parses
// the service's own access tokens. Both use HMAC-SHA256.
package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// ProviderClaims is the payload the identity provider signs.
type ProviderClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// CredentialVerifier implements ports.IdentityVerifier for provider-signed
// tokens. The token must carry sub, email and exp, and iss when an issuer
// is configured.
type CredentialVerifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewCredentialVerifier(secret, issuer string, now func() time.Time) (*CredentialVerifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errs.NewValueIsRequiredError("identitySecret")
	}
	return &CredentialVerifier{
		secret: []byte(secret),
		parser: newParser(issuer, now),
	}, nil
}

func (v *CredentialVerifier) Verify(_ context.Context, credential string) (ports.Identity, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return ports.Identity{}, errs.NewUnauthenticatedError("credential is missing")
	}

	var claims ProviderClaims
	if _, err := v.parser.ParseWithClaims(credential, &claims, v.key); err != nil {
		return ports.Identity{}, unauthenticated(err)
	}

	if claims.Subject == "" || strings.TrimSpace(claims.Email) == "" {
		return ports.Identity{}, errs.NewUnauthenticatedError("credential lacks subject or email")
	}

	return ports.Identity{
		Email:   claims.Email,
		Subject: claims.Subject,
		Name:    claims.Name,
	}, nil
}

func (v *CredentialVerifier) key(*jwt.Token) (any, error) {
	return v.secret, nil
}

func newParser(issuer string, now func() time.Time) *jwt.Parser {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if now != nil {
		opts = append(opts, jwt.WithTimeFunc(now))
	}
	return jwt.NewParser(opts...)
}

func unauthenticated(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errs.NewUnauthenticatedError("token has expired")
	case errors.Is(err, jwt.ErrTokenMalformed):
		return errs.NewUnauthenticatedError("token is malformed")
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return errs.NewUnauthenticatedError("token signature is invalid")
	default:
		return errs.NewUnauthenticatedError("token is invalid")
	}
}
