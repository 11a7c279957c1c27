package identity

import (
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL applies when the configured TTL is not positive.
const DefaultAccessTokenTTL = 24 * time.Hour

// AccessClaims is the payload of an access token. sub is the user id.
type AccessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and parses access tokens. It implements ports.TokenIssuer.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser
}

func NewTokenService(secret, issuer string, ttl time.Duration, now func() time.Time) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errs.NewValueIsRequiredError("jwtSecret")
	}
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		parser: newParser(issuer, now),
	}, nil
}

func (s *TokenService) Issue(user *account.User, now time.Time) (ports.AccessToken, error) {
	if err := user.Validate(); err != nil {
		return ports.AccessToken{}, err
	}

	expiresAt := now.Add(s.ttl)
	claims := AccessClaims{
		Email: user.Email(),
		Role:  user.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        kernel.NewUUID().String(),
			Subject:   user.ID().String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return ports.AccessToken{}, err
	}
	return ports.AccessToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// Parse validates an access token and returns the user id it was issued for.
// Role and email in the token are informational; callers reload the user so
// role changes take effect before the token expires.
func (s *TokenService) Parse(token string) (kernel.UUID, error) {
	var claims AccessClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return kernel.UUID{}, unauthenticated(err)
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthenticatedError("token subject is not a user id")
	}
	return userID, nil
}
