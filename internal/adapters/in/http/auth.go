package http

import (
	"context"
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const ctxUserKey = "auth.user"

// TokenParser resolves a bearer token to the user id it was issued for.
type TokenParser interface {
	Parse(token string) (kernel.UUID, error)
}

// UserLookup loads the current state of a user.
type UserLookup interface {
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)
}

// Authenticate resolves the Authorization header into the current user. A
// request without the header continues anonymously; a malformed or invalid
// token, or a token for a user that no longer exists, is rejected with 401.
// The user is reloaded on every request so role changes apply immediately.
func Authenticate(tokens TokenParser, users UserLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(ctx)
			}

			scheme, token, ok := strings.Cut(header, " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return errs.NewUnauthenticatedError("authorization header must be 'Bearer <token>'")
			}

			userID, err := tokens.Parse(token)
			if err != nil {
				return err
			}

			user, err := users.Get(ctx.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, errs.ErrObjectNotFound) {
					return errs.NewUnauthenticatedError("user no longer exists")
				}
				return err
			}

			ctx.Set(ctxUserKey, user)
			return next(ctx)
		}
	}
}

// CurrentUser returns the authenticated user, or nil.
func CurrentUser(ctx echo.Context) *account.User {
	u, _ := ctx.Get(ctxUserKey).(*account.User)
	return u
}

// CurrentActor returns the authenticated actor, or nil for anonymous requests.
func CurrentActor(ctx echo.Context) *account.Actor {
	u := CurrentUser(ctx)
	if u == nil {
		return nil
	}
	actor := u.Actor()
	return &actor
}

// RouteRoles lists the roles allowed on a route, keyed by method and echo
// path template. Routes absent from the map are public.
type RouteRoles map[string][]account.Role

func routeKey(method, path string) string {
	return method + " " + path
}

// DefaultRouteRoles is the role table of the public API.
func DefaultRouteRoles() RouteRoles {
	anyRole := []account.Role{account.RoleCustomer, account.RoleAdmin, account.RoleRider}
	admin := []account.Role{account.RoleAdmin}
	rider := []account.Role{account.RoleRider}
	customer := []account.Role{account.RoleCustomer}

	return RouteRoles{
		routeKey("GET", "/me"):                           anyRole,
		routeKey("POST", "/orders"):                      customer,
		routeKey("GET", "/orders"):                       customer,
		routeKey("GET", "/orders/:id"):                   anyRole,
		routeKey("PATCH", "/orders/:id/cancel"):          {account.RoleCustomer, account.RoleAdmin},
		routeKey("PATCH", "/orders/:id/status"):          admin,
		routeKey("POST", "/admin/products"):              admin,
		routeKey("GET", "/admin/orders"):                 admin,
		routeKey("PATCH", "/admin/orders/:id/assign"):    admin,
		routeKey("GET", "/admin/riders"):                 admin,
		routeKey("GET", "/admin/approved-emails"):        admin,
		routeKey("POST", "/admin/approved-emails"):       admin,
		routeKey("DELETE", "/admin/approved-emails/:id"): admin,
		routeKey("GET", "/admin/dashboard"):              admin,
		routeKey("GET", "/rider/orders"):                 rider,
		routeKey("PATCH", "/rider/orders/:id/status"):    rider,
		routeKey("GET", "/rider/dashboard"):              rider,
	}
}

// Authorize runs the access gate for the matched route before the handler.
func Authorize(roles RouteRoles, gate services.AccessGate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			required, ok := roles[routeKey(ctx.Request().Method, ctx.Path())]
			if !ok {
				return next(ctx)
			}
			if err := gate.Authorize(CurrentActor(ctx), required...); err != nil {
				return err
			}
			return next(ctx)
		}
	}
}
