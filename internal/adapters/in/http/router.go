package http

import (
	"log/slog"
	"net/http"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig holds everything NewRouter wires into echo.
type RouterConfig struct {
	Server   servers.ServerInterface
	Tokens   TokenParser
	Users    UserLookup
	Observer RequestObserver
	Logger   *slog.Logger

	// MetricsHandler serves GET /metrics when set.
	MetricsHandler http.Handler
	// OpenAPIJSON is served as GET /openapi.json when set. The Swagger UI at
	// /swagger/* reads the document registered with swag.
	OpenAPIJSON []byte
}

// NewRouter builds the echo instance serving the public API.
//
// Middleware order, outermost first: panic recovery, request log, metrics
// (which also renders errors), authentication, role check.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(RequestLog(cfg.Logger))
	e.Use(Observe(cfg.Observer))
	e.Use(Authenticate(cfg.Tokens, cfg.Users))
	e.Use(Authorize(DefaultRouteRoles(), services.NewAccessGate()))

	servers.RegisterHandlers(e, cfg.Server)

	if cfg.MetricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.MetricsHandler))
	}
	if cfg.OpenAPIJSON != nil {
		e.GET("/openapi.json", func(ctx echo.Context) error {
			return ctx.JSONBlob(http.StatusOK, cfg.OpenAPIJSON)
		})
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
