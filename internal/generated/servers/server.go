package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Exchange an identity credential for an access token
	// (POST /auth/session)
	CreateSession(ctx echo.Context) error
	// Current actor
	// (GET /me)
	GetMe(ctx echo.Context) error
	// List active products
	// (GET /products)
	ListProducts(ctx echo.Context, params ListProductsParams) error
	// Get a product
	// (GET /products/{id})
	GetProduct(ctx echo.Context, id openapi_types.UUID) error
	// Place an order
	// (POST /orders)
	PlaceOrder(ctx echo.Context) error
	// List the caller's orders
	// (GET /orders)
	ListMyOrders(ctx echo.Context, params ListOrdersParams) error
	// Get an order
	// (GET /orders/{id})
	GetOrder(ctx echo.Context, id openapi_types.UUID) error
	// Cancel an order and restock its items
	// (PATCH /orders/{id}/cancel)
	CancelOrder(ctx echo.Context, id openapi_types.UUID) error
	// Override the order status
	// (PATCH /orders/{id}/status)
	UpdateOrderStatus(ctx echo.Context, id openapi_types.UUID) error
	// Create a product
	// (POST /admin/products)
	CreateProduct(ctx echo.Context) error
	// List all orders
	// (GET /admin/orders)
	ListAllOrders(ctx echo.Context, params ListOrdersParams) error
	// Ship an order with a rider
	// (PATCH /admin/orders/{id}/assign)
	AssignRider(ctx echo.Context, id openapi_types.UUID) error
	// List riders
	// (GET /admin/riders)
	ListRiders(ctx echo.Context) error
	// List the sign-in allowlist
	// (GET /admin/approved-emails)
	ListApprovedEmails(ctx echo.Context) error
	// Approve an email
	// (POST /admin/approved-emails)
	AddApprovedEmail(ctx echo.Context) error
	// Revoke an approval
	// (DELETE /admin/approved-emails/{id})
	RemoveApprovedEmail(ctx echo.Context, id openapi_types.UUID) error
	// Admin dashboard
	// (GET /admin/dashboard)
	GetAdminDashboard(ctx echo.Context) error
	// List orders assigned to the caller
	// (GET /rider/orders)
	ListRiderOrders(ctx echo.Context, params ListOrdersParams) error
	// Record a delivery attempt
	// (PATCH /rider/orders/{id}/status)
	RecordDelivery(ctx echo.Context, id openapi_types.UUID) error
	// Rider dashboard
	// (GET /rider/dashboard)
	GetRiderDashboard(ctx echo.Context) error
	// Liveness check
	// (GET /health)
	GetHealth(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateSession converts echo context to params.
func (w *ServerInterfaceWrapper) CreateSession(ctx echo.Context) error {
	return w.Handler.CreateSession(ctx)
}

// GetMe converts echo context to params.
func (w *ServerInterfaceWrapper) GetMe(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetMe(ctx)
}

// ListProducts converts echo context to params.
func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	var params ListProductsParams
	if err := bindPaging(ctx, &params.Page, &params.Limit); err != nil {
		return err
	}
	return w.Handler.ListProducts(ctx, params)
}

// GetProduct converts echo context to params.
func (w *ServerInterfaceWrapper) GetProduct(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetProduct(ctx, id)
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.PlaceOrder(ctx)
}

// ListMyOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListMyOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	params, err := bindListOrdersParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListMyOrders(ctx, params)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, id)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, id)
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateProduct(ctx)
}

// ListAllOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListAllOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	params, err := bindListOrdersParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListAllOrders(ctx, params)
}

// AssignRider converts echo context to params.
func (w *ServerInterfaceWrapper) AssignRider(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AssignRider(ctx, id)
}

// ListRiders converts echo context to params.
func (w *ServerInterfaceWrapper) ListRiders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListRiders(ctx)
}

// ListApprovedEmails converts echo context to params.
func (w *ServerInterfaceWrapper) ListApprovedEmails(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListApprovedEmails(ctx)
}

// AddApprovedEmail converts echo context to params.
func (w *ServerInterfaceWrapper) AddApprovedEmail(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.AddApprovedEmail(ctx)
}

// RemoveApprovedEmail converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveApprovedEmail(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RemoveApprovedEmail(ctx, id)
}

// GetAdminDashboard converts echo context to params.
func (w *ServerInterfaceWrapper) GetAdminDashboard(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetAdminDashboard(ctx)
}

// ListRiderOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListRiderOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	params, err := bindListOrdersParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListRiderOrders(ctx, params)
}

// RecordDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) RecordDelivery(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RecordDelivery(ctx, id)
}

// GetRiderDashboard converts echo context to params.
func (w *ServerInterfaceWrapper) GetRiderDashboard(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetRiderDashboard(ctx)
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func bindID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func bindPaging(ctx echo.Context, page, limit **int) error {
	if err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	return nil
}

func bindListOrdersParams(ctx echo.Context) (ListOrdersParams, error) {
	var params ListOrdersParams
	if err := bindPaging(ctx, &params.Page, &params.Limit); err != nil {
		return params, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	return params, nil
}

// EchoRouter is the subset of echo routing used by RegisterHandlers, so both
// *echo.Echo and *echo.Group can be passed.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/auth/session", wrapper.CreateSession)
	router.GET(baseURL+"/me", wrapper.GetMe)
	router.GET(baseURL+"/products", wrapper.ListProducts)
	router.GET(baseURL+"/products/:id", wrapper.GetProduct)
	router.POST(baseURL+"/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/orders", wrapper.ListMyOrders)
	router.GET(baseURL+"/orders/:id", wrapper.GetOrder)
	router.PATCH(baseURL+"/orders/:id/cancel", wrapper.CancelOrder)
	router.PATCH(baseURL+"/orders/:id/status", wrapper.UpdateOrderStatus)
	router.POST(baseURL+"/admin/products", wrapper.CreateProduct)
	router.GET(baseURL+"/admin/orders", wrapper.ListAllOrders)
	router.PATCH(baseURL+"/admin/orders/:id/assign", wrapper.AssignRider)
	router.GET(baseURL+"/admin/riders", wrapper.ListRiders)
	router.GET(baseURL+"/admin/approved-emails", wrapper.ListApprovedEmails)
	router.POST(baseURL+"/admin/approved-emails", wrapper.AddApprovedEmail)
	router.DELETE(baseURL+"/admin/approved-emails/:id", wrapper.RemoveApprovedEmail)
	router.GET(baseURL+"/admin/dashboard", wrapper.GetAdminDashboard)
	router.GET(baseURL+"/rider/orders", wrapper.ListRiderOrders)
	router.PATCH(baseURL+"/rider/orders/:id/status", wrapper.RecordDelivery)
	router.GET(baseURL+"/rider/dashboard", wrapper.GetRiderDashboard)
	router.GET(baseURL+"/health", wrapper.GetHealth)
}
