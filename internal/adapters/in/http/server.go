package http

import (
	"context"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Use case contracts consumed by the Server. The application handlers satisfy
// them directly.
type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	OverrideOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.OverrideOrderStatusCommand) (*order.Order, error)
	}
	AssignRiderHandler interface {
		Handle(ctx context.Context, cmd commands.AssignRiderCommand) (*order.Order, error)
	}
	RecordDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.RecordDeliveryCommand) (*order.Order, error)
	}
	AuthenticateIdentityHandler interface {
		Handle(ctx context.Context, cmd commands.AuthenticateIdentityCommand) (commands.AuthenticateIdentityResult, error)
	}
	AddApprovedEmailHandler interface {
		Handle(ctx context.Context, cmd commands.AddApprovedEmailCommand) (*account.ApprovedEmail, error)
	}
	RemoveApprovedEmailHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveApprovedEmailCommand) error
	}
	CreateProductHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) (*catalog.Product, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
	}
	DashboardHandler interface {
		HandleRider(ctx context.Context, query queries.GetRiderDashboardQuery) (queries.RiderDashboard, error)
		HandleAdmin(ctx context.Context, query queries.GetAdminDashboardQuery) (queries.AdminDashboard, error)
	}
	GetProductHandler interface {
		Handle(ctx context.Context, query queries.GetProductQuery) (*catalog.Product, error)
	}
	ListProductsHandler interface {
		Handle(ctx context.Context, query queries.ListProductsQuery) (queries.ListProductsQueryResponse, error)
	}
	ListRidersHandler interface {
		Handle(ctx context.Context, query queries.ListRidersQuery) ([]queries.ListRidersQueryResponse, error)
	}
	ListApprovedEmailsHandler interface {
		Handle(ctx context.Context, query queries.ListApprovedEmailsQuery) ([]queries.ListApprovedEmailsQueryResponse, error)
	}
)

// Handlers groups the use cases behind the HTTP API.
type Handlers struct {
	// Command handlers
	PlaceOrder           PlaceOrderHandler
	CancelOrder          CancelOrderHandler
	OverrideOrderStatus  OverrideOrderStatusHandler
	AssignRider          AssignRiderHandler
	RecordDelivery       RecordDeliveryHandler
	AuthenticateIdentity AuthenticateIdentityHandler
	AddApprovedEmail     AddApprovedEmailHandler
	RemoveApprovedEmail  RemoveApprovedEmailHandler
	CreateProduct        CreateProductHandler

	// Query handlers
	GetOrder           GetOrderHandler
	ListOrders         ListOrdersHandler
	Dashboard          DashboardHandler
	GetProduct         GetProductHandler
	ListProducts       ListProductsHandler
	ListRiders         ListRidersHandler
	ListApprovedEmails ListApprovedEmailsHandler
}

// Server implements servers.ServerInterface. Handlers only translate between
// the wire types and the use cases; every error is returned to echo and
// rendered by the error handler.
type Server struct {
	h Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// CreateSession handles POST /auth/session.
func (s *Server) CreateSession(ctx echo.Context) error {
	var body servers.SessionRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAuthenticateIdentityCommand(body.Credential)
	if err != nil {
		return err
	}
	result, err := s.h.AuthenticateIdentity.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	return respond(ctx, status, "Signed in", servers.Session{
		AccessToken: result.Token.Token,
		ExpiresAt:   result.Token.ExpiresAt,
		User:        toUser(result.User),
	})
}

// GetMe handles GET /me.
func (s *Server) GetMe(ctx echo.Context) error {
	user := CurrentUser(ctx)
	if user == nil {
		return errs.NewUnauthenticatedError("no authenticated actor")
	}
	return respond(ctx, http.StatusOK, "Current user", toUser(user))
}

// ListProducts handles GET /products.
func (s *Server) ListProducts(ctx echo.Context, params servers.ListProductsParams) error {
	query, err := queries.NewListProductsQuery(params.Page, params.Limit)
	if err != nil {
		return err
	}
	result, err := s.h.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	products := make([]servers.Product, 0, len(result.Products))
	for _, p := range result.Products {
		products = append(products, toProduct(p))
	}
	return respondPage(ctx, http.StatusOK, "Products retrieved", products, toPageMeta(result.Meta))
}

// GetProduct handles GET /products/:id.
func (s *Server) GetProduct(ctx echo.Context, id openapi_types.UUID) error {
	productID, err := pathID("id", id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return err
	}
	p, err := s.h.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Product retrieved", toProduct(p))
}

// PlaceOrder handles POST /orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.PlaceOrderRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	items := make([]commands.PlaceOrderItem, 0, len(body.OrderItems))
	for i, in := range body.OrderItems {
		productID, err := kernel.UUIDFromGoogle(in.Product)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(itemField(i, "product"), err)
		}
		variantID, err := kernel.UUIDFromGoogle(in.Variant)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(itemField(i, "variant"), err)
		}
		items = append(items, commands.PlaceOrderItem{ProductID: productID, VariantID: variantID, Quantity: in.Quantity})
	}

	addr := body.ShippingAddress
	address, err := kernel.NewAddress(addr.FullName, addr.Street, addr.City, addr.State, addr.PostalCode, addr.Country)
	if err != nil {
		return err
	}
	contact, err := kernel.NewContactInfo(body.ContactInfo.Email, body.ContactInfo.Phone)
	if err != nil {
		return err
	}

	cmd, err := commands.NewPlaceOrderCommand(CurrentActor(ctx), items, address, contact, body.PaymentMethod)
	if err != nil {
		return err
	}
	o, err := s.h.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusCreated, "Order placed", toOrder(o))
}

// ListMyOrders handles GET /orders.
func (s *Server) ListMyOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	return s.listOrders(ctx, queries.ScopeOwn, params)
}

// ListAllOrders handles GET /admin/orders.
func (s *Server) ListAllOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	return s.listOrders(ctx, queries.ScopeAll, params)
}

// ListRiderOrders handles GET /rider/orders.
func (s *Server) ListRiderOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	return s.listOrders(ctx, queries.ScopeAssigned, params)
}

func (s *Server) listOrders(ctx echo.Context, scope queries.OrderScope, params servers.ListOrdersParams) error {
	var status *order.Status
	if params.Status != nil {
		parsed, err := order.ParseStatus(string(*params.Status))
		if err != nil {
			return err
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(CurrentActor(ctx), scope, status, params.Page, params.Limit)
	if err != nil {
		return err
	}
	result, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return respondPage(ctx, http.StatusOK, "Orders retrieved", toOrders(result.Orders), toPageMeta(result.Meta))
}

// GetOrder handles GET /orders/:id.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := pathID("id", id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(CurrentActor(ctx), orderID)
	if err != nil {
		return err
	}
	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Order retrieved", toOrder(o))
}

// CancelOrder handles PATCH /orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := pathID("id", id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelOrderCommand(CurrentActor(ctx), orderID)
	if err != nil {
		return err
	}
	o, err := s.h.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Order cancelled", toOrder(o))
}

// UpdateOrderStatus handles PATCH /orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := pathID("id", id)
	if err != nil {
		return err
	}
	var body servers.UpdateOrderStatusRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewOverrideOrderStatusCommand(CurrentActor(ctx), orderID, status)
	if err != nil {
		return err
	}
	o, err := s.h.OverrideOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Order status updated", toOrder(o))
}

// AssignRider handles PATCH /admin/orders/:id/assign.
func (s *Server) AssignRider(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := pathID("id", id)
	if err != nil {
		return err
	}
	var body servers.AssignRiderRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	riderID, err := kernel.UUIDFromGoogle(body.RiderId)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("riderId", err)
	}

	cmd, err := commands.NewAssignRiderCommand(CurrentActor(ctx), orderID, riderID)
	if err != nil {
		return err
	}
	o, err := s.h.AssignRider.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Rider assigned", toOrder(o))
}

// RecordDelivery handles PATCH /rider/orders/:id/status.
func (s *Server) RecordDelivery(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := pathID("id", id)
	if err != nil {
		return err
	}
	var body servers.UpdateOrderStatusRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	outcome, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewRecordDeliveryCommand(CurrentActor(ctx), orderID, outcome)
	if err != nil {
		return err
	}
	o, err := s.h.RecordDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Delivery recorded", toOrder(o))
}

// CreateProduct handles POST /admin/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	variants := make([]commands.NewVariantInput, 0, len(body.Variants))
	for i, v := range body.Variants {
		price, err := kernel.MoneyFromFloat(v.Price)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(variantField(i, "price"), err)
		}
		variants = append(variants, commands.NewVariantInput{
			ColorName: v.Color.Name,
			ColorCode: v.Color.Code,
			Size:      v.Size,
			Price:     price,
			Stock:     v.Stock,
			SKU:       v.Sku,
		})
	}

	cmd, err := commands.NewCreateProductCommand(
		CurrentActor(ctx), body.Name, body.Description, body.Category, body.Images, variants,
	)
	if err != nil {
		return err
	}
	p, err := s.h.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusCreated, "Product created", toProduct(p))
}

// ListRiders handles GET /admin/riders.
func (s *Server) ListRiders(ctx echo.Context) error {
	riders, err := s.h.ListRiders.Handle(ctx.Request().Context(), queries.NewListRidersQuery(CurrentActor(ctx)))
	if err != nil {
		return err
	}

	response := make([]servers.Rider, 0, len(riders))
	for _, r := range riders {
		response = append(response, servers.Rider{Id: r.ID.Google(), Email: r.Email, Name: r.Name, Phone: r.Phone})
	}
	return respond(ctx, http.StatusOK, "Riders retrieved", response)
}

// ListApprovedEmails handles GET /admin/approved-emails.
func (s *Server) ListApprovedEmails(ctx echo.Context) error {
	query := queries.NewListApprovedEmailsQuery(CurrentActor(ctx))
	approvals, err := s.h.ListApprovedEmails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.ApprovedEmail, 0, len(approvals))
	for _, a := range approvals {
		response = append(response, toApprovedEmail(a.ID, a.Email, a.Role, a.IsActive, a.AddedBy, a.CreatedAt))
	}
	return respond(ctx, http.StatusOK, "Approved emails retrieved", response)
}

// AddApprovedEmail handles POST /admin/approved-emails.
func (s *Server) AddApprovedEmail(ctx echo.Context) error {
	var body servers.AddApprovedEmailRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	role, err := account.ParseRole(string(body.Role))
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddApprovedEmailCommand(CurrentActor(ctx), body.Email, role)
	if err != nil {
		return err
	}
	a, err := s.h.AddApprovedEmail.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusCreated, "Email approved",
		toApprovedEmail(a.ID(), a.Email(), a.Role(), a.IsActive(), a.AddedBy(), a.CreatedAt()))
}

// RemoveApprovedEmail handles DELETE /admin/approved-emails/:id.
func (s *Server) RemoveApprovedEmail(ctx echo.Context, id openapi_types.UUID) error {
	approvalID, err := pathID("id", id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRemoveApprovedEmailCommand(CurrentActor(ctx), approvalID)
	if err != nil {
		return err
	}
	if err = s.h.RemoveApprovedEmail.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Approval revoked", nil)
}

// GetAdminDashboard handles GET /admin/dashboard.
func (s *Server) GetAdminDashboard(ctx echo.Context) error {
	d, err := s.h.Dashboard.HandleAdmin(ctx.Request().Context(), queries.NewGetAdminDashboardQuery(CurrentActor(ctx)))
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Dashboard retrieved", toAdminDashboard(d))
}

// GetRiderDashboard handles GET /rider/dashboard.
func (s *Server) GetRiderDashboard(ctx echo.Context) error {
	d, err := s.h.Dashboard.HandleRider(ctx.Request().Context(), queries.NewGetRiderDashboardQuery(CurrentActor(ctx)))
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Dashboard retrieved", toRiderDashboard(d))
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return respond(ctx, http.StatusOK, "ok", nil)
}
