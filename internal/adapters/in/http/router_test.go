package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

type RouterTestSuite struct {
	suite.Suite

	placeOrder     *MockPlaceOrderHandler
	cancelOrder    *MockCancelOrderHandler
	recordDelivery *MockRecordDeliveryHandler
	authenticate   *MockAuthenticateIdentityHandler
	getOrder       *MockGetOrderHandler
	listOrders     *MockListOrdersHandler
	dashboard      *MockDashboardHandler
	listRiders     *MockListRidersHandler

	tokens   stubTokens
	users    stubUsers
	observer *recordingObserver
	router   *echo.Echo

	customer *account.User
	admin    *account.User
	rider    *account.User
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.placeOrder = new(MockPlaceOrderHandler)
	s.cancelOrder = new(MockCancelOrderHandler)
	s.recordDelivery = new(MockRecordDeliveryHandler)
	s.authenticate = new(MockAuthenticateIdentityHandler)
	s.getOrder = new(MockGetOrderHandler)
	s.listOrders = new(MockListOrdersHandler)
	s.dashboard = new(MockDashboardHandler)
	s.listRiders = new(MockListRidersHandler)

	s.tokens = stubTokens{}
	s.users = stubUsers{}
	s.customer = s.addUser("customer-token", account.RoleCustomer)
	s.admin = s.addUser("admin-token", account.RoleAdmin)
	s.rider = s.addUser("rider-token", account.RoleRider)

	s.observer = &recordingObserver{}
	server := httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:           s.placeOrder,
		CancelOrder:          s.cancelOrder,
		RecordDelivery:       s.recordDelivery,
		AuthenticateIdentity: s.authenticate,
		GetOrder:             s.getOrder,
		ListOrders:           s.listOrders,
		Dashboard:            s.dashboard,
		ListRiders:           s.listRiders,
	})
	s.router = httpadapter.NewRouter(httpadapter.RouterConfig{
		Server:      server,
		Tokens:      s.tokens,
		Users:       s.users,
		Observer:    s.observer,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		OpenAPIJSON: []byte(`{"openapi":"3.0.3"}`),
	})
}

func (s *RouterTestSuite) addUser(token string, role account.Role) *account.User {
	u, err := account.NewUser(kernel.NewUUID(), "sub-"+token, token+"@example.com", "User "+string(role), role, testNow)
	s.Require().NoError(err)
	s.tokens[token] = u.ID()
	s.users[u.ID()] = u
	return u
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
}

func (s *RouterTestSuite) do(method, target, token, body string) (*httptest.ResponseRecorder, envelope) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func (s *RouterTestSuite) data(env envelope) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(env.Data, &out))
	return out
}

func (s *RouterTestSuite) newOrder(customerID kernel.UUID) *order.Order {
	first, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Desk Fan", kernel.NewColor("White", "#FFFFFF"),
		"16 inch", kernel.MustMoney(3000), 2, "desk.jpg")
	s.Require().NoError(err)
	second, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Window AC", kernel.NewColor("Grey", "#808080"),
		"1 ton", kernel.MustMoney(5000), 1, "ac.jpg")
	s.Require().NoError(err)
	addr, err := kernel.NewAddress("Ana Silva", "Rua Augusta 10", "Lisboa", "", "1100-053", "PT")
	s.Require().NoError(err)
	contact, err := kernel.NewContactInfo("ana@example.com", "")
	s.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.LineItem{first, second}, addr, contact, "card", testNow)
	s.Require().NoError(err)
	s.Require().NoError(o.MarkPaid(testNow))
	return o
}

func (s *RouterTestSuite) TestHealthIsPublic() {
	rec, env := s.do(http.MethodGet, "/health", "", "")

	s.Equal(http.StatusOK, rec.Code)
	s.True(env.Success)
}

func (s *RouterTestSuite) TestOpenAPIDocumentIsServed() {
	rec, _ := s.do(http.MethodGet, "/openapi.json", "", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"openapi":"3.0.3"}`, rec.Body.String())
}

func (s *RouterTestSuite) TestMeRequiresAuthentication() {
	rec, env := s.do(http.MethodGet, "/me", "", "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.False(env.Success)
	s.NotEmpty(env.Message)
}

func (s *RouterTestSuite) TestMeReturnsCurrentUser() {
	rec, env := s.do(http.MethodGet, "/me", "rider-token", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	data := s.data(env)
	s.Equal(s.rider.ID().String(), data["id"])
	s.Equal("rider", data["role"])
	s.Equal("rider-token@example.com", data["email"])
}

func (s *RouterTestSuite) TestInvalidTokenIsRejected() {
	rec, env := s.do(http.MethodGet, "/products/"+kernel.NewUUID().String(), "bogus", "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.False(env.Success)
}

func (s *RouterTestSuite) TestMalformedAuthorizationHeaderIsRejected() {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestTokenOfDeletedUserIsRejected() {
	delete(s.users, s.customer.ID())

	rec, _ := s.do(http.MethodGet, "/me", "customer-token", "")

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestRoleChangeAppliesToExistingToken() {
	promoted, err := s.customer.Refresh(s.customer.Subject(), s.customer.Name(), account.RoleAdmin, testNow)
	s.Require().NoError(err)
	s.Require().True(promoted)

	rec, _ := s.do(http.MethodGet, "/orders", "customer-token", "")

	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *RouterTestSuite) TestRoleTableBlocksBeforeHandler() {
	tests := []struct {
		name   string
		method string
		target string
		token  string
		status int
	}{
		{"customer on admin orders", http.MethodGet, "/admin/orders", "customer-token", http.StatusForbidden},
		{"rider placing order", http.MethodPost, "/orders", "rider-token", http.StatusForbidden},
		{"admin on rider dashboard", http.MethodGet, "/rider/dashboard", "admin-token", http.StatusForbidden},
		{"rider cancelling", http.MethodPatch, "/orders/" + kernel.NewUUID().String() + "/cancel", "rider-token", http.StatusForbidden},
		{"customer overriding status", http.MethodPatch, "/orders/" + kernel.NewUUID().String() + "/status", "customer-token", http.StatusForbidden},
		{"anonymous listing riders", http.MethodGet, "/admin/riders", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec, env := s.do(tt.method, tt.target, tt.token, `{}`)
			s.Equal(tt.status, rec.Code)
			s.False(env.Success)
		})
	}

	s.placeOrder.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
	s.cancelOrder.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
	s.listRiders.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestPlaceOrder() {
	variant := kernel.NewUUID()
	product := kernel.NewUUID()
	placed := s.newOrder(s.customer.ID())

	s.placeOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PlaceOrderCommand) bool {
		items := cmd.Items()
		return cmd.Actor().ID.IsEqual(s.customer.ID()) &&
			len(items) == 1 &&
			items[0].VariantID.IsEqual(variant) &&
			items[0].ProductID.IsEqual(product) &&
			items[0].Quantity == 2 &&
			cmd.PaymentMethod() == "card"
	})).Return(placed, nil).Once()

	body := `{
		"orderItems": [{"product": "` + product.String() + `", "variant": "` + variant.String() + `", "quantity": 2}],
		"shippingAddress": {"fullName": "Ana Silva", "street": "Rua Augusta 10", "city": "Lisboa", "postalCode": "1100-053", "country": "PT"},
		"contactInfo": {"email": "ana@example.com"},
		"paymentMethod": "card"
	}`
	rec, env := s.do(http.MethodPost, "/orders", "customer-token", body)

	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.True(env.Success)
	data := s.data(env)
	s.Equal(placed.ID().String(), data["id"])
	s.Equal("paid", data["status"])
	s.InDelta(110.0, data["itemsPrice"], 0.001)
	s.InDelta(5.5, data["taxPrice"], 0.001)
	s.InDelta(0.0, data["shippingPrice"], 0.001)
	s.InDelta(115.5, data["totalPrice"], 0.001)
	s.Len(data["orderItems"], 2)
	s.NotContains(data, "assignedRider")
	s.placeOrder.AssertExpectations(s.T())
}

func (s *RouterTestSuite) TestPlaceOrderInsufficientStock() {
	s.placeOrder.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewInsufficientStockError("variant-1", 3, 1)).Once()

	body := `{
		"orderItems": [{"product": "` + kernel.NewUUID().String() + `", "variant": "` + kernel.NewUUID().String() + `", "quantity": 3}],
		"shippingAddress": {"fullName": "Ana Silva", "street": "Rua Augusta 10", "city": "Lisboa", "postalCode": "1100-053", "country": "PT"},
		"contactInfo": {"phone": "+351900000000"},
		"paymentMethod": "cod"
	}`
	rec, env := s.do(http.MethodPost, "/orders", "customer-token", body)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.False(env.Success)
	s.Equal(errs.NewInsufficientStockError("variant-1", 3, 1).Error(), env.Message)
}

func (s *RouterTestSuite) TestPlaceOrderValidation() {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"orderItems": [`},
		{"empty items", `{"orderItems": [], "shippingAddress": {"fullName": "A", "street": "S", "city": "C", "postalCode": "1", "country": "PT"}, "contactInfo": {"email": "a@b.c"}, "paymentMethod": "card"}`},
		{"missing address", `{"orderItems": [{"product": "` + kernel.NewUUID().String() + `", "variant": "` + kernel.NewUUID().String() + `", "quantity": 1}], "contactInfo": {"email": "a@b.c"}, "paymentMethod": "card"}`},
		{"no contact", `{"orderItems": [{"product": "` + kernel.NewUUID().String() + `", "variant": "` + kernel.NewUUID().String() + `", "quantity": 1}], "shippingAddress": {"fullName": "A", "street": "S", "city": "C", "postalCode": "1", "country": "PT"}, "paymentMethod": "card"}`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec, env := s.do(http.MethodPost, "/orders", "customer-token", tt.body)
			s.Equal(http.StatusBadRequest, rec.Code)
			s.False(env.Success)
			s.NotContains(env.Message, "\n")
		})
	}
	s.placeOrder.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestCancelInvalidTransition() {
	id := kernel.NewUUID()
	s.cancelOrder.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewInvalidTransitionErrorWithMessage("shipped", "cancelled", "Cannot cancel order in status: shipped")).Once()

	rec, env := s.do(http.MethodPatch, "/orders/"+id.String()+"/cancel", "customer-token", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Cannot cancel order in status: shipped", env.Message)
}

func (s *RouterTestSuite) TestAdminMayCancel() {
	o := s.newOrder(s.customer.ID())
	s.Require().NoError(o.Cancel(testNow))
	s.cancelOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelOrderCommand) bool {
		return cmd.OrderID().IsEqual(o.ID()) && cmd.Actor().Role == account.RoleAdmin
	})).Return(o, nil).Once()

	rec, env := s.do(http.MethodPatch, "/orders/"+o.ID().String()+"/cancel", "admin-token", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	data := s.data(env)
	s.Equal("cancelled", data["status"])
	s.NotNil(data["cancelledAt"])
}

func (s *RouterTestSuite) TestGetOrderErrors() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"forbidden", errs.NewForbiddenError("order belongs to another customer"), http.StatusForbidden},
		{"unexpected", errors.New("connection reset by peer"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.getOrder.On("Handle", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec, env := s.do(http.MethodGet, "/orders/"+kernel.NewUUID().String(), "customer-token", "")

			s.Equal(tt.status, rec.Code)
			s.False(env.Success)
			if tt.status == http.StatusInternalServerError {
				s.Equal("internal server error", env.Message)
			}
		})
	}
}

func (s *RouterTestSuite) TestInvalidPathID() {
	rec, env := s.do(http.MethodGet, "/orders/not-a-uuid", "customer-token", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.False(env.Success)
	s.getOrder.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestListOrdersPagination() {
	orders := []*order.Order{s.newOrder(s.customer.ID()), s.newOrder(s.customer.ID())}
	s.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
		return q.Scope() == queries.ScopeOwn && q.Pagination() == ports.Pagination{Page: 2, Limit: 2} && q.Status() == nil
	})).Return(queries.ListOrdersQueryResponse{
		Orders: orders,
		Meta:   queries.PageMeta{Page: 2, Limit: 2, Total: 5, Pages: 3},
	}, nil).Once()

	rec, env := s.do(http.MethodGet, "/orders?page=2&limit=2", "customer-token", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var data []map[string]any
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Len(data, 2)
	s.Equal(map[string]any{"page": 2.0, "limit": 2.0, "total": 5.0, "pages": 3.0}, env.Meta)
}

func (s *RouterTestSuite) TestListAllOrdersWithStatusFilter() {
	s.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
		return q.Scope() == queries.ScopeAll && q.Status() != nil && *q.Status() == order.Shipped
	})).Return(queries.ListOrdersQueryResponse{Orders: []*order.Order{}, Meta: queries.PageMeta{Page: 1, Limit: 10}}, nil).Once()

	rec, env := s.do(http.MethodGet, "/admin/orders?status=shipped", "admin-token", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, string(env.Data))
}

func (s *RouterTestSuite) TestListOrdersRejectsBadParams() {
	for _, target := range []string{
		"/admin/orders?limit=0",
		"/admin/orders?limit=101",
		"/admin/orders?page=0",
		"/admin/orders?page=abc",
		"/admin/orders?status=lost",
	} {
		s.Run(target, func() {
			rec, env := s.do(http.MethodGet, target, "admin-token", "")
			s.Equal(http.StatusBadRequest, rec.Code)
			s.False(env.Success)
		})
	}
	s.listOrders.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestRecordDeliveryNotAssigned() {
	s.recordDelivery.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RecordDeliveryCommand) bool {
		return cmd.Outcome() == order.Delivered
	})).Return(nil, errs.NewObjectNotFoundError("order", "x")).Once()

	rec, _ := s.do(http.MethodPatch, "/rider/orders/"+kernel.NewUUID().String()+"/status", "rider-token", `{"status":"delivered"}`)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestRecordDeliveryUnknownStatus() {
	rec, _ := s.do(http.MethodPatch, "/rider/orders/"+kernel.NewUUID().String()+"/status", "rider-token", `{"status":"lost"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.recordDelivery.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestCreateSession() {
	s.authenticate.On("Handle", mock.Anything, mock.Anything).Return(commands.AuthenticateIdentityResult{
		User:    s.customer,
		Token:   ports.AccessToken{Token: "signed", ExpiresAt: testNow.Add(24 * time.Hour)},
		Created: true,
	}, nil).Once()

	rec, env := s.do(http.MethodPost, "/auth/session", "", `{"credential":"provider-jwt"}`)

	s.Require().Equal(http.StatusCreated, rec.Code)
	data := s.data(env)
	s.Equal("signed", data["accessToken"])
	s.Equal("customer", data["user"].(map[string]any)["role"])
}

func (s *RouterTestSuite) TestCreateSessionForbidden() {
	s.authenticate.On("Handle", mock.Anything, mock.Anything).
		Return(commands.AuthenticateIdentityResult{}, errs.NewForbiddenError("email is not approved")).Once()

	rec, env := s.do(http.MethodPost, "/auth/session", "", `{"credential":"provider-jwt"}`)

	s.Equal(http.StatusForbidden, rec.Code)
	s.Contains(env.Message, "email is not approved")
}

func (s *RouterTestSuite) TestAdminDashboard() {
	months := services.NewDashboard(time.UTC).MonthlySales(nil, 2026)
	months[3].Total = kernel.MustMoney(11550)
	months[3].Count = 1
	s.dashboard.On("HandleAdmin", mock.Anything, mock.Anything).Return(queries.AdminDashboard{
		Counts:       services.StatusCounts{Total: 1, Paid: 1, Today: 1},
		RecentOrders: []*order.Order{s.newOrder(s.customer.ID())},
		MonthlySales: months,
		Year:         2026,
	}, nil).Once()

	rec, env := s.do(http.MethodGet, "/admin/dashboard", "admin-token", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	data := s.data(env)
	s.EqualValues(2026, data["year"])
	sales := data["monthlySales"].([]any)
	s.Len(sales, 12)
	april := sales[3].(map[string]any)
	s.EqualValues(4, april["month"])
	s.InDelta(115.5, april["total"], 0.001)
	counts := data["counts"].(map[string]any)
	s.EqualValues(1, counts["paid"])
	s.EqualValues(0, counts["cancelled"])
}

func (s *RouterTestSuite) TestRiderDashboard() {
	s.dashboard.On("HandleRider", mock.Anything, mock.MatchedBy(func(q queries.GetRiderDashboardQuery) bool {
		return q.Actor().ID.IsEqual(s.rider.ID())
	})).Return(queries.RiderDashboard{
		Counts:       services.StatusCounts{Total: 3, Shipped: 1, Delivered: 2},
		Performance:  services.RiderPerformance{TotalAssigned: 3, Delivered: 2, DeliveryRate: 66.67},
		RecentOrders: []*order.Order{},
	}, nil).Once()

	rec, env := s.do(http.MethodGet, "/rider/dashboard", "rider-token", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	data := s.data(env)
	s.InDelta(66.67, data["performance"].(map[string]any)["deliveryRate"], 0.0001)
	s.Empty(data["recentOrders"])
}

func (s *RouterTestSuite) TestListRiders() {
	s.listRiders.On("Handle", mock.Anything, mock.Anything).Return([]queries.ListRidersQueryResponse{
		{ID: s.rider.ID(), Email: s.rider.Email(), Name: s.rider.Name()},
	}, nil).Once()

	rec, env := s.do(http.MethodGet, "/admin/riders", "admin-token", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var riders []map[string]any
	s.Require().NoError(json.Unmarshal(env.Data, &riders))
	s.Require().Len(riders, 1)
	s.Equal(s.rider.ID().String(), riders[0]["id"])
}

func (s *RouterTestSuite) TestObserverUsesRouteTemplate() {
	s.getOrder.On("Handle", mock.Anything, mock.Anything).Return(nil, errs.NewObjectNotFoundError("order", "x")).Once()
	id := kernel.NewUUID().String()

	s.do(http.MethodGet, "/orders/"+id, "customer-token", "")
	s.do(http.MethodGet, "/nowhere", "", "")

	s.Require().Len(s.observer.requests, 2)
	s.Equal(observedRequest{method: http.MethodGet, path: "/orders/:id", status: http.StatusNotFound}, s.observer.requests[0])
	s.Equal(http.StatusNotFound, s.observer.requests[1].status)
	s.NotContains(s.observer.requests[1].path, "nowhere")
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{errs.NewValueIsOutOfRangeError("limit", 0, 1, 100), http.StatusBadRequest},
		{errs.NewInvalidTransitionError("paid", "delivered"), http.StatusBadRequest},
		{errs.NewInsufficientStockError("v", 2, 1), http.StatusBadRequest},
		{errs.NewConflictError("email", "a@b.c"), http.StatusConflict},
		{errs.NewVersionIsInvalidError("order", errors.New("status is cancelled, expected paid")), http.StatusConflict},
		{errs.NewUnauthenticatedError("x"), http.StatusUnauthorized},
		{errs.NewForbiddenError("x"), http.StatusForbidden},
		{errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{echo.NewHTTPError(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed},
		{errors.Join(errs.NewValueIsRequiredError("a"), errs.NewValueIsRequiredError("b")), http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, httpadapter.StatusFor(tt.err), tt.err.Error())
	}
}

func TestErrorHandlerJoinsMessages(t *testing.T) {
	e := echo.New()
	handler := httpadapter.NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodPost, "/orders", nil), rec)

	handler(errors.Join(errs.NewValueIsRequiredError("street"), errs.NewValueIsRequiredError("city")), ctx)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t,
		errs.NewValueIsRequiredError("street").Error()+"; "+errs.NewValueIsRequiredError("city").Error(),
		env.Message)
}
