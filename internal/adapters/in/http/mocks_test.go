package http_test

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

type MockPlaceOrderHandler struct{ mock.Mock }

func (m *MockPlaceOrderHandler) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCancelOrderHandler struct{ mock.Mock }

func (m *MockCancelOrderHandler) Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockRecordDeliveryHandler struct{ mock.Mock }

func (m *MockRecordDeliveryHandler) Handle(ctx context.Context, cmd commands.RecordDeliveryCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockAuthenticateIdentityHandler struct{ mock.Mock }

func (m *MockAuthenticateIdentityHandler) Handle(
	ctx context.Context,
	cmd commands.AuthenticateIdentityCommand,
) (commands.AuthenticateIdentityResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.AuthenticateIdentityResult), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListOrdersQueryResponse), args.Error(1)
}

type MockDashboardHandler struct{ mock.Mock }

func (m *MockDashboardHandler) HandleRider(ctx context.Context, query queries.GetRiderDashboardQuery) (queries.RiderDashboard, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.RiderDashboard), args.Error(1)
}

func (m *MockDashboardHandler) HandleAdmin(ctx context.Context, query queries.GetAdminDashboardQuery) (queries.AdminDashboard, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.AdminDashboard), args.Error(1)
}

type MockListRidersHandler struct{ mock.Mock }

func (m *MockListRidersHandler) Handle(ctx context.Context, query queries.ListRidersQuery) ([]queries.ListRidersQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ListRidersQueryResponse), args.Error(1)
}

// stubTokens maps bearer tokens to user ids.
type stubTokens map[string]kernel.UUID

func (s stubTokens) Parse(token string) (kernel.UUID, error) {
	id, ok := s[token]
	if !ok {
		return kernel.UUID{}, errs.NewUnauthenticatedError("invalid access token")
	}
	return id, nil
}

// stubUsers is an in-memory user store.
type stubUsers map[kernel.UUID]*account.User

func (s stubUsers) Get(_ context.Context, id kernel.UUID) (*account.User, error) {
	u, ok := s[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id.String())
	}
	return u, nil
}

type observedRequest struct {
	method string
	path   string
	status int
}

type recordingObserver struct {
	requests []observedRequest
}

func (r *recordingObserver) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	r.requests = append(r.requests, observedRequest{method: method, path: path, status: status})
}
