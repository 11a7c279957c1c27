package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC)

type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderReader) List(
	ctx context.Context,
	filter ports.OrderFilter,
	page ports.Pagination,
) ([]*order.Order, int64, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]*order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderReader) FindAll(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductReader struct {
	mock.Mock
}

func (m *MockProductReader) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*catalog.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductReader) List(ctx context.Context, page ports.Pagination) ([]*catalog.Product, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]*catalog.Product), args.Get(1).(int64), args.Error(2)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func actorWithRole(role account.Role) *account.Actor {
	return &account.Actor{ID: kernel.NewUUID(), Email: string(role) + "@example.com", Name: string(role), Role: role}
}

// paidOrder builds a paid order placed by customerID and last updated at updatedAt.
func paidOrder(t *testing.T, customerID kernel.UUID, updatedAt time.Time) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Pedestal Fan",
		kernel.NewColor("White", "#FFFFFF"), "16 inch", kernel.MustMoney(3000), 2, "fan.jpg")
	require.NoError(t, err)
	addr, err := kernel.NewAddress("Ana Lima", "1 Main St", "Lisbon", "", "1000-001", "PT")
	require.NoError(t, err)
	contact, err := kernel.NewContactInfo("ana@example.com", "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.LineItem{item}, addr, contact, "card", updatedAt)
	require.NoError(t, err)
	require.NoError(t, o.MarkPaid(updatedAt))
	return o
}

// shippedOrder builds an order shipped with riderID.
func shippedOrder(t *testing.T, riderID kernel.UUID, updatedAt time.Time) *order.Order {
	t.Helper()

	o := paidOrder(t, kernel.NewUUID(), updatedAt)
	require.NoError(t, o.AssignRider(riderID, updatedAt))
	return o
}
