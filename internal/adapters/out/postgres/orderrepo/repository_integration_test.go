package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var baseTime = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.repository = orderrepo.NewGormOrderRepository(pg.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsItemsAndPricing() {
	ctx := context.Background()
	o := suite.newPaidOrder(kernel.NewUUID(), baseTime)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), got.ID())
	suite.Equal(o.CustomerID(), got.CustomerID())
	suite.Equal(order.Paid, got.Status())
	suite.Equal(int64(11550), got.Pricing().TotalPrice.Cents())
	suite.Equal(int64(550), got.Pricing().TaxPrice.Cents())
	suite.True(got.Pricing().ShippingPrice.IsZero())
	suite.Require().Len(got.Items(), 2)
	suite.Equal("Pedestal Fan", got.Items()[0].Name())
	suite.Equal(2, got.Items()[0].Quantity())
	suite.Equal("#FFFFFF", got.Items()[0].Color().Code())
	suite.Equal("Window AC", got.Items()[1].Name())
	suite.Equal("Lisbon", got.ShippingAddress().City())
	suite.Equal("ana@example.com", got.ContactInfo().Email())
	suite.True(baseTime.Equal(got.CreatedAt()))
	suite.Nil(got.Rider())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsConflict() {
	ctx := context.Background()
	o := suite.newPaidOrder(kernel.NewUUID(), baseTime)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	err := suite.repository.Add(ctx, o)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleColumns() {
	ctx := context.Background()
	o := suite.newPaidOrder(kernel.NewUUID(), baseTime)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	riderID := kernel.NewUUID()
	shippedAt := baseTime.Add(time.Hour)
	suite.Require().NoError(o.AssignRider(riderID, shippedAt))
	suite.Require().NoError(suite.repository.Update(ctx, o, order.Paid))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, got.Status())
	suite.Require().NotNil(got.Rider())
	suite.Equal(riderID, *got.Rider())
	suite.True(shippedAt.Equal(got.UpdatedAt()))

	// Overriding back to paid must clear the rider column.
	changed, err := o.Override(order.Paid, shippedAt.Add(time.Minute))
	suite.Require().NoError(err)
	suite.True(changed)
	suite.Require().NoError(suite.repository.Update(ctx, o, order.Shipped))

	got, err = suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paid, got.Status())
	suite.Nil(got.Rider())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Cancelled() {
	ctx := context.Background()
	o := suite.newPaidOrder(kernel.NewUUID(), baseTime)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	cancelledAt := baseTime.Add(2 * time.Hour)
	suite.Require().NoError(o.Cancel(cancelledAt))
	suite.Require().NoError(suite.repository.Update(ctx, o, order.Paid))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, got.Status())
	suite.Require().NotNil(got.CancelledAt())
	suite.True(cancelledAt.Equal(*got.CancelledAt()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	o := suite.newPaidOrder(kernel.NewUUID(), baseTime)

	err := suite.repository.Update(context.Background(), o, order.Paid)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleStatus_ReturnsVersionIsInvalid() {
	ctx := context.Background()
	o := suite.newPaidOrder(kernel.NewUUID(), baseTime)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Cancel(baseTime.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, first, order.Paid))

	suite.Require().NoError(second.Cancel(baseTime.Add(2 * time.Hour)))
	err = suite.repository.Update(ctx, second, order.Paid)

	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, got.Status())
	suite.True(baseTime.Add(time.Hour).Equal(*got.CancelledAt()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_FiltersPagesAndSortsNewestFirst() {
	ctx := context.Background()
	customer := kernel.NewUUID()

	var own []*order.Order
	for i := range 5 {
		o := suite.newPaidOrder(customer, baseTime.Add(time.Duration(i)*time.Hour))
		suite.Require().NoError(suite.repository.Add(ctx, o))
		own = append(own, o)
	}
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPaidOrder(kernel.NewUUID(), baseTime)))

	page := ports.Pagination{Page: 2, Limit: 2}
	got, total, err := suite.repository.List(ctx, ports.OrderFilter{CustomerID: &customer}, page)

	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
	suite.Require().Len(got, 2)
	suite.Equal(own[2].ID(), got[0].ID())
	suite.Equal(own[1].ID(), got[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_Empty() {
	got, total, err := suite.repository.List(context.Background(), ports.OrderFilter{}, ports.Pagination{Page: 1, Limit: 10})

	suite.Require().NoError(err)
	suite.Zero(total)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindAll_ByRiderStatusAndAge() {
	ctx := context.Background()
	riderID := kernel.NewUUID()

	stalePaid := suite.newPaidOrder(kernel.NewUUID(), baseTime)
	freshPaid := suite.newPaidOrder(kernel.NewUUID(), baseTime.Add(48*time.Hour))
	shipped := suite.newPaidOrder(kernel.NewUUID(), baseTime)
	suite.Require().NoError(shipped.AssignRider(riderID, baseTime.Add(time.Hour)))

	for _, o := range []*order.Order{stalePaid, freshPaid, shipped} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	paid := order.Paid
	cutoff := baseTime.Add(24 * time.Hour)
	stale, err := suite.repository.FindAll(ctx, ports.OrderFilter{Status: &paid, UpdatedBefore: &cutoff})
	suite.Require().NoError(err)
	suite.Require().Len(stale, 1)
	suite.Equal(stalePaid.ID(), stale[0].ID())

	assigned, err := suite.repository.FindAll(ctx, ports.OrderFilter{RiderID: &riderID})
	suite.Require().NoError(err)
	suite.Require().Len(assigned, 1)
	suite.Equal(shipped.ID(), assigned[0].ID())

	from, until := baseTime.Add(time.Hour), baseTime.Add(72*time.Hour)
	created, err := suite.repository.FindAll(ctx, ports.OrderFilter{CreatedFrom: &from, CreatedUntil: &until})
	suite.Require().NoError(err)
	suite.Require().Len(created, 1)
	suite.Equal(freshPaid.ID(), created[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) newPaidOrder(customerID kernel.UUID, at time.Time) *order.Order {
	fan, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Pedestal Fan",
		kernel.NewColor("White", "#FFFFFF"), "16 inch", kernel.MustMoney(3000), 2, "fan.jpg")
	suite.Require().NoError(err)
	ac, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Window AC",
		kernel.NewColor("Grey", "#888888"), "1 ton", kernel.MustMoney(5000), 1, "")
	suite.Require().NoError(err)
	addr, err := kernel.NewAddress("Ana Lima", "1 Main St", "Lisbon", "", "1000-001", "PT")
	suite.Require().NoError(err)
	contact, err := kernel.NewContactInfo("ana@example.com", "+351 900 000 000")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.LineItem{fan, ac}, addr, contact, "card", at)
	suite.Require().NoError(err)
	suite.Require().NoError(o.MarkPaid(at))
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
