package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/identity"
	"fulfillment/internal/adapters/out/notify"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/adapters/out/postgres/userrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/clock"
	"fulfillment/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// closableNotifier is a notification transport holding connections.
type closableNotifier interface {
	ports.Notifier
	Close() error
}

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	clock      ports.Clock
	metrics    *metrics.Metrics
	notifier   closableNotifier
	dispatcher *notify.Dispatcher
	tokens     *identity.TokenService
	verifier   *identity.CredentialVerifier
}

// NewCompositionRoot connects the notification transport and prepares the
// signing keys. Close releases what it opened.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	tokens, err := identity.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL, nil)
	if err != nil {
		return nil, fmt.Errorf("access tokens: %w", err)
	}
	verifier, err := identity.NewCredentialVerifier(cfg.IdentitySecret, cfg.IdentityIssuer, nil)
	if err != nil {
		return nil, fmt.Errorf("identity verifier: %w", err)
	}

	notifier, err := newNotifier(cfg, logger)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		clock:      clock.System{},
		metrics:    m,
		notifier:   notifier,
		dispatcher: notify.NewDispatcher(notifier, cfg.NotifyTimeout, m, logger),
		tokens:     tokens,
		verifier:   verifier,
	}, nil
}

func newNotifier(cfg Config, logger *slog.Logger) (closableNotifier, error) {
	switch cfg.Notifier {
	case NotifierKafka:
		return notify.NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaNotificationsTopic), nil
	case NotifierAMQP:
		n, err := notify.DialAMQPNotifier(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, fmt.Errorf("amqp notifier: %w", err)
		}
		return n, nil
	default:
		return notify.NewLogNotifier(logger), nil
	}
}

func (c *CompositionRoot) fulfillmentUoWFactory() commands.FulfillmentUoWFactory {
	return FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderTransitioner() commands.OrderTransitioner {
	return commands.NewOrderTransitioner(c.fulfillmentUoWFactory(), c.dispatcher, c.clock, c.metrics, c.logger)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.fulfillmentUoWFactory(), c.dispatcher, c.clock, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderTransitioner())
}

func (c *CompositionRoot) CreateOverrideOrderStatusCommandHandler() commands.OverrideOrderStatusCommandHandler {
	return commands.NewOverrideOrderStatusCommandHandler(c.orderTransitioner())
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.orderTransitioner())
}

func (c *CompositionRoot) CreateRecordDeliveryCommandHandler() commands.RecordDeliveryCommandHandler {
	return commands.NewRecordDeliveryCommandHandler(c.orderTransitioner())
}

func (c *CompositionRoot) CreateAuthenticateIdentityCommandHandler() commands.AuthenticateIdentityCommandHandler {
	return commands.NewAuthenticateIdentityCommandHandler(
		c.accountUoWFactory(), c.verifier, c.tokens, c.clock, c.cfg.OpenCustomerSignup, c.logger,
	)
}

func (c *CompositionRoot) CreateAddApprovedEmailCommandHandler() commands.AddApprovedEmailCommandHandler {
	return commands.NewAddApprovedEmailCommandHandler(c.accountUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRemoveApprovedEmailCommandHandler() commands.RemoveApprovedEmailCommandHandler {
	return commands.NewRemoveApprovedEmailCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRemindUnshippedOrdersCommandHandler() commands.RemindUnshippedOrdersCommandHandler {
	return commands.NewRemindUnshippedOrdersCommandHandler(c.fulfillmentUoWFactory(), c.dispatcher, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB), services.NewDashboard(c.cfg.Location), c.clock,
	)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(productrepo.NewGormProductRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(productrepo.NewGormProductRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListRidersQueryHandler() queries.ListRidersQueryHandler {
	return queries.NewListRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListApprovedEmailsQueryHandler() queries.ListApprovedEmailsQueryHandler {
	return queries.NewListApprovedEmailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:           c.CreatePlaceOrderCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		OverrideOrderStatus:  c.CreateOverrideOrderStatusCommandHandler(),
		AssignRider:          c.CreateAssignRiderCommandHandler(),
		RecordDelivery:       c.CreateRecordDeliveryCommandHandler(),
		AuthenticateIdentity: c.CreateAuthenticateIdentityCommandHandler(),
		AddApprovedEmail:     c.CreateAddApprovedEmailCommandHandler(),
		RemoveApprovedEmail:  c.CreateRemoveApprovedEmailCommandHandler(),
		CreateProduct:        c.CreateCreateProductCommandHandler(),

		GetOrder:           c.CreateGetOrderQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		Dashboard:          c.CreateGetDashboardQueryHandler(),
		GetProduct:         c.CreateGetProductQueryHandler(),
		ListProducts:       c.CreateListProductsQueryHandler(),
		ListRiders:         c.CreateListRidersQueryHandler(),
		ListApprovedEmails: c.CreateListApprovedEmailsQueryHandler(),
	})
}

// CreateRouter builds the echo instance. openAPIJSON is served at /openapi.json.
func (c *CompositionRoot) CreateRouter(openAPIJSON []byte) *echo.Echo {
	return httpadapter.NewRouter(httpadapter.RouterConfig{
		Server:         c.CreateServer(),
		Tokens:         c.tokens,
		Users:          userrepo.NewGormUserRepository(c.gormDB),
		Observer:       c.metrics,
		Logger:         c.logger,
		MetricsHandler: c.metrics.Handler(),
		OpenAPIJSON:    openAPIJSON,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reminder := jobs.NewUnshippedOrdersReminderJob(
		c.CreateRemindUnshippedOrdersCommandHandler(), c.cfg.ReminderSchedule, c.cfg.ReminderAfter, c.logger,
	)
	return jobs.NewJobManager(reminder)
}

// Close drains pending notifications, then closes the transport.
func (c *CompositionRoot) Close(ctx context.Context) error {
	return errors.Join(c.dispatcher.Close(ctx), c.notifier.Close())
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
