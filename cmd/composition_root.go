package cmd

import (
	"log/slog"
	"strconv"

	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/location"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/cartrepo"
	"ordering/internal/adapters/out/rest/deliveryclient"
	"ordering/internal/adapters/out/rest/orderclient"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/tracking"
	"ordering/internal/core/domain/services"
	"ordering/internal/jobs"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger

	gormDB             *gorm.DB
	checkoutUoWFactory *postgres.GormCheckoutUoWFactory
	cartUoWFactory     *postgres.GormCartUoWFactory

	orderClient    *orderclient.Client
	deliveryClient *deliveryclient.Client
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:             config,
		logger:             logger,
		gormDB:             gormDB,
		checkoutUoWFactory: postgres.NewGormCheckoutUoWFactory(gormDB),
		cartUoWFactory:     postgres.NewGormCartUoWFactory(gormDB),
		orderClient:        orderclient.New(config.OrderServiceURL, nil),
		deliveryClient:     deliveryclient.New(config.DeliveryServiceURL, nil),
	}
}

func (c *CompositionRoot) CreateAddCartLineCommandHandler() commands.AddCartLineCommandHandler {
	return commands.NewAddCartLineCommandHandler(c.cartUoWFactory)
}

func (c *CompositionRoot) CreateRemoveCartLineCommandHandler() commands.RemoveCartLineCommandHandler {
	return commands.NewRemoveCartLineCommandHandler(c.cartUoWFactory)
}

func (c *CompositionRoot) CreateUpdateCartQuantityCommandHandler() commands.UpdateCartQuantityCommandHandler {
	return commands.NewUpdateCartQuantityCommandHandler(c.cartUoWFactory)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(
		c.checkoutUoWFactory, c.orderClient, services.NewCartDecomposer(), c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderClient, c.logger)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.deliveryClient, c.logger)
}

func (c *CompositionRoot) CreatePushDriverLocationCommandHandler() (commands.PushDriverLocationCommandHandler, error) {
	sampler, err := location.ParseFixedSampler(c.config.DriverLocation)
	if err != nil {
		return commands.PushDriverLocationCommandHandler{}, err
	}
	return commands.NewPushDriverLocationCommandHandler(sampler, c.deliveryClient), nil
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(
		cartrepo.NewGormCartRepository(c.gormDB), services.NewCartDecomposer(),
	)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.orderClient)
}

func (c *CompositionRoot) CreateGetTrackingSnapshotQueryHandler() queries.GetTrackingSnapshotQueryHandler {
	return queries.NewGetTrackingSnapshotQueryHandler(c.orderClient, c.deliveryClient, c.logger)
}

func (c *CompositionRoot) CreateGetDriverDeliveriesQueryHandler() queries.GetDriverDeliveriesQueryHandler {
	return queries.NewGetDriverDeliveriesQueryHandler(c.orderClient, c.deliveryClient, c.logger)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateAddCartLineCommandHandler(),
		c.CreateRemoveCartLineCommandHandler(),
		c.CreateUpdateCartQuantityCommandHandler(),
		c.CreateCheckoutCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateMarkDeliveredCommandHandler(),
		c.CreateGetCartQueryHandler(),
		c.CreateGetUserOrdersQueryHandler(),
		c.CreateGetTrackingSnapshotQueryHandler(),
		c.CreateGetDriverDeliveriesQueryHandler(),
	)
}

// CreateJobManager assembles the background jobs the configuration asks for.
// Either job may be absent; the manager tolerates nil entries.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	var trackingFetchJob *jobs.TrackingFetchJob
	if c.config.TrackOrderID != "" {
		orderID, err := parseOrderID(c.config.TrackOrderID)
		if err != nil {
			return nil, err
		}
		view := tracking.CustomerView
		if c.config.DriverID != "" {
			view = tracking.DriverView
		}
		trackingFetchJob = jobs.NewTrackingFetchJob(
			c.CreateGetTrackingSnapshotQueryHandler(), orderID, view, c.logger,
		)
	}

	var driverLocationJob *jobs.DriverLocationJob
	if c.config.DriverID != "" {
		pushHandler, err := c.CreatePushDriverLocationCommandHandler()
		if err != nil {
			return nil, err
		}
		driverLocationJob = jobs.NewDriverLocationJob(pushHandler, c.config.DriverID, c.logger)
	}

	return jobs.NewJobManager(trackingFetchJob, driverLocationJob), nil
}

func parseOrderID(value string) (int64, error) {
	orderID, err := strconv.ParseInt(value, 10, 64)
	if err != nil || orderID <= 0 {
		return 0, errs.NewValueIsInvalidError("track order id")
	}
	return orderID, nil
}
