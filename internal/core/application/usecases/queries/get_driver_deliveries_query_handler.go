package queries

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/tracking"
	"ordering/internal/core/ports"
)

// GetDriverDeliveriesQueryHandler retrieves a driver's active deliveries and
// assembles the driver-view snapshot for each. A failed destination lookup
// degrades that one delivery to a route without the customer point instead
// of failing the whole query.
type GetDriverDeliveriesQueryHandler struct {
	orderClient    ports.OrderServiceClient
	deliveryClient ports.DeliveryServiceClient
	logger         *slog.Logger
}

// NewGetDriverDeliveriesQueryHandler creates a handler for driver delivery
// queries.
func NewGetDriverDeliveriesQueryHandler(
	orderClient ports.OrderServiceClient,
	deliveryClient ports.DeliveryServiceClient,
	logger *slog.Logger,
) GetDriverDeliveriesQueryHandler {
	return GetDriverDeliveriesQueryHandler{
		orderClient:    orderClient,
		deliveryClient: deliveryClient,
		logger:         logger.With("component", "driver_deliveries"),
	}
}

// Handle executes the query.
func (h GetDriverDeliveriesQueryHandler) Handle(
	ctx context.Context, query GetDriverDeliveriesQuery,
) ([]GetDriverDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries, err := h.deliveryClient.FetchByDriver(ctx, query.DriverID())
	if err != nil {
		return nil, err
	}

	responses := make([]GetDriverDeliveriesQueryResponse, 0, len(deliveries))
	for _, delivery := range deliveries {
		customer := kernel.GeoPoint{}
		track, err := h.orderClient.TrackOrder(ctx, delivery.OrderID)
		if err != nil {
			h.logger.Warn("destination lookup failed",
				"order_id", delivery.OrderID, "error", err)
		} else {
			customer = track.CustomerLocation
			delivery.Status = track.Status
		}

		responses = append(responses, GetDriverDeliveriesQueryResponse{
			Delivery: delivery,
			Snapshot: tracking.AssembleSnapshot(tracking.DriverView, delivery, customer),
		})
	}

	return responses, nil
}
