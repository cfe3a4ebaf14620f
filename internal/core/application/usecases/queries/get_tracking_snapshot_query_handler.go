package queries

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/tracking"
	"ordering/internal/core/ports"
)

// GetTrackingSnapshotQueryHandler merges the order backend's tracking view
// with the delivery backend's record into one snapshot.
//
// A failed delivery fetch is absorbed into the awaiting-assignment snapshot
// rather than surfaced: the delivery backend answers not-found both when no
// driver has been matched yet and on transient faults, and the loop keeps
// polling either way. Only a failure to reach the order backend is a real
// error, because without it there is no status or destination to present.
type GetTrackingSnapshotQueryHandler struct {
	orderClient    ports.OrderServiceClient
	deliveryClient ports.DeliveryServiceClient
	logger         *slog.Logger
}

// NewGetTrackingSnapshotQueryHandler creates a handler for tracking
// snapshot queries.
func NewGetTrackingSnapshotQueryHandler(
	orderClient ports.OrderServiceClient,
	deliveryClient ports.DeliveryServiceClient,
	logger *slog.Logger,
) GetTrackingSnapshotQueryHandler {
	return GetTrackingSnapshotQueryHandler{
		orderClient:    orderClient,
		deliveryClient: deliveryClient,
		logger:         logger.With("component", "tracking_snapshot"),
	}
}

// Handle executes the query and returns the merged snapshot.
func (h GetTrackingSnapshotQueryHandler) Handle(
	ctx context.Context, query GetTrackingSnapshotQuery,
) (tracking.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return tracking.Snapshot{}, err
	}

	track, err := h.orderClient.TrackOrder(ctx, query.OrderID())
	if err != nil {
		return tracking.Snapshot{}, err
	}

	delivery, err := h.deliveryClient.FetchTracking(ctx, query.OrderID())
	if err != nil {
		h.logger.Info("delivery record unavailable, presenting awaiting assignment",
			"order_id", query.OrderID(), "error", err)
		return tracking.AwaitingAssignmentSnapshot(query.OrderID(), track.Status, track.CustomerLocation), nil
	}

	delivery.Status = track.Status
	return tracking.AssembleSnapshot(query.View(), delivery, track.CustomerLocation), nil
}
