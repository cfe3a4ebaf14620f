package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/tracking"
)

// DeliveryServiceClient is the contract of the remote delivery backend that
// matches drivers to orders and relays their positions.
type DeliveryServiceClient interface {
	// FetchTracking retrieves the delivery record for one order.
	// Returns TrackingUnavailableError when the backend has nothing for the
	// order yet; callers map that to the awaiting-assignment state instead
	// of treating it as a failure.
	FetchTracking(ctx context.Context, orderID int64) (tracking.Delivery, error)

	// FetchByDriver retrieves the active deliveries assigned to a driver.
	FetchByDriver(ctx context.Context, driverID string) ([]tracking.Delivery, error)

	// PushLocation reports the driver's current position. Best-effort
	// telemetry; callers log and swallow failures.
	PushLocation(ctx context.Context, driverID string, location kernel.GeoPoint) error

	// MarkDelivered completes the driver's current delivery.
	MarkDelivered(ctx context.Context, driverID string) error
}

// LocationSampler samples the current device position for the driver role.
type LocationSampler interface {
	// Sample returns the current position.
	// Returns LocationUnavailableError when sampling fails, for example on
	// denied permission or missing signal.
	Sample(ctx context.Context) (kernel.GeoPoint, error)
}
