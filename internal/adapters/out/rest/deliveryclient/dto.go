package deliveryclient

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/tracking"
)

// DeliveryDTO is a delivery record on the wire. Zero coordinates mean the
// backend has no sample for that party yet.
type DeliveryDTO struct {
	OrderID          int64     `json:"orderId"`
	DriverID         string    `json:"driverId"`
	DriverLatitude   float64   `json:"driverLatitude"`
	DriverLongitude  float64   `json:"driverLongitude"`
	ShopLatitude     float64   `json:"shopLatitude"`
	ShopLongitude    float64   `json:"shopLongitude"`
	Status           string    `json:"status"`
	EstimatedArrival time.Time `json:"estimatedArrival"`
}

// UpdateLocationRequestDTO is the position report payload.
type UpdateLocationRequestDTO struct {
	DriverID  string  `json:"driverId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func pointFromWire(latitude, longitude float64) (kernel.GeoPoint, error) {
	if latitude == 0 && longitude == 0 {
		return kernel.GeoPoint{}, nil
	}
	return kernel.NewGeoPoint(latitude, longitude)
}

// toDomain converts a wire record to the domain delivery. An absent or
// unknown status is kept as unknown; the order backend is the authority on
// status anyway.
func toDomain(dto DeliveryDTO) (tracking.Delivery, error) {
	driverLocation, err := pointFromWire(dto.DriverLatitude, dto.DriverLongitude)
	if err != nil {
		return tracking.Delivery{}, err
	}

	shopLocation, err := pointFromWire(dto.ShopLatitude, dto.ShopLongitude)
	if err != nil {
		return tracking.Delivery{}, err
	}

	status := order.Unknown
	if dto.Status != "" {
		status, err = order.StatusFromString(dto.Status)
		if err != nil {
			return tracking.Delivery{}, err
		}
	}

	return tracking.Delivery{
		OrderID:          dto.OrderID,
		DriverID:         dto.DriverID,
		DriverLocation:   driverLocation,
		ShopLocation:     shopLocation,
		Status:           status,
		EstimatedArrival: dto.EstimatedArrival,
	}, nil
}
