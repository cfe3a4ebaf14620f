package tracking

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// View selects whose map the snapshot is assembled for. The customer view
// draws a driver-to-destination polyline; the driver view prepends the
// pickup shop.
type View int

const (
	// CustomerView is the tracking screen of the customer who placed the order.
	CustomerView View = iota + 1
	// DriverView is the driver's own delivery screen.
	DriverView
)

// Delivery is the record returned by the delivery backend for one order.
// Coordinates may be the unset sentinel when the backend has not received a
// location sample yet.
type Delivery struct {
	OrderID          int64
	DriverID         string
	DriverLocation   kernel.GeoPoint
	ShopLocation     kernel.GeoPoint
	Status           order.Status
	EstimatedArrival time.Time
}

// Snapshot is the presentation state of one order's delivery, rebuilt on
// every polling tick. AwaitingAssignment is a designed steady state, not an
// error: the delivery backend had nothing for the order yet, so the snapshot
// falls back to the customer's own location only.
type Snapshot struct {
	OrderID            int64
	Status             order.Status
	AwaitingAssignment bool
	Delivered          bool
	DriverID           string
	DriverLocation     kernel.GeoPoint
	ShopLocation       kernel.GeoPoint
	CustomerLocation   kernel.GeoPoint
	DistanceKm         float64
	EstimatedArrival   time.Time
	RoutePoints        []kernel.GeoPoint
}

// AwaitingAssignmentSnapshot builds the degraded snapshot used when the
// delivery fetch returned nothing. The route is empty and polling continues
// at the normal cadence.
func AwaitingAssignmentSnapshot(orderID int64, status order.Status, customer kernel.GeoPoint) Snapshot {
	return Snapshot{
		OrderID:            orderID,
		Status:             status,
		AwaitingAssignment: true,
		Delivered:          status == order.Delivered,
		CustomerLocation:   customer,
		RoutePoints:        []kernel.GeoPoint{},
	}
}

// AssembleSnapshot merges a populated delivery record with the customer's
// known location:
//
//   - DistanceKm is the driver-to-customer haversine distance, rounded to
//     two decimals, when both points are set
//   - RoutePoints is empty when the driver location is unset; otherwise a
//     driver-to-customer polyline for the customer view, or a
//     shop-to-driver-to-customer polyline for the driver view
//   - Delivered mirrors the terminal status so callers can stop polling
func AssembleSnapshot(view View, delivery Delivery, customer kernel.GeoPoint) Snapshot {
	snapshot := Snapshot{
		OrderID:          delivery.OrderID,
		Status:           delivery.Status,
		Delivered:        delivery.Status == order.Delivered,
		DriverID:         delivery.DriverID,
		DriverLocation:   delivery.DriverLocation,
		ShopLocation:     delivery.ShopLocation,
		CustomerLocation: customer,
		EstimatedArrival: delivery.EstimatedArrival,
		RoutePoints:      []kernel.GeoPoint{},
	}

	if !delivery.DriverLocation.IsValid() {
		return snapshot
	}

	if customer.IsValid() {
		snapshot.DistanceKm = kernel.Round2(delivery.DriverLocation.DistanceKm(customer))
	}

	switch view {
	case DriverView:
		if delivery.ShopLocation.IsValid() {
			snapshot.RoutePoints = append(snapshot.RoutePoints, delivery.ShopLocation)
		}
		snapshot.RoutePoints = append(snapshot.RoutePoints, delivery.DriverLocation)
		if customer.IsValid() {
			snapshot.RoutePoints = append(snapshot.RoutePoints, customer)
		}
	default:
		snapshot.RoutePoints = append(snapshot.RoutePoints, delivery.DriverLocation)
		if customer.IsValid() {
			snapshot.RoutePoints = append(snapshot.RoutePoints, customer)
		}
	}

	return snapshot
}
