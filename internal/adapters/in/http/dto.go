package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/tracking"

	"github.com/shopspring/decimal"
)

// Error is the uniform error body every endpoint answers with.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddCartLineRequest is the payload for adding one item to the cart.
// RestaurantID may be absent for legacy catalog entries; such lines stay in
// the cart but never reach checkout.
type AddCartLineRequest struct {
	MenuItemID     string  `json:"menuItemId"`
	ItemName       string  `json:"itemName"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
	RestaurantID   string  `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	ImageURL       string  `json:"imageUrl"`
}

// UpdateCartQuantityRequest is the payload for changing a line's quantity.
type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartLine is one cart line in a review response.
type CartLine struct {
	MenuItemID string  `json:"menuItemId"`
	ItemName   string  `json:"itemName"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	LineTotal  float64 `json:"lineTotal"`
	ImageURL   string  `json:"imageUrl"`
}

// CartGroup is one restaurant's slice of the cart priced as its own order.
type CartGroup struct {
	RestaurantID   string     `json:"restaurantId"`
	RestaurantName string     `json:"restaurantName"`
	Lines          []CartLine `json:"lines"`
	Subtotal       float64    `json:"subtotal"`
	Tax            float64    `json:"tax"`
	DeliveryFee    float64    `json:"deliveryFee"`
	TotalAmount    float64    `json:"totalAmount"`
}

// Cart is the decomposed cart review.
type Cart struct {
	Groups []CartGroup `json:"groups"`
}

// CheckoutRequest is the payload for submitting the cart as orders. Zero
// coordinates mean the destination was not geocoded.
type CheckoutRequest struct {
	UserID          string  `json:"userId"`
	DeliveryAddress string  `json:"deliveryAddress"`
	ContactPhone    string  `json:"contactPhone"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

// Order is one created or listed order.
type Order struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"userId"`
	RestaurantID    string    `json:"restaurantId"`
	Status          string    `json:"status"`
	StatusText      string    `json:"statusText,omitempty"`
	AllowedNext     []string  `json:"allowedNext,omitempty"`
	Subtotal        float64   `json:"subtotal"`
	Tax             float64   `json:"tax"`
	DeliveryFee     float64   `json:"deliveryFee"`
	TotalAmount     float64   `json:"totalAmount"`
	DeliveryAddress string    `json:"deliveryAddress"`
	OrderDate       time.Time `json:"orderDate"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// UpdateOrderStatusRequest is the payload for a status transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// GeoPoint is a coordinate pair on the wire.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TrackingSnapshot is the merged map state for one order.
type TrackingSnapshot struct {
	OrderID            int64      `json:"orderId"`
	Status             string     `json:"status"`
	AwaitingAssignment bool       `json:"awaitingAssignment"`
	Delivered          bool       `json:"delivered"`
	DriverID           string     `json:"driverId,omitempty"`
	DriverLocation     *GeoPoint  `json:"driverLocation,omitempty"`
	ShopLocation       *GeoPoint  `json:"shopLocation,omitempty"`
	CustomerLocation   *GeoPoint  `json:"customerLocation,omitempty"`
	DistanceKm         float64    `json:"distanceKm"`
	EstimatedArrival   *time.Time `json:"estimatedArrival,omitempty"`
	RoutePoints        []GeoPoint `json:"routePoints"`
}

// DriverDelivery is one active delivery in the driver's work list.
type DriverDelivery struct {
	OrderID  int64            `json:"orderId"`
	Status   string           `json:"status"`
	Snapshot TrackingSnapshot `json:"snapshot"`
}

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func pointToWire(p kernel.GeoPoint) *GeoPoint {
	if !p.IsValid() {
		return nil
	}
	return &GeoPoint{Latitude: p.Latitude(), Longitude: p.Longitude()}
}

func cartFromResponse(resp queries.GetCartQueryResponse) Cart {
	groups := make([]CartGroup, 0, len(resp.Groups))
	for _, group := range resp.Groups {
		lines := make([]CartLine, 0, len(group.Lines))
		for _, line := range group.Lines {
			lines = append(lines, CartLine{
				MenuItemID: line.MenuItemID,
				ItemName:   line.ItemName,
				Quantity:   line.Quantity,
				UnitPrice:  money(line.UnitPrice),
				LineTotal:  money(line.LineTotal),
				ImageURL:   line.ImageURL,
			})
		}
		groups = append(groups, CartGroup{
			RestaurantID:   group.RestaurantID,
			RestaurantName: group.RestaurantName,
			Lines:          lines,
			Subtotal:       money(group.Subtotal),
			Tax:            money(group.Tax),
			DeliveryFee:    money(group.DeliveryFee),
			TotalAmount:    money(group.TotalAmount),
		})
	}
	return Cart{Groups: groups}
}

func orderToWire(o *order.Order) Order {
	return Order{
		ID:              o.ID(),
		UserID:          o.UserID(),
		RestaurantID:    o.RestaurantID(),
		Status:          o.Status().String(),
		Subtotal:        money(o.Subtotal()),
		Tax:             money(o.Tax()),
		DeliveryFee:     money(o.DeliveryFee()),
		TotalAmount:     money(o.TotalAmount()),
		DeliveryAddress: o.DeliveryAddress(),
		OrderDate:       o.OrderDate(),
		LastUpdated:     o.LastUpdated(),
	}
}

func snapshotToWire(snapshot tracking.Snapshot) TrackingSnapshot {
	routePoints := make([]GeoPoint, 0, len(snapshot.RoutePoints))
	for _, point := range snapshot.RoutePoints {
		routePoints = append(routePoints, GeoPoint{
			Latitude:  point.Latitude(),
			Longitude: point.Longitude(),
		})
	}

	wire := TrackingSnapshot{
		OrderID:            snapshot.OrderID,
		Status:             snapshot.Status.String(),
		AwaitingAssignment: snapshot.AwaitingAssignment,
		Delivered:          snapshot.Delivered,
		DriverID:           snapshot.DriverID,
		DriverLocation:     pointToWire(snapshot.DriverLocation),
		ShopLocation:       pointToWire(snapshot.ShopLocation),
		CustomerLocation:   pointToWire(snapshot.CustomerLocation),
		DistanceKm:         snapshot.DistanceKm,
		RoutePoints:        routePoints,
	}
	if !snapshot.EstimatedArrival.IsZero() {
		arrival := snapshot.EstimatedArrival
		wire.EstimatedArrival = &arrival
	}
	return wire
}
