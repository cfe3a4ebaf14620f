package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderTrack is the tracking view the order backend returns for one order:
// its current status and the delivery destination as geocoded coordinates.
type OrderTrack struct {
	OrderID          int64
	Status           order.Status
	StatusText       string
	CustomerLocation kernel.GeoPoint
}

// CreateOrderRequest carries everything the order backend needs to create
// one order from a priced draft.
type CreateOrderRequest struct {
	UserID          string
	Draft           order.Draft
	DeliveryAddress string
	ContactPhone    string
	Destination     kernel.GeoPoint
}

// OrderServiceClient is the contract of the remote order backend. The
// backend owns order identity and is the authority on status transitions;
// this client only transports requests and reconstructs aggregates from
// responses.
type OrderServiceClient interface {
	// CreateOrder submits one priced draft. The backend assigns the order
	// identity and the initial Placed status.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*order.Order, error)

	// GetOrder retrieves one order by its identity.
	// Returns ObjectNotFoundError when the backend has no such order.
	GetOrder(ctx context.Context, orderID int64) (*order.Order, error)

	// GetOrdersByUser retrieves all orders the user has placed, newest first.
	GetOrdersByUser(ctx context.Context, userID string) ([]*order.Order, error)

	// UpdateOrderStatus requests a status transition. The backend validates
	// the transition again and may reject it; a rejection is returned as an
	// error and the local aggregate must not be advanced.
	UpdateOrderStatus(ctx context.Context, orderID int64, next order.Status) (*order.Order, error)

	// TrackOrder retrieves the order's tracking view.
	TrackOrder(ctx context.Context, orderID int64) (OrderTrack, error)
}
