// Package orderclient provides the HTTP client for the order backend and
// the mapping between its JSON wire format and the domain model. Currency
// travels as JSON numbers with two decimal places; coordinates with six.
package orderclient

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/shopspring/decimal"
)

// OrderItemDTO is one order line on the wire.
type OrderItemDTO struct {
	MenuItemID string  `json:"menuItemId"`
	ItemName   string  `json:"itemName"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// CreateOrderRequestDTO is the creation payload. The backend assigns the
// identity and the initial status.
type CreateOrderRequestDTO struct {
	UserID          string         `json:"userId"`
	RestaurantID    string         `json:"restaurantId"`
	RestaurantName  string         `json:"restaurantName"`
	Items           []OrderItemDTO `json:"items"`
	Subtotal        float64        `json:"subtotal"`
	Tax             float64        `json:"tax"`
	DeliveryFee     float64        `json:"deliveryFee"`
	TotalAmount     float64        `json:"totalAmount"`
	DeliveryAddress string         `json:"deliveryAddress"`
	ContactPhone    string         `json:"contactPhone"`
	Latitude        float64        `json:"latitude"`
	Longitude       float64        `json:"longitude"`
}

// OrderDTO is an order as the backend returns it.
type OrderDTO struct {
	ID              int64          `json:"id"`
	UserID          string         `json:"userId"`
	RestaurantID    string         `json:"restaurantId"`
	Status          string         `json:"status"`
	Items           []OrderItemDTO `json:"items"`
	Subtotal        float64        `json:"subtotal"`
	Tax             float64        `json:"tax"`
	DeliveryFee     float64        `json:"deliveryFee"`
	TotalAmount     float64        `json:"totalAmount"`
	DeliveryAddress string         `json:"deliveryAddress"`
	ContactPhone    string         `json:"contactPhone"`
	Latitude        float64        `json:"latitude"`
	Longitude       float64        `json:"longitude"`
	OrderDate       time.Time      `json:"orderDate"`
	LastUpdated     time.Time      `json:"lastUpdated"`
}

// UpdateStatusRequestDTO is the status transition payload.
type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

// TrackOrderDTO is the tracking view of one order.
type TrackOrderDTO struct {
	OrderID    int64   `json:"orderId"`
	Status     string  `json:"status"`
	StatusText string  `json:"statusText"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// fromRequest converts a creation request to its wire representation.
func fromRequest(req ports.CreateOrderRequest) CreateOrderRequestDTO {
	items := make([]OrderItemDTO, 0, len(req.Draft.Items()))
	for _, item := range req.Draft.Items() {
		items = append(items, OrderItemDTO{
			MenuItemID: item.MenuItemID,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  money(item.UnitPrice),
			TotalPrice: money(item.TotalPrice),
		})
	}

	return CreateOrderRequestDTO{
		UserID:          req.UserID,
		RestaurantID:    req.Draft.RestaurantID(),
		RestaurantName:  req.Draft.RestaurantName(),
		Items:           items,
		Subtotal:        money(req.Draft.Subtotal()),
		Tax:             money(req.Draft.Tax()),
		DeliveryFee:     money(req.Draft.DeliveryFee()),
		TotalAmount:     money(req.Draft.TotalAmount()),
		DeliveryAddress: req.DeliveryAddress,
		ContactPhone:    req.ContactPhone,
		Latitude:        req.Destination.Latitude(),
		Longitude:       req.Destination.Longitude(),
	}
}

// toDomain reconstructs the order aggregate from its wire representation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.NewItem(
			itemDTO.MenuItemID,
			itemDTO.ItemName,
			itemDTO.Quantity,
			decimal.NewFromFloat(itemDTO.UnitPrice).Round(2),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	destination := kernel.GeoPoint{}
	if dto.Latitude != 0 || dto.Longitude != 0 {
		destination, err = kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		dto.ID,
		dto.UserID,
		dto.RestaurantID,
		status,
		items,
		decimal.NewFromFloat(dto.Subtotal).Round(2),
		decimal.NewFromFloat(dto.Tax).Round(2),
		decimal.NewFromFloat(dto.DeliveryFee).Round(2),
		decimal.NewFromFloat(dto.TotalAmount).Round(2),
		dto.DeliveryAddress,
		dto.ContactPhone,
		destination,
		dto.OrderDate,
		dto.LastUpdated,
	)
}

// toTrack converts the tracking view to its port representation.
func toTrack(dto TrackOrderDTO) (ports.OrderTrack, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return ports.OrderTrack{}, err
	}

	customer := kernel.GeoPoint{}
	if dto.Latitude != 0 || dto.Longitude != 0 {
		customer, err = kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
		if err != nil {
			return ports.OrderTrack{}, err
		}
	}

	statusText := dto.StatusText
	if statusText == "" {
		statusText = status.String()
	}

	return ports.OrderTrack{
		OrderID:          dto.OrderID,
		Status:           status,
		StatusText:       statusText,
		CustomerLocation: customer,
	}, nil
}
