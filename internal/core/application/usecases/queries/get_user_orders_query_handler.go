package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// GetUserOrdersQueryHandler retrieves a user's order history from the order
// backend and annotates each order with its legal next statuses.
type GetUserOrdersQueryHandler struct {
	orderClient ports.OrderServiceClient
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
func NewGetUserOrdersQueryHandler(orderClient ports.OrderServiceClient) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{orderClient: orderClient}
}

// Handle executes the query.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context, query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderClient.GetOrdersByUser(ctx, query.UserID())
	if err != nil {
		return nil, err
	}

	responses := make([]GetUserOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, GetUserOrdersQueryResponse{
			Order:       o,
			StatusText:  o.Status().String(),
			AllowedNext: order.AllowedNext(o.Status()),
		})
	}

	return responses, nil
}
