package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler validates a status transition against the
// local transition table before asking the order backend to perform it. The
// backend runs the same table and stays authoritative; the local check only
// keeps obviously illegal requests off the wire. An illegal transition is
// logged and returned as an InvalidTransitionError without any request being
// sent.
type UpdateOrderStatusCommandHandler struct {
	orderClient ports.OrderServiceClient
	logger      *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	orderClient ports.OrderServiceClient, logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		orderClient: orderClient,
		logger:      logger.With("component", "order_status"),
	}
}

// Handle processes the status update and returns the order as the backend
// sees it after the transition. A backend rejection is returned unchanged;
// the caller must not advance any local copy when an error is returned.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.orderClient.GetOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !order.ValidateTransition(current.Status(), cmd.Next()) {
		transitionErr := errs.NewInvalidTransitionError(current.Status().String(), cmd.Next().String())
		h.logger.Error("rejected status update locally",
			"order_id", cmd.OrderID(), "error", transitionErr)
		return nil, transitionErr
	}

	updated, err := h.orderClient.UpdateOrderStatus(ctx, cmd.OrderID(), cmd.Next())
	if err != nil {
		h.logger.Warn("backend rejected status update",
			"order_id", cmd.OrderID(), "next", cmd.Next().String(), "error", err)
		return nil, err
	}

	return updated, nil
}
