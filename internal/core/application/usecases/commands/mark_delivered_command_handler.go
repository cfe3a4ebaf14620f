package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/ports"
)

// MarkDeliveredCommandHandler completes the driver's current delivery via
// the delivery backend, which flips the order to its terminal Delivered
// status and stops customer-side tracking.
type MarkDeliveredCommandHandler struct {
	deliveryClient ports.DeliveryServiceClient
	logger         *slog.Logger
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
func NewMarkDeliveredCommandHandler(
	deliveryClient ports.DeliveryServiceClient, logger *slog.Logger,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		deliveryClient: deliveryClient,
		logger:         logger.With("component", "mark_delivered"),
	}
}

// Handle completes the delivery.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.deliveryClient.MarkDelivered(ctx, cmd.DriverID()); err != nil {
		return err
	}

	h.logger.Info("delivery completed", "driver_id", cmd.DriverID())
	return nil
}
