package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// PushDriverLocationCommandHandler samples the device position and reports
// it to the delivery backend. Sampling failures come back as
// LocationUnavailableError so the caller can tell the user; push failures
// come back as-is and are treated as best-effort telemetry by the polling
// loop.
type PushDriverLocationCommandHandler struct {
	sampler        ports.LocationSampler
	deliveryClient ports.DeliveryServiceClient
}

// NewPushDriverLocationCommandHandler creates a handler for location pushes.
func NewPushDriverLocationCommandHandler(
	sampler ports.LocationSampler, deliveryClient ports.DeliveryServiceClient,
) PushDriverLocationCommandHandler {
	return PushDriverLocationCommandHandler{
		sampler:        sampler,
		deliveryClient: deliveryClient,
	}
}

// Handle samples the position and pushes it upstream.
func (h *PushDriverLocationCommandHandler) Handle(ctx context.Context, cmd PushDriverLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	location, err := h.sampler.Sample(ctx)
	if err != nil {
		return err
	}

	return h.deliveryClient.PushLocation(ctx, cmd.DriverID(), location)
}
