package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a driver completing their current
// delivery.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	driverID string

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to complete a delivery.
func NewMarkDeliveredCommand(driverID string) (MarkDeliveredCommand, error) {
	if driverID == "" {
		return MarkDeliveredCommand{}, errs.NewValueIsRequiredError("driverID")
	}

	return MarkDeliveredCommand{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// DriverID returns the completing driver's identifier.
func (c MarkDeliveredCommand) DriverID() string {
	return c.driverID
}
