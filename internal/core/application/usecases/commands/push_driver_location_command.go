package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrPushDriverLocationCommandIsNotConstructed = errors.New(
	"PushDriverLocationCommand must be created via NewPushDriverLocationCommand constructor",
)

// PushDriverLocationCommand represents a request to sample the driver's
// current position and report it to the delivery backend.
type PushDriverLocationCommand struct { //nolint:recvcheck //using for validation
	driverID string

	guard guard.ConstructorGuard
}

// NewPushDriverLocationCommand creates a command for one location push.
func NewPushDriverLocationCommand(driverID string) (PushDriverLocationCommand, error) {
	if driverID == "" {
		return PushDriverLocationCommand{}, errs.NewValueIsRequiredError("driverID")
	}

	return PushDriverLocationCommand{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PushDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrPushDriverLocationCommandIsNotConstructed)
}

// DriverID returns the reporting driver's identifier.
func (c PushDriverLocationCommand) DriverID() string {
	return c.driverID
}
