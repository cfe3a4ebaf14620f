package queries

import (
	"errors"

	"ordering/internal/core/domain/model/tracking"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrGetDriverDeliveriesQueryIsNotConstructed = errors.New(
	"GetDriverDeliveriesQuery must be created via NewGetDriverDeliveriesQuery constructor",
)

// GetDriverDeliveriesQuery retrieves the active deliveries assigned to one
// driver, for the driver's own delivery screen.
type GetDriverDeliveriesQuery struct { //nolint:recvcheck //using for validation
	driverID string

	guard guard.ConstructorGuard
}

// NewGetDriverDeliveriesQuery creates a query for one driver's deliveries.
func NewGetDriverDeliveriesQuery(driverID string) (GetDriverDeliveriesQuery, error) {
	if driverID == "" {
		return GetDriverDeliveriesQuery{}, errs.NewValueIsRequiredError("driverID")
	}

	return GetDriverDeliveriesQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverDeliveriesQueryIsNotConstructed)
}

// DriverID returns the driver's identifier.
func (q GetDriverDeliveriesQuery) DriverID() string {
	return q.driverID
}

// GetDriverDeliveriesQueryResponse is one active delivery with its map
// snapshot assembled for the driver view.
type GetDriverDeliveriesQueryResponse struct {
	Delivery tracking.Delivery
	Snapshot tracking.Snapshot
}
