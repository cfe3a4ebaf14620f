// Package queries contains read operations that project backend and local
// state into presentation-ready responses. Implements the query side of the
// CQRS architecture; queries never modify state.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/tracking"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrGetTrackingSnapshotQueryIsNotConstructed = errors.New(
	"GetTrackingSnapshotQuery must be created via NewGetTrackingSnapshotQuery constructor",
)

// GetTrackingSnapshotQuery retrieves the live tracking snapshot for one
// order: its status, the positions of everyone involved and the derived map
// route. The polling loop issues this query on every tick.
type GetTrackingSnapshotQuery struct { //nolint:recvcheck //using for validation
	orderID int64
	view    tracking.View

	guard guard.ConstructorGuard
}

// NewGetTrackingSnapshotQuery creates a query for one order's snapshot. The
// view selects the customer or the driver map projection.
func NewGetTrackingSnapshotQuery(orderID int64, view tracking.View) (GetTrackingSnapshotQuery, error) {
	if orderID <= 0 {
		return GetTrackingSnapshotQuery{}, errs.NewValueIsInvalidError("orderID")
	}
	if view != tracking.CustomerView && view != tracking.DriverView {
		return GetTrackingSnapshotQuery{}, errs.NewValueIsInvalidError("view")
	}

	return GetTrackingSnapshotQuery{
		orderID: orderID,
		view:    view,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingSnapshotQueryIsNotConstructed)
}

// OrderID returns the tracked order's identity.
func (q GetTrackingSnapshotQuery) OrderID() int64 {
	return q.orderID
}

// View returns the requested map projection.
func (q GetTrackingSnapshotQuery) View() tracking.View {
	return q.view
}
