package queries

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves every order a user has placed, for the order
// history screen.
type GetUserOrdersQuery struct { //nolint:recvcheck //using for validation
	userID string

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for one user's order history.
func NewGetUserOrdersQuery(userID string) (GetUserOrdersQuery, error) {
	if userID == "" {
		return GetUserOrdersQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetUserOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the querying user's identifier.
func (q GetUserOrdersQuery) UserID() string {
	return q.userID
}

// GetUserOrdersQueryResponse is one order of the history, projected for
// display. AllowedNext lists the statuses the order may legally move to
// from its current one, so the screen can offer exactly those actions.
type GetUserOrdersQueryResponse struct {
	Order       *order.Order
	StatusText  string
	AllowedNext []order.Status
}
