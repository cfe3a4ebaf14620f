package commands

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle status.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	next    order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to request a status
// transition. The target status must be one of the six defined states;
// whether the transition is legal from the order's current status is checked
// by the handler.
func NewUpdateOrderStatusCommand(orderID int64, next order.Status) (UpdateOrderStatusCommand, error) {
	if orderID <= 0 {
		return UpdateOrderStatusCommand{}, errs.NewValueIsInvalidError("orderID")
	}
	if err := next.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		next:    next,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c UpdateOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Next returns the requested target status.
func (c UpdateOrderStatusCommand) Next() order.Status {
	return c.next
}
