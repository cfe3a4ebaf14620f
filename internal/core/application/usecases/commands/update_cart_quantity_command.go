package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrUpdateCartQuantityCommandIsNotConstructed = errors.New(
	"UpdateCartQuantityCommand must be created via NewUpdateCartQuantityCommand constructor",
)

// UpdateCartQuantityCommand represents changing the quantity of one cart
// line. Setting the quantity to zero is expressed as a removal, not an
// update.
type UpdateCartQuantityCommand struct { //nolint:recvcheck //using for validation
	userID     string
	menuItemID string
	quantity   int

	guard guard.ConstructorGuard
}

// NewUpdateCartQuantityCommand creates a command to change a line quantity.
func NewUpdateCartQuantityCommand(userID, menuItemID string, quantity int) (UpdateCartQuantityCommand, error) {
	if userID == "" {
		return UpdateCartQuantityCommand{}, errs.NewValueIsRequiredError("userID")
	}
	if menuItemID == "" {
		return UpdateCartQuantityCommand{}, errs.NewValueIsRequiredError("menuItemID")
	}
	if quantity <= 0 {
		return UpdateCartQuantityCommand{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	return UpdateCartQuantityCommand{
		userID:     userID,
		menuItemID: menuItemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartQuantityCommandIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (c UpdateCartQuantityCommand) UserID() string {
	return c.userID
}

// MenuItemID returns the menu item whose quantity changes.
func (c UpdateCartQuantityCommand) MenuItemID() string {
	return c.menuItemID
}

// Quantity returns the new quantity.
func (c UpdateCartQuantityCommand) Quantity() int {
	return c.quantity
}
