package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrRemoveCartLineCommandIsNotConstructed = errors.New(
	"RemoveCartLineCommand must be created via NewRemoveCartLineCommand constructor",
)

// RemoveCartLineCommand represents removing one menu item from the cart.
type RemoveCartLineCommand struct { //nolint:recvcheck //using for validation
	userID     string
	menuItemID string

	guard guard.ConstructorGuard
}

// NewRemoveCartLineCommand creates a command to remove one cart line.
func NewRemoveCartLineCommand(userID, menuItemID string) (RemoveCartLineCommand, error) {
	if userID == "" {
		return RemoveCartLineCommand{}, errs.NewValueIsRequiredError("userID")
	}
	if menuItemID == "" {
		return RemoveCartLineCommand{}, errs.NewValueIsRequiredError("menuItemID")
	}

	return RemoveCartLineCommand{
		userID:     userID,
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartLineCommandIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (c RemoveCartLineCommand) UserID() string {
	return c.userID
}

// MenuItemID returns the menu item to remove.
func (c RemoveCartLineCommand) MenuItemID() string {
	return c.menuItemID
}
