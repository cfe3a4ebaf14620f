package commands

import (
	"errors"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrAddCartLineCommandIsNotConstructed = errors.New(
	"AddCartLineCommand must be created via NewAddCartLineCommand constructor",
)

// AddCartLineCommand represents adding a menu item to the user's cart.
type AddCartLineCommand struct { //nolint:recvcheck //using for validation
	userID string
	line   cart.Line

	guard guard.ConstructorGuard
}

// NewAddCartLineCommand creates a command to add one cart line.
func NewAddCartLineCommand(userID string, line cart.Line) (AddCartLineCommand, error) {
	if userID == "" {
		return AddCartLineCommand{}, errs.NewValueIsRequiredError("userID")
	}

	return AddCartLineCommand{
		userID: userID,
		line:   line,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartLineCommand) Validate() error {
	return c.guard.Validate(ErrAddCartLineCommandIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (c AddCartLineCommand) UserID() string {
	return c.userID
}

// Line returns the line to add.
func (c AddCartLineCommand) Line() cart.Line {
	return c.line
}
