// Package ports defines the contracts between the core and the outside
// world: local persistence of the cart and checkpoint ledger, and the remote
// order and delivery backends. These interfaces enable dependency inversion
// and testability.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/cart"
)

// CartRepository defines the persistence contract for a customer's cart
// lines. The cart is client-local state; it never round-trips through the
// order backend.
type CartRepository interface {
	// GetLines retrieves every line of the user's cart in insertion order.
	GetLines(ctx context.Context, userID string) ([]cart.Line, error)

	// UpsertLine adds a line or, if a line for the same menu item already
	// exists, replaces its quantity and price.
	UpsertLine(ctx context.Context, userID string, line cart.Line) error

	// RemoveLine deletes the line for one menu item. Removing a line that
	// does not exist is not an error.
	RemoveLine(ctx context.Context, userID, menuItemID string) error

	// UpdateQuantity changes the quantity of an existing line.
	// Returns ObjectNotFoundError when the line does not exist.
	UpdateQuantity(ctx context.Context, userID, menuItemID string, quantity int) error

	// Clear removes every line of the user's cart.
	Clear(ctx context.Context, userID string) error
}
