package ports

import (
	"context"

	"ordering/internal/core/domain/model/cart"
)

// CheckpointRepository defines the persistence contract for the checkout
// checkpoint ledger. The ledger is append-only during a checkout and cleared
// as a whole once every group of the cart has been submitted.
type CheckpointRepository interface {
	// GetEntries retrieves the user's ledger entries ordered by creation time.
	GetEntries(ctx context.Context, userID string) ([]cart.CheckpointEntry, error)

	// Append persists one new ledger entry.
	Append(ctx context.Context, entry cart.CheckpointEntry) error

	// Clear removes every ledger entry of the user.
	Clear(ctx context.Context, userID string) error
}
