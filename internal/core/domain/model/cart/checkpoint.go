package cart

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// CheckpointEntry is one row of the checkout checkpoint ledger: a durable
// record that the order for one restaurant group has already been created.
// The ledger survives process restarts so an interrupted multi-restaurant
// checkout resumes after the last successful group instead of re-submitting
// it.
type CheckpointEntry struct {
	ID           kernel.UUID
	UserID       string
	RestaurantID string
	OrderID      int64
	CreatedAt    time.Time
}

// NewCheckpointEntry records a successfully created order for one
// restaurant group.
func NewCheckpointEntry(userID, restaurantID string, orderID int64) (CheckpointEntry, error) {
	if userID == "" {
		return CheckpointEntry{}, errs.NewValueIsRequiredError("userID")
	}
	if IsSentinelRestaurantKey(restaurantID) {
		return CheckpointEntry{}, errs.NewValueIsInvalidError("restaurantID")
	}
	if orderID <= 0 {
		return CheckpointEntry{}, errs.NewValueIsInvalidError("orderID")
	}

	return CheckpointEntry{
		ID:           kernel.NewUUID(),
		UserID:       userID,
		RestaurantID: restaurantID,
		OrderID:      orderID,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
