// Package checkpointrepo provides persistence for the checkout checkpoint
// ledger. Each row records one successfully created order of a
// multi-restaurant checkout so an interrupted run can resume without
// re-submitting.
package checkpointrepo

import (
	"time"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CheckpointDTO represents the database structure for one ledger entry.
type CheckpointDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       string    `gorm:"index"`
	RestaurantID string
	OrderID      int64
	CreatedAt    time.Time
}

// TableName specifies the database table name for ledger entries.
func (CheckpointDTO) TableName() string {
	return "checkout_checkpoints"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry cart.CheckpointEntry) CheckpointDTO {
	return CheckpointDTO{
		ID:           entry.ID.Bytes(),
		UserID:       entry.UserID,
		RestaurantID: entry.RestaurantID,
		OrderID:      entry.OrderID,
		CreatedAt:    entry.CreatedAt,
	}
}

// toDomain converts a database DTO back to a ledger entry.
func toDomain(dto CheckpointDTO) (cart.CheckpointEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return cart.CheckpointEntry{}, err
	}

	return cart.CheckpointEntry{
		ID:           id,
		UserID:       dto.UserID,
		RestaurantID: dto.RestaurantID,
		OrderID:      dto.OrderID,
		CreatedAt:    dto.CreatedAt,
	}, nil
}
