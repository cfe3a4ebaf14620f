package checkpointrepo

import (
	"context"

	"ordering/internal/core/domain/model/cart"

	"gorm.io/gorm"
)

// GormCheckpointRepository implements CheckpointRepository using GORM.
type GormCheckpointRepository struct {
	db *gorm.DB
}

// NewGormCheckpointRepository creates a new GORM checkpoint repository.
func NewGormCheckpointRepository(db *gorm.DB) *GormCheckpointRepository {
	return &GormCheckpointRepository{db: db}
}

// GetEntries retrieves the user's ledger entries ordered by creation time.
func (r *GormCheckpointRepository) GetEntries(ctx context.Context, userID string) ([]cart.CheckpointEntry, error) {
	var dtos []CheckpointDTO
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]cart.CheckpointEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Append persists one new ledger entry.
func (r *GormCheckpointRepository) Append(ctx context.Context, entry cart.CheckpointEntry) error {
	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Clear removes every ledger entry of the user.
func (r *GormCheckpointRepository) Clear(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&CheckpointDTO{}).Error
}
