package cartrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetLines retrieves the user's cart lines in insertion order.
func (r *GormCartRepository) GetLines(ctx context.Context, userID string) ([]cart.Line, error) {
	var dtos []CartLineDTO
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		line, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// UpsertLine inserts the line or replaces the stored quantity and price of
// an existing line for the same menu item.
func (r *GormCartRepository) UpsertLine(ctx context.Context, userID string, line cart.Line) error {
	dto := fromDomain(userID, line)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "menu_item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"item_name", "quantity", "unit_price", "restaurant_id", "restaurant_name", "image_url",
			}),
		}).
		Create(&dto).Error
}

// RemoveLine deletes the line for one menu item. Deleting an absent line is
// a no-op.
func (r *GormCartRepository) RemoveLine(ctx context.Context, userID, menuItemID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Delete(&CartLineDTO{}).Error
}

// UpdateQuantity changes the quantity of an existing line.
func (r *GormCartRepository) UpdateQuantity(ctx context.Context, userID, menuItemID string, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&CartLineDTO{}).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Update("quantity", quantity)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("cart line", menuItemID)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart line", menuItemID)
	}

	return nil
}

// Clear removes every line of the user's cart.
func (r *GormCartRepository) Clear(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&CartLineDTO{}).Error
}
