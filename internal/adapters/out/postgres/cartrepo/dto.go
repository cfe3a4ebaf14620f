// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. This package implements the repository pattern for the
// cart read model, handling the conversion between cart lines and their
// database representation.
package cartrepo

import (
	"ordering/internal/core/domain/model/cart"

	"github.com/shopspring/decimal"
)

// CartLineDTO represents the database structure for persisting cart lines.
// The surrogate key preserves insertion order, which decomposition relies on
// for its first-appearance group ordering.
type CartLineDTO struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	UserID         string          `gorm:"index;uniqueIndex:idx_cart_user_item"`
	MenuItemID     string          `gorm:"uniqueIndex:idx_cart_user_item"`
	ItemName       string
	Quantity       int
	UnitPrice      decimal.Decimal `gorm:"type:numeric(12,2)"`
	RestaurantID   string
	RestaurantName string
	ImageURL       string
}

// TableName specifies the database table name for cart lines.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

// fromDomain converts a cart line to its database representation.
func fromDomain(userID string, line cart.Line) CartLineDTO {
	return CartLineDTO{
		UserID:         userID,
		MenuItemID:     line.MenuItemID,
		ItemName:       line.ItemName,
		Quantity:       line.Quantity,
		UnitPrice:      line.UnitPrice,
		RestaurantID:   line.RestaurantID,
		RestaurantName: line.RestaurantName,
		ImageURL:       line.ImageURL,
	}
}

// toDomain converts a database DTO back to a cart line.
func toDomain(dto CartLineDTO) (cart.Line, error) {
	return cart.NewLine(
		dto.MenuItemID,
		dto.ItemName,
		dto.Quantity,
		dto.UnitPrice,
		dto.RestaurantID,
		dto.RestaurantName,
		dto.ImageURL,
	)
}
