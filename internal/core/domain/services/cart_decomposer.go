package services

import (
	"ordering/internal/core/domain/model/cart"
	"ordering/internal/pkg/errs"
)

// CartDecomposer is a domain service that splits a mixed-restaurant cart
// into per-restaurant groups ready for sequential checkout.
//
// Business rules:
//   - Lines are grouped by their restaurant key
//   - Groups keep the order in which each restaurant first appears in the
//     cart, so checkout submits orders in a stable, predictable sequence
//   - Lines whose restaurant key is a sentinel ("", "null", "undefined")
//     cannot be attributed and are dropped
//   - A cart with no attributable lines cannot be checked out
type CartDecomposer struct{}

// NewCartDecomposer creates a new CartDecomposer instance.
func NewCartDecomposer() CartDecomposer {
	return CartDecomposer{}
}

// Decompose groups the cart lines by restaurant in first-appearance order.
// Returns EmptyCartError when no line carries a real restaurant key.
func (d CartDecomposer) Decompose(userID string, lines []cart.Line) ([]cart.Group, error) {
	type bucket struct {
		restaurantName string
		lines          []cart.Line
	}

	order := make([]string, 0, len(lines))
	buckets := make(map[string]*bucket)

	for _, line := range lines {
		if cart.IsSentinelRestaurantKey(line.RestaurantID) {
			continue
		}

		b, ok := buckets[line.RestaurantID]
		if !ok {
			b = &bucket{restaurantName: line.RestaurantName}
			buckets[line.RestaurantID] = b
			order = append(order, line.RestaurantID)
		}
		if b.restaurantName == "" {
			b.restaurantName = line.RestaurantName
		}
		b.lines = append(b.lines, line)
	}

	if len(order) == 0 {
		return nil, errs.NewEmptyCartError(userID)
	}

	groups := make([]cart.Group, 0, len(order))
	for _, restaurantID := range order {
		b := buckets[restaurantID]
		group, err := cart.NewGroup(restaurantID, b.restaurantName, b.lines)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	return groups, nil
}
