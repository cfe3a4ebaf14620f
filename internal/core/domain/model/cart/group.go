package cart

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrGroupIsNotConstructed is returned when a Group was not created via
// NewGroup.
var ErrGroupIsNotConstructed = errors.New("Group must be created via NewGroup constructor")

// Group is the slice of a cart belonging to one restaurant. Each group
// becomes exactly one order at checkout; groups preserve the order in which
// their restaurant first appeared in the cart.
type Group struct { //nolint:recvcheck //using for validation
	restaurantID   string
	restaurantName string
	lines          []Line

	guard guard.ConstructorGuard
}

// NewGroup creates a group for one restaurant. The restaurant key must not
// be a sentinel and every line must belong to it.
func NewGroup(restaurantID, restaurantName string, lines []Line) (Group, error) {
	if IsSentinelRestaurantKey(restaurantID) {
		return Group{}, errs.NewValueIsInvalidError("restaurantID")
	}
	if len(lines) == 0 {
		return Group{}, errs.NewValueIsRequiredError("lines")
	}
	for _, line := range lines {
		if line.RestaurantID != restaurantID {
			return Group{}, errs.NewValueIsInvalidError("lines")
		}
	}

	return Group{
		restaurantID:   restaurantID,
		restaurantName: restaurantName,
		lines:          lines,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the group was created through NewGroup.
func (g Group) Validate() error {
	return g.guard.Validate(ErrGroupIsNotConstructed)
}

// RestaurantID returns the restaurant key all lines share.
func (g Group) RestaurantID() string {
	return g.restaurantID
}

// RestaurantName returns the restaurant display name.
func (g Group) RestaurantName() string {
	return g.restaurantName
}

// Lines returns the group's cart lines. Callers must not mutate the slice.
func (g Group) Lines() []Line {
	return g.lines
}

// ToDraft prices the group into a submittable order draft.
func (g Group) ToDraft() (order.Draft, error) {
	if err := g.Validate(); err != nil {
		return order.Draft{}, err
	}

	items := make([]order.Item, 0, len(g.lines))
	for _, line := range g.lines {
		item, err := order.NewItem(line.MenuItemID, line.ItemName, line.Quantity, line.UnitPrice)
		if err != nil {
			return order.Draft{}, err
		}
		items = append(items, item)
	}

	return order.NewDraft(g.restaurantID, g.restaurantName, items)
}
