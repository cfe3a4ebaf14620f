package cart

import (
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Restaurant keys that mark a line as unattributable. Older cart snapshots
// serialized missing keys as the literal strings "null" and "undefined";
// lines carrying them can never be submitted and are dropped on decompose.
const (
	sentinelEmpty     = ""
	sentinelNull      = "null"
	sentinelUndefined = "undefined"
)

// IsSentinelRestaurantKey reports whether the key is one of the values that
// mean "no restaurant attached".
func IsSentinelRestaurantKey(key string) bool {
	return key == sentinelEmpty || key == sentinelNull || key == sentinelUndefined
}

// Line is one cart entry: a menu item, its quantity, and the restaurant it
// belongs to. The restaurant fields travel with each line because the cart
// mixes items from several restaurants.
type Line struct {
	MenuItemID     string
	ItemName       string
	Quantity       int
	UnitPrice      decimal.Decimal
	RestaurantID   string
	RestaurantName string
	ImageURL       string
}

// NewLine creates a cart line. The restaurant key may be a sentinel value;
// such lines are kept in the cart but excluded from checkout.
func NewLine(
	menuItemID, itemName string,
	quantity int,
	unitPrice decimal.Decimal,
	restaurantID, restaurantName, imageURL string,
) (Line, error) {
	if menuItemID == "" {
		return Line{}, errs.NewValueIsRequiredError("menuItemID")
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if unitPrice.IsNegative() {
		return Line{}, errs.NewValueIsInvalidError("unitPrice")
	}

	return Line{
		MenuItemID:     menuItemID,
		ItemName:       itemName,
		Quantity:       quantity,
		UnitPrice:      unitPrice,
		RestaurantID:   restaurantID,
		RestaurantName: restaurantName,
		ImageURL:       imageURL,
	}, nil
}

// LineTotal returns Quantity x UnitPrice.
func (l Line) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
