package order

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrDraftIsNotConstructed is returned when a Draft was not created via
// NewDraft.
var ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")

// Pricing rules shared by every draft: 10% tax on the subtotal, rounded to
// two decimals, and a fixed delivery fee per restaurant order.
var (
	taxRate     = decimal.RequireFromString("0.10")
	deliveryFee = decimal.RequireFromString("5.00")
)

// Item is one priced line of a draft.
// TotalPrice is always Quantity x UnitPrice.
type Item struct {
	MenuItemID string
	ItemName   string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// NewItem creates a priced draft line. Quantity must be positive and the
// unit price non-negative.
func NewItem(menuItemID, itemName string, quantity int, unitPrice decimal.Decimal) (Item, error) {
	if menuItemID == "" {
		return Item{}, errs.NewValueIsRequiredError("menuItemID")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidError("unitPrice")
	}

	return Item{
		MenuItemID: menuItemID,
		ItemName:   itemName,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Draft is an unsubmitted, fully-priced order for a single restaurant,
// derived 1:1 from one cart group. It is immutable once constructed; the
// sequencer submits it verbatim to the order backend.
type Draft struct { //nolint:recvcheck //using for validation
	restaurantID   string
	restaurantName string
	items          []Item
	subtotal       decimal.Decimal
	tax            decimal.Decimal
	deliveryFee    decimal.Decimal
	totalAmount    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewDraft prices a draft for one restaurant:
//
//	subtotal    = sum of item totals
//	tax         = round2(subtotal x 0.10)
//	deliveryFee = 5.00
//	totalAmount = subtotal + tax + deliveryFee
//
// At least one item is required.
func NewDraft(restaurantID, restaurantName string, items []Item) (Draft, error) {
	if restaurantID == "" {
		return Draft{}, errs.NewValueIsRequiredError("restaurantID")
	}
	if len(items) == 0 {
		return Draft{}, errs.NewValueIsRequiredError("items")
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.TotalPrice)
	}
	tax := subtotal.Mul(taxRate).Round(2)

	return Draft{
		restaurantID:   restaurantID,
		restaurantName: restaurantName,
		items:          items,
		subtotal:       subtotal,
		tax:            tax,
		deliveryFee:    deliveryFee,
		totalAmount:    subtotal.Add(tax).Add(deliveryFee),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the draft was created through NewDraft.
func (d Draft) Validate() error {
	return d.guard.Validate(ErrDraftIsNotConstructed)
}

// RestaurantID returns the restaurant this draft will be submitted to.
func (d Draft) RestaurantID() string {
	return d.restaurantID
}

// RestaurantName returns the display name captured from the cart group.
func (d Draft) RestaurantName() string {
	return d.restaurantName
}

// Items returns the priced lines. Callers must not mutate the slice.
func (d Draft) Items() []Item {
	return d.items
}

// Subtotal returns the sum of item totals.
func (d Draft) Subtotal() decimal.Decimal {
	return d.subtotal
}

// Tax returns the rounded 10% tax.
func (d Draft) Tax() decimal.Decimal {
	return d.tax
}

// DeliveryFee returns the fixed per-order delivery fee.
func (d Draft) DeliveryFee() decimal.Decimal {
	return d.deliveryFee
}

// TotalAmount returns subtotal + tax + deliveryFee.
func (d Draft) TotalAmount() decimal.Decimal {
	return d.totalAmount
}
