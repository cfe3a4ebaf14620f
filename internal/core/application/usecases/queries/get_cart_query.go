package queries

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the user's cart decomposed into per-restaurant
// groups with checkout pricing, the way the checkout review screen shows it.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	userID string

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for one user's cart.
func NewGetCartQuery(userID string) (GetCartQuery, error) {
	if userID == "" {
		return GetCartQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetCartQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (q GetCartQuery) UserID() string {
	return q.userID
}

// GetCartQueryResponseLine is one cart line of the response.
type GetCartQueryResponseLine struct {
	MenuItemID string
	ItemName   string
	Quantity   int
	UnitPrice  decimal.Decimal
	LineTotal  decimal.Decimal
	ImageURL   string
}

// GetCartQueryResponseGroup is one restaurant's slice of the cart with the
// totals its order would be priced at.
type GetCartQueryResponseGroup struct {
	RestaurantID   string
	RestaurantName string
	Lines          []GetCartQueryResponseLine
	Subtotal       decimal.Decimal
	Tax            decimal.Decimal
	DeliveryFee    decimal.Decimal
	TotalAmount    decimal.Decimal
}

// GetCartQueryResponse is the decomposed cart. Groups keep first-appearance
// order; an empty cart yields an empty group list, not an error.
type GetCartQueryResponse struct {
	Groups []GetCartQueryResponseGroup
}
