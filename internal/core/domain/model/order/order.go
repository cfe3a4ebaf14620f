package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the RestoreOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")

// Order is the aggregate for a created, server-identified order. The backend
// assigns the identity and the initial Placed status; this aggregate is
// reconstructed from collaborator responses and mutated only through
// validated status transitions. Orders are never deleted by the core.
type Order struct {
	id              int64
	userID          string
	restaurantID    string
	status          Status
	items           []Item
	subtotal        decimal.Decimal
	tax             decimal.Decimal
	deliveryFee     decimal.Decimal
	totalAmount     decimal.Decimal
	deliveryAddress string
	contactPhone    string
	destination     kernel.GeoPoint
	orderDate       time.Time
	lastUpdated     time.Time

	isConstructed bool
}

// RestoreOrder reconstructs the aggregate from data returned by the order
// backend. The identity must be positive and the status one of the six
// defined states.
func RestoreOrder(
	id int64,
	userID string,
	restaurantID string,
	status Status,
	items []Item,
	subtotal, tax, deliveryFee, totalAmount decimal.Decimal,
	deliveryAddress, contactPhone string,
	destination kernel.GeoPoint,
	orderDate, lastUpdated time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("order id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		userID:          userID,
		restaurantID:    restaurantID,
		status:          status,
		items:           items,
		subtotal:        subtotal,
		tax:             tax,
		deliveryFee:     deliveryFee,
		totalAmount:     totalAmount,
		deliveryAddress: deliveryAddress,
		contactPhone:    contactPhone,
		destination:     destination,
		orderDate:       orderDate,
		lastUpdated:     lastUpdated,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order was created through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the server-assigned order identity.
func (o *Order) ID() int64 {
	return o.id
}

// UserID returns the owning customer's identifier.
func (o *Order) UserID() string {
	return o.userID
}

// RestaurantID returns the fulfilling restaurant's identifier.
func (o *Order) RestaurantID() string {
	return o.restaurantID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the priced order lines.
func (o *Order) Items() []Item {
	return o.items
}

// Subtotal returns the sum of item totals.
func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

// Tax returns the tax amount.
func (o *Order) Tax() decimal.Decimal {
	return o.tax
}

// DeliveryFee returns the delivery fee.
func (o *Order) DeliveryFee() decimal.Decimal {
	return o.deliveryFee
}

// TotalAmount returns the grand total.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// DeliveryAddress returns the destination street address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// ContactPhone returns the customer's contact number.
func (o *Order) ContactPhone() string {
	return o.contactPhone
}

// Destination returns the delivery coordinates; may be the unset sentinel.
func (o *Order) Destination() kernel.GeoPoint {
	return o.destination
}

// OrderDate returns the creation timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// LastUpdated returns the last mutation timestamp.
func (o *Order) LastUpdated() time.Time {
	return o.lastUpdated
}

// CanEditFields reports whether full-field edits are allowed. The backend
// only accepts them while the order is still Placed.
func (o *Order) CanEditFields() bool {
	return o.status == Placed
}

// UpdateStatus performs a validated transition. On an illegal transition the
// aggregate is unchanged and an InvalidTransitionError is returned; the
// caller must not send the update upstream.
func (o *Order) UpdateStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.lastUpdated = time.Now()
	return nil
}
