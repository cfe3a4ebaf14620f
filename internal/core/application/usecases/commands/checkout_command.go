package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
)

// CheckoutCommand represents a request to submit the user's whole cart:
// one order per restaurant group, created strictly one after another.
// The delivery details apply to every order of the checkout.
//
// Example:
//
//	destination, _ := kernel.NewGeoPoint(51.5074, -0.1278)
//	cmd, err := NewCheckoutCommand("user7", "1 Main St", "+44 20 0000 0000", destination)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    // EmptyCartError or SequenceStepFailureError; retry resumes safely
//	    return err
//	}
//	fmt.Printf("created %d orders", len(created))
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	userID          string
	deliveryAddress string
	contactPhone    string
	destination     kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out the user's cart.
// The destination may be the unset sentinel when geocoding failed; the
// backend then tracks against the street address only.
func NewCheckoutCommand(
	userID, deliveryAddress, contactPhone string,
	destination kernel.GeoPoint,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setUserID(userID),
		checkoutCommand.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CheckoutCommand{}, err
	}

	checkoutCommand.contactPhone = contactPhone
	checkoutCommand.destination = destination
	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// UserID returns the checking-out customer's identifier.
func (c CheckoutCommand) UserID() string {
	return c.userID
}

// DeliveryAddress returns the destination street address.
func (c CheckoutCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// ContactPhone returns the customer's contact number.
func (c CheckoutCommand) ContactPhone() string {
	return c.contactPhone
}

// Destination returns the geocoded delivery coordinates.
func (c CheckoutCommand) Destination() kernel.GeoPoint {
	return c.destination
}

func (c *CheckoutCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}

func (c *CheckoutCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
