package commands

import (
	"context"
)

// UpdateCartQuantityCommandHandler changes the quantity of an existing cart
// line.
type UpdateCartQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartQuantityCommandHandler creates a handler for quantity changes.
func NewUpdateCartQuantityCommandHandler(uowFactory CartUoWFactory) UpdateCartQuantityCommandHandler {
	return UpdateCartQuantityCommandHandler{uowFactory: uowFactory}
}

// Handle updates the line quantity. Returns ObjectNotFoundError when the
// line does not exist.
func (h *UpdateCartQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateCartQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CartRepository().UpdateQuantity(ctx, cmd.UserID(), cmd.MenuItemID(), cmd.Quantity()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
