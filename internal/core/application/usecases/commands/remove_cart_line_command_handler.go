package commands

import (
	"context"
)

// RemoveCartLineCommandHandler removes one line from the cart. Removing a
// line that is already gone is not an error.
type RemoveCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartLineCommandHandler creates a handler for cart removals.
func NewRemoveCartLineCommandHandler(uowFactory CartUoWFactory) RemoveCartLineCommandHandler {
	return RemoveCartLineCommandHandler{uowFactory: uowFactory}
}

// Handle removes the line from the user's cart.
func (h *RemoveCartLineCommandHandler) Handle(ctx context.Context, cmd RemoveCartLineCommand) error {
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

	if err := uow.CartRepository().RemoveLine(ctx, cmd.UserID(), cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
