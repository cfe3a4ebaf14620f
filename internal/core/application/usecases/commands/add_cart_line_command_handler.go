package commands

import (
	"context"
)

// AddCartLineCommandHandler persists a new cart line.
type AddCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartLineCommandHandler creates a handler for cart additions.
func NewAddCartLineCommandHandler(uowFactory CartUoWFactory) AddCartLineCommandHandler {
	return AddCartLineCommandHandler{uowFactory: uowFactory}
}

// Handle upserts the line into the user's cart.
func (h *AddCartLineCommandHandler) Handle(ctx context.Context, cmd AddCartLineCommand) error {
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

	if err := uow.CartRepository().UpsertLine(ctx, cmd.UserID(), cmd.Line()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
