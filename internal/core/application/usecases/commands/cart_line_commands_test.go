package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddCartLineCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	line := cartLine(t, "m1", 2, "10.00", "r1")
	cmd, err := commands.NewAddCartLineCommand("user7", line)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	cartRepo.On("UpsertLine", mock.Anything, "user7", line).Return(nil).Once()

	h := commands.NewAddCartLineCommandHandler(&MockCartUoWFactory{uow: &MockCartUoW{cartRepo: cartRepo}})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

func TestRemoveCartLineCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRemoveCartLineCommand("user7", "m1")
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	cartRepo.On("RemoveLine", mock.Anything, "user7", "m1").Return(nil).Once()

	h := commands.NewRemoveCartLineCommandHandler(&MockCartUoWFactory{uow: &MockCartUoW{cartRepo: cartRepo}})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

func TestUpdateCartQuantityCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateCartQuantityCommand("user7", "m1", 3)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	cartRepo.On("UpdateQuantity", mock.Anything, "user7", "m1", 3).Return(nil).Once()

	h := commands.NewUpdateCartQuantityCommandHandler(&MockCartUoWFactory{uow: &MockCartUoW{cartRepo: cartRepo}})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

func TestNewUpdateCartQuantityCommand_Invalid(t *testing.T) {
	t.Run("should_reject_zero_quantity", func(t *testing.T) {
		_, err := commands.NewUpdateCartQuantityCommand("user7", "m1", 0)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should_require_menu_item_id", func(t *testing.T) {
		_, err := commands.NewUpdateCartQuantityCommand("user7", "", 1)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
