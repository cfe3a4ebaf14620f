package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand(42, order.Confirmed)
	require.NoError(t, err)

	orderClient := new(MockOrderServiceClient)
	mock.InOrder(
		orderClient.On("GetOrder", ctx, int64(42)).Return(placedOrder(42, "r1"), nil).Once(),
		orderClient.On("UpdateOrderStatus", ctx, int64(42), order.Confirmed).
			Return(placedOrder(42, "r1"), nil).Once(),
	)

	h := commands.NewUpdateOrderStatusCommandHandler(orderClient, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderClient.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_IllegalTransitionIsNeverSent(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand(42, order.Delivered)
	require.NoError(t, err)

	// Given an order still in Placed
	orderClient := new(MockOrderServiceClient)
	orderClient.On("GetOrder", ctx, int64(42)).Return(placedOrder(42, "r1"), nil).Once()

	// When requesting Placed -> Delivered
	h := commands.NewUpdateOrderStatusCommandHandler(orderClient, discardLogger())
	_, err = h.Handle(ctx, cmd)

	// Then the update is rejected locally and no request goes out
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	orderClient.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_BackendRejectionIsSurfaced(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand(42, order.Confirmed)
	require.NoError(t, err)

	rejection := errors.New("status update rejected")
	orderClient := new(MockOrderServiceClient)
	orderClient.On("GetOrder", ctx, int64(42)).Return(placedOrder(42, "r1"), nil).Once()
	orderClient.On("UpdateOrderStatus", ctx, int64(42), order.Confirmed).Return(nil, rejection).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(orderClient, discardLogger())
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, rejection)
}

func TestNewUpdateOrderStatusCommand_Invalid(t *testing.T) {
	t.Run("should_reject_non_positive_order_id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(0, order.Confirmed)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should_reject_unknown_status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(42, order.Unknown)
		assert.Error(t, err)
	})
}
