package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutCommand(t *testing.T) {
	t.Run("should_create_valid_command", func(t *testing.T) {
		// Given
		destination, err := kernel.NewGeoPoint(51.5074, -0.1278)
		require.NoError(t, err)

		// When
		cmd, err := commands.NewCheckoutCommand("user7", "1 Main St", "+44 20 0000 0000", destination)

		// Then
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "user7", cmd.UserID())
		assert.Equal(t, "1 Main St", cmd.DeliveryAddress())
	})

	t.Run("should_accept_unset_destination", func(t *testing.T) {
		// When
		cmd, err := commands.NewCheckoutCommand("user7", "1 Main St", "", kernel.GeoPoint{})

		// Then
		require.NoError(t, err)
		assert.False(t, cmd.Destination().IsValid())
	})

	t.Run("should_require_user_id", func(t *testing.T) {
		// When
		_, err := commands.NewCheckoutCommand("", "1 Main St", "", kernel.GeoPoint{})

		// Then
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should_require_delivery_address", func(t *testing.T) {
		// When
		_, err := commands.NewCheckoutCommand("user7", "", "", kernel.GeoPoint{})

		// Then
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should_fail_validation_for_zero_value", func(t *testing.T) {
		// Given
		var cmd commands.CheckoutCommand

		// Then
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCheckoutCommandIsNotConstructed)
	})
}
