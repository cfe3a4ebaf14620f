package errs_test

import (
	"errors"
	"testing"

	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("contactPhone")

		assert.Equal(t, "contactPhone", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: contactPhone", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing field")
		err := errs.NewValueIsRequiredErrorWithCause("contactPhone", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: contactPhone (cause: missing field)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 120.0, -90.0, 90.0)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, "value is invalid: 120 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize_function_with_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", int64(42))

		assert.Equal(t, "object not found: 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", int64(42), cause)

		assert.Equal(t,
			"object not found: param is: orderId, ID is: 42 (cause: connection refused)",
			err.Error())
	})
}

func TestEmptyCartError(t *testing.T) {
	err := errs.NewEmptyCartError("user-7")

	assert.Equal(t, "user-7", err.UserID)
	assert.Equal(t, "cart has no valid restaurant groups: user is: user-7", err.Error())
	require.ErrorIs(t, err, errs.ErrEmptyCart)
}

func TestSequenceStepFailureError(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.NewSequenceStepFailureError(1, "rest-2", cause)

	assert.Equal(t, 1, err.Index)
	assert.Equal(t, "rest-2", err.RestaurantID)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t,
		"order sequence step failed: index is: 1, restaurant is: rest-2 (cause: connection reset)",
		err.Error())
	require.ErrorIs(t, err, errs.ErrSequenceStepFailed)

	// The backend failure stays reachable through the chain
	require.ErrorIs(t, err, cause)
}

func TestSequenceStepFailureError_WithoutCause(t *testing.T) {
	err := errs.NewSequenceStepFailureError(0, "rest-1", nil)

	require.ErrorIs(t, err, errs.ErrSequenceStepFailed)
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("PLACED", "DELIVERED")

	assert.Equal(t, "order status transition is not allowed: from is: PLACED, to is: DELIVERED", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestTrackingUnavailableError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewTrackingUnavailableError(18, nil)

		assert.Equal(t, "delivery tracking is unavailable: order is: 18", err.Error())
		require.ErrorIs(t, err, errs.ErrTrackingUnavailable)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("404")
		err := errs.NewTrackingUnavailableError(18, cause)

		assert.Equal(t, "delivery tracking is unavailable: order is: 18 (cause: 404)", err.Error())
		require.ErrorIs(t, err, errs.ErrTrackingUnavailable)
		require.ErrorIs(t, err, cause)
	})
}

func TestLocationUnavailableError(t *testing.T) {
	cause := errors.New("permission denied")
	err := errs.NewLocationUnavailableError(cause)

	assert.Equal(t, "device location is unavailable (cause: permission denied)", err.Error())
	require.ErrorIs(t, err, errs.ErrLocationUnavailable)
	require.ErrorIs(t, err, cause)
}
