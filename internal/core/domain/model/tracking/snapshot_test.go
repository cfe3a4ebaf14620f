package tracking

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func Test_AwaitingAssignmentSnapshot(t *testing.T) {
	t.Run("should_degrade_to_customer_location_only", func(t *testing.T) {
		// Given
		customer := point(t, 51.5155, -0.0922)

		// When
		snapshot := AwaitingAssignmentSnapshot(42, order.Placed, customer)

		// Then
		assert.True(t, snapshot.AwaitingAssignment)
		assert.False(t, snapshot.Delivered)
		assert.Empty(t, snapshot.RoutePoints)
		assert.Zero(t, snapshot.DistanceKm)
		assert.Equal(t, customer, snapshot.CustomerLocation)
	})
}

func Test_AssembleSnapshot(t *testing.T) {
	driver := Delivery{
		OrderID:        42,
		DriverID:       "driver16",
		DriverLocation: kernel.GeoPoint{},
		ShopLocation:   kernel.GeoPoint{},
		Status:         order.OutForDelivery,
	}

	t.Run("should_leave_route_empty_when_driver_location_is_unset", func(t *testing.T) {
		// When
		snapshot := AssembleSnapshot(CustomerView, driver, point(t, 51.5155, -0.0922))

		// Then
		assert.Empty(t, snapshot.RoutePoints)
		assert.Zero(t, snapshot.DistanceKm)
		assert.False(t, snapshot.AwaitingAssignment)
	})

	t.Run("should_build_two_point_route_for_customer_view", func(t *testing.T) {
		// Given
		delivery := driver
		delivery.DriverLocation = point(t, 51.5074, -0.1278)
		customer := point(t, 51.5155, -0.0922)

		// When
		snapshot := AssembleSnapshot(CustomerView, delivery, customer)

		// Then
		require.Len(t, snapshot.RoutePoints, 2)
		assert.Equal(t, delivery.DriverLocation, snapshot.RoutePoints[0])
		assert.Equal(t, customer, snapshot.RoutePoints[1])
		assert.InDelta(t, 2.62, snapshot.DistanceKm, 0.05)
	})

	t.Run("should_build_three_point_route_for_driver_view", func(t *testing.T) {
		// Given
		delivery := driver
		delivery.ShopLocation = point(t, 51.5007, -0.1246)
		delivery.DriverLocation = point(t, 51.5074, -0.1278)
		customer := point(t, 51.5155, -0.0922)

		// When
		snapshot := AssembleSnapshot(DriverView, delivery, customer)

		// Then shop, then driver, then customer
		require.Len(t, snapshot.RoutePoints, 3)
		assert.Equal(t, delivery.ShopLocation, snapshot.RoutePoints[0])
		assert.Equal(t, delivery.DriverLocation, snapshot.RoutePoints[1])
		assert.Equal(t, customer, snapshot.RoutePoints[2])
	})

	t.Run("should_skip_customer_point_when_customer_location_is_unset", func(t *testing.T) {
		// Given
		delivery := driver
		delivery.DriverLocation = point(t, 51.5074, -0.1278)

		// When
		snapshot := AssembleSnapshot(CustomerView, delivery, kernel.GeoPoint{})

		// Then
		require.Len(t, snapshot.RoutePoints, 1)
		assert.Zero(t, snapshot.DistanceKm)
	})

	t.Run("should_flag_terminal_state_when_delivered", func(t *testing.T) {
		// Given
		delivery := driver
		delivery.Status = order.Delivered
		delivery.DriverLocation = point(t, 51.5155, -0.0922)

		// When
		snapshot := AssembleSnapshot(CustomerView, delivery, point(t, 51.5155, -0.0922))

		// Then
		assert.True(t, snapshot.Delivered)
		assert.Zero(t, snapshot.DistanceKm)
	})
}
