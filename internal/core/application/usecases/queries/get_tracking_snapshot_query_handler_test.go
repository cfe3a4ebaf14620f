package queries_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/tracking"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func TestGetTrackingSnapshotQueryHandler_Handle_MergesBothBackends(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetTrackingSnapshotQuery(42, tracking.CustomerView)
	require.NoError(t, err)

	customer := geoPoint(t, 51.5155, -0.0922)
	driver := geoPoint(t, 51.5074, -0.1278)

	orderClient := new(MockOrderServiceClient)
	orderClient.On("TrackOrder", ctx, int64(42)).Return(ports.OrderTrack{
		OrderID:          42,
		Status:           order.OutForDelivery,
		CustomerLocation: customer,
	}, nil).Once()

	deliveryClient := new(MockDeliveryServiceClient)
	deliveryClient.On("FetchTracking", ctx, int64(42)).Return(tracking.Delivery{
		OrderID:        42,
		DriverID:       "driver16",
		DriverLocation: driver,
	}, nil).Once()

	h := queries.NewGetTrackingSnapshotQueryHandler(orderClient, deliveryClient, discardLogger())
	snapshot, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.False(t, snapshot.AwaitingAssignment)
	assert.Equal(t, order.OutForDelivery, snapshot.Status)
	assert.Equal(t, "driver16", snapshot.DriverID)
	assert.InDelta(t, 2.62, snapshot.DistanceKm, 0.05)
	require.Len(t, snapshot.RoutePoints, 2)
}

func TestGetTrackingSnapshotQueryHandler_Handle_AbsorbsDeliveryFetchFailure(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetTrackingSnapshotQuery(42, tracking.CustomerView)
	require.NoError(t, err)

	customer := geoPoint(t, 51.5155, -0.0922)

	orderClient := new(MockOrderServiceClient)
	orderClient.On("TrackOrder", ctx, int64(42)).Return(ports.OrderTrack{
		OrderID:          42,
		Status:           order.Confirmed,
		CustomerLocation: customer,
	}, nil).Once()

	// Given the delivery backend has nothing for the order yet
	deliveryClient := new(MockDeliveryServiceClient)
	deliveryClient.On("FetchTracking", ctx, int64(42)).
		Return(tracking.Delivery{}, errs.NewTrackingUnavailableError(42, errors.New("not found"))).Once()

	// When
	h := queries.NewGetTrackingSnapshotQueryHandler(orderClient, deliveryClient, discardLogger())
	snapshot, err := h.Handle(ctx, query)

	// Then the query degrades instead of failing
	require.NoError(t, err)
	assert.True(t, snapshot.AwaitingAssignment)
	assert.Empty(t, snapshot.RoutePoints)
	assert.Equal(t, customer, snapshot.CustomerLocation)
}

func TestGetTrackingSnapshotQueryHandler_Handle_OrderBackendFailureIsAnError(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetTrackingSnapshotQuery(42, tracking.CustomerView)
	require.NoError(t, err)

	backendErr := errors.New("connection refused")
	orderClient := new(MockOrderServiceClient)
	orderClient.On("TrackOrder", ctx, int64(42)).Return(ports.OrderTrack{}, backendErr).Once()

	h := queries.NewGetTrackingSnapshotQueryHandler(orderClient, new(MockDeliveryServiceClient), discardLogger())
	_, err = h.Handle(ctx, query)

	assert.ErrorIs(t, err, backendErr)
}

func TestNewGetTrackingSnapshotQuery_Invalid(t *testing.T) {
	t.Run("should_reject_non_positive_order_id", func(t *testing.T) {
		_, err := queries.NewGetTrackingSnapshotQuery(0, tracking.CustomerView)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should_reject_unknown_view", func(t *testing.T) {
		_, err := queries.NewGetTrackingSnapshotQuery(42, tracking.View(0))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
