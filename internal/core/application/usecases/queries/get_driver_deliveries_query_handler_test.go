package queries_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/tracking"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDriverDeliveriesQueryHandler_Handle_AssemblesDriverRoutes(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetDriverDeliveriesQuery("driver16")
	require.NoError(t, err)

	shop := geoPoint(t, 51.5033, -0.1195)
	driver := geoPoint(t, 51.5074, -0.1278)
	customer := geoPoint(t, 51.5155, -0.0922)

	deliveryClient := new(MockDeliveryServiceClient)
	deliveryClient.On("FetchByDriver", ctx, "driver16").Return([]tracking.Delivery{
		{OrderID: 42, DriverID: "driver16", DriverLocation: driver, ShopLocation: shop},
	}, nil).Once()

	orderClient := new(MockOrderServiceClient)
	orderClient.On("TrackOrder", ctx, int64(42)).Return(ports.OrderTrack{
		OrderID:          42,
		Status:           order.OutForDelivery,
		CustomerLocation: customer,
	}, nil).Once()

	h := queries.NewGetDriverDeliveriesQueryHandler(orderClient, deliveryClient, discardLogger())
	responses, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, responses, 1)

	// The order backend is authoritative on status
	assert.Equal(t, order.OutForDelivery, responses[0].Delivery.Status)

	// Driver view routes shop, driver, customer in that order
	snapshot := responses[0].Snapshot
	require.Len(t, snapshot.RoutePoints, 3)
	assert.True(t, snapshot.RoutePoints[0].IsEqual(shop))
	assert.True(t, snapshot.RoutePoints[1].IsEqual(driver))
	assert.True(t, snapshot.RoutePoints[2].IsEqual(customer))

	deliveryClient.AssertExpectations(t)
	orderClient.AssertExpectations(t)
}

func TestGetDriverDeliveriesQueryHandler_Handle_DegradesSingleDeliveryOnTrackFailure(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetDriverDeliveriesQuery("driver16")
	require.NoError(t, err)

	driver := geoPoint(t, 51.5074, -0.1278)
	customer := geoPoint(t, 51.5155, -0.0922)

	deliveryClient := new(MockDeliveryServiceClient)
	deliveryClient.On("FetchByDriver", ctx, "driver16").Return([]tracking.Delivery{
		{OrderID: 42, DriverID: "driver16", DriverLocation: driver, Status: order.Preparing},
		{OrderID: 43, DriverID: "driver16", DriverLocation: driver, Status: order.Preparing},
	}, nil).Once()

	orderClient := new(MockOrderServiceClient)
	orderClient.On("TrackOrder", ctx, int64(42)).
		Return(ports.OrderTrack{}, errors.New("order backend down")).Once()
	orderClient.On("TrackOrder", ctx, int64(43)).Return(ports.OrderTrack{
		OrderID:          43,
		Status:           order.OutForDelivery,
		CustomerLocation: customer,
	}, nil).Once()

	h := queries.NewGetDriverDeliveriesQueryHandler(orderClient, deliveryClient, discardLogger())
	responses, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, responses, 2)

	// The failed lookup keeps the delivery status and drops the customer leg
	assert.Equal(t, order.Preparing, responses[0].Delivery.Status)
	require.Len(t, responses[0].Snapshot.RoutePoints, 1)

	// The healthy delivery gets the full route and the backend status
	assert.Equal(t, order.OutForDelivery, responses[1].Delivery.Status)
	require.Len(t, responses[1].Snapshot.RoutePoints, 2)
}

func TestGetDriverDeliveriesQueryHandler_Handle_FetchFailureIsAnError(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetDriverDeliveriesQuery("driver16")
	require.NoError(t, err)

	deliveryClient := new(MockDeliveryServiceClient)
	deliveryClient.On("FetchByDriver", ctx, "driver16").
		Return(nil, errors.New("delivery backend down")).Once()

	h := queries.NewGetDriverDeliveriesQueryHandler(new(MockOrderServiceClient), deliveryClient, discardLogger())
	_, err = h.Handle(ctx, query)

	assert.Error(t, err)
}

func TestGetDriverDeliveriesQuery_RequiresDriverID(t *testing.T) {
	_, err := queries.NewGetDriverDeliveriesQuery("")

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
