package commands_test

import (
	"context"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/tracking"
	"ordering/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) GetLines(ctx context.Context, userID string) ([]cart.Line, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cart.Line), args.Error(1)
}

func (m *MockCartRepository) UpsertLine(ctx context.Context, userID string, line cart.Line) error {
	args := m.Called(ctx, userID, line)
	return args.Error(0)
}

func (m *MockCartRepository) RemoveLine(ctx context.Context, userID, menuItemID string) error {
	args := m.Called(ctx, userID, menuItemID)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateQuantity(ctx context.Context, userID, menuItemID string, quantity int) error {
	args := m.Called(ctx, userID, menuItemID, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockCheckpointRepository struct{ mock.Mock }

func (m *MockCheckpointRepository) GetEntries(ctx context.Context, userID string) ([]cart.CheckpointEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cart.CheckpointEntry), args.Error(1)
}

func (m *MockCheckpointRepository) Append(ctx context.Context, entry cart.CheckpointEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCheckpointRepository) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockCheckoutUoW is permissive on transaction lifecycle so tests can focus
// on repository and client interactions.
type MockCheckoutUoW struct {
	cartRepo       *MockCartRepository
	checkpointRepo *MockCheckpointRepository
}

func NewMockCheckoutUoW(cartRepo *MockCartRepository, checkpointRepo *MockCheckpointRepository) *MockCheckoutUoW {
	return &MockCheckoutUoW{cartRepo: cartRepo, checkpointRepo: checkpointRepo}
}

func (m *MockCheckoutUoW) Begin(_ context.Context) error    { return nil }
func (m *MockCheckoutUoW) Commit(_ context.Context) error   { return nil }
func (m *MockCheckoutUoW) Rollback(_ context.Context) error { return nil }

func (m *MockCheckoutUoW) CartRepository() ports.CartRepository { return m.cartRepo }

func (m *MockCheckoutUoW) CheckpointRepository() ports.CheckpointRepository {
	return m.checkpointRepo
}

type MockCheckoutUoWFactory struct{ uow commands.CheckoutUoW }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW { return m.uow }

type MockCartUoW struct{ cartRepo *MockCartRepository }

func (m *MockCartUoW) Begin(_ context.Context) error        { return nil }
func (m *MockCartUoW) Commit(_ context.Context) error       { return nil }
func (m *MockCartUoW) Rollback(_ context.Context) error     { return nil }
func (m *MockCartUoW) CartRepository() ports.CartRepository { return m.cartRepo }

type MockCartUoWFactory struct{ uow commands.CartUoW }

func (m *MockCartUoWFactory) Create() commands.CartUoW { return m.uow }

type MockOrderServiceClient struct{ mock.Mock }

func (m *MockOrderServiceClient) CreateOrder(ctx context.Context, req ports.CreateOrderRequest) (*order.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderServiceClient) GetOrder(ctx context.Context, orderID int64) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderServiceClient) GetOrdersByUser(ctx context.Context, userID string) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderServiceClient) UpdateOrderStatus(ctx context.Context, orderID int64, next order.Status) (*order.Order, error) {
	args := m.Called(ctx, orderID, next)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderServiceClient) TrackOrder(ctx context.Context, orderID int64) (ports.OrderTrack, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(ports.OrderTrack), args.Error(1)
}

type MockDeliveryServiceClient struct{ mock.Mock }

func (m *MockDeliveryServiceClient) FetchTracking(ctx context.Context, orderID int64) (tracking.Delivery, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(tracking.Delivery), args.Error(1)
}

func (m *MockDeliveryServiceClient) FetchByDriver(ctx context.Context, driverID string) ([]tracking.Delivery, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracking.Delivery), args.Error(1)
}

func (m *MockDeliveryServiceClient) PushLocation(ctx context.Context, driverID string, location kernel.GeoPoint) error {
	args := m.Called(ctx, driverID, location)
	return args.Error(0)
}

func (m *MockDeliveryServiceClient) MarkDelivered(ctx context.Context, driverID string) error {
	args := m.Called(ctx, driverID)
	return args.Error(0)
}

type MockLocationSampler struct{ mock.Mock }

func (m *MockLocationSampler) Sample(ctx context.Context) (kernel.GeoPoint, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.GeoPoint), args.Error(1)
}

func placedOrder(id int64, restaurantID string) *order.Order {
	o, err := order.RestoreOrder(
		id, "user7", restaurantID, order.Placed, nil,
		decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero,
		"1 Main St", "", kernel.GeoPoint{}, time.Now(), time.Now(),
	)
	if err != nil {
		panic(err)
	}
	return o
}
