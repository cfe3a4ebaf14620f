// Package http exposes the application's use cases over a REST API. The
// server binds request bodies, builds commands and queries, and maps
// application errors to HTTP statuses; all business rules live below it.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/tracking"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addCartLineHandler        commands.AddCartLineCommandHandler
	removeCartLineHandler     commands.RemoveCartLineCommandHandler
	updateCartQuantityHandler commands.UpdateCartQuantityCommandHandler
	checkoutHandler           commands.CheckoutCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	markDeliveredHandler      commands.MarkDeliveredCommandHandler

	// Query handlers
	getCartHandler             queries.GetCartQueryHandler
	getUserOrdersHandler       queries.GetUserOrdersQueryHandler
	getTrackingSnapshotHandler queries.GetTrackingSnapshotQueryHandler
	getDriverDeliveriesHandler queries.GetDriverDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addCartLineHandler commands.AddCartLineCommandHandler,
	removeCartLineHandler commands.RemoveCartLineCommandHandler,
	updateCartQuantityHandler commands.UpdateCartQuantityCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getTrackingSnapshotHandler queries.GetTrackingSnapshotQueryHandler,
	getDriverDeliveriesHandler queries.GetDriverDeliveriesQueryHandler,
) *Server {
	return &Server{
		addCartLineHandler:        addCartLineHandler,
		removeCartLineHandler:     removeCartLineHandler,
		updateCartQuantityHandler: updateCartQuantityHandler,
		checkoutHandler:           checkoutHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		markDeliveredHandler:      markDeliveredHandler,

		getCartHandler:             getCartHandler,
		getUserOrdersHandler:       getUserOrdersHandler,
		getTrackingSnapshotHandler: getTrackingSnapshotHandler,
		getDriverDeliveriesHandler: getDriverDeliveriesHandler,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/cart/:userId", s.GetCart)
	api.POST("/cart/:userId/lines", s.AddCartLine)
	api.PATCH("/cart/:userId/lines/:menuItemId", s.UpdateCartQuantity)
	api.DELETE("/cart/:userId/lines/:menuItemId", s.RemoveCartLine)

	api.POST("/checkout", s.Checkout)

	api.GET("/orders/user/:userId", s.GetUserOrders)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.GET("/orders/:orderId/track", s.GetTrackingSnapshot)

	api.GET("/drivers/:driverId/deliveries", s.GetDriverDeliveries)
	api.POST("/drivers/:driverId/delivered", s.MarkDelivered)
}

// GetCart handles GET /api/v1/cart/:userId - returns the decomposed cart.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	response, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve cart")
	}

	return ctx.JSON(http.StatusOK, cartFromResponse(response))
}

// AddCartLine handles POST /api/v1/cart/:userId/lines - adds or replaces one line.
func (s *Server) AddCartLine(ctx echo.Context) error {
	var request AddCartLineRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	line, err := cart.NewLine(
		request.MenuItemID,
		request.ItemName,
		request.Quantity,
		decimal.NewFromFloat(request.UnitPrice).Round(2),
		request.RestaurantID,
		request.RestaurantName,
		request.ImageURL,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddCartLineCommand(ctx.Param("userId"), line)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.addCartLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to add cart line")
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateCartQuantity handles PATCH /api/v1/cart/:userId/lines/:menuItemId.
func (s *Server) UpdateCartQuantity(ctx echo.Context) error {
	var request UpdateCartQuantityRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewUpdateCartQuantityCommand(
		ctx.Param("userId"), ctx.Param("menuItemId"), request.Quantity,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.updateCartQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Cart line not found")
		}
		return internalError(ctx, "Failed to update cart line")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartLine handles DELETE /api/v1/cart/:userId/lines/:menuItemId.
// Removing an absent line succeeds; the end state is the same.
func (s *Server) RemoveCartLine(ctx echo.Context) error {
	cmd, err := commands.NewRemoveCartLineCommand(ctx.Param("userId"), ctx.Param("menuItemId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.removeCartLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to remove cart line")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/checkout - submits the cart as one order per
// restaurant. A partial failure answers 502 so the client retries; already
// recorded steps are skipped on the retry.
func (s *Server) Checkout(ctx echo.Context) error {
	var request CheckoutRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	destination := kernel.GeoPoint{}
	if request.Latitude != 0 || request.Longitude != 0 {
		var err error
		destination, err = kernel.NewGeoPoint(request.Latitude, request.Longitude)
		if err != nil {
			return badRequest(ctx, err)
		}
	}

	cmd, err := commands.NewCheckoutCommand(
		request.UserID, request.DeliveryAddress, request.ContactPhone, destination,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	created, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrEmptyCart) {
			return conflict(ctx, "Cart has nothing to check out")
		}
		var stepFailure *errs.SequenceStepFailureError
		if errors.As(err, &stepFailure) {
			return ctx.JSON(http.StatusBadGateway, Error{
				Code:    http.StatusBadGateway,
				Message: "Checkout stopped at step " + strconv.Itoa(stepFailure.Index+1) + "; retry to resume",
			})
		}
		return internalError(ctx, "Failed to check out")
	}

	response := make([]Order, 0, len(created))
	for _, o := range created {
		response = append(response, orderToWire(o))
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetUserOrders handles GET /api/v1/orders/user/:userId.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	query, err := queries.NewGetUserOrdersQuery(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	results, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]Order, 0, len(results))
	for _, result := range results {
		wire := orderToWire(result.Order)
		wire.StatusText = result.StatusText
		wire.AllowedNext = make([]string, 0, len(result.AllowedNext))
		for _, next := range result.AllowedNext {
			wire.AllowedNext = append(wire.AllowedNext, next.String())
		}
		response = append(response, wire)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status. An illegal
// transition answers 409 without reaching the order backend.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil {
		return badRequest(ctx, errors.New("invalid order id"))
	}

	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	next, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, next)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		if errors.Is(err, errs.ErrInvalidTransition) {
			return conflict(ctx, "Status transition is not allowed")
		}
		return internalError(ctx, "Failed to update order status")
	}

	return ctx.JSON(http.StatusOK, orderToWire(updated))
}

// GetTrackingSnapshot handles GET /api/v1/orders/:orderId/track. The view
// query parameter selects the customer or driver route shape.
func (s *Server) GetTrackingSnapshot(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil {
		return badRequest(ctx, errors.New("invalid order id"))
	}

	view := tracking.CustomerView
	if ctx.QueryParam("view") == "driver" {
		view = tracking.DriverView
	}

	query, err := queries.NewGetTrackingSnapshotQuery(orderID, view)
	if err != nil {
		return badRequest(ctx, err)
	}

	snapshot, err := s.getTrackingSnapshotHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to retrieve tracking")
	}

	return ctx.JSON(http.StatusOK, snapshotToWire(snapshot))
}

// GetDriverDeliveries handles GET /api/v1/drivers/:driverId/deliveries.
func (s *Server) GetDriverDeliveries(ctx echo.Context) error {
	query, err := queries.NewGetDriverDeliveriesQuery(ctx.Param("driverId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	results, err := s.getDriverDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve deliveries")
	}

	response := make([]DriverDelivery, 0, len(results))
	for _, result := range results {
		response = append(response, DriverDelivery{
			OrderID:  result.Delivery.OrderID,
			Status:   result.Snapshot.Status.String(),
			Snapshot: snapshotToWire(result.Snapshot),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkDelivered handles POST /api/v1/drivers/:driverId/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	cmd, err := commands.NewMarkDeliveredCommand(ctx.Param("driverId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to mark delivered")
	}

	return ctx.NoContent(http.StatusOK)
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, Error{
		Code:    http.StatusConflict,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
