package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// CheckoutCommandHandler turns the cart into orders, one per restaurant
// group, strictly in sequence. At most one creation request is in flight at
// any time and the groups are submitted in first-appearance order.
//
// Every successful creation is recorded in the checkpoint ledger in its own
// committed transaction before the next group is attempted. A failed step
// stops the sequence with a SequenceStepFailureError carrying the failed
// index; a retry of the same command resumes after the recorded checkpoints
// and never re-creates an order that already succeeded. Once every group has
// been submitted the cart and the ledger are cleared atomically.
type CheckoutCommandHandler struct {
	uowFactory  CheckoutUoWFactory
	orderClient ports.OrderServiceClient
	decomposer  services.CartDecomposer
	logger      *slog.Logger
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	orderClient ports.OrderServiceClient,
	decomposer services.CartDecomposer,
	logger *slog.Logger,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:  uowFactory,
		orderClient: orderClient,
		decomposer:  decomposer,
		logger:      logger.With("component", "checkout"),
	}
}

// Handle processes the checkout command and returns the orders created by
// this run. Groups already recorded in the ledger from an earlier,
// interrupted run are skipped, so the returned slice contains only the
// orders this invocation created.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines, entries, err := h.loadCheckoutState(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	groups, err := h.decomposer.Decompose(cmd.UserID(), lines)
	if err != nil {
		return nil, err
	}

	alreadyCreated := make(map[string]int64, len(entries))
	for _, entry := range entries {
		alreadyCreated[entry.RestaurantID] = entry.OrderID
	}

	created := make([]*order.Order, 0, len(groups))
	for i, group := range groups {
		if orderID, ok := alreadyCreated[group.RestaurantID()]; ok {
			h.logger.Info("skipping already created order",
				"index", i+1, "total", len(groups),
				"restaurant_id", group.RestaurantID(), "order_id", orderID)
			continue
		}

		h.logger.Info("submitting order",
			"index", i+1, "total", len(groups), "restaurant_id", group.RestaurantID())

		newOrder, err := h.submitGroup(ctx, cmd, group)
		if err != nil {
			return nil, errs.NewSequenceStepFailureError(i, group.RestaurantID(), err)
		}

		if err = h.recordCheckpoint(ctx, cmd.UserID(), group.RestaurantID(), newOrder.ID()); err != nil {
			return nil, errs.NewSequenceStepFailureError(i, group.RestaurantID(), err)
		}

		created = append(created, newOrder)
	}

	if err = h.finishCheckout(ctx, cmd.UserID()); err != nil {
		return nil, err
	}

	return created, nil
}

// loadCheckoutState reads the cart lines and ledger entries in one read-only
// transaction.
func (h *CheckoutCommandHandler) loadCheckoutState(
	ctx context.Context, userID string,
) ([]cart.Line, []cart.CheckpointEntry, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lines, err := uow.CartRepository().GetLines(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	entries, err := uow.CheckpointRepository().GetEntries(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return lines, entries, nil
}

func (h *CheckoutCommandHandler) submitGroup(
	ctx context.Context, cmd CheckoutCommand, group cart.Group,
) (*order.Order, error) {
	draft, err := group.ToDraft()
	if err != nil {
		return nil, err
	}

	return h.orderClient.CreateOrder(ctx, ports.CreateOrderRequest{
		UserID:          cmd.UserID(),
		Draft:           draft,
		DeliveryAddress: cmd.DeliveryAddress(),
		ContactPhone:    cmd.ContactPhone(),
		Destination:     cmd.Destination(),
	})
}

// recordCheckpoint commits the checkpoint in its own transaction so it
// survives a failure in any later step.
func (h *CheckoutCommandHandler) recordCheckpoint(
	ctx context.Context, userID, restaurantID string, orderID int64,
) error {
	entry, err := cart.NewCheckpointEntry(userID, restaurantID, orderID)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CheckpointRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// finishCheckout clears the cart and the ledger atomically once every group
// has been submitted.
func (h *CheckoutCommandHandler) finishCheckout(ctx context.Context, userID string) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CartRepository().Clear(ctx, userID); err != nil {
		return err
	}

	if err := uow.CheckpointRepository().Clear(ctx, userID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
