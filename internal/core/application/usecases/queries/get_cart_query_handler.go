package queries

import (
	"context"
	"errors"

	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// GetCartQueryHandler projects the stored cart into its checkout review
// shape: per-restaurant groups priced the same way checkout will price them.
type GetCartQueryHandler struct {
	cartRepo   ports.CartRepository
	decomposer services.CartDecomposer
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(cartRepo ports.CartRepository, decomposer services.CartDecomposer) GetCartQueryHandler {
	return GetCartQueryHandler{
		cartRepo:   cartRepo,
		decomposer: decomposer,
	}
}

// Handle executes the query. An empty or unattributable cart is a legal
// review state and comes back as zero groups.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	lines, err := h.cartRepo.GetLines(ctx, query.UserID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	groups, err := h.decomposer.Decompose(query.UserID(), lines)
	if err != nil {
		var emptyCart *errs.EmptyCartError
		if errors.As(err, &emptyCart) {
			return GetCartQueryResponse{Groups: []GetCartQueryResponseGroup{}}, nil
		}
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{Groups: make([]GetCartQueryResponseGroup, 0, len(groups))}
	for _, group := range groups {
		draft, err := group.ToDraft()
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		responseGroup := GetCartQueryResponseGroup{
			RestaurantID:   group.RestaurantID(),
			RestaurantName: group.RestaurantName(),
			Lines:          make([]GetCartQueryResponseLine, 0, len(group.Lines())),
			Subtotal:       draft.Subtotal(),
			Tax:            draft.Tax(),
			DeliveryFee:    draft.DeliveryFee(),
			TotalAmount:    draft.TotalAmount(),
		}
		for _, line := range group.Lines() {
			responseGroup.Lines = append(responseGroup.Lines, GetCartQueryResponseLine{
				MenuItemID: line.MenuItemID,
				ItemName:   line.ItemName,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				LineTotal:  line.LineTotal(),
				ImageURL:   line.ImageURL,
			})
		}
		response.Groups = append(response.Groups, responseGroup)
	}

	return response, nil
}
