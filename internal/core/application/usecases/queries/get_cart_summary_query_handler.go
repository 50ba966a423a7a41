package queries

import (
	"context"

	"faithcafe/internal/core/ports"
)

// GetCartSummaryQueryHandler serves the cart page and the header badge.
type GetCartSummaryQueryHandler struct {
	cartRepo    ports.CartRepository
	sessionRepo ports.SessionRepository
}

// NewGetCartSummaryQueryHandler creates a handler for cart queries.
func NewGetCartSummaryQueryHandler(cartRepo ports.CartRepository, sessionRepo ports.SessionRepository) GetCartSummaryQueryHandler {
	return GetCartSummaryQueryHandler{
		cartRepo:    cartRepo,
		sessionRepo: sessionRepo,
	}
}

// Handle executes the cart query.
func (h GetCartSummaryQueryHandler) Handle(ctx context.Context, query GetCartSummaryQuery) (CartSummaryView, error) {
	if err := query.Validate(); err != nil {
		return CartSummaryView{}, err
	}

	basket, err := h.cartRepo.Get(ctx)
	if err != nil {
		return CartSummaryView{}, err
	}

	selection, err := h.sessionRepo.CheckoutSelection(ctx)
	if err != nil {
		return CartSummaryView{}, err
	}
	selected := make(map[string]struct{}, len(selection))
	for _, name := range selection {
		selected[name] = struct{}{}
	}

	lines := basket.Lines()
	views := make([]CartLineView, 0, len(lines))
	for _, line := range lines {
		_, isSelected := selected[line.Name()]
		views = append(views, CartLineView{
			Name:     line.Name(),
			Price:    line.Price().Round2(),
			Quantity: line.Quantity(),
			Total:    line.Total().Round2(),
			Selected: isSelected,
		})
	}

	return CartSummaryView{
		Lines:     views,
		ItemCount: basket.ItemCount(),
		Subtotal:  basket.Subtotal().Round2(),
	}, nil
}
