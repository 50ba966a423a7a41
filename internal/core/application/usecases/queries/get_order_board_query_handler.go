package queries

import (
	"context"

	"faithcafe/internal/core/domain/model/order"
	"faithcafe/internal/core/ports"
)

// GetOrderBoardQueryHandler serves the staff board.
type GetOrderBoardQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderBoardQueryHandler creates a handler for board queries.
func NewGetOrderBoardQueryHandler(orderRepo ports.OrderRepository) GetOrderBoardQueryHandler {
	return GetOrderBoardQueryHandler{orderRepo: orderRepo}
}

// Handle executes the board query.
func (h GetOrderBoardQueryHandler) Handle(ctx context.Context, query GetOrderBoardQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	order.SortForBoard(orders)

	views := make([]OrderView, 0, len(orders))
	for _, aggregate := range orders {
		views = append(views, newOrderView(aggregate))
	}
	return views, nil
}
