package queries

import (
	"context"
	"sort"

	"faithcafe/internal/core/domain/model/order"
	"faithcafe/internal/core/ports"
)

// GetCustomerTrackingQueryHandler serves the customer tracking page.
type GetCustomerTrackingQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetCustomerTrackingQueryHandler creates a handler for tracking queries.
func NewGetCustomerTrackingQueryHandler(orderRepo ports.OrderRepository) GetCustomerTrackingQueryHandler {
	return GetCustomerTrackingQueryHandler{orderRepo: orderRepo}
}

// Handle executes the tracking query.
func (h GetCustomerTrackingQueryHandler) Handle(ctx context.Context, query GetCustomerTrackingQuery) (TrackingView, error) {
	if err := query.Validate(); err != nil {
		return TrackingView{}, err
	}

	orders, err := h.orderRepo.GetByCustomer(ctx, query.Customer())
	if err != nil {
		return TrackingView{}, err
	}
	if len(orders) == 0 {
		return TrackingView{History: []OrderView{}}, nil
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderTime().After(orders[j].OrderTime())
	})

	tracked := pickTracked(orders)
	trackedView := newOrderView(tracked)

	// History holds completed orders only; active ones surface through the
	// tracked view.
	history := make([]OrderView, 0, len(orders))
	for _, aggregate := range orders {
		if aggregate.Status().IsTerminal() {
			history = append(history, newOrderView(aggregate))
		}
	}

	return TrackingView{
		Tracked: &trackedView,
		History: history,
	}, nil
}

// pickTracked returns the most recent active order, falling back to the most
// recent order overall. Orders are already sorted newest first.
func pickTracked(orders []*order.Order) *order.Order {
	for _, aggregate := range orders {
		if aggregate.IsActive() {
			return aggregate
		}
	}
	return orders[0]
}
