package queries

import (
	"context"

	"faithcafe/internal/core/domain/model/rider"
)

// GetAvailableRidersQueryHandler serves the rider picker on the staff board.
type GetAvailableRidersQueryHandler struct {
	riderPool *rider.Pool
}

// NewGetAvailableRidersQueryHandler creates a handler for rider queries.
func NewGetAvailableRidersQueryHandler(riderPool *rider.Pool) GetAvailableRidersQueryHandler {
	return GetAvailableRidersQueryHandler{riderPool: riderPool}
}

// Handle executes the rider query.
func (h GetAvailableRidersQueryHandler) Handle(_ context.Context, query GetAvailableRidersQuery) ([]RiderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	available := h.riderPool.Available()
	views := make([]RiderView, 0, len(available))
	for _, r := range available {
		views = append(views, RiderView{Name: r.Name(), Contact: r.Contact()})
	}
	return views, nil
}
