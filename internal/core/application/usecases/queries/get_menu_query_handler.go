package queries

import (
	"context"

	"faithcafe/internal/core/ports"
)

// GetMenuQueryHandler serves the catalog in stored order.
type GetMenuQueryHandler struct {
	menuRepo ports.MenuRepository
}

// NewGetMenuQueryHandler creates a handler for catalog queries.
func NewGetMenuQueryHandler(menuRepo ports.MenuRepository) GetMenuQueryHandler {
	return GetMenuQueryHandler{menuRepo: menuRepo}
}

// Handle executes the query, applying the category filter when present.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.menuRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]MenuItemView, 0, len(items))
	for _, item := range items {
		if query.Category() != "" && item.Category() != query.Category() {
			continue
		}
		views = append(views, MenuItemView{
			Name:        item.Name(),
			Price:       item.Price().Round2(),
			Description: item.Description(),
			Category:    item.Category(),
			Image:       item.Image(),
		})
	}
	return views, nil
}
