package queries

import (
	"errors"

	"faithcafe/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the catalog, optionally filtered by category.
type GetMenuQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a catalog query. An empty category returns the
// whole menu.
func NewGetMenuQuery(category string) GetMenuQuery {
	return GetMenuQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// Category returns the optional category filter.
func (q GetMenuQuery) Category() string {
	return q.category
}

// MenuItemView is the catalog read model.
type MenuItemView struct {
	Name        string
	Price       float64
	Description string
	Category    string
	Image       string
}
