package ports

import (
	"context"

	"faithcafe/internal/core/domain/model/menu"
)

// MenuRepository is the persistence contract for catalog items. Items are
// keyed by name, which doubles as the reference carried by cart lines.
type MenuRepository interface {
	// Add persists a new catalog item. Fails if the name is already taken.
	Add(ctx context.Context, item *menu.Item) error

	// Update replaces the item stored under the given name. Renames are
	// allowed; existing cart lines keep referring to the old name.
	Update(ctx context.Context, name string, item *menu.Item) error

	// Get retrieves an item by name.
	Get(ctx context.Context, name string) (*menu.Item, error)

	// Delete removes an item from the catalog.
	Delete(ctx context.Context, name string) error

	// GetAll retrieves the full catalog in stored order.
	GetAll(ctx context.Context) ([]*menu.Item, error)
}
