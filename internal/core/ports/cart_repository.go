package ports

import (
	"context"

	"faithcafe/internal/core/domain/model/cart"
)

// CartRepository is the persistence contract for the single working cart.
// The cart belongs to the session rather than to an account, so there is one
// cart per store, not one per user.
type CartRepository interface {
	// Get loads the cart. A store with no cart yet yields an empty one.
	Get(ctx context.Context) (*cart.Cart, error)

	// Save writes the whole cart back, replacing whatever was stored.
	Save(ctx context.Context, aggregate *cart.Cart) error
}
