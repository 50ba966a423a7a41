package localstore

import (
	"context"

	"faithcafe/internal/core/domain/model/cart"
)

type cartRepository struct {
	uow *UnitOfWork
}

// Get implements ports.CartRepository. A store with no cart yet yields an
// empty one.
func (r *cartRepository) Get(_ context.Context) (*cart.Cart, error) {
	if err := r.uow.loadCart(); err != nil {
		return nil, err
	}

	lines, err := cartLinesToDomain(r.uow.cart)
	if err != nil {
		return nil, err
	}
	return cart.RestoreCart(lines)
}

// Save implements ports.CartRepository. The whole line list replaces the
// working copy.
func (r *cartRepository) Save(_ context.Context, aggregate *cart.Cart) error {
	r.uow.cart = cartLinesToDTO(aggregate.Lines())
	r.uow.cartLoaded = true
	r.uow.cartDirty = true
	return nil
}
