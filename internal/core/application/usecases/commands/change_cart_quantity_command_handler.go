package commands

import (
	"context"
)

// ChangeCartQuantityCommandHandler adjusts cart line quantities.
type ChangeCartQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewChangeCartQuantityCommandHandler creates a handler for quantity
// adjustments.
func NewChangeCartQuantityCommandHandler(uowFactory CartUoWFactory) ChangeCartQuantityCommandHandler {
	return ChangeCartQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the adjustment command. The line must exist in the cart.
func (h ChangeCartQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeCartQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	basket, err := cartRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = basket.ChangeQuantity(cmd.ItemName(), cmd.Delta()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, basket); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
