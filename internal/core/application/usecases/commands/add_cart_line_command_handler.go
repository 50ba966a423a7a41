package commands

import (
	"context"
)

// AddCartLineCommandHandler adds catalog items to the cart, snapshotting the
// current catalog price onto the new line. Later catalog edits do not touch
// lines already in the cart.
type AddCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartLineCommandHandler creates a handler for add-to-cart operations.
func NewAddCartLineCommandHandler(uowFactory CartUoWFactory) AddCartLineCommandHandler {
	return AddCartLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-to-cart command. The item must exist in the
// catalog; the whole cart is written back on success.
func (h AddCartLineCommandHandler) Handle(ctx context.Context, cmd AddCartLineCommand) error {
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

	item, err := uow.MenuRepository().Get(ctx, cmd.ItemName())
	if err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	basket, err := cartRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = basket.AddLine(item.Name(), item.Price(), cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, basket); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
