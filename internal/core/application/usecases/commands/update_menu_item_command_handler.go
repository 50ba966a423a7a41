package commands

import (
	"context"

	"faithcafe/internal/core/domain/model/menu"
)

// UpdateMenuItemCommandHandler replaces catalog items.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for catalog updates.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. The target item must exist.
func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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

	menuRepo := uow.MenuRepository()

	if _, err := menuRepo.Get(ctx, cmd.Target()); err != nil {
		return err
	}

	item, err := menu.NewItem(cmd.Name(), cmd.Price(), cmd.Description(),
		cmd.Category(), cmd.Image())
	if err != nil {
		return err
	}

	if err = menuRepo.Update(ctx, cmd.Target(), item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
