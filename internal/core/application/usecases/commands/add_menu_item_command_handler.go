package commands

import (
	"context"
	"errors"

	"faithcafe/internal/core/domain/model/menu"
	"faithcafe/internal/pkg/errs"
)

// ErrMenuItemNameTaken is returned when adding an item whose name already
// exists in the catalog.
var ErrMenuItemNameTaken = errors.New("menu item name is already taken")

// AddMenuItemCommandHandler adds items to the catalog.
type AddMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for catalog additions.
func NewAddMenuItemCommandHandler(uowFactory MenuUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the addition command.
func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
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

	_, err := menuRepo.Get(ctx, cmd.Name())
	if err == nil {
		return ErrMenuItemNameTaken
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	item, err := menu.NewItem(cmd.Name(), cmd.Price(), cmd.Description(),
		cmd.Category(), cmd.Image())
	if err != nil {
		return err
	}

	if err = menuRepo.Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
