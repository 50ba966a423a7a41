package commands

import (
	"context"
)

// StageCheckoutCommandHandler stores the checkout selection after checking
// every selected name against the current cart.
type StageCheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewStageCheckoutCommandHandler creates a handler for checkout staging.
func NewStageCheckoutCommandHandler(uowFactory CheckoutUoWFactory) StageCheckoutCommandHandler {
	return StageCheckoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the staging command. Selecting a name that is not in the
// cart fails the whole command.
func (h StageCheckoutCommandHandler) Handle(ctx context.Context, cmd StageCheckoutCommand) error {
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

	basket, err := uow.CartRepository().Get(ctx)
	if err != nil {
		return err
	}

	if _, err = basket.Select(cmd.ItemNames()); err != nil {
		return err
	}

	if err = uow.SessionRepository().SetCheckoutSelection(ctx, cmd.ItemNames()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
