package commands

import (
	"context"
)

// SetThemeCommandHandler persists the theme preference.
type SetThemeCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewSetThemeCommandHandler creates a handler for theme changes.
func NewSetThemeCommandHandler(uowFactory SessionUoWFactory) SetThemeCommandHandler {
	return SetThemeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the theme command.
func (h SetThemeCommandHandler) Handle(ctx context.Context, cmd SetThemeCommand) error {
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

	if err := uow.SessionRepository().SetTheme(ctx, cmd.Theme()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
