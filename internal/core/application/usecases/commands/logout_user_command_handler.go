package commands

import (
	"context"
)

// LogoutUserCommandHandler clears the current session.
type LogoutUserCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewLogoutUserCommandHandler creates a handler for logout operations.
func NewLogoutUserCommandHandler(uowFactory SessionUoWFactory) LogoutUserCommandHandler {
	return LogoutUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the logout command.
func (h LogoutUserCommandHandler) Handle(ctx context.Context, cmd LogoutUserCommand) error {
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

	if err := uow.SessionRepository().ClearCurrentUser(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
