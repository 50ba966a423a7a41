package commands

import (
	"context"
	"errors"

	"faithcafe/internal/pkg/errs"
)

// DeleteUserCommandHandler removes an account and, when it belongs to the
// logged-in user, ends the session as well.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewDeleteUserCommandHandler creates a handler for account deletion.
func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
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

	if err := uow.UserRepository().Delete(ctx, cmd.Username()); err != nil {
		return err
	}

	sessionRepo := uow.SessionRepository()
	session, err := sessionRepo.CurrentUser(ctx)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if err == nil && session.Username == cmd.Username() {
		if err = sessionRepo.ClearCurrentUser(ctx); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
