package commands

import (
	"context"
	"errors"

	"faithcafe/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords, so login failures do not reveal which accounts exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

// LoginUserCommandHandler authenticates a user and records the session.
// A successful login replaces any previously logged-in session.
type LoginUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewLoginUserCommandHandler creates a handler for login operations.
func NewLoginUserCommandHandler(uowFactory UserUoWFactory) LoginUserCommandHandler {
	return LoginUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the login command. On success the stored session carries
// the user's profile without the password.
func (h LoginUserCommandHandler) Handle(ctx context.Context, cmd LoginUserCommand) error {
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

	account, err := uow.UserRepository().Get(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if !account.CheckPassword(cmd.Password()) {
		return ErrInvalidCredentials
	}

	if err = uow.SessionRepository().SetCurrentUser(ctx, account.Session()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
