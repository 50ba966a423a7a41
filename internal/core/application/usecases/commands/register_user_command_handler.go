package commands

import (
	"context"
	"errors"

	"faithcafe/internal/core/domain/model/user"
	"faithcafe/internal/pkg/errs"
)

// ErrUsernameTaken is returned when registering a username that already
// exists.
var ErrUsernameTaken = errors.New("username is already taken")

// RegisterUserCommandHandler creates customer accounts. Usernames are unique
// across the store; a duplicate registration fails without side effects.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. Returns ErrUsernameTaken when
// the username exists. Registration does not log the new account in.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
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

	userRepo := uow.UserRepository()

	_, err := userRepo.Get(ctx, cmd.Username())
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	account, err := user.NewUser(cmd.Username(), cmd.Password(), cmd.Email(),
		cmd.Address(), cmd.ContactNumber())
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
