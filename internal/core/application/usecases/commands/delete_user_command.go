package commands

import (
	"errors"

	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand removes a user account. The account's orders stay in
// place as history; only the credentials and profile go away.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	username string

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a deletion command for the given username.
func NewDeleteUserCommand(username string) (DeleteUserCommand, error) {
	cmd := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUsername(username); err != nil {
		return DeleteUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// Username returns the account to delete.
func (c DeleteUserCommand) Username() string {
	return c.username
}

func (c *DeleteUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}
