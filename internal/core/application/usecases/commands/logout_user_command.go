package commands

import (
	"errors"

	"faithcafe/internal/pkg/guard"
)

var ErrLogoutUserCommandIsNotConstructed = errors.New(
	"LogoutUserCommand must be created via NewLogoutUserCommand constructor",
)

// LogoutUserCommand clears the logged-in session. Logging out while nobody
// is logged in is a no-op.
type LogoutUserCommand struct {
	guard guard.ConstructorGuard
}

// NewLogoutUserCommand creates a parameterless logout command.
func NewLogoutUserCommand() LogoutUserCommand {
	return LogoutUserCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c LogoutUserCommand) Validate() error {
	return c.guard.Validate(ErrLogoutUserCommandIsNotConstructed)
}
