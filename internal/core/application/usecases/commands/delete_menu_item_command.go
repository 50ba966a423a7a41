package commands

import (
	"errors"

	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand removes an item from the catalog. Cart lines
// referencing the item keep their snapshots and remain orderable.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewDeleteMenuItemCommand creates a deletion command for the named item.
func NewDeleteMenuItemCommand(name string) (DeleteMenuItemCommand, error) {
	cmd := DeleteMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

// Name returns the item to delete.
func (c DeleteMenuItemCommand) Name() string {
	return c.name
}

func (c *DeleteMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
