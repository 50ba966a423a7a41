package commands

import (
	"errors"

	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

var ErrRemoveCartLineCommandIsNotConstructed = errors.New(
	"RemoveCartLineCommand must be created via NewRemoveCartLineCommand constructor",
)

// RemoveCartLineCommand drops a line from the cart regardless of quantity.
type RemoveCartLineCommand struct { //nolint:recvcheck //using for validation
	itemName string

	guard guard.ConstructorGuard
}

// NewRemoveCartLineCommand creates a removal command for the named line.
func NewRemoveCartLineCommand(itemName string) (RemoveCartLineCommand, error) {
	cmd := RemoveCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setItemName(itemName); err != nil {
		return RemoveCartLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartLineCommandIsNotConstructed)
}

// ItemName returns the cart line to remove.
func (c RemoveCartLineCommand) ItemName() string {
	return c.itemName
}

func (c *RemoveCartLineCommand) setItemName(itemName string) error {
	if itemName == "" {
		return errs.NewValueIsRequiredError("itemName")
	}
	c.itemName = itemName
	return nil
}
