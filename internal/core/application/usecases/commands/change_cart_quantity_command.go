package commands

import (
	"errors"

	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

var ErrChangeCartQuantityCommandIsNotConstructed = errors.New(
	"ChangeCartQuantityCommand must be created via NewChangeCartQuantityCommand constructor",
)

// ChangeCartQuantityCommand adjusts a cart line by a signed delta. A delta
// that takes the quantity to zero or below removes the line.
type ChangeCartQuantityCommand struct { //nolint:recvcheck //using for validation
	itemName string
	delta    int

	guard guard.ConstructorGuard
}

// NewChangeCartQuantityCommand creates a quantity adjustment command. Delta
// may be negative but not zero.
func NewChangeCartQuantityCommand(itemName string, delta int) (ChangeCartQuantityCommand, error) {
	cmd := ChangeCartQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemName(itemName),
		cmd.setDelta(delta),
	); err != nil {
		return ChangeCartQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeCartQuantityCommandIsNotConstructed)
}

// ItemName returns the cart line to adjust.
func (c ChangeCartQuantityCommand) ItemName() string {
	return c.itemName
}

// Delta returns the signed quantity adjustment.
func (c ChangeCartQuantityCommand) Delta() int {
	return c.delta
}

func (c *ChangeCartQuantityCommand) setItemName(itemName string) error {
	if itemName == "" {
		return errs.NewValueIsRequiredError("itemName")
	}
	c.itemName = itemName
	return nil
}

func (c *ChangeCartQuantityCommand) setDelta(delta int) error {
	if delta == 0 {
		return errs.NewValueIsInvalidError("delta")
	}
	c.delta = delta
	return nil
}
