package commands

import (
	"errors"

	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

var ErrAddCartLineCommandIsNotConstructed = errors.New(
	"AddCartLineCommand must be created via NewAddCartLineCommand constructor",
)

// AddCartLineCommand adds a catalog item to the cart. Adding an item already
// in the cart merges into the existing line instead of duplicating it.
//
// Example:
//
//	cmd, err := NewAddCartLineCommand("Latte", 2)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AddCartLineCommand struct { //nolint:recvcheck //using for validation
	itemName string
	quantity int

	guard guard.ConstructorGuard
}

// NewAddCartLineCommand creates an add-to-cart command. Quantity must be
// positive.
func NewAddCartLineCommand(itemName string, quantity int) (AddCartLineCommand, error) {
	cmd := AddCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemName(itemName),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartLineCommand) Validate() error {
	return c.guard.Validate(ErrAddCartLineCommandIsNotConstructed)
}

// ItemName returns the catalog item to add.
func (c AddCartLineCommand) ItemName() string {
	return c.itemName
}

// Quantity returns how many to add.
func (c AddCartLineCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartLineCommand) setItemName(itemName string) error {
	if itemName == "" {
		return errs.NewValueIsRequiredError("itemName")
	}
	c.itemName = itemName
	return nil
}

func (c *AddCartLineCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}
