package commands

import (
	"errors"

	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand represents an admin request to add a catalog item.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	name        string
	price       kernel.Money
	description string
	category    string
	image       string

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a catalog addition command. The name is
// required and becomes the item's identity; the rest is presentation.
func NewAddMenuItemCommand(name string, price kernel.Money, description, category, image string) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return AddMenuItemCommand{}, err
	}

	cmd.price = price
	cmd.description = description
	cmd.category = category
	cmd.image = image
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// Name returns the item name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Price returns the item price.
func (c AddMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Description returns the item description.
func (c AddMenuItemCommand) Description() string {
	return c.description
}

// Category returns the catalog category.
func (c AddMenuItemCommand) Category() string {
	return c.category
}

// Image returns the item image reference.
func (c AddMenuItemCommand) Image() string {
	return c.image
}

func (c *AddMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
