package commands

import (
	"errors"

	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand replaces a catalog item wholesale. The target is
// addressed by its current name; the new name may differ, which renames the
// item. Cart lines keep their snapshots and are not rewritten.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	target      string
	name        string
	price       kernel.Money
	description string
	category    string
	image       string

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates an update command for the item currently
// stored under target.
func NewUpdateMenuItemCommand(target, name string, price kernel.Money, description, category, image string) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTarget(target),
		cmd.setName(name),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	cmd.price = price
	cmd.description = description
	cmd.category = category
	cmd.image = image
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// Target returns the current name of the item being updated.
func (c UpdateMenuItemCommand) Target() string {
	return c.target
}

// Name returns the new item name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Price returns the new price.
func (c UpdateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Description returns the new description.
func (c UpdateMenuItemCommand) Description() string {
	return c.description
}

// Category returns the new category.
func (c UpdateMenuItemCommand) Category() string {
	return c.category
}

// Image returns the new image reference.
func (c UpdateMenuItemCommand) Image() string {
	return c.image
}

func (c *UpdateMenuItemCommand) setTarget(target string) error {
	if target == "" {
		return errs.NewValueIsRequiredError("target")
	}
	c.target = target
	return nil
}

func (c *UpdateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
