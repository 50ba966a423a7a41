// Package menu holds the catalog entity. Menu items are keyed by name;
// beyond name uniqueness (enforced by the repository) the only invariant is
// a non-negative price.
package menu

import (
	"errors"

	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a catalog entry. The name is the entity key; the description,
// category and image fields are free-form and optional.
type Item struct {
	name        string
	price       kernel.Money
	description string
	category    string
	image       string

	guard guard.ConstructorGuard
}

// NewItem creates a catalog entry with validation.
func NewItem(name string, price kernel.Money, description, category, image string) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := item.setName(name); err != nil {
		return nil, err
	}

	item.price = price
	item.description = description
	item.category = category
	item.image = image
	return item, nil
}

// Validate ensures the Item was created through the constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the unique item name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the current catalog price.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Description returns the free-form description.
func (i *Item) Description() string {
	return i.description
}

// Category returns the catalog section the item belongs to.
func (i *Item) Category() string {
	return i.category
}

// Image returns the optional image reference.
func (i *Item) Image() string {
	return i.image
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}
