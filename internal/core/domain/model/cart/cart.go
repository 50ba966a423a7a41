// Package cart implements the shopping cart aggregate. A cart is a list of
// lines keyed by item name, each carrying the price snapshotted when the
// line was added. The aggregate maintains one invariant: no line ever has a
// quantity of zero or less. A mutation that would produce one removes the
// line instead.
package cart

import (
	"errors"

	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/pkg/errs"
	"faithcafe/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created through
// NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one cart entry: an item name (a weak reference to the catalog),
// the price captured at add time, and a positive quantity.
type Line struct {
	name     string
	price    kernel.Money
	quantity int

	guard guard.ConstructorGuard
}

// NewLine creates a cart line with validation.
func NewLine(name string, price kernel.Money, quantity int) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setName(name),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	line.price = price
	return line, nil
}

// Validate ensures the Line was created through the constructor.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// Name returns the referenced item name.
func (l Line) Name() string {
	return l.name
}

// Price returns the price snapshot taken when the line was added.
func (l Line) Price() kernel.Money {
	return l.price
}

// Quantity returns the line quantity. Always positive.
func (l Line) Quantity() int {
	return l.quantity
}

// Total returns price multiplied by quantity.
func (l Line) Total() kernel.Money {
	return l.price.MulInt(l.quantity)
}

func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 || quantity > maxLineQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}
	l.quantity = quantity
	return nil
}

// maxLineQuantity bounds a single line. Orders bigger than this go through
// the café's catering flow, not the storefront.
const maxLineQuantity = 99

// Cart is the aggregate owning the line list. The zero value is NOT usable;
// carts come from NewCart or RestoreCart.
type Cart struct {
	lines []Line
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{lines: make([]Line, 0)}
}

// RestoreCart reconstructs a cart from persisted lines.
func RestoreCart(lines []Line) (*Cart, error) {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}
	c := &Cart{lines: make([]Line, len(lines))}
	copy(c.lines, lines)
	return c, nil
}

// AddLine merges the given quantity into an existing line with the same
// name, or appends a new line with the supplied price snapshot.
func (c *Cart) AddLine(name string, price kernel.Money, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}

	for i := range c.lines {
		if c.lines[i].name == name {
			return c.lines[i].setQuantity(c.lines[i].quantity + quantity)
		}
	}

	line, err := NewLine(name, price, quantity)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	return nil
}

// ChangeQuantity adjusts a line by delta. A resulting quantity of zero or
// less removes the line entirely.
func (c *Cart) ChangeQuantity(name string, delta int) error {
	for i := range c.lines {
		if c.lines[i].name != name {
			continue
		}

		next := c.lines[i].quantity + delta
		if next <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
		return c.lines[i].setQuantity(next)
	}
	return errs.NewObjectNotFoundError("cartLine", name)
}

// RemoveLine deletes a line unconditionally.
func (c *Cart) RemoveLine(name string) error {
	for i := range c.lines {
		if c.lines[i].name == name {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("cartLine", name)
}

// RemovePlaced drops the lines that were just turned into an order, matching
// by name and price snapshot. Lines absent from the cart are ignored: a
// concurrent mutation may already have removed them.
func (c *Cart) RemovePlaced(placed []Line) {
	for _, p := range placed {
		for i := range c.lines {
			if c.lines[i].name == p.name && c.lines[i].price == p.price {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
				break
			}
		}
	}
}

// Select returns the lines matching the given names, preserving cart order.
// Unknown names yield a not-found error.
func (c *Cart) Select(names []string) ([]Line, error) {
	selected := make([]Line, 0, len(names))
	for _, name := range names {
		found := false
		for _, line := range c.lines {
			if line.name == name {
				selected = append(selected, line)
				found = true
				break
			}
		}
		if !found {
			return nil, errs.NewObjectNotFoundError("cartLine", name)
		}
	}
	return selected, nil
}

// Lines returns a copy of the line list.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// ItemCount returns the badge count: the sum of all quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.quantity
	}
	return count
}

// Subtotal sums line totals at full precision.
func (c *Cart) Subtotal() kernel.Money {
	var subtotal kernel.Money
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
