package cart

import (
	"errors"
	"fmt"

	"github.com/quickbite/storefront/internal/catalog"
)

var (
	ErrInvalidIndex    = errors.New("cart line index out of range")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrEmptyCart       = errors.New("cart is empty")
)

// Line is one cart entry. Price is copied from the catalog at add time and
// does not track later catalog changes.
type Line struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	PriceCents int    `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// Cart holds an ordered list of lines. Lines are addressed by position;
// adding the same menu item twice appends a second independent line.
type Cart struct {
	lines []Line
}

func (c *Cart) Add(it catalog.Item, qty int) (Line, error) {
	if qty < 1 {
		return Line{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, qty)
	}
	line := Line{
		Name:       it.Name,
		Category:   it.Category,
		PriceCents: it.PriceCents,
		Quantity:   qty,
	}
	c.lines = append(c.lines, line)
	return line, nil
}

func (c *Cart) Remove(i int) error {
	if i < 0 || i >= len(c.lines) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return nil
}

// UpdateQuantity sets the quantity of line i. A quantity of zero or less
// removes the line; a stored quantity is always at least 1.
func (c *Cart) UpdateQuantity(i, qty int) error {
	if i < 0 || i >= len(c.lines) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	if qty <= 0 {
		return c.Remove(i)
	}
	c.lines[i].Quantity = qty
	return nil
}

// TotalCents recomputes the cart total on every call; nothing is cached.
func (c *Cart) TotalCents() int {
	total := 0
	for _, l := range c.lines {
		total += l.PriceCents * l.Quantity
	}
	return total
}

func (c *Cart) Len() int { return len(c.lines) }

// Lines returns a copy so callers cannot alias the cart's backing array.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Clear() { c.lines = nil }
