package cart

import (
	"time"

	"github.com/google/uuid"
)

// Order is the frozen record produced by checkout. It is never mutated
// after creation; Items is a snapshot independent of the live cart.
type Order struct {
	ID         string    `json:"id"`
	PlacedAt   time.Time `json:"placed_at"`
	Items      []Line    `json:"items"`
	TotalCents int       `json:"total_cents"`
}

// Checkout snapshots the current lines and total into a new Order and
// empties the cart. Checking out an empty cart is rejected.
func (c *Cart) Checkout(now time.Time) (Order, error) {
	if len(c.lines) == 0 {
		return Order{}, ErrEmptyCart
	}
	items := make([]Line, len(c.lines))
	copy(items, c.lines)
	o := Order{
		ID:         uuid.NewString(),
		PlacedAt:   now.UTC(),
		Items:      items,
		TotalCents: c.TotalCents(),
	}
	c.lines = nil
	return o, nil
}

// History is the append-only order log for one session. It lives in memory
// only and dies with the session.
type History struct {
	orders []Order
}

func (h *History) Append(o Order) { h.orders = append(h.orders, o) }

func (h *History) Len() int { return len(h.orders) }

func (h *History) Orders() []Order {
	out := make([]Order, len(h.orders))
	copy(out, h.orders)
	return out
}
