package session

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/quickbite/storefront/internal/cart"
	"github.com/quickbite/storefront/internal/catalog"
	"github.com/quickbite/storefront/internal/toast"
)

// View is the storefront's sticky UI state: what the customer is searching
// for, which badge is active and whether dark mode is on.
type View struct {
	SearchTerm     string `json:"search_term"`
	ActiveCategory string `json:"active_category"`
	DarkMode       bool   `json:"dark_mode"`
}

// Session owns one customer's in-memory storefront state: cart, order
// history, toast and view preferences. It is the single writer for all of
// them; every operation goes through the session methods. Nothing here is
// persisted, the whole session dies on eviction.
type Session struct {
	id string

	mu       sync.Mutex
	lastSeen time.Time
	cart     cart.Cart
	history  cart.History
	toasts   *toast.Notifier
	view     View
	liked    map[string]bool
	expanded map[string]bool
}

func newSession(id string, toastTTL time.Duration, now time.Time) *Session {
	return &Session{
		id:       id,
		lastSeen: now,
		toasts:   toast.NewNotifier(toastTTL),
		view:     View{ActiveCategory: catalog.CategoryAll},
		liked:    map[string]bool{},
		expanded: map[string]bool{},
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) touch(now time.Time) { s.lastSeen = now }

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// AddToCart appends a line for the given catalog item and raises the
// "added" toast. Repeated adds of the same item stay separate lines.
func (s *Session) AddToCart(it catalog.Item, qty int) (cart.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(time.Now())
	line, err := s.cart.Add(it, qty)
	if err != nil {
		return cart.Line{}, err
	}
	s.toasts.Show(fmt.Sprintf("Added %s to cart!", it.Name))
	return line, nil
}

func (s *Session) RemoveLine(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(time.Now())
	return s.cart.Remove(i)
}

func (s *Session) UpdateQuantity(i, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(time.Now())
	return s.cart.UpdateQuantity(i, qty)
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(time.Now())
	s.cart.Clear()
}

// CartView returns a snapshot of the lines plus the recomputed total.
func (s *Session) CartView() ([]cart.Line, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(time.Now())
	return s.cart.Lines(), s.cart.TotalCents()
}

// Checkout converts the cart into an immutable order, appends it to the
// session history and empties the cart.
func (s *Session) Checkout(now time.Time) (cart.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(now)
	o, err := s.cart.Checkout(now)
	if err != nil {
		return cart.Order{}, err
	}
	s.history.Append(o)
	s.toasts.Show(fmt.Sprintf("Order placed! Total $%d.%02d", o.TotalCents/100, o.TotalCents%100))
	return o, nil
}

func (s *Session) Orders() []cart.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(time.Now())
	return s.history.Orders()
}

// SetView overwrites only the fields the caller supplied. Any string is
// accepted; an unmatched search or category simply filters to nothing.
func (s *Session) SetView(term, category *string, dark *bool) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(time.Now())
	if term != nil {
		s.view.SearchTerm = *term
	}
	if category != nil {
		s.view.ActiveCategory = *category
	}
	if dark != nil {
		s.view.DarkMode = *dark
	}
	return s.view
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(time.Now())
	return s.view
}

// ToggleLike flips the heart for an item, keyed by item name so the flag
// survives re-filtering. Returns the new state.
func (s *Session) ToggleLike(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(time.Now())
	s.liked[name] = !s.liked[name]
	return s.liked[name]
}

// ToggleExpanded flips the card detail state for an item, keyed by name.
func (s *Session) ToggleExpanded(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(time.Now())
	s.expanded[name] = !s.expanded[name]
	return s.expanded[name]
}

func (s *Session) Liked() []string    { return s.flagged(func() map[string]bool { return s.liked }) }
func (s *Session) Expanded() []string { return s.flagged(func() map[string]bool { return s.expanded }) }

func (s *Session) flagged(get func() map[string]bool) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0)
	for name, on := range get() {
		if on {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Toast returns the live toast message, or "" if none.
func (s *Session) Toast() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(time.Now())
	return s.toasts.Current()
}

func (s *Session) DismissToast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(time.Now())
	s.toasts.Dismiss()
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toasts.Close()
}
