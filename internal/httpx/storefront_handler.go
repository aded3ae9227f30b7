package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/quickbite/storefront/internal/cart"
	"github.com/quickbite/storefront/internal/catalog"
	"github.com/quickbite/storefront/internal/session"
	"go.uber.org/zap"
)

// SessionHeader carries the session id both ways; a missing or expired id
// gets a fresh session minted and echoed back.
const SessionHeader = "X-Session-Id"

type StorefrontHandler struct {
	Catalog  catalog.Catalog
	Sessions *session.Store
	Service  string
	Log      *zap.Logger
}

type AddItemReq struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type UpdateQtyReq struct {
	Qty int `json:"qty"`
}

type ViewReq struct {
	SearchTerm     *string `json:"search_term"`
	ActiveCategory *string `json:"active_category"`
	DarkMode       *bool   `json:"dark_mode"`
}

type MenuResp struct {
	Items          []catalog.Item `json:"items"`
	SearchTerm     string         `json:"search_term"`
	ActiveCategory string         `json:"active_category"`
	Liked          []string       `json:"liked"`
	Expanded       []string       `json:"expanded"`
}

type CartResp struct {
	Items      []cart.Line `json:"items"`
	TotalCents int         `json:"total_cents"`
}

func (h *StorefrontHandler) Register(r *chi.Mux) {
	r.Get("/menu", h.getMenu)
	r.Get("/categories", h.getCategories)
	r.Put("/view", h.putView)
	r.Post("/menu/{name}/like", h.toggleLike)
	r.Post("/menu/{name}/expand", h.toggleExpand)
	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addCartItem)
	r.Patch("/cart/items/{index}", h.updateCartItem)
	r.Delete("/cart/items/{index}", h.removeCartItem)
	r.Delete("/cart", h.clearCart)
	r.Post("/cart/checkout", h.checkout)
	r.Get("/orders", h.listOrders)
	r.Get("/toast", h.getToast)
	r.Delete("/toast", h.dismissToast)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func (h *StorefrontHandler) session(w http.ResponseWriter, r *http.Request) *session.Session {
	sess, created := h.Sessions.GetOrCreate(r.Header.Get(SessionHeader))
	w.Header().Set(SessionHeader, sess.ID())
	if created && h.Log != nil {
		h.Log.Debug("session created", zap.String("session_id", sess.ID()))
	}
	return sess
}

// getMenu renders the filtered catalog. Query params override the stored
// view state for this request; omitted params fall back to it.
func (h *StorefrontHandler) getMenu(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	view := sess.View()

	term := view.SearchTerm
	category := view.ActiveCategory
	q := r.URL.Query()
	if q.Has("q") {
		term = q.Get("q")
	}
	if q.Has("category") {
		category = q.Get("category")
	}

	items := catalog.Filter(h.Catalog, term, category)
	writeJSON(w, http.StatusOK, MenuResp{
		Items:          items,
		SearchTerm:     term,
		ActiveCategory: category,
		Liked:          sess.Liked(),
		Expanded:       sess.Expanded(),
	})
}

func (h *StorefrontHandler) getCategories(w http.ResponseWriter, r *http.Request) {
	h.session(w, r)
	writeJSON(w, http.StatusOK, map[string][]string{"categories": h.Catalog.Categories()})
}

func (h *StorefrontHandler) putView(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	var req ViewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	view := sess.SetView(req.SearchTerm, req.ActiveCategory, req.DarkMode)
	writeJSON(w, http.StatusOK, view)
}

func (h *StorefrontHandler) toggleLike(w http.ResponseWriter, r *http.Request) {
	h.toggleFlag(w, r, func(s *session.Session, name string) (string, bool) {
		return "liked", s.ToggleLike(name)
	})
}

func (h *StorefrontHandler) toggleExpand(w http.ResponseWriter, r *http.Request) {
	h.toggleFlag(w, r, func(s *session.Session, name string) (string, bool) {
		return "expanded", s.ToggleExpanded(name)
	})
}

func (h *StorefrontHandler) toggleFlag(w http.ResponseWriter, r *http.Request, flip func(*session.Session, string) (string, bool)) {
	sess := h.session(w, r)
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	if _, ok := h.Catalog.ByName(name); !ok {
		writeError(w, http.StatusNotFound, "unknown menu item")
		return
	}
	field, on := flip(sess, name)
	writeJSON(w, http.StatusOK, map[string]any{"name": name, field: on})
}

func (h *StorefrontHandler) getCart(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	lines, total := sess.CartView()
	writeJSON(w, http.StatusOK, CartResp{Items: lines, TotalCents: total})
}

func (h *StorefrontHandler) addCartItem(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	var req AddItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	it, ok := h.Catalog.ByName(req.Name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown menu item")
		return
	}
	line, err := sess.AddToCart(it, req.Qty)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	_, total := sess.CartView()
	writeJSON(w, http.StatusCreated, map[string]any{"line": line, "total_cents": total})
}

func (h *StorefrontHandler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid index")
		return
	}
	var req UpdateQtyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := sess.UpdateQuantity(idx, req.Qty); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	lines, total := sess.CartView()
	writeJSON(w, http.StatusOK, CartResp{Items: lines, TotalCents: total})
}

func (h *StorefrontHandler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid index")
		return
	}
	if err := sess.RemoveLine(idx); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	lines, total := sess.CartView()
	writeJSON(w, http.StatusOK, CartResp{Items: lines, TotalCents: total})
}

func (h *StorefrontHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	sess.ClearCart()
	w.WriteHeader(http.StatusNoContent)
}

func (h *StorefrontHandler) checkout(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	o, err := sess.Checkout(time.Now())
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	if h.Log != nil {
		h.Log.Info("order placed",
			zap.String("service", h.Service),
			zap.String("session_id", sess.ID()),
			zap.String("order_id", o.ID),
			zap.Int("total_cents", o.TotalCents),
		)
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *StorefrontHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	writeJSON(w, http.StatusOK, map[string]any{"orders": sess.Orders()})
}

func (h *StorefrontHandler) getToast(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	msg := sess.Toast()
	if msg == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func (h *StorefrontHandler) dismissToast(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	sess.DismissToast()
	w.WriteHeader(http.StatusNoContent)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, cart.ErrInvalidIndex):
		return http.StatusNotFound
	case errors.Is(err, cart.ErrEmptyCart):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
