package catalog

// CategoryAll is the wildcard badge that matches every category.
const CategoryAll = "All"

type Item struct {
	Name               string   `json:"name"`
	Cuisine            string   `json:"cuisine"`
	Category           string   `json:"category"`
	PriceCents         int      `json:"price_cents"`
	OriginalPriceCents int      `json:"original_price_cents"`
	DiscountPct        int      `json:"discount_pct"`
	Rating             float64  `json:"rating"`
	DeliveryMins       int      `json:"delivery_mins"`
	Available          bool     `json:"available"`
	Description        string   `json:"description"`
	Tags               []string `json:"tags,omitempty"`
	ImageURL           string   `json:"image_url"`
}

// Catalog is the fixed set of orderable items for a session. It is seeded
// once at startup and never mutated at runtime.
type Catalog []Item

func (c Catalog) ByName(name string) (Item, bool) {
	for _, it := range c {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// Categories returns the badge list in display order, wildcard first.
func (c Catalog) Categories() []string {
	out := []string{CategoryAll}
	seen := map[string]bool{}
	for _, it := range c {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}
