package catalog

import "strings"

// Filter returns the items matching the active category badge and the
// search term, preserving catalog order. The term is matched as a
// case-insensitive substring of name or cuisine; an empty term matches
// everything, as does the CategoryAll badge. An empty result is a valid
// outcome, not an error.
func Filter(items []Item, term, category string) []Item {
	term = strings.ToLower(term)
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if category != CategoryAll && it.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(it.Name), term) &&
			!strings.Contains(strings.ToLower(it.Cuisine), term) {
			continue
		}
		out = append(out, it)
	}
	return out
}
