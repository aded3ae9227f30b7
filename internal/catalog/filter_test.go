package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterScenarios(t *testing.T) {
	menu := Catalog{
		{Name: "Supreme Pizza", Cuisine: "Italian", Category: "Pizza", PriceCents: 1299},
		{Name: "Caesar Salad", Cuisine: "Healthy", Category: "Salads", PriceCents: 799},
	}

	tests := []struct {
		name     string
		term     string
		category string
		want     []string
	}{
		{"substring matches name", "sa", CategoryAll, []string{"Caesar Salad"}},
		{"category narrows", "", "Pizza", []string{"Supreme Pizza"}},
		{"empty term wildcard category", "", CategoryAll, []string{"Supreme Pizza", "Caesar Salad"}},
		{"case insensitive", "SUPREME", CategoryAll, []string{"Supreme Pizza"}},
		{"cuisine matches", "healthy", CategoryAll, []string{"Caesar Salad"}},
		{"term and category must both hold", "salad", "Pizza", []string{}},
		{"no match is empty, not an error", "zzz", CategoryAll, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(menu, tt.term, tt.category)
			names := make([]string, 0, len(got))
			for _, it := range got {
				names = append(names, it.Name)
			}
			require.Equal(t, tt.want, names)
		})
	}
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	menu := Seed()
	got := Filter(menu, "italian", CategoryAll)
	require.Equal(t, []Item{menu[0], menu[5]}, got, "both Italian items, in seed order")
}

func TestFilterPredicateHolds(t *testing.T) {
	menu := Seed()
	for _, category := range menu.Categories() {
		for _, term := range []string{"", "a", "pizza", "ITALIAN", "q"} {
			got := Filter(menu, term, category)
			matched := map[string]bool{}
			for _, it := range got {
				matched[it.Name] = true
				if category != CategoryAll {
					require.Equal(t, category, it.Category)
				}
				if term != "" {
					lower := strings.ToLower(term)
					require.True(t,
						strings.Contains(strings.ToLower(it.Name), lower) ||
							strings.Contains(strings.ToLower(it.Cuisine), lower))
				}
			}
			// no omissions: every catalog item satisfying the predicate is present
			for _, it := range menu {
				if category != CategoryAll && it.Category != category {
					continue
				}
				lower := strings.ToLower(term)
				if term != "" &&
					!strings.Contains(strings.ToLower(it.Name), lower) &&
					!strings.Contains(strings.ToLower(it.Cuisine), lower) {
					continue
				}
				require.True(t, matched[it.Name], "missing %s for term=%q category=%q", it.Name, term, category)
			}
		}
	}
}

func TestCatalogLookupAndCategories(t *testing.T) {
	menu := Seed()

	it, ok := menu.ByName("Sushi Platter")
	require.True(t, ok)
	require.Equal(t, "Japanese", it.Cuisine)

	_, ok = menu.ByName("Nope")
	require.False(t, ok)

	cats := menu.Categories()
	require.Equal(t, CategoryAll, cats[0])
	require.Len(t, cats, 8, "wildcard plus one badge per seeded category")
}
