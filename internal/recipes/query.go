package recipes

import (
	"sort"
	"strings"

	"cookbook/models"
)

// SortKey selects the list ordering.
type SortKey string

const (
	// SortNone keeps the stored collection order.
	SortNone SortKey = ""
	// SortByTitle orders lexicographically by title.
	SortByTitle SortKey = "title"
	// SortByRating orders numerically by rating, unrated treated as zero.
	SortByRating SortKey = "rating"
)

// ParseSortKey maps user input onto a known sort key, defaulting to no sort.
func ParseSortKey(value string) SortKey {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "title":
		return SortByTitle
	case "rating":
		return SortByRating
	default:
		return SortNone
	}
}

// ListFilters captures the list screen's view state: search text, the
// favorites-only flag, and the sort selection.
type ListFilters struct {
	Query         string
	FavoritesOnly bool
	Sort          SortKey
	Descending    bool
}

// Apply derives the visible list from the full collection. It is a pure
// function: the input slice is never reordered, and the result is recomputed
// in full every time the collection or any filter input changes.
func Apply(all []models.Recipe, favoriteIDs map[int64]bool, filters ListFilters) []models.Recipe {
	result := filterByTitle(all, filters.Query)

	if filters.FavoritesOnly {
		kept := result[:0]
		for _, recipe := range result {
			if favoriteIDs[recipe.ID] {
				kept = append(kept, recipe)
			}
		}
		result = kept
	}

	sortRecipes(result, filters.Sort, filters.Descending)
	return result
}

// filterByTitle keeps recipes whose title contains the trimmed query,
// case-insensitively. An empty query matches everything. The result is
// always a fresh slice so sorting never disturbs the caller's collection.
func filterByTitle(all []models.Recipe, query string) []models.Recipe {
	needle := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]models.Recipe, 0, len(all))
	for _, recipe := range all {
		if needle == "" || strings.Contains(strings.ToLower(recipe.Title), needle) {
			filtered = append(filtered, recipe)
		}
	}
	return filtered
}

// sortRecipes orders the slice in place with a stable comparator, so equal
// keys preserve their prior relative order.
func sortRecipes(recipes []models.Recipe, key SortKey, descending bool) {
	var less func(i, j int) bool
	switch key {
	case SortByTitle:
		less = func(i, j int) bool {
			return strings.ToLower(recipes[i].Title) < strings.ToLower(recipes[j].Title)
		}
	case SortByRating:
		less = func(i, j int) bool {
			return recipes[i].RatingValue() < recipes[j].RatingValue()
		}
	default:
		return
	}

	if descending {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}

	sort.SliceStable(recipes, less)
}
