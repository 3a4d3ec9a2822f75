package pages

import (
	"fmt"
	"strconv"
	"strings"

	"cookbook/models"
)

// UnitOptions returns the unit codes offered by the ingredient unit picker.
// Only the EU set is reachable from the form.
func UnitOptions() []models.Unit {
	return models.Units(models.UnitSystemEU)
}

// RatingChoices lists the selectable rating values in half-star increments.
func RatingChoices() []float64 {
	return []float64{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5}
}

// FormatRating renders a rating value for form controls; nil becomes the
// empty string, whole numbers lose their trailing ".0".
func FormatRating(rating *float64) string {
	if rating == nil {
		return ""
	}
	return FormatRatingValue(*rating)
}

// FormatRatingValue formats a single rating number for display.
func FormatRatingValue(value float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(value, 'f', 1, 64), ".0")
}

// ParseRating converts form input into a rating. An empty value clears the
// rating; out-of-range or malformed values are rejected.
func ParseRating(value string) (*float64, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, true
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, false
	}
	if parsed < 0 || parsed > 5 {
		return nil, false
	}
	return &parsed, true
}

// ParseID extracts a recipe id from the provided string, returning zero on
// failure. Ids are always positive, so zero doubles as "invalid".
func ParseID(value string) int64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

// IngredientLine formats an ingredient for read-only display.
func IngredientLine(ingredient models.Ingredient) string {
	return fmt.Sprintf("%s - %s %s", ingredient.Name, ingredient.Quantity, models.UnitShort(ingredient.Measurement))
}
