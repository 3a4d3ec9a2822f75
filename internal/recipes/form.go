package recipes

import (
	"errors"
	"strings"

	"cookbook/models"
)

// ErrEmptyTitle rejects drafts whose title is empty after trimming. No
// persistence is attempted for an invalid draft.
var ErrEmptyTitle = errors.New("recipe title cannot be empty")

// Draft is the mutable state of the recipe form. A zero ID means the draft
// creates a new recipe; a prior id means it edits an existing one. Notes and
// rating are not part of the form and are edited from the detail screen.
type Draft struct {
	ID           int64
	Title        string
	Instructions string
	Tags         string
	Ingredients  []models.Ingredient
}

// NewDraft returns an empty draft for the create flow.
func NewDraft() Draft {
	return Draft{Ingredients: []models.Ingredient{}}
}

// DraftFromRecipe pre-populates a draft from an existing recipe for editing.
func DraftFromRecipe(recipe models.Recipe) Draft {
	ingredients := make([]models.Ingredient, len(recipe.Ingredients))
	copy(ingredients, recipe.Ingredients)
	return Draft{
		ID:           recipe.ID,
		Title:        recipe.Title,
		Instructions: recipe.Instructions,
		Tags:         recipe.Tags,
		Ingredients:  ingredients,
	}
}

// IsNew reports whether saving the draft creates a recipe rather than
// updating one.
func (d Draft) IsNew() bool {
	return d.ID == 0
}

// AddIngredient appends an empty ingredient row with the catalog's default
// unit preselected.
func (d *Draft) AddIngredient() {
	d.Ingredients = append(d.Ingredients, models.Ingredient{
		Measurement: models.DefaultUnitCode(),
	})
}

// RemoveIngredient drops the row at index. Out-of-range indexes are ignored.
func (d *Draft) RemoveIngredient(index int) {
	if index < 0 || index >= len(d.Ingredients) {
		return
	}
	d.Ingredients = append(d.Ingredients[:index], d.Ingredients[index+1:]...)
}

// Validate checks the draft's save-time invariants.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Recipe converts the draft into a persistable record. Ingredient rows with
// an empty trimmed name or quantity are silently dropped; they are never
// persisted.
func (d Draft) Recipe() models.Recipe {
	kept := make([]models.Ingredient, 0, len(d.Ingredients))
	for _, ingredient := range d.Ingredients {
		if strings.TrimSpace(ingredient.Name) == "" || strings.TrimSpace(ingredient.Quantity) == "" {
			continue
		}
		kept = append(kept, ingredient)
	}

	return models.Recipe{
		ID:           d.ID,
		Title:        d.Title,
		Ingredients:  kept,
		Instructions: d.Instructions,
		Tags:         d.Tags,
	}
}

// Patch converts the draft into the field set an update is allowed to touch.
func (d Draft) Patch() Patch {
	recipe := d.Recipe()
	return Patch{
		Title:        recipe.Title,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		Tags:         recipe.Tags,
	}
}
