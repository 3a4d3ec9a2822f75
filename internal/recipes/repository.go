package recipes

import (
	"context"
	"time"

	applog "cookbook/internal/log"
	"cookbook/models"
)

// Repository implements the collection operations. Every mutation is a
// single load-transform-save cycle against the gateway; there is no
// cross-operation locking, matching the single-user model.
type Repository struct {
	gateway *Gateway

	// now is the id clock, replaceable in tests.
	now func() time.Time
}

// NewRepository builds a repository over the provided gateway.
func NewRepository(gateway *Gateway) *Repository {
	return &Repository{
		gateway: gateway,
		now:     time.Now,
	}
}

// List returns the canonical recipe collection.
func (r *Repository) List(ctx context.Context) []models.Recipe {
	return r.gateway.Load(ctx, CollectionRecipes)
}

// Favorites returns the duplicated favorite records.
func (r *Repository) Favorites(ctx context.Context) []models.Recipe {
	return r.gateway.Load(ctx, CollectionFavorites)
}

// FavoriteIDs returns the id set of the favorites collection, which the list
// query engine intersects with when the favorites-only flag is on.
func (r *Repository) FavoriteIDs(ctx context.Context) map[int64]bool {
	favorites := r.Favorites(ctx)
	ids := make(map[int64]bool, len(favorites))
	for _, recipe := range favorites {
		ids[recipe.ID] = true
	}
	return ids
}

// Find returns the recipe with the given id from the canonical collection.
func (r *Repository) Find(ctx context.Context, id int64) (models.Recipe, bool) {
	for _, recipe := range r.List(ctx) {
		if recipe.ID == id {
			return recipe, true
		}
	}
	return models.Recipe{}, false
}

// Create assigns a fresh id to the recipe, appends it to the canonical
// collection, and saves. Ids are millisecond timestamps bumped past any
// collision so they stay unique and monotonically increasing.
func (r *Repository) Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	all := r.List(ctx)
	recipe.ID = r.nextID(all)

	all = append(all, recipe)
	if err := r.gateway.Save(ctx, CollectionRecipes, all); err != nil {
		return models.Recipe{}, err
	}

	applog.Info(ctx, "recipe created", "id", recipe.ID, "title", recipe.Title)
	return recipe, nil
}

func (r *Repository) nextID(existing []models.Recipe) int64 {
	id := r.now().UnixMilli()
	for _, recipe := range existing {
		if recipe.ID >= id {
			id = recipe.ID + 1
		}
	}
	return id
}

// Patch carries the fields the recipe form may replace. Notes and rating are
// edited through their own operations and are never touched by a patch.
type Patch struct {
	Title        string
	Ingredients  []models.Ingredient
	Instructions string
	Tags         string
}

// Update merges the patch into the recipe with the matching id. An unknown
// id is a silent no-op: the collection is written back unchanged.
//
// Favorited copies are deliberately not updated; the favorites collection
// keeps the record as it was when it was favorited.
func (r *Repository) Update(ctx context.Context, id int64, patch Patch) error {
	return r.mutate(ctx, id, func(recipe *models.Recipe) {
		recipe.Title = patch.Title
		recipe.Ingredients = patch.Ingredients
		recipe.Instructions = patch.Instructions
		recipe.Tags = patch.Tags
	})
}

// SetRating stores the rating for a recipe. A nil rating clears it back to
// "unrated". Triggerable from the detail screen without opening the form.
func (r *Repository) SetRating(ctx context.Context, id int64, rating *float64) error {
	return r.mutate(ctx, id, func(recipe *models.Recipe) {
		recipe.Rating = rating
	})
}

// SetNotes stores the free-text notes for a recipe.
func (r *Repository) SetNotes(ctx context.Context, id int64, notes string) error {
	return r.mutate(ctx, id, func(recipe *models.Recipe) {
		recipe.Notes = notes
	})
}

func (r *Repository) mutate(ctx context.Context, id int64, apply func(*models.Recipe)) error {
	all := r.List(ctx)
	for i := range all {
		if all[i].ID == id {
			apply(&all[i])
			break
		}
	}
	return r.gateway.Save(ctx, CollectionRecipes, all)
}

// Delete removes the recipe from both the canonical and the favorites
// collection. Deleting an unknown id is idempotent.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	all := r.List(ctx)
	kept := make([]models.Recipe, 0, len(all))
	for _, recipe := range all {
		if recipe.ID != id {
			kept = append(kept, recipe)
		}
	}
	if err := r.gateway.Save(ctx, CollectionRecipes, kept); err != nil {
		return err
	}

	favorites := r.Favorites(ctx)
	keptFavorites := make([]models.Recipe, 0, len(favorites))
	for _, recipe := range favorites {
		if recipe.ID != id {
			keptFavorites = append(keptFavorites, recipe)
		}
	}
	if err := r.gateway.Save(ctx, CollectionFavorites, keptFavorites); err != nil {
		return err
	}

	applog.Info(ctx, "recipe deleted", "id", id)
	return nil
}

// ToggleFavorite adds the full recipe record to the favorites collection, or
// removes it when already present. It returns the new membership state.
// Applying it twice restores the original state.
func (r *Repository) ToggleFavorite(ctx context.Context, recipe models.Recipe) (bool, error) {
	favorites := r.Favorites(ctx)

	kept := make([]models.Recipe, 0, len(favorites))
	removed := false
	for _, favorite := range favorites {
		if favorite.ID == recipe.ID {
			removed = true
			continue
		}
		kept = append(kept, favorite)
	}

	if !removed {
		kept = append(kept, recipe)
	}

	if err := r.gateway.Save(ctx, CollectionFavorites, kept); err != nil {
		return removed, err
	}
	return !removed, nil
}
