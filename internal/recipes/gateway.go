// Package recipes holds the recipe collection's data management: the
// persistence gateway over the key-value store, whole-collection repository
// operations, the list query engine, and recipe form normalization.
package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cookbook/internal/kvstore"
	applog "cookbook/internal/log"
	"cookbook/models"
)

// Store keys for the two persisted collections. Each holds one JSON array of
// recipe records; favoriteRecipes stores full duplicated copies, not ids.
const (
	CollectionRecipes   = "recipes"
	CollectionFavorites = "favoriteRecipes"
)

// Gateway wraps the key-value store with typed collection reads and writes.
type Gateway struct {
	store kvstore.Store
}

// NewGateway builds a gateway over the provided store.
func NewGateway(store kvstore.Store) *Gateway {
	return &Gateway{store: store}
}

// Load reads a collection. Absent keys, null blobs, and read or decode
// failures all degrade to an empty collection; failures are logged but not
// returned, so a corrupt blob never takes a screen down. Write failures, by
// contrast, are surfaced to the caller via Save.
func (g *Gateway) Load(ctx context.Context, collection string) []models.Recipe {
	value, ok, err := g.store.Get(ctx, collection)
	if err != nil {
		applog.Error(ctx, "failed to read collection, defaulting to empty", "collection", collection, "error", err)
		return []models.Recipe{}
	}
	if !ok {
		return []models.Recipe{}
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == "null" {
		return []models.Recipe{}
	}

	var recipes []models.Recipe
	if err := json.Unmarshal([]byte(trimmed), &recipes); err != nil {
		applog.Error(ctx, "failed to decode collection, defaulting to empty", "collection", collection, "error", err)
		return []models.Recipe{}
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return recipes
}

// Save serializes the collection and writes it back under its key. Any
// failure is returned so the caller can surface an alert; the previously
// stored blob is left untouched by a failed write.
func (g *Gateway) Save(ctx context.Context, collection string, recipes []models.Recipe) error {
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	data, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("serialize collection %q: %w", collection, err)
	}
	if err := g.store.Set(ctx, collection, string(data)); err != nil {
		return fmt.Errorf("save collection %q: %w", collection, err)
	}

	applog.Debug(ctx, "collection saved", "collection", collection, "count", len(recipes))
	return nil
}
