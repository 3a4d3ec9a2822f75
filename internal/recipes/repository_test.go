package recipes

import (
	"context"
	"errors"
	"testing"
	"time"

	"cookbook/internal/kvstore"
	"cookbook/models"
)

func newTestRepository(t *testing.T) (*Repository, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	return NewRepository(NewGateway(store)), store
}

func TestCreateAssignsFreshUniqueIDs(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, models.Recipe{Title: "Soup"})
	if err != nil {
		t.Fatalf("create first recipe: %v", err)
	}
	second, err := repo.Create(ctx, models.Recipe{Title: "Bread"})
	if err != nil {
		t.Fatalf("create second recipe: %v", err)
	}

	if first.ID == 0 || second.ID == 0 {
		t.Fatal("expected assigned ids")
	}
	if second.ID <= first.ID {
		t.Fatalf("expected monotonically increasing ids, got %d then %d", first.ID, second.ID)
	}
	if got := repo.List(ctx); len(got) != 2 {
		t.Fatalf("expected collection length 2, got %d", len(got))
	}
}

func TestCreateBumpsIDPastClockCollision(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	frozen := time.UnixMilli(1700000000000)
	repo.now = func() time.Time { return frozen }

	first, err := repo.Create(ctx, models.Recipe{Title: "Soup"})
	if err != nil {
		t.Fatalf("create first recipe: %v", err)
	}
	second, err := repo.Create(ctx, models.Recipe{Title: "Bread"})
	if err != nil {
		t.Fatalf("create second recipe: %v", err)
	}

	if first.ID != 1700000000000 {
		t.Fatalf("expected timestamp-derived id, got %d", first.ID)
	}
	if second.ID != first.ID+1 {
		t.Fatalf("expected collision to bump the id, got %d after %d", second.ID, first.ID)
	}
}

func TestUpdateUnknownIDIsSilentNoOp(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Recipe{Title: "Soup"})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	if err := repo.Update(ctx, created.ID+999, Patch{Title: "Ghost"}); err != nil {
		t.Fatalf("expected unknown id update to succeed silently, got %v", err)
	}
	got, ok := repo.Find(ctx, created.ID)
	if !ok || got.Title != "Soup" {
		t.Fatalf("expected existing recipe untouched, got %+v", got)
	}
}

func TestUpdateDoesNotTouchNotesOrRating(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Recipe{Title: "Soup"})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if err := repo.SetNotes(ctx, created.ID, "Add more basil."); err != nil {
		t.Fatalf("set notes: %v", err)
	}
	rating := 3.5
	if err := repo.SetRating(ctx, created.ID, &rating); err != nil {
		t.Fatalf("set rating: %v", err)
	}

	patch := Patch{
		Title:        "Tomato Soup",
		Instructions: "Blend and heat.",
		Ingredients:  []models.Ingredient{{Name: "Tomato", Quantity: "4", Measurement: "g"}},
	}
	if err := repo.Update(ctx, created.ID, patch); err != nil {
		t.Fatalf("update recipe: %v", err)
	}

	got, ok := repo.Find(ctx, created.ID)
	if !ok {
		t.Fatal("expected recipe to exist")
	}
	if got.Title != "Tomato Soup" || got.Instructions != "Blend and heat." {
		t.Fatalf("expected patched fields, got %+v", got)
	}
	if got.Notes != "Add more basil." {
		t.Fatalf("expected notes to survive a form update, got %q", got.Notes)
	}
	if got.Rating == nil || *got.Rating != 3.5 {
		t.Fatalf("expected rating to survive a form update, got %v", got.Rating)
	}
}

func TestSetRatingNilClearsToUnrated(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Recipe{Title: "Soup"})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	rating := 5.0
	if err := repo.SetRating(ctx, created.ID, &rating); err != nil {
		t.Fatalf("set rating: %v", err)
	}
	if err := repo.SetRating(ctx, created.ID, nil); err != nil {
		t.Fatalf("clear rating: %v", err)
	}
	got, _ := repo.Find(ctx, created.ID)
	if got.Rating != nil {
		t.Fatalf("expected cleared rating, got %v", *got.Rating)
	}
}

func TestDeleteRemovesFromBothCollectionsAndIsIdempotent(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Recipe{Title: "Soup"})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if _, err := repo.ToggleFavorite(ctx, created); err != nil {
		t.Fatalf("favorite recipe: %v", err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete recipe: %v", err)
	}
	if got := repo.List(ctx); len(got) != 0 {
		t.Fatalf("expected recipe removed from canonical collection, got %v", got)
	}
	if got := repo.Favorites(ctx); len(got) != 0 {
		t.Fatalf("expected recipe removed from favorites, got %v", got)
	}

	// Second delete with the same id is a no-op, not an error.
	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("expected idempotent delete, got %v", err)
	}
}

func TestToggleFavoriteIsItsOwnInverse(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Recipe{Title: "Soup"})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	on, err := repo.ToggleFavorite(ctx, created)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !on {
		t.Fatal("expected first toggle to favorite the recipe")
	}
	if !repo.FavoriteIDs(ctx)[created.ID] {
		t.Fatal("expected favorites collection to contain the recipe")
	}

	off, err := repo.ToggleFavorite(ctx, created)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if off {
		t.Fatal("expected second toggle to unfavorite the recipe")
	}
	if len(repo.Favorites(ctx)) != 0 {
		t.Fatal("expected favorites membership restored to its original state")
	}
}

func TestToggleFavoriteStoresDuplicatedCopy(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Recipe{Title: "Soup"})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if _, err := repo.ToggleFavorite(ctx, created); err != nil {
		t.Fatalf("favorite recipe: %v", err)
	}

	// Editing the canonical record does not propagate to the favorited copy.
	if err := repo.Update(ctx, created.ID, Patch{Title: "Renamed"}); err != nil {
		t.Fatalf("update recipe: %v", err)
	}
	favorites := repo.Favorites(ctx)
	if len(favorites) != 1 || favorites[0].Title != "Soup" {
		t.Fatalf("expected favorites to keep the duplicated copy, got %v", favorites)
	}
}

func TestFailedSaveLeavesStoredStateUnchanged(t *testing.T) {
	repo, store := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Recipe{Title: "Soup"})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	store.FailSet = errors.New("store unavailable")
	if _, err := repo.Create(ctx, models.Recipe{Title: "Bread"}); err == nil {
		t.Fatal("expected create to fail when the store is unavailable")
	}
	store.FailSet = nil

	got := repo.List(ctx)
	if len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("expected stored state unchanged after failed save, got %v", got)
	}
}
