package recipes

import (
	"context"
	"errors"
	"testing"

	"cookbook/internal/kvstore"
	"cookbook/models"
)

func TestValidateRejectsWhitespaceTitle(t *testing.T) {
	draft := NewDraft()
	draft.Title = "   "

	if err := draft.Validate(); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestWhitespaceTitleDraftIsNeverPersisted(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	draft := NewDraft()
	draft.Title = "  "
	if err := draft.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
	// The caller stops at validation; nothing reaches the store.
	if got := repo.List(ctx); len(got) != 0 {
		t.Fatalf("expected no record appended, got %v", got)
	}
}

func TestAddIngredientUsesDefaultUnit(t *testing.T) {
	draft := NewDraft()
	draft.AddIngredient()

	if len(draft.Ingredients) != 1 {
		t.Fatalf("expected one ingredient row, got %d", len(draft.Ingredients))
	}
	if got := draft.Ingredients[0].Measurement; got != models.DefaultUnitCode() {
		t.Fatalf("expected default unit %q, got %q", models.DefaultUnitCode(), got)
	}
}

func TestRemoveIngredientByIndex(t *testing.T) {
	draft := NewDraft()
	draft.Ingredients = []models.Ingredient{
		{Name: "Flour"},
		{Name: "Water"},
		{Name: "Salt"},
	}

	draft.RemoveIngredient(1)
	if len(draft.Ingredients) != 2 {
		t.Fatalf("expected two rows after removal, got %d", len(draft.Ingredients))
	}
	if draft.Ingredients[0].Name != "Flour" || draft.Ingredients[1].Name != "Salt" {
		t.Fatalf("expected middle row removed, got %v", draft.Ingredients)
	}

	// Out-of-range indexes are ignored.
	draft.RemoveIngredient(-1)
	draft.RemoveIngredient(5)
	if len(draft.Ingredients) != 2 {
		t.Fatalf("expected out-of-range removals to be no-ops, got %v", draft.Ingredients)
	}
}

func TestRecipeDropsIncompleteIngredientRows(t *testing.T) {
	draft := NewDraft()
	draft.Title = "Bread"
	draft.Ingredients = []models.Ingredient{
		{Name: "", Quantity: "2", Measurement: "cup"},
		{Name: "Flour", Quantity: "  ", Measurement: "g"},
		{Name: "Water", Quantity: "300", Measurement: "ml"},
	}

	recipe := draft.Recipe()
	if len(recipe.Ingredients) != 1 {
		t.Fatalf("expected incomplete rows dropped, got %v", recipe.Ingredients)
	}
	if recipe.Ingredients[0].Name != "Water" {
		t.Fatalf("expected the complete row kept, got %v", recipe.Ingredients)
	}
}

func TestDraftFromRecipeCopiesIngredients(t *testing.T) {
	recipe := models.Recipe{
		ID:    42,
		Title: "Soup",
		Ingredients: []models.Ingredient{
			{Name: "Stock", Quantity: "1", Measurement: "l"},
		},
	}

	draft := DraftFromRecipe(recipe)
	if draft.IsNew() {
		t.Fatal("expected draft with prior id to edit, not create")
	}
	draft.Ingredients[0].Name = "Broth"
	if recipe.Ingredients[0].Name != "Stock" {
		t.Fatal("expected draft to hold a copy of the ingredient rows")
	}
}

func TestDraftSaveFlowCreatesThenUpdates(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := NewRepository(NewGateway(store))
	ctx := context.Background()

	draft := NewDraft()
	draft.Title = "Pancakes"
	draft.AddIngredient()
	draft.Ingredients[0].Name = "Flour"
	draft.Ingredients[0].Quantity = "2"

	if err := draft.Validate(); err != nil {
		t.Fatalf("validate draft: %v", err)
	}
	created, err := repo.Create(ctx, draft.Recipe())
	if err != nil {
		t.Fatalf("create from draft: %v", err)
	}

	edit := DraftFromRecipe(created)
	edit.Title = "Buttermilk Pancakes"
	if err := repo.Update(ctx, edit.ID, edit.Patch()); err != nil {
		t.Fatalf("update from draft: %v", err)
	}

	got, ok := repo.Find(ctx, created.ID)
	if !ok || got.Title != "Buttermilk Pancakes" {
		t.Fatalf("expected updated title, got %+v", got)
	}
	if len(got.Ingredients) != 1 || got.Ingredients[0].Measurement != models.DefaultUnitCode() {
		t.Fatalf("expected ingredient row preserved with default unit, got %v", got.Ingredients)
	}
}
