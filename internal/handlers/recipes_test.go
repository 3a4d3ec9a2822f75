package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"cookbook/models"
)

func TestRecipeResourceUnknownPaths(t *testing.T) {
	_, _, cleanup := withTestRepository(t)
	t.Cleanup(cleanup)

	for _, target := range []string{
		"/app/recipes/not-a-number",
		"/app/recipes/0",
		"/app/recipes/123/unknown",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		RecipeResource(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %q, got %d", target, w.Code)
		}
	}
}

func TestRecipeResourceNewForm(t *testing.T) {
	_, _, cleanup := withTestRepository(t)
	t.Cleanup(cleanup)

	req := httptest.NewRequest(http.MethodGet, "/app/recipes/new", nil)
	w := httptest.NewRecorder()
	RecipeResource(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `action="/app/recipes"`) {
		t.Fatal("expected create form to post to the collection path")
	}
	if !strings.Contains(body, `name="ingredient_name"`) {
		t.Fatal("expected the blank ingredient row")
	}
}

func TestCreateRecipe(t *testing.T) {
	_, repo, cleanup := withTestRepository(t)
	t.Cleanup(cleanup)
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	values := url.Values{
		"action":                 {"save"},
		"title":                  {"Sourdough Bread"},
		"instructions":           {"Mix, proof, bake."},
		"tags":                   {"bread"},
		"ingredient_name":        {"Flour", ""},
		"ingredient_quantity":    {"500", ""},
		"ingredient_measurement": {"g", "g"},
	}
	req := sessionRequest(t, sm, formRequest(t, "/app/recipes", values))
	w := httptest.NewRecorder()
	RecipeResource(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after save, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/app" {
		t.Fatalf("expected redirect to /app, got %q", loc)
	}

	all := repo.List(req.Context())
	if len(all) != 1 {
		t.Fatalf("expected one persisted recipe, got %d", len(all))
	}
	created := all[0]
	if created.Title != "Sourdough Bread" || created.ID == 0 {
		t.Fatalf("unexpected persisted recipe %+v", created)
	}
	if len(created.Ingredients) != 1 {
		t.Fatalf("expected the blank ingredient row to be dropped, got %d rows", len(created.Ingredients))
	}
	if created.Ingredients[0].Name != "Flour" || created.Ingredients[0].Measurement != "g" {
		t.Fatalf("unexpected ingredient %+v", created.Ingredients[0])
	}
}

func TestCreateRecipeRejectsEmptyTitle(t *testing.T) {
	_, repo, cleanup := withTestRepository(t)
	t.Cleanup(cleanup)
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	values := url.Values{
		"action": {"save"},
		"title":  {"   "},
	}
	req := sessionRequest(t, sm, formRequest(t, "/app/recipes", values))
	w := httptest.NewRecorder()
	RecipeResource(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected form to re-render, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Recipe title cannot be empty") {
		t.Fatal("expected validation message in response")
	}
	if got := len(repo.List(req.Context())); got != 0 {
		t.Fatalf("expected nothing persisted, got %d recipes", got)
	}
}

func TestFormRowActions(t *testing.T) {
	_, repo, cleanup := withTestRepository(t)
	t.Cleanup(cleanup)
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	values := url.Values{
		"action":                 {"add"},
		"title":                  {"Draft"},
		"ingredient_name":        {"Flour"},
		"ingredient_quantity":    {"500"},
		"ingredient_measurement": {"g"},
	}
	req := sessionRequest(t, sm, formRequest(t, "/app/recipes", values))
	w := httptest.NewRecorder()
	RecipeResource(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected form to re-render, got %d", w.Code)
	}
	if got := strings.Count(w.Body.String(), `name="ingredient_name"`); got != 2 {
		t.Fatalf("expected two ingredient rows after add, got %d", got)
	}
	if got := len(repo.List(req.Context())); got != 0 {
		t.Fatalf("expected add action not to persist, got %d recipes", got)
	}

	values.Set("action", "remove:0")
	req = sessionRequest(t, sm, formRequest(t, "/app/recipes", values))
	w = httptest.NewRecorder()
	RecipeResource(w, req)

	if got := strings.Count(w.Body.String(), `name="ingredient_name"`); got != 0 {
		t.Fatalf("expected zero ingredient rows after remove, got %d", got)
	}
}

func TestEditRecipe(t *testing.T) {
	_, repo, cleanup := withTestRepository(t)
	t.Cleanup(cleanup)
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	created := seedRecipe(t, repo, models.Recipe{
		Title:       "Sourdough Bread",
		Notes:       "Family favorite",
		Ingredients: []models.Ingredient{{Name: "Flour", Quantity: "500", Measurement: "g"}},
	})

	req := sessionRequest(t, sm, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/app/recipes/%d/edit", created.ID), nil))
	w := httptest.NewRecorder()
	RecipeResource(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected edit form, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), fmt.Sprintf(`action="/app/recipes/%d"`, created.ID)) {
		t.Fatal("expected edit form to post back to the recipe path")
	}

	values := url.Values{
		"action":                 {"save"},
		"title":                  {"Rye Bread"},
		"instructions":           {"Use rye flour."},
		"ingredient_name":        {"Rye flour"},
		"ingredient_quantity":    {"400"},
		"ingredient_measurement": {"g"},
	}
	req = sessionRequest(t, sm, formRequest(t, fmt.Sprintf("/app/recipes/%d", created.ID), values))
	w = httptest.NewRecorder()
	RecipeResource(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after edit save, got %d", w.Code)
	}

	updated, ok := repo.Find(req.Context(), created.ID)
	if !ok {
		t.Fatal("expected recipe to still exist")
	}
	if updated.Title != "Rye Bread" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
	if updated.Notes != "Family favorite" {
		t.Fatalf("expected notes to survive the form save, got %q", updated.Notes)
	}
}

func TestShowRecipeDetail(t *testing.T) {
	_, repo, cleanup := withTestRepository(t)
	t.Cleanup(cleanup)
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	created := seedRecipe(t, repo, models.Recipe{Title: "Sourdough Bread"})

	req := sessionRequest(t, sm, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/app/recipes/%d", created.ID), nil))
	w := httptest.NewRecorder()
	RecipeResource(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Sourdough Bread") {
		t.Fatal("expected recipe title on detail screen")
	}

	req = sessionRequest(t, sm, httptest.NewRequest(http.MethodGet, "/app/recipes/999999", nil))
	w = httptest.NewRecorder()
	RecipeResource(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown recipe, got %d", w.Code)
	}
}

func TestToggleFavoriteAction(t *testing.T) {
	_, repo, cleanup := withTestRepository(t)
	t.Cleanup(cleanup)
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	created := seedRecipe(t, repo, models.Recipe{Title: "Sourdough Bread"})
	target := fmt.Sprintf("/app/recipes/%d/favorite", created.ID)

	req := sessionRequest(t, sm, formRequest(t, target, url.Values{}))
	w := httptest.NewRecorder()
	RecipeResource(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if !repo.FavoriteIDs(req.Context())[created.ID] {
		t.Fatal("expected recipe to be favorited")
	}

	req = sessionRequest(t, sm, formRequest(t, target, url.Values{}))
	RecipeResource(httptest.NewRecorder(), req)
	if repo.FavoriteIDs(req.Context())[created.ID] {
		t.Fatal("expected second toggle to unfavorite")
	}
}

func TestSetRatingAction(t *testing.T) {
	_, repo, cleanup := withTestRepository(t)
	t.Cleanup(cleanup)
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	created := seedRecipe(t, repo, models.Recipe{Title: "Sourdough Bread"})
	target := fmt.Sprintf("/app/recipes/%d/rating", created.ID)

	req := sessionRequest(t, sm, formRequest(t, target, url.Values{"rating": {"4.5"}}))
	w := httptest.NewRecorder()
	RecipeResource(w, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", w.Code)
	}

	updated, _ := repo.Find(req.Context(), created.ID)
	if updated.Rating == nil || *updated.Rating != 4.5 {
		t.Fatalf("expected rating 4.5, got %v", updated.Rating)
	}

	// An empty value clears the rating.
	req = sessionRequest(t, sm, formRequest(t, target, url.Values{"rating": {""}}))
	RecipeResource(httptest.NewRecorder(), req)
	updated, _ = repo.Find(req.Context(), created.ID)
	if updated.Rating != nil {
		t.Fatalf("expected rating cleared, got %v", *updated.Rating)
	}

	// Out-of-range values flash an alert and change nothing.
	req = sessionRequest(t, sm, formRequest(t, target, url.Values{"rating": {"7"}}))
	RecipeResource(httptest.NewRecorder(), req)
	if got := sm.PopString(req.Context(), sessionAlertKey); !strings.Contains(got, "between 0 and 5") {
		t.Fatalf("expected range alert, got %q", got)
	}
}

func TestSetNotesAction(t *testing.T) {
	_, repo, cleanup := withTestRepository(t)
	t.Cleanup(cleanup)
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	created := seedRecipe(t, repo, models.Recipe{Title: "Sourdough Bread"})

	req := sessionRequest(t, sm, formRequest(t,
		fmt.Sprintf("/app/recipes/%d/notes", created.ID),
		url.Values{"notes": {"Needs more salt next time."}},
	))
	w := httptest.NewRecorder()
	RecipeResource(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	updated, _ := repo.Find(req.Context(), created.ID)
	if updated.Notes != "Needs more salt next time." {
		t.Fatalf("unexpected notes %q", updated.Notes)
	}
}

func TestDeleteRecipeAction(t *testing.T) {
	_, repo, cleanup := withTestRepository(t)
	t.Cleanup(cleanup)
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)

	created := seedRecipe(t, repo, models.Recipe{Title: "Sourdough Bread"})
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	if _, err := repo.ToggleFavorite(ctx, created); err != nil {
		t.Fatalf("failed to favorite recipe: %v", err)
	}

	req := sessionRequest(t, sm, formRequest(t, fmt.Sprintf("/app/recipes/%d/delete", created.ID), url.Values{}))
	w := httptest.NewRecorder()
	RecipeResource(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/app" {
		t.Fatalf("expected redirect to /app, got %q", loc)
	}
	if _, ok := repo.Find(req.Context(), created.ID); ok {
		t.Fatal("expected recipe to be deleted")
	}
	if repo.FavoriteIDs(req.Context())[created.ID] {
		t.Fatal("expected favorite copy to be deleted too")
	}
}

func TestDraftFromForm(t *testing.T) {
	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	values := url.Values{
		"title":                  {"Pancakes"},
		"instructions":           {"Whisk and fry."},
		"tags":                   {"breakfast"},
		"ingredient_name":        {"Flour", "Milk"},
		"ingredient_quantity":    {"200", "300"},
		"ingredient_measurement": {"g", ""},
	}
	req := sessionRequest(t, sm, formRequest(t, "/app/recipes", values))
	if err := req.ParseForm(); err != nil {
		t.Fatalf("failed to parse form: %v", err)
	}

	draft := draftFromForm(req, 0)
	if draft.Title != "Pancakes" || len(draft.Ingredients) != 2 {
		t.Fatalf("unexpected draft %+v", draft)
	}
	if draft.Ingredients[1].Measurement != models.DefaultUnitCode() {
		t.Fatalf("expected blank unit to fall back to default, got %q", draft.Ingredients[1].Measurement)
	}
}
