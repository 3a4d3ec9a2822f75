package handlers

import (
	"errors"
	"net/http"
	"strings"

	applog "cookbook/internal/log"
	"cookbook/internal/recipes"
	"cookbook/internal/views/pages"
	"cookbook/models"
)

// newRecipeDraft builds the empty create-flow draft with one blank
// ingredient row ready to fill in.
func newRecipeDraft() recipes.Draft {
	draft := recipes.NewDraft()
	draft.AddIngredient()
	return draft
}

func editRecipe(w http.ResponseWriter, r *http.Request, id int64) {
	recipe, ok := repository.Find(r.Context(), id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	renderRecipeForm(w, r, pages.FormView{Draft: recipes.DraftFromRecipe(recipe), Theme: currentTheme(r)})
}

// submitRecipeForm handles every POST from the form screen. The add and
// remove buttons post back with an action value and only resize the draft;
// nothing is persisted until the save action validates.
func submitRecipeForm(w http.ResponseWriter, r *http.Request, id int64) {
	if err := r.ParseForm(); err != nil {
		applog.Debug(r.Context(), "failed to parse recipe form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	draft := draftFromForm(r, id)
	action := r.PostFormValue("action")

	switch {
	case action == "add":
		draft.AddIngredient()
		renderRecipeForm(w, r, pages.FormView{Draft: draft, Theme: currentTheme(r)})
		return
	case strings.HasPrefix(action, "remove:"):
		draft.RemoveIngredient(int(pages.ParseID(strings.TrimPrefix(action, "remove:"))))
		renderRecipeForm(w, r, pages.FormView{Draft: draft, Theme: currentTheme(r)})
		return
	}

	if err := draft.Validate(); err != nil {
		message := "Failed to save the recipe"
		if errors.Is(err, recipes.ErrEmptyTitle) {
			message = "Recipe title cannot be empty"
		}
		renderRecipeForm(w, r, pages.FormView{Draft: draft, Alert: message, Theme: currentTheme(r)})
		return
	}

	var err error
	if draft.IsNew() {
		_, err = repository.Create(r.Context(), draft.Recipe())
	} else {
		err = repository.Update(r.Context(), draft.ID, draft.Patch())
	}
	if err != nil {
		applog.Error(r.Context(), "failed to save recipe", "error", err, "id", draft.ID)
		renderRecipeForm(w, r, pages.FormView{Draft: draft, Alert: "Failed to save the recipe", Theme: currentTheme(r)})
		return
	}

	redirectToApp(w, r)
}

// draftFromForm rebuilds the draft from the submitted field values. The
// three ingredient inputs repeat per row and arrive as parallel slices.
func draftFromForm(r *http.Request, id int64) recipes.Draft {
	draft := recipes.Draft{
		ID:           id,
		Title:        r.PostFormValue("title"),
		Instructions: r.PostFormValue("instructions"),
		Tags:         r.PostFormValue("tags"),
	}

	names := r.PostForm["ingredient_name"]
	quantities := r.PostForm["ingredient_quantity"]
	units := r.PostForm["ingredient_measurement"]

	rows := len(names)
	if len(quantities) > rows {
		rows = len(quantities)
	}
	if len(units) > rows {
		rows = len(units)
	}

	draft.Ingredients = make([]models.Ingredient, 0, rows)
	for i := 0; i < rows; i++ {
		ingredient := models.Ingredient{Measurement: models.DefaultUnitCode()}
		if i < len(names) {
			ingredient.Name = names[i]
		}
		if i < len(quantities) {
			ingredient.Quantity = quantities[i]
		}
		if i < len(units) && strings.TrimSpace(units[i]) != "" {
			ingredient.Measurement = units[i]
		}
		draft.Ingredients = append(draft.Ingredients, ingredient)
	}

	return draft
}

func renderRecipeForm(w http.ResponseWriter, r *http.Request, view pages.FormView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Form(view).Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render recipe form", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
