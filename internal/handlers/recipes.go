package handlers

import (
	"fmt"
	"net/http"
	"strings"

	applog "cookbook/internal/log"
	"cookbook/internal/views/pages"
)

// RecipeResource dispatches all recipe screens and actions under
// /app/recipes. Paths are parsed here rather than in the router, so the
// whole resource hangs off two mux entries.
//
//	POST /app/recipes               save a new recipe (or resize its rows)
//	GET  /app/recipes/new           empty form
//	GET  /app/recipes/{id}          detail screen
//	POST /app/recipes/{id}          save an edited recipe
//	GET  /app/recipes/{id}/edit     pre-populated form
//	POST /app/recipes/{id}/favorite toggle favorite membership
//	POST /app/recipes/{id}/rating   set or clear the rating
//	POST /app/recipes/{id}/notes    save notes
//	POST /app/recipes/{id}/delete   delete from both collections
func RecipeResource(w http.ResponseWriter, r *http.Request) {
	if repository == nil {
		applog.Debug(r.Context(), "recipe request without repository")
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/app/recipes")
	path = strings.Trim(path, "/")

	if path == "" {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		submitRecipeForm(w, r, 0)
		return
	}

	if path == "new" {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		renderRecipeForm(w, r, pages.FormView{Draft: newRecipeDraft(), Theme: currentTheme(r)})
		return
	}

	segments := strings.SplitN(path, "/", 2)
	id := pages.ParseID(segments[0])
	if id == 0 {
		applog.Debug(r.Context(), "invalid recipe identifier", "identifier", segments[0])
		http.NotFound(w, r)
		return
	}

	if len(segments) == 1 {
		switch r.Method {
		case http.MethodGet:
			showRecipe(w, r, id)
		case http.MethodPost:
			submitRecipeForm(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	switch segments[1] {
	case "edit":
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		editRecipe(w, r, id)
	case "favorite":
		postOnly(w, r, id, toggleFavorite)
	case "rating":
		postOnly(w, r, id, setRating)
	case "notes":
		postOnly(w, r, id, setNotes)
	case "delete":
		postOnly(w, r, id, deleteRecipe)
	default:
		http.NotFound(w, r)
	}
}

func postOnly(w http.ResponseWriter, r *http.Request, id int64, action func(http.ResponseWriter, *http.Request, int64)) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	action(w, r, id)
}

func showRecipe(w http.ResponseWriter, r *http.Request, id int64) {
	recipe, ok := repository.Find(r.Context(), id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	view := pages.DetailView{
		Recipe:   recipe,
		Favorite: repository.FavoriteIDs(r.Context())[id],
		Alert:    popAlert(r),
		Theme:    currentTheme(r),
	}
	if err := pages.Detail(view).Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render detail screen", "error", err, "id", id)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toggleFavorite(w http.ResponseWriter, r *http.Request, id int64) {
	recipe, ok := repository.Find(r.Context(), id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if _, err := repository.ToggleFavorite(r.Context(), recipe); err != nil {
		applog.Error(r.Context(), "failed to toggle favorite", "error", err, "id", id)
		putAlert(r, "Failed to update favorites")
	}
	redirectToRecipe(w, r, id)
}

func setRating(w http.ResponseWriter, r *http.Request, id int64) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	rating, ok := pages.ParseRating(r.PostFormValue("rating"))
	if !ok {
		putAlert(r, "Rating must be between 0 and 5")
		redirectToRecipe(w, r, id)
		return
	}

	if err := repository.SetRating(r.Context(), id, rating); err != nil {
		applog.Error(r.Context(), "failed to save rating", "error", err, "id", id)
		putAlert(r, "Failed to save the rating")
	}
	redirectToRecipe(w, r, id)
}

func setNotes(w http.ResponseWriter, r *http.Request, id int64) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	if err := repository.SetNotes(r.Context(), id, r.PostFormValue("notes")); err != nil {
		applog.Error(r.Context(), "failed to save notes", "error", err, "id", id)
		putAlert(r, "Failed to save the notes")
	}
	redirectToRecipe(w, r, id)
}

func deleteRecipe(w http.ResponseWriter, r *http.Request, id int64) {
	if err := repository.Delete(r.Context(), id); err != nil {
		applog.Error(r.Context(), "failed to delete recipe", "error", err, "id", id)
		putAlert(r, "Failed to delete the recipe")
		redirectToRecipe(w, r, id)
		return
	}
	redirectToApp(w, r)
}

func redirectToRecipe(w http.ResponseWriter, r *http.Request, id int64) {
	target := fmt.Sprintf("/app/recipes/%d", id)
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
