package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"cookbook/internal/views/components"
	"cookbook/internal/views/layout"
	"cookbook/internal/views/theme"
	"cookbook/models"
)

// DetailView carries the recipe plus its derived favorite membership.
type DetailView struct {
	Recipe   models.Recipe
	Favorite bool
	Alert    string
	Theme    theme.WorkspaceTheme
}

// Detail renders the recipe detail screen: read-only recipe content plus the
// notes, rating, favorite, edit, and delete controls.
func Detail(view DetailView) templ.Component {
	return layout.Layout(view.Recipe.Title, detailContent(view), view.Theme)
}

func detailContent(view DetailView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		recipe := view.Recipe

		if err := components.AlertBanner("error", view.Alert).Render(ctx, w); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<article class="recipe-detail"><h1>%s</h1>`, templ.EscapeString(recipe.Title)); err != nil {
			return err
		}
		if err := components.FavoriteMark(view.Favorite).Render(ctx, w); err != nil {
			return err
		}
		if err := components.StarRating(recipe.Rating).Render(ctx, w); err != nil {
			return err
		}
		if recipe.Tags != "" {
			if _, err := fmt.Fprintf(w, `<p class="recipe-tags">Tags: %s</p>`, templ.EscapeString(recipe.Tags)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<h2>Ingredients</h2><ul class="ingredient-list">`); err != nil {
			return err
		}
		for _, ingredient := range recipe.Ingredients {
			if _, err := fmt.Fprintf(w, `<li>%s</li>`, templ.EscapeString(IngredientLine(ingredient))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `</ul><h2>Instructions</h2><p class="instructions">%s</p>`, templ.EscapeString(recipe.Instructions)); err != nil {
			return err
		}

		if err := ratingForm(recipe).Render(ctx, w); err != nil {
			return err
		}
		if err := notesForm(recipe).Render(ctx, w); err != nil {
			return err
		}

		favoriteLabel := "Add to Favorites"
		if view.Favorite {
			favoriteLabel = "Remove from Favorites"
		}
		_, err := fmt.Fprintf(w,
			`<div class="detail-controls">`+
				`<form method="post" action="/app/recipes/%d/favorite"><button type="submit">%s</button></form>`+
				`<a class="button" href="/app/recipes/%d/edit">Edit Recipe</a>`+
				`<form method="post" action="/app/recipes/%d/delete"><button type="submit" class="danger">Delete Recipe</button></form>`+
				`</div></article>`,
			recipe.ID, favoriteLabel, recipe.ID, recipe.ID,
		)
		return err
	})
}

func ratingForm(recipe models.Recipe) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<form method="post" action="/app/recipes/%d/rating" class="rating-form"><label>Rating <select name="rating">`+
				`<option value=""%s>Unrated</option>`,
			recipe.ID, selectedAttr(recipe.Rating == nil),
		); err != nil {
			return err
		}
		for _, choice := range RatingChoices() {
			value := FormatRatingValue(choice)
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
				value, selectedAttr(recipe.Rating != nil && *recipe.Rating == choice), value,
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select></label><button type="submit">Save Rating</button></form>`)
		return err
	})
}

func notesForm(recipe models.Recipe) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<form method="post" action="/app/recipes/%d/notes" class="notes-form">`+
				`<label>Notes <textarea name="notes" rows="4">%s</textarea></label>`+
				`<button type="submit">Save Notes</button></form>`,
			recipe.ID, templ.EscapeString(recipe.Notes),
		)
		return err
	})
}
