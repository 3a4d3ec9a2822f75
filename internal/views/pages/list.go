package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"cookbook/internal/recipes"
	"cookbook/internal/views/components"
	"cookbook/internal/views/layout"
	"cookbook/internal/views/theme"
	"cookbook/models"
)

// ListView aggregates everything the list screen renders: the derived
// recipe list, favorite membership for row markers, and the current filter
// state so the toolbar controls reflect it back.
type ListView struct {
	Recipes   []models.Recipe
	Favorites map[int64]bool
	Filters   recipes.ListFilters
	Alert     string
	Theme     theme.WorkspaceTheme
}

// List renders the full recipe list screen.
func List(view ListView) templ.Component {
	return layout.Layout("Recipes", listContent(view), view.Theme)
}

// ListPartial renders only the screen body, for in-place swaps.
func ListPartial(view ListView) templ.Component {
	return listContent(view)
}

func listContent(view ListView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := components.AlertBanner("error", view.Alert).Render(ctx, w); err != nil {
			return err
		}
		if err := listToolbar(view).Render(ctx, w); err != nil {
			return err
		}

		if len(view.Recipes) == 0 {
			return components.EmptyState("No recipes yet. Add your first one.").Render(ctx, w)
		}

		if _, err := io.WriteString(w, `<ul class="recipe-list">`); err != nil {
			return err
		}
		for _, recipe := range view.Recipes {
			if _, err := fmt.Fprintf(w,
				`<li class="recipe-row"><a href="/app/recipes/%d">%s</a>`,
				recipe.ID, templ.EscapeString(recipe.Title),
			); err != nil {
				return err
			}
			if err := components.FavoriteMark(view.Favorites[recipe.ID]).Render(ctx, w); err != nil {
				return err
			}
			if err := components.StarRating(recipe.Rating).Render(ctx, w); err != nil {
				return err
			}
			if recipe.Tags != "" {
				if _, err := fmt.Fprintf(w, `<span class="recipe-tags">Tags: %s</span>`, templ.EscapeString(recipe.Tags)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</li>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

func listToolbar(view ListView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<div class="list-toolbar"><a class="button" href="/app/recipes/new">Add Recipe</a>`+
				`<form method="get" action="/app" class="list-filters">`+
				`<input type="search" name="q" placeholder="Search recipes" value="%s">`+
				`<label><input type="checkbox" name="favorites" value="1"%s> Favorites only</label>`,
			templ.EscapeString(view.Filters.Query), checkedAttr(view.Filters.FavoritesOnly),
		); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w,
			`<select name="sort">`+
				`<option value=""%s>Unsorted</option>`+
				`<option value="title"%s>Title</option>`+
				`<option value="rating"%s>Rating</option>`+
				`</select>`,
			selectedAttr(view.Filters.Sort == recipes.SortNone),
			selectedAttr(view.Filters.Sort == recipes.SortByTitle),
			selectedAttr(view.Filters.Sort == recipes.SortByRating),
		); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w,
			`<select name="dir">`+
				`<option value="asc"%s>Ascending</option>`+
				`<option value="desc"%s>Descending</option>`+
				`</select>`+
				`<button type="submit">Apply</button></form>`,
			selectedAttr(!view.Filters.Descending),
			selectedAttr(view.Filters.Descending),
		); err != nil {
			return err
		}

		if err := themePicker(view.Theme).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<a class="button" href="/app/export">Export</a></div>`)
		return err
	})
}

func themePicker(active theme.WorkspaceTheme) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<form method="post" action="/app/preferences/update" class="theme-picker"><select name="theme">`,
		); err != nil {
			return err
		}
		for _, option := range theme.Options() {
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
				templ.EscapeString(option.Value),
				selectedAttr(option.Value == active.Key),
				templ.EscapeString(option.Label),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select><button type="submit">Theme</button></form>`)
		return err
	})
}

func checkedAttr(checked bool) string {
	if checked {
		return " checked"
	}
	return ""
}

func selectedAttr(selected bool) string {
	if selected {
		return " selected"
	}
	return ""
}
