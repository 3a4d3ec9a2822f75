package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"cookbook/internal/recipes"
	"cookbook/internal/views/layout"
	"cookbook/internal/views/theme"

	"cookbook/internal/views/components"
)

// FormView carries the draft being edited plus any validation message.
type FormView struct {
	Draft recipes.Draft
	Alert string
	Theme theme.WorkspaceTheme
}

// Form renders the add/edit recipe screen. Ingredient rows are a dynamic
// sequence: the add and per-row remove buttons post back with an action
// value so the handler can resize the draft without saving it.
func Form(view FormView) templ.Component {
	title := "Add Recipe"
	if !view.Draft.IsNew() {
		title = "Edit Recipe"
	}
	return layout.Layout(title, formContent(view), view.Theme)
}

func formContent(view FormView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		draft := view.Draft

		if err := components.AlertBanner("error", view.Alert).Render(ctx, w); err != nil {
			return err
		}

		action := "/app/recipes"
		if !draft.IsNew() {
			action = fmt.Sprintf("/app/recipes/%d", draft.ID)
		}
		if _, err := fmt.Fprintf(w,
			`<form method="post" action="%s" class="recipe-form">`+
				`<label>Title <input type="text" name="title" value="%s" placeholder="Title"></label>`+
				`<fieldset class="ingredients"><legend>Ingredients</legend>`,
			action, templ.EscapeString(draft.Title),
		); err != nil {
			return err
		}

		for i, ingredient := range draft.Ingredients {
			if _, err := fmt.Fprintf(w,
				`<div class="ingredient-row">`+
					`<button type="submit" name="action" value="remove:%d" class="remove-row" aria-label="Remove ingredient">X</button>`+
					`<input type="text" name="ingredient_name" value="%s" placeholder="Name">`+
					`<input type="text" name="ingredient_quantity" value="%s" placeholder="Quantity">`+
					`<select name="ingredient_measurement">`,
				i, templ.EscapeString(ingredient.Name), templ.EscapeString(ingredient.Quantity),
			); err != nil {
				return err
			}
			for _, unit := range UnitOptions() {
				if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
					templ.EscapeString(unit.Code),
					selectedAttr(unit.Code == ingredient.Measurement),
					templ.EscapeString(unit.Short),
				); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</select></div>`); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w,
			`<button type="submit" name="action" value="add">Add Ingredient</button></fieldset>`+
				`<label>Instructions <textarea name="instructions" rows="10" placeholder="Instructions">%s</textarea></label>`+
				`<label>Tags <input type="text" name="tags" value="%s" placeholder="Tags"></label>`+
				`<button type="submit" name="action" value="save">Save Recipe</button>`+
				`</form>`,
			templ.EscapeString(draft.Instructions), templ.EscapeString(draft.Tags),
		)
		return err
	})
}
