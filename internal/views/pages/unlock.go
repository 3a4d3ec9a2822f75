package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"cookbook/internal/views/components"
	"cookbook/internal/views/layout"
	"cookbook/internal/views/theme"
)

// Unlock renders the passcode gate shown when an app passcode is configured.
func Unlock(message string, th theme.WorkspaceTheme) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := components.AlertBanner("error", message).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			`<form method="post" action="/unlock" class="unlock-form">`+
				`<label>Passcode <input type="password" name="passcode" autofocus></label>`+
				`<button type="submit">Unlock</button></form>`,
		)
		return err
	})
	return layout.Layout("Unlock", content, th)
}
