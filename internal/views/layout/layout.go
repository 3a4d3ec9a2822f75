package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"cookbook/internal/views/theme"
)

// Layout wraps page content in the application shell: document head, theme
// classes, and the top navigation bar.
func Layout(title string, content templ.Component, th theme.WorkspaceTheme) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<!doctype html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link rel="stylesheet" href="/assets/app.css"></head><body class="%s" data-theme="%s"><div class="%s">`,
			templ.EscapeString(title), th.BodyClass, templ.EscapeString(th.Key), th.ShellClass,
		)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<header class="kitchen-header"><a class="%s" href="/app">Cookbook</a></header><main class="%s">`,
			th.AccentTextClass, th.PanelClass,
		); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, `</main></div></body></html>`)
		return err
	})
}
