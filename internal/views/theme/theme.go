package theme

import "strings"

// Option represents a selectable theme exposed to the UI.
type Option struct {
	Value string
	Label string
}

// WorkspaceTheme contains resolved styling primitives for the application shell.
type WorkspaceTheme struct {
	Key             string
	BodyClass       string
	ShellClass      string
	PanelClass      string
	AccentTextClass string
	MutedTextClass  string
}

const (
	// DefaultKey defines the fallback theme when no preference exists.
	DefaultKey = "butcher_block"
)

var catalogue = map[string]WorkspaceTheme{
	"butcher_block": {
		Key:             "butcher_block",
		BodyClass:       "min-h-screen bg-amber-50 text-stone-900",
		ShellClass:      "kitchen-shell light",
		PanelClass:      "kitchen-panel",
		AccentTextClass: "kitchen-accent",
		MutedTextClass:  "kitchen-muted",
	},
	"midnight_pantry": {
		Key:             "midnight_pantry",
		BodyClass:       "min-h-screen bg-slate-950 text-slate-100",
		ShellClass:      "kitchen-shell dark",
		PanelClass:      "kitchen-panel",
		AccentTextClass: "kitchen-accent",
		MutedTextClass:  "kitchen-muted",
	},
}

var options = []Option{
	{Value: "butcher_block", Label: "Butcher Block (Light)"},
	{Value: "midnight_pantry", Label: "Midnight Pantry (Dark)"},
}

// Resolve returns the registered theme configuration for the provided key.
func Resolve(key string) WorkspaceTheme {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if value, ok := catalogue[normalized]; ok {
		return value
	}
	return catalogue[DefaultKey]
}

// Options exposes the available theme selections for rendering in a form control.
func Options() []Option {
	return options
}
