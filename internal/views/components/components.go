// Package components holds small shared view fragments used by multiple pages.
package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// AlertBanner renders a dismissible message strip. Kind is "error" or "info".
func AlertBanner(kind, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if strings.TrimSpace(message) == "" {
			return nil
		}
		_, err := fmt.Fprintf(w,
			`<div class="alert alert-%s" role="alert">%s</div>`,
			templ.EscapeString(kind), templ.EscapeString(message),
		)
		return err
	})
}

// StarRating renders a read-only star row. Nil means unrated; half steps
// render a half marker.
func StarRating(rating *float64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<span class="stars" aria-label="%s">%s</span>`,
			templ.EscapeString(RatingLabel(rating)), renderStars(rating))
		return err
	})
}

// RatingLabel produces the accessible text for a rating value.
func RatingLabel(rating *float64) string {
	if rating == nil {
		return "not rated"
	}
	return fmt.Sprintf("rated %s of 5", trimRating(*rating))
}

// FavoriteMark renders the favorite indicator used on list rows and the
// detail header.
func FavoriteMark(favorite bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !favorite {
			return nil
		}
		_, err := io.WriteString(w, `<span class="favorite-mark" title="Favorite">&#9829;</span>`)
		return err
	})
}

// EmptyState renders the placeholder shown when a list has no entries.
func EmptyState(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p class="empty-state">%s</p>`, templ.EscapeString(message))
		return err
	})
}

func renderStars(rating *float64) string {
	value := 0.0
	if rating != nil {
		value = *rating
	}
	full := int(value)
	half := value-float64(full) >= 0.5

	var b strings.Builder
	for i := 0; i < full && i < 5; i++ {
		b.WriteString("&#9733;")
	}
	if half && full < 5 {
		b.WriteString("&#189;")
	}
	remaining := 5 - full
	if half {
		remaining--
	}
	for i := 0; i < remaining; i++ {
		b.WriteString("&#9734;")
	}
	return b.String()
}

func trimRating(value float64) string {
	s := fmt.Sprintf("%.1f", value)
	s = strings.TrimSuffix(s, ".0")
	return s
}
