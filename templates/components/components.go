// Package components holds the small reusable pieces of the editor UI.
package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"blox/internal/domain"
)

func write(w io.Writer, chunks ...string) error {
	for _, s := range chunks {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

// ToolbarButton is the auto-detect button or one button per platform.
func ToolbarButton(key, label, tooltip, icon string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w,
			`<button type="button" class="toolbar-button" data-icon="`, templ.EscapeString(icon), `"`,
			` title="`, templ.EscapeString(tooltip), `"`,
			` hx-get="/embed/dialog?platform=`, templ.EscapeString(key), `"`,
			` hx-target="#dialog" hx-swap="outerHTML">`,
			templ.EscapeString(label), `</button>`,
		)
	})
}

// Toolbar renders the auto-detect button followed by one button per rule.
func Toolbar(rules []domain.PlatformRule) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<nav class="toolbar" aria-label="Social media embeds">`); err != nil {
			return err
		}
		if err := ToolbarButton("", "Social Media", "Insert Social Media Embed", "embed").Render(ctx, w); err != nil {
			return err
		}
		for _, r := range rules {
			if err := ToolbarButton(r.Key(), r.DisplayName, r.Tooltip(), r.IconID).Render(ctx, w); err != nil {
				return err
			}
		}
		return write(w, `</nav>`)
	})
}

// Toast renders a single notice. The timeout travels as a data attribute
// so the client can dismiss it.
func Toast(n domain.Notice) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w,
			`<div class="toast toast-`, templ.EscapeString(string(n.Severity)), `" role="status"`,
			fmt.Sprintf(` data-timeout="%d">`, n.Timeout.Milliseconds()),
			templ.EscapeString(n.Text), `</div>`,
		)
	})
}

// Toasts renders the toast region. With oob set it is marked for an
// HTMX out-of-band swap so it can ride along with a partial response.
func Toasts(notices []domain.Notice, oob bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		open := `<div id="toasts" class="toasts" aria-live="polite">`
		if oob {
			open = `<div id="toasts" class="toasts" aria-live="polite" hx-swap-oob="true">`
		}
		if err := write(w, open); err != nil {
			return err
		}
		for _, n := range notices {
			if err := Toast(n).Render(ctx, w); err != nil {
				return err
			}
		}
		return write(w, `</div>`)
	})
}

// ErrorMessage renders an inline error box.
func ErrorMessage(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w, `<div class="error-message" role="alert"><p>`, templ.EscapeString(message), `</p></div>`)
	})
}
