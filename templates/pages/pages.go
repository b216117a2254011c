// Package pages holds the full HTML documents served by the web adapter.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"blox/internal/domain"
	"blox/internal/usecases"
	"blox/templates/components"
	"blox/templates/partials"
)

// EditorData is everything the editor page shows.
type EditorData struct {
	Title     string
	ScriptSrc string
	HTMXSrc   string
	Rules     []domain.PlatformRule
	Dialog    usecases.Dialog
	Content   string
	Notices   []domain.Notice
}

func write(w io.Writer, chunks ...string) error {
	for _, s := range chunks {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func script(src string) string {
	if src == "" {
		return ""
	}
	return `<script src="` + templ.EscapeString(src) + `"></script>`
}

func layout(title string, head string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, templ.EscapeString(title), `</title>`,
			`<link rel="stylesheet" href="/static/css/editor.css">`,
			head,
			`</head><body>`,
		); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		return write(w, `</body></html>`)
	})
}

// Editor renders the editor page. The form posts to /embed so it works
// without scripts; HTMX upgrades it to a partial swap when loaded.
func Editor(d EditorData) templ.Component {
	head := script(d.HTMXSrc) + script(d.ScriptSrc) + `<script src="/static/js/social-media.js" defer></script>`
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<main class="editor"><h1>`, templ.EscapeString(d.Title), `</h1>`,
			`<form id="editor-form" method="post" action="/embed" hx-post="/embed" hx-target="#document" hx-swap="outerHTML">`,
		); err != nil {
			return err
		}
		parts := []templ.Component{
			components.Toolbar(d.Rules),
			partials.Dialog(d.Dialog),
			partials.Document(d.Content),
		}
		for _, p := range parts {
			if err := p.Render(ctx, w); err != nil {
				return err
			}
		}
		if err := write(w, `</form></main>`); err != nil {
			return err
		}
		return components.Toasts(d.Notices, false).Render(ctx, w)
	})
	return layout(d.Title, head, body)
}

// Error renders a full-page error.
func Error(message string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<main class="editor"><h1>Something went wrong</h1>`); err != nil {
			return err
		}
		if err := components.ErrorMessage(message).Render(ctx, w); err != nil {
			return err
		}
		return write(w, `<p><a href="/">Back to the editor</a></p></main>`)
	})
	return layout("Blox Editor", "", body)
}
