// Package partials holds the fragments HTMX swaps into the editor page.
package partials

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"blox/internal/usecases"
)

func write(w io.Writer, chunks ...string) error {
	for _, s := range chunks {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

// Dialog renders the URL prompt. Its inputs belong to the editor form, so
// submitting posts the URL, the platform hint and the current document.
func Dialog(d usecases.Dialog) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		key := ""
		if d.Platform.Valid() {
			key = d.Platform.String()
		}
		if err := write(w,
			`<section id="dialog" class="dialog" aria-labelledby="dialog-title">`,
			`<h2 id="dialog-title">`, templ.EscapeString(d.Title), `</h2>`,
			`<label for="embed-url">URL</label>`,
			`<input id="embed-url" type="url" name="url" required autocomplete="off" placeholder="`,
			templ.EscapeString(d.Placeholder), `">`,
			`<input type="hidden" name="platform" value="`, templ.EscapeString(key), `">`,
		); err != nil {
			return err
		}
		if d.Supported != "" {
			if err := write(w, `<p class="dialog-help">`, templ.EscapeString(d.Supported), `</p>`); err != nil {
				return err
			}
		}
		return write(w,
			`<div class="dialog-actions">`,
			`<button type="submit" class="primary">Insert</button>`,
			`<button type="button" hx-get="/embed/dialog" hx-target="#dialog" hx-swap="outerHTML">Cancel</button>`,
			`</div></section>`,
		)
	})
}

// Document renders the editor content: the source in a textarea that the
// form submits, and a live preview of the same markup.
func Document(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w,
			`<div id="document" class="document">`,
			`<textarea name="content" data-rich-editor rows="12">`, templ.EscapeString(content), `</textarea>`,
			`<div id="preview" class="preview">`, content, `</div>`,
			`</div>`,
		)
	})
}
