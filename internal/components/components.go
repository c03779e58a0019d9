// Package components builds the HTML pages and fragments served by the app.
// Every constructor returns a templ.Component; user-provided values are
// escaped at the point they are written.
package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const pageStyle = `body{font-family:system-ui,sans-serif;margin:0;background:#f6f7f9;color:#1d232b}
header{background:#12263a;color:#fff;padding:12px 24px}
main{display:flex;gap:24px;padding:24px;align-items:flex-start}
form.profile{background:#fff;border-radius:8px;padding:16px;width:340px;box-shadow:0 1px 3px rgba(0,0,0,.12)}
section.plans{flex:1;background:#fff;border-radius:8px;padding:16px;box-shadow:0 1px 3px rgba(0,0,0,.12)}
label{display:block;margin:10px 0 2px;font-size:.85rem;font-weight:600}
select,input,textarea{width:100%;padding:6px;border:1px solid #c6ccd4;border-radius:4px;box-sizing:border-box}
fieldset{border:1px solid #dde2e8;border-radius:4px;margin:12px 0}
fieldset label{display:inline-block;font-weight:400;margin:2px 10px 2px 0}
button{background:#12263a;color:#fff;border:0;border-radius:4px;padding:8px 14px;margin:4px 4px 0 0;cursor:pointer}
button:hover{background:#1d3d5c}
pre.plan{white-space:pre-wrap;background:#f2f4f6;padding:14px;border-radius:6px;line-height:1.45}
div.error{background:#fdecea;border:1px solid #e5b4ae;color:#7a271a;padding:12px;border-radius:6px;margin:8px 0}
p.meta{color:#5b6470;font-size:.8rem}
.htmx-indicator{display:none}
.htmx-request .htmx-indicator{display:inline}`

// page wraps a body component in the shared document shell.
func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title>`+
				`<script src="https://unpkg.com/htmx.org@1.9.10"></script>`+
				`<style>%s</style></head><body>`+
				`<header><strong>CoachBot AI</strong> — your personal sports assistant</header>`,
			templ.EscapeString(title), pageStyle); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// ErrorBanner renders a user-visible failure box, used both as a page body and
// as an htmx fragment.
func ErrorBanner(title string, msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="error"><h3>%s</h3><p>%s</p></div>`,
			templ.EscapeString(title), templ.EscapeString(msg))
		return err
	})
}
