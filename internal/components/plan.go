package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/felixbrock/coachbot/internal/domain"
)

// Plan renders one generated plan as an htmx fragment: heading, provenance
// line, the text preformatted, and the download link.
func Plan(kind domain.PlanKind, plan domain.Plan, cached bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		source := "freshly generated"
		if cached {
			source = "served from this session's cache"
		}

		if _, err := fmt.Fprintf(w,
			`<h3>%s</h3><p class="meta">%s · model %s · %s</p>`,
			templ.EscapeString(kind.Label()),
			source,
			templ.EscapeString(plan.Model),
			plan.GeneratedAt.Format("2006-01-02 15:04:05")); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<pre class="plan">%s</pre>`, templ.EscapeString(plan.Text)); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `<a href="/plans/%s/download" download>Download %s</a>`,
			kind, templ.EscapeString(kind.Label()))
		return err
	})
}
