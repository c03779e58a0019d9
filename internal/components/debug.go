package components

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/felixbrock/coachbot/internal/domain"
)

// Debug renders the troubleshooting page: model selection outcome, the
// session's error log, and the current profile.
func Debug(profile *domain.Profile, selection domain.ModelSelection, entries []domain.ErrorEntry) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main><section class="plans"><h2>Debug</h2>`); err != nil {
			return err
		}

		if err := writeSelection(w, selection); err != nil {
			return err
		}
		if err := writeErrorLog(w, entries); err != nil {
			return err
		}
		if err := writeProfile(w, profile); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</section></main>`)
		return err
	})

	return page("CoachBot AI - Debug", body)
}

func writeSelection(w io.Writer, selection domain.ModelSelection) error {
	if selection.OK() {
		if _, err := fmt.Fprintf(w, `<h3>Model</h3><p>Serving with <strong>%s</strong></p>`,
			templ.EscapeString(selection.Model)); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, `<h3>Model</h3><div class="error"><p>No working model selected.</p></div>`); err != nil {
			return err
		}
	}

	if len(selection.Failures) == 0 {
		return nil
	}

	if _, err := io.WriteString(w, `<p class="meta">Probe failures:</p><ul>`); err != nil {
		return err
	}
	for _, failure := range selection.Failures {
		if _, err := fmt.Fprintf(w, `<li><strong>%s</strong>: %s</li>`,
			templ.EscapeString(failure.Model), templ.EscapeString(failure.Reason)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ul>`)
	return err
}

func writeErrorLog(w io.Writer, entries []domain.ErrorEntry) error {
	if _, err := io.WriteString(w, `<h3>Error Log</h3>`); err != nil {
		return err
	}

	if len(entries) == 0 {
		_, err := io.WriteString(w, `<p>No errors logged yet</p>`)
		return err
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintf(w,
			`<div class="error"><p><strong>%s</strong> — %s</p><p>%s</p><details><summary>Details</summary><pre class="plan">%s</pre></details></div>`,
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			templ.EscapeString(entry.Context),
			templ.EscapeString(entry.Message),
			templ.EscapeString(entry.Detail)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w,
		`<button hx-post="/debug/clear" hx-target="body" hx-swap="innerHTML">Clear Error Log</button>`)
	return err
}

func writeProfile(w io.Writer, profile *domain.Profile) error {
	if _, err := io.WriteString(w, `<h3>User Profile</h3>`); err != nil {
		return err
	}

	if profile == nil {
		_, err := io.WriteString(w, `<p>No profile submitted yet</p>`)
		return err
	}

	raw, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, `<pre class="plan">%s</pre>`, templ.EscapeString(string(raw)))
	return err
}
