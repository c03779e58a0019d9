package components

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixbrock/coachbot/internal/domain"
)

func renderToString(t *testing.T, render func(ctx context.Context, w *bytes.Buffer) error) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, render(context.Background(), &buf))
	return buf.String()
}

func TestIndex_WithoutProfileShowsWelcome(t *testing.T) {
	html := renderToString(t, func(ctx context.Context, w *bytes.Buffer) error {
		return Index(nil).Render(ctx, w)
	})

	assert.Contains(t, html, "CoachBot AI")
	assert.Contains(t, html, `name="sport"`)
	assert.Contains(t, html, `action="/profile"`)
	assert.Contains(t, html, "Welcome")
	assert.NotContains(t, html, "plan-panel")
}

func TestIndex_WithProfileShowsPlanTabs(t *testing.T) {
	profile := &domain.Profile{Sport: "cricket", Position: "Batsman", CurrentInjury: domain.NoInjury}

	html := renderToString(t, func(ctx context.Context, w *bytes.Buffer) error {
		return Index(profile).Render(ctx, w)
	})

	for _, kind := range domain.PlanKinds() {
		assert.Contains(t, html, `hx-post="/plans/`+string(kind)+`"`)
	}
	assert.Contains(t, html, `id="plan-panel"`)
	assert.Contains(t, html, `<option value="Batsman" selected>`)
}

func TestPlan_EscapesGeneratedText(t *testing.T) {
	plan := domain.Plan{
		Kind:        domain.PlanTraining,
		Text:        "do <b>not</b> skip warm-ups",
		Model:       "gemini-1.5-pro",
		GeneratedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	html := renderToString(t, func(ctx context.Context, w *bytes.Buffer) error {
		return Plan(domain.PlanTraining, plan, false).Render(ctx, w)
	})

	assert.Contains(t, html, "do &lt;b&gt;not&lt;/b&gt; skip warm-ups")
	assert.Contains(t, html, "/plans/training/download")
	assert.Contains(t, html, "freshly generated")
}

func TestPlan_MarksCachedResults(t *testing.T) {
	plan := domain.Plan{Kind: domain.PlanTraining, Text: "plan", Model: "gemini-1.5-pro", GeneratedAt: time.Now()}

	html := renderToString(t, func(ctx context.Context, w *bytes.Buffer) error {
		return Plan(domain.PlanTraining, plan, true).Render(ctx, w)
	})

	assert.Contains(t, html, "cache")
}

func TestErrorBanner(t *testing.T) {
	html := renderToString(t, func(ctx context.Context, w *bytes.Buffer) error {
		return ErrorBanner("Bad request", "Unknown sport <selected>.").Render(ctx, w)
	})

	assert.Contains(t, html, "Bad request")
	assert.Contains(t, html, "Unknown sport &lt;selected&gt;.")
}

func TestDebug_RendersSelectionAndEntries(t *testing.T) {
	selection := domain.ModelSelection{
		Failures: []domain.ProbeFailure{{Model: "gemini-1.5-pro", Reason: "generation request failed"}},
	}
	entries := []domain.ErrorEntry{{
		Id:        "id-1",
		Timestamp: time.Now(),
		Context:   "Training Plan generation",
		Message:   "empty response from model",
		Detail:    "prompt text",
	}}

	html := renderToString(t, func(ctx context.Context, w *bytes.Buffer) error {
		return Debug(nil, selection, entries).Render(ctx, w)
	})

	assert.Contains(t, html, "No working model selected.")
	assert.Contains(t, html, "gemini-1.5-pro")
	assert.Contains(t, html, "Training Plan generation")
	assert.Contains(t, html, "No profile submitted yet")
}
