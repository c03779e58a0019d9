package app

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/felixbrock/coachbot/internal/domain"
)

func (a *App) index(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	session := a.session(w, r)
	return &ComponentResponse{Component: a.ComponentBuilder.Index(session.Profile), Code: 200, Message: "OK", ContentType: "text/html", Error: nil}
}

func (a *App) submitProfile(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	session := a.session(w, r)

	if err := r.ParseForm(); err != nil {
		return a.errorResponse(get400("The submitted form could not be read."), err)
	}

	profile := profileFromForm(r)
	if _, ok := domain.SportDataFor(profile.Sport); !ok {
		return a.errorResponse(get400("Unknown sport selected."), fmt.Errorf("unknown sport %q", profile.Sport))
	}

	a.SessionRepo.SetProfile(session.Id, profile)

	return &ComponentResponse{Component: a.ComponentBuilder.Index(&profile), Code: 200, Message: "OK", ContentType: "text/html", Error: nil}
}

func (a *App) generatePlan(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	session := a.session(w, r)

	kind, ok := domain.ParsePlanKind(mux.Vars(r)["kind"])
	if !ok {
		return a.errorResponse(get400("Unknown plan kind."), fmt.Errorf("unknown plan kind %q", mux.Vars(r)["kind"]))
	}

	if session.Profile == nil {
		return a.errorResponse(get400("Please submit your profile first."), nil)
	}

	if !a.limiters.allow(session.Id) {
		return a.errorResponse(get429(), nil)
	}

	profile := *session.Profile
	key := domain.KeyFor(kind, profile)

	if plan, ok := a.PlanRepo.Get(session.Id, key); ok {
		return &ComponentResponse{Component: a.ComponentBuilder.Plan(kind, plan, true), Code: 200, Message: "OK", ContentType: "text/html", Error: nil}
	}

	prompt := buildPrompt(kind, profile)
	params := a.paramsFor(kind, profile)

	text, err := a.GenRepo.Generate(r.Context(), prompt, params)
	if err != nil {
		a.ErrorLogRepo.Append(session.Id, fmt.Sprintf("%s generation", kind.Label()), err.Error(), prompt)
		// Render the failure in-page; the fragment must reach the client.
		ectx := get500(fmt.Sprintf("Generating your %s failed: %s", strings.ToLower(kind.Label()), err.Error()))
		ectx.Code = 200
		return a.errorResponse(ectx, err)
	}

	plan := domain.Plan{Kind: kind, Text: text, Model: a.selection.Model, GeneratedAt: time.Now()}
	a.PlanRepo.Set(session.Id, key, plan)

	return &ComponentResponse{Component: a.ComponentBuilder.Plan(kind, plan, false), Code: 200, Message: "OK", ContentType: "text/html", Error: nil}
}

func (a *App) downloadPlan(w http.ResponseWriter, r *http.Request) {
	session := a.session(w, r)

	kind, ok := domain.ParsePlanKind(mux.Vars(r)["kind"])
	if !ok || session.Profile == nil {
		http.NotFound(w, r)
		return
	}

	plan, ok := a.PlanRepo.Get(session.Id, domain.KeyFor(kind, *session.Profile))
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName(kind, *session.Profile)))
	w.Write([]byte(plan.Text))
}

func downloadName(kind domain.PlanKind, p domain.Profile) string {
	position := strings.ReplaceAll(p.Position, " ", "_")
	return fmt.Sprintf("%s_plan_%s_%s.txt", kind, strings.ToLower(p.Sport), position)
}

func (a *App) debugPanel(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	session := a.session(w, r)
	entries := a.ErrorLogRepo.List(session.Id)
	return &ComponentResponse{Component: a.ComponentBuilder.Debug(session.Profile, a.selection, entries), Code: 200, Message: "OK", ContentType: "text/html", Error: nil}
}

func (a *App) clearErrorLog(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	session := a.session(w, r)
	a.ErrorLogRepo.Clear(session.Id)
	return &ComponentResponse{Component: a.ComponentBuilder.Debug(session.Profile, a.selection, nil), Code: 200, Message: "OK", ContentType: "text/html", Error: nil}
}

func (a *App) methodNotAllowed(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	ectx := get405()
	return a.errorResponse(ectx, nil)
}

func (a *App) paramsFor(kind domain.PlanKind, p domain.Profile) domain.GenerationConfig {
	name := string(kind)
	if kind == domain.PlanTraining && p.Injured() {
		name = "recovery"
	}
	return a.Settings.ParamsFor(name)
}

func (a *App) errorResponse(ectx errCtx, err error) *ComponentResponse {
	return &ComponentResponse{
		Component:   a.ComponentBuilder.Error(ectx.Title, ectx.Msg),
		Code:        ectx.Code,
		Message:     ectx.Title,
		ContentType: "text/html",
		Error:       err,
	}
}
