package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/felixbrock/coachbot/internal/config"
	"github.com/felixbrock/coachbot/internal/domain"
)

type Config struct {
	Port         string
	GeminiApiKey string
	SettingsPath string
}

type SessionRepo interface {
	Create() *domain.Session
	Get(id string) (*domain.Session, bool)
	SetProfile(id string, profile domain.Profile)
}

type PlanCacheRepo interface {
	Get(sessionId string, key domain.PlanKey) (domain.Plan, bool)
	Set(sessionId string, key domain.PlanKey, plan domain.Plan)
}

type ErrorLogRepo interface {
	Append(sessionId string, context string, message string, detail string)
	List(sessionId string) []domain.ErrorEntry
	Clear(sessionId string)
}

type GenerationRepo interface {
	Generate(ctx context.Context, prompt string, params domain.GenerationConfig) (string, error)
	SelectModel(ctx context.Context, candidates []string) domain.ModelSelection
}

type ComponentBuilder struct {
	Index func(profile *domain.Profile) templ.Component
	Plan  func(kind domain.PlanKind, plan domain.Plan, cached bool) templ.Component
	Error func(title string, msg string) templ.Component
	Debug func(profile *domain.Profile, selection domain.ModelSelection, entries []domain.ErrorEntry) templ.Component
}

type App struct {
	SessionRepo      SessionRepo
	PlanRepo         PlanCacheRepo
	ErrorLogRepo     ErrorLogRepo
	GenRepo          GenerationRepo
	ComponentBuilder ComponentBuilder
	Settings         config.Settings
	Config           Config

	selection domain.ModelSelection
	limiters  *sessionLimiters
}

func (a *App) Start() error {
	a.limiters = newSessionLimiters()

	a.selection = a.GenRepo.SelectModel(context.Background(), a.Settings.Models)
	if a.selection.OK() {
		slog.Info(fmt.Sprintf("serving generations with model %s", a.selection.Model))
	} else {
		for _, failure := range a.selection.Failures {
			slog.Error(fmt.Sprintf("model %s failed probe: %s", failure.Model, failure.Reason))
		}
		slog.Error("no candidate model answered the startup probe; generation requests will fail")
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"*"},
	})

	handler := c.Handler(loggingMiddleware(a.routes()))

	slog.Info(fmt.Sprintf("App running on %s...", a.Config.Port))
	return http.ListenAndServe(":"+a.Config.Port, handler)
}

func (a *App) routes() *mux.Router {
	r := mux.NewRouter()

	r.Handle("/", ComponentHandler(a.index)).Methods("GET")
	r.Handle("/profile", ComponentHandler(a.submitProfile)).Methods("POST")
	r.Handle("/plans/{kind}", ComponentHandler(a.generatePlan)).Methods("POST")
	r.HandleFunc("/plans/{kind}/download", a.downloadPlan).Methods("GET")
	r.Handle("/debug", ComponentHandler(a.debugPanel)).Methods("GET")
	r.Handle("/debug/clear", ComponentHandler(a.clearErrorLog)).Methods("POST")

	r.MethodNotAllowedHandler = ComponentHandler(a.methodNotAllowed)

	return r
}
