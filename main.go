package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"

	"github.com/felixbrock/coachbot/internal/app"
	"github.com/felixbrock/coachbot/internal/components"
	"github.com/felixbrock/coachbot/internal/config"
	"github.com/felixbrock/coachbot/internal/persistence"
)

func appConfig() app.Config {
	port := os.Getenv("GOPORT")
	if port == "" {
		port = "8000"
	}

	geminiApiKey := os.Getenv("GEMINI_API_KEY")
	if geminiApiKey == "" {
		slog.Error("GEMINI_API_KEY environment variable not set")
		os.Exit(1)
	}

	return app.Config{
		Port:         port,
		GeminiApiKey: geminiApiKey,
		SettingsPath: os.Getenv("COACHBOT_SETTINGS"),
	}
}

func main() {
	godotenv.Load()

	cfg := appConfig()

	settings, err := config.Load(cfg.SettingsPath)
	if err != nil {
		slog.Error(fmt.Sprintf("loading settings failed: %s", err.Error()))
		os.Exit(1)
	}

	componentBuilder := app.ComponentBuilder{
		Index: components.Index,
		Plan:  components.Plan,
		Error: components.ErrorBanner,
		Debug: components.Debug,
	}

	a := app.App{
		SessionRepo:      persistence.NewSessionRepo(),
		PlanRepo:         persistence.NewPlanCacheRepo(),
		ErrorLogRepo:     persistence.NewErrorLogRepo(),
		GenRepo:          &persistence.GeminiRepo{ApiKey: cfg.GeminiApiKey},
		ComponentBuilder: componentBuilder,
		Settings:         settings,
		Config:           cfg,
	}

	if err := a.Start(); err != nil {
		slog.Error(fmt.Sprintf("server stopped: %s", err.Error()))
		os.Exit(1)
	}
}
