// Package ui exposes the extraction core over HTTP. Transport stays thin:
// handlers detect a format, invoke an extractor and return the records,
// inferred schema and column profiles as JSON.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/atreyakamat/VistaraBI-sub002/internal"
	"github.com/atreyakamat/VistaraBI-sub002/internal/config"
)

// App represents the HTTP application
type App struct {
	router *chi.Mux
	cfg    *config.Config
	logger *internal.Logger
}

// NewApp creates the HTTP application
func NewApp(cfg *config.Config) *App {
	app := &App{
		router: chi.NewRouter(),
		cfg:    cfg,
		logger: internal.DefaultLogger,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/health", a.handleHealth)
	a.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/extract", a.handleExtract)
	})
}

// Router returns the configured handler, usable directly in tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Run starts the HTTP server and blocks.
func (a *App) Run() error {
	addr := ":" + a.cfg.Server.Port
	a.logger.Info("[App] listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
