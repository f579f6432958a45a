package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/me/glamgiant/internal/config"
	"github.com/me/glamgiant/internal/glamapi"
	"github.com/me/glamgiant/internal/store"
	"github.com/me/glamgiant/internal/ui"
	"github.com/me/glamgiant/pkg/model"
)

// Server is the GlamGiant console: the HTML UI plus a small JSON API.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    config.ServerConfig
	startTime time.Time
	store     store.Store
	api       *glamapi.Client
	ui        *ui.UI
}

// New creates a new Server with all routes registered.
func New(cfg config.ServerConfig, st store.Store, api *glamapi.Client, logger *slog.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		config:    cfg,
		startTime: time.Now(),
		store:     st,
		api:       api,
	}

	s.ui = ui.New(st, api, logger, ui.Config{
		Secure:     cfg.SecureCookies,
		SessionTTL: cfg.SessionTTL,
		PageSize:   cfg.PageSize,
	})

	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// UI returns the web UI handler.
func (s *Server) UI() *ui.UI {
	return s.ui
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	// API routes (JSON)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.ui.SessionMiddleware)

		r.Get("/", s.handleDiscovery)
		r.Get("/health", s.handleHealth)

		r.Group(func(r chi.Router) {
			r.Use(apiAuthMiddleware(s.api, s.logger))
			r.Get("/whoami", s.handleWhoAmI)
			r.Get("/views", s.handleViews)

			r.With(requireRole(s.logger, model.RoleAdmin)).
				Post("/admin/sessions/cleanup", s.handleSessionCleanup)
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, RequestIDFromContext(r.Context()), http.StatusNotFound,
				model.NewNotFoundError("Endpoint", r.URL.Path))
		})
	})

	// UI routes (HTML)
	s.ui.RegisterRoutes(r)
}
