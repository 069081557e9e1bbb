// Package server provides the HTTP server and routing for the dashboard API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/wealthdeck/internal/config"
	"github.com/aristath/wealthdeck/internal/database"
	"github.com/aristath/wealthdeck/internal/modules/allocation"
	allocationhandlers "github.com/aristath/wealthdeck/internal/modules/allocation/handlers"
	breakdownhandlers "github.com/aristath/wealthdeck/internal/modules/breakdown/handlers"
	"github.com/aristath/wealthdeck/internal/modules/charts"
	chartshandlers "github.com/aristath/wealthdeck/internal/modules/charts/handlers"
	"github.com/aristath/wealthdeck/internal/modules/holdings"
	holdingshandlers "github.com/aristath/wealthdeck/internal/modules/holdings/handlers"
	"github.com/aristath/wealthdeck/internal/modules/interaction"
	interactionhandlers "github.com/aristath/wealthdeck/internal/modules/interaction/handlers"
	"github.com/aristath/wealthdeck/internal/modules/performance"
	performancehandlers "github.com/aristath/wealthdeck/internal/modules/performance/handlers"
)

// Config holds server configuration
type Config struct {
	Log         zerolog.Logger
	Config      *config.Config
	PortfolioDB *database.DB
	HistoryDB   *database.DB

	HoldingsRepo   *holdings.Repository
	AllocationSvc  *allocation.Service
	ChartSvc       *charts.Service
	PerformanceSvc *performance.Service
	Focus          *interaction.Controller
}

// Server represents the HTTP server
type Server struct {
	router      *chi.Mux
	server      *http.Server
	log         zerolog.Logger
	cfg         Config
	focusStream *FocusStream
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:      chi.NewRouter(),
		log:         cfg.Log.With().Str("component", "server").Logger(),
		cfg:         cfg,
		focusStream: NewFocusStream(cfg.Focus, cfg.Log),
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	systemHandlers := NewSystemHandlers(s.log, s.cfg.PortfolioDB, s.cfg.HistoryDB)
	s.router.Get("/health", systemHandlers.HandleHealth)

	holdingsHandler := holdingshandlers.NewHandler(s.cfg.HoldingsRepo, s.log)
	allocationHandler := allocationhandlers.NewHandler(s.cfg.AllocationSvc, s.log)
	chartsHandler := chartshandlers.NewHandler(
		s.cfg.AllocationSvc, s.cfg.ChartSvc, s.cfg.PerformanceSvc, s.cfg.Focus, s.log)
	breakdownHandler := breakdownhandlers.NewHandler(s.cfg.AllocationSvc, s.cfg.Focus, s.log)
	focusHandler := interactionhandlers.NewHandler(s.cfg.Focus, s.log)
	performanceHandler := performancehandlers.NewHandler(s.cfg.PerformanceSvc, s.log)

	s.router.Route("/api", func(r chi.Router) {
		holdingsHandler.RegisterRoutes(r)
		allocationHandler.RegisterRoutes(r)
		chartsHandler.RegisterRoutes(r)
		breakdownHandler.RegisterRoutes(r)
		focusHandler.RegisterRoutes(r)
		performanceHandler.RegisterRoutes(r)

		r.Get("/system/status", systemHandlers.HandleSystemStatus)
	})

	// Focus changes are pushed to every connected dashboard view so the
	// chart and legend/table stay in sync across clients.
	s.router.Get("/ws/focus", s.focusStream.ServeHTTP)
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Config.Port)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // websocket connections stay open
		IdleTimeout:  60 * time.Second,
	}

	s.log.Info().Str("addr", addr).Msg("HTTP server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router exposes the chi router for tests
func (s *Server) Router() http.Handler {
	return s.router
}
