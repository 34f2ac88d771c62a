// Package httpapi exposes the billing fixtures as a read-only JSON API and,
// in production, serves the dashboard frontend from the same origin.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"

	"github.com/diillson/aws-cost-dashboard-go/internal/adapter/driving/httpapi/middleware"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
)

// Server represents the HTTP API server
type Server struct {
	config *types.Config
	repo   repository.BillingRepository
	router *chi.Mux
	server *http.Server
	now    func() time.Time
}

// New creates a new API server
func New(cfg *types.Config, repo repository.BillingRepository) *Server {
	s := &Server{
		config: cfg,
		repo:   repo,
		router: chi.NewRouter(),
		now:    time.Now,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Handler returns the root handler, useful for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	// Request ID
	s.router.Use(chimiddleware.RequestID)

	// Real IP
	s.router.Use(chimiddleware.RealIP)

	// Logger
	s.router.Use(middleware.Logger)

	// Recoverer
	s.router.Use(chimiddleware.Recoverer)

	// Timeout
	s.router.Use(chimiddleware.Timeout(30 * time.Second))

	// CORS
	origins := s.config.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.NotFound(notFound)
	s.router.MethodNotAllowed(methodNotAllowed)

	// Health check
	s.router.Get("/health", s.health)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		r.NotFound(notFound)
		r.MethodNotAllowed(methodNotAllowed)

		r.Get("/accounts", s.listAccounts)
		r.Get("/accounts/{accountId}", s.getAccount)
		r.Get("/cost-overview", s.costOverview)
		r.Get("/service-breakdown", s.serviceBreakdown)
		r.Get("/cost-trends", s.costTrends)
		r.Get("/budget-alerts", s.budgetAlerts)
		r.Get("/regional-costs", s.regionalCosts)
	})

	// Frontend, somente em produção
	if s.config.IsProduction() {
		s.router.Get("/*", s.frontend())
	}
}

// Start starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully.
func (s *Server) Start(port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", port).Info("AWS Cost Dashboard API running")
		log.Infof("Health check: http://localhost:%s/health", port)
		if s.config.IsProduction() {
			log.Infof("Serving dashboard at http://localhost:%s", port)
		}
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	if err := s.Stop(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited")
	return nil
}

// Stop stops the HTTP server gracefully
func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}
