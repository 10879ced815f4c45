// Package api serves the read-only display API. Display and notification
// collaborators consume it; nothing here writes engine state.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server wraps the chi router and its HTTP listener.
type Server struct {
	logger *slog.Logger
	server *http.Server
}

// NewServer builds the display API server on the given listen address.
func NewServer(address string, logger *slog.Logger, services Services) *Server {
	h := &handlers{svc: services, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/healthz", h.healthz)

	r.Route("/api", func(r chi.Router) {
		r.Get("/regions/{regionKey}/leaderboards", h.listRegionLeaderboards)
		r.Get("/regions/{regionKey}/courses/{courseID}/leaderboard", h.getLeaderboard)
		r.Get("/users/{userID}/achievements", h.getAchievements)
		r.Get("/users/{userID}/handicap", h.getHandicapWindow)
		r.Get("/outings/{outingID}/standings", h.getOutingStandings)
		r.Get("/stats", h.getStats)
	})

	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:              address,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Starting display API", slog.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("display API listener failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
