// Package api provides the EcoTrack HTTP server: activity logging, goals,
// dashboard aggregates, insights, and the live tip feed.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ecotrack-app/ecotrack/internal/app/goals"
	"github.com/ecotrack-app/ecotrack/internal/app/insight"
	"github.com/ecotrack-app/ecotrack/internal/carbon"
	"github.com/ecotrack-app/ecotrack/internal/domain"
)

// Server is the EcoTrack HTTP API server.
type Server struct {
	log            *slog.Logger
	activities     domain.ActivityStore
	goals          *goals.Service
	insights       *insight.Generator
	metricsEnabled bool
	tipHub         *TipHub
}

// NewServer creates a new API server over the given stores and services.
func NewServer(log *slog.Logger, activities domain.ActivityStore, goalSvc *goals.Service, gen *insight.Generator) *Server {
	return &Server{
		log:        log,
		activities: activities,
		goals:      goalSvc,
		insights:   gen,
	}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetTipHub sets the live tip SSE hub.
func (s *Server) SetTipHub(h *TipHub) { s.tipHub = h }

// TipHub returns the live tip hub (for broadcasting events).
func (s *Server) TipHub() *TipHub { return s.tipHub }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/activities", func(r chi.Router) {
			r.Post("/", s.handleCreateActivity)
			r.Get("/", s.handleListActivities)
			r.Get("/{id}", s.handleGetActivity)
			r.Put("/{id}", s.handleUpdateActivity)
			r.Delete("/{id}", s.handleDeleteActivity)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Post("/", s.handleCreateGoal)
			r.Get("/active", s.handleActiveGoals)
			r.Post("/{id}/abandon", s.handleAbandonGoal)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/summary", s.handleDashboardSummary)
			r.Get("/trend", s.handleDashboardTrend)
			r.Get("/streak", s.handleDashboardStreak)
		})

		r.Get("/leaderboard", s.handleLeaderboard)
		r.Get("/insights/weekly", s.handleWeeklyInsights)
		r.Get("/factors", s.handleFactors)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Live tip SSE feed
	if s.tipHub != nil {
		r.Get("/api/tips/live", s.tipHub.HandleTipsSSE)
	}

	return r
}

// handleFactors returns the emission factor tables and their version.
// GET /api/factors
func (s *Server) handleFactors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"version": carbon.TableVersion,
		"transport": map[string]interface{}{
			"factors": carbon.TransportFactors,
			"default": carbon.DefaultTransportFactor,
			"unit":    "kg CO2e per km",
		},
		"energy": map[string]interface{}{
			"factors": carbon.EnergyFactors,
			"default": carbon.DefaultEnergyFactor,
			"unit":    "kg CO2e per kWh",
		},
		"food": map[string]interface{}{
			"factors": carbon.FoodFactors,
			"default": carbon.DefaultFoodFactor,
			"unit":    "kg CO2e per kg",
		},
		"waste": map[string]interface{}{
			"disposal":   carbon.DisposalFactors,
			"waste_type": carbon.WasteTypeFactors,
			"default":    carbon.DefaultWasteFactor,
			"unit":       "kg CO2e per kg",
		},
	})
}

// userID extracts the authenticated user from the X-User-ID header.
// Authentication proper is terminated upstream; the gateway forwards the
// resolved user in this header.
func userID(r *http.Request) string {
	return r.Header.Get("X-User-ID")
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// writeDomainError maps domain sentinel errors onto HTTP status codes.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrGoalNotFound),
		errors.Is(err, domain.ErrNoActiveGoal):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrGoalConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		s.log.Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// corsMiddleware adds CORS headers for the browser client.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-ID")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
