package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecotrack-app/ecotrack/internal/app/goals"
	"github.com/ecotrack-app/ecotrack/internal/domain"
	"github.com/ecotrack-app/ecotrack/internal/infra/observability"
)

// handleCreateGoal opens a new goal for the user. The baseline is captured
// here, once, from the prior comparable window.
// POST /api/goals
func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	var params goals.CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := s.goals.Create(user, params)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	observability.GoalsCreated.WithLabelValues(string(g.Variant)).Inc()
	writeJSON(w, http.StatusCreated, g)
}

// handleActiveGoals evaluates the user's active goals, one per variant.
// GET /api/goals/active
func (s *Server) handleActiveGoals(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	progress := []domain.GoalProgress{}
	for _, variant := range []domain.GoalVariant{domain.GoalWeeklyReduction, domain.GoalFixedEmission} {
		p, err := s.goals.ActiveProgress(user, variant)
		if errors.Is(err, domain.ErrNoActiveGoal) {
			continue
		}
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		progress = append(progress, *p)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"goals": progress,
	})
}

// handleAbandonGoal archives a goal before its end date.
// POST /api/goals/{id}/abandon
func (s *Server) handleAbandonGoal(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	if err := s.goals.Abandon(user, chi.URLParam(r, "id")); err != nil {
		s.writeDomainError(w, err)
		return
	}

	observability.GoalsAbandoned.Inc()
	writeJSON(w, http.StatusOK, map[string]string{"status": "abandoned"})
}
