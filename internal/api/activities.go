package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ecotrack-app/ecotrack/internal/carbon"
	"github.com/ecotrack-app/ecotrack/internal/domain"
	"github.com/ecotrack-app/ecotrack/internal/infra/observability"
)

// activityRequest is the caller-supplied body for create and update.
type activityRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    domain.Category `json:"category"`
	Quantity    domain.Quantity `json:"quantity"`
	Details     domain.Details  `json:"details"`
	LoggedAt    time.Time       `json:"logged_at"`
}

// handleCreateActivity logs a new activity. The footprint is computed here,
// from the saved inputs — the client never supplies it. A tip derived from
// the fresh activity rides along in the response and on the live feed.
// POST /api/activities
func (s *Server) handleCreateActivity(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	now := time.Now().UTC()
	loggedAt := req.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = now
	}

	a := domain.Activity{
		ID:          uuid.NewString(),
		UserID:      user,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Details:     req.Details,
		LoggedAt:    loggedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := a.Validate(); err != nil {
		s.writeDomainError(w, err)
		return
	}

	res := carbon.Calculate(a.Category, a.Quantity, a.Details)
	a.CarbonFootprint = res.CarbonFootprint
	a.EmissionFactor = res.EmissionFactor

	if err := s.activities.InsertActivity(a); err != nil {
		s.writeDomainError(w, err)
		return
	}

	observability.ActivitiesRecorded.WithLabelValues(string(a.Category)).Inc()
	observability.ActivityFootprint.WithLabelValues(string(a.Category)).Observe(a.CarbonFootprint)

	tip, err := s.insights.ForActivity(a)
	if err != nil {
		// The activity is saved; a failed tip lookup must not fail the log.
		s.log.Warn("tip generation failed", "activity", a.ID, "err", err)
		tip = nil
	}
	if tip != nil {
		observability.TipsEmitted.WithLabelValues(string(tip.Type)).Inc()
		if s.tipHub != nil {
			s.tipHub.Broadcast(TipEvent{
				Type:      "tip",
				UserID:    user,
				Tip:       *tip,
				Timestamp: now.Unix(),
			})
		}
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"activity": a,
		"tip":      tip,
	})
}

// handleListActivities lists a user's activities, newest first.
// GET /api/activities?category=&from=&to=&limit=
func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	f := domain.ActivityFilter{UserID: user}
	q := r.URL.Query()

	if c := q.Get("category"); c != "" {
		f.Category = domain.Category(c)
		if !f.Category.Valid() {
			writeError(w, http.StatusBadRequest, "unknown category "+c)
			return
		}
	}
	var err error
	if f.From, err = parseTimeParam(q.Get("from")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid from timestamp")
		return
	}
	if f.To, err = parseTimeParam(q.Get("to")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid to timestamp")
		return
	}
	if l := q.Get("limit"); l != "" {
		if f.Limit, err = strconv.Atoi(l); err != nil || f.Limit < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
	}

	activities, err := s.activities.ListActivities(f)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	if activities == nil {
		activities = []domain.Activity{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"activities": activities,
		"count":      len(activities),
	})
}

// handleGetActivity returns a single activity.
// GET /api/activities/{id}
func (s *Server) handleGetActivity(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	a, err := s.activities.GetActivity(user, chi.URLParam(r, "id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// handleUpdateActivity replaces the caller-supplied fields of an activity and
// recomputes its footprint from the new inputs.
// PUT /api/activities/{id}
func (s *Server) handleUpdateActivity(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	existing, err := s.activities.GetActivity(user, chi.URLParam(r, "id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a := *existing
	a.Name = req.Name
	a.Description = req.Description
	a.Category = req.Category
	a.Quantity = req.Quantity
	a.Details = req.Details
	if !req.LoggedAt.IsZero() {
		a.LoggedAt = req.LoggedAt
	}
	a.UpdatedAt = time.Now().UTC()

	if err := a.Validate(); err != nil {
		s.writeDomainError(w, err)
		return
	}

	res := carbon.Calculate(a.Category, a.Quantity, a.Details)
	a.CarbonFootprint = res.CarbonFootprint
	a.EmissionFactor = res.EmissionFactor

	if err := s.activities.UpdateActivity(a); err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// handleDeleteActivity removes an activity.
// DELETE /api/activities/{id}
func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	if err := s.activities.DeleteActivity(user, chi.URLParam(r, "id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// parseTimeParam parses an optional RFC3339 query parameter.
func parseTimeParam(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, v)
}
