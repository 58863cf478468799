package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/app/insight"
	"github.com/ecotrack-app/ecotrack/internal/domain"
	"github.com/ecotrack-app/ecotrack/internal/infra/observability"
)

const (
	defaultSummaryDays     = 7
	maxSummaryDays         = 365
	streakLookbackDays     = 365
	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
)

// handleDashboardSummary returns the user's totals over a recent window:
// overall, per category, and per day.
// GET /api/dashboard/summary?days=7
func (s *Server) handleDashboardSummary(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	days, err := parseDaysParam(r.URL.Query().Get("days"), defaultSummaryDays, maxSummaryDays)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -days)

	byCategory, err := s.activities.CategoryTotals(user, from, now)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	daily, err := s.activities.DailyTotals(user, from, now)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	if daily == nil {
		daily = []domain.EmissionBucket{}
	}

	var total float64
	for _, v := range byCategory {
		total += v
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"days":        days,
		"total":       total,
		"by_category": byCategory,
		"daily":       daily,
	})
}

// handleDashboardTrend compares the user's last week against the one before.
// A rising trend past the alert threshold includes an alert tip.
// GET /api/dashboard/trend
func (s *Server) handleDashboardTrend(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	trend, err := s.insights.TrendFor(user)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	alert := insight.TrendAlert(trend)
	if alert != nil {
		observability.TrendAlerts.Inc()
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"trend": trend,
		"alert": alert,
	})
}

// handleDashboardStreak returns the user's logging streak.
// GET /api/dashboard/streak
func (s *Server) handleDashboardStreak(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	now := time.Now().UTC()
	days, err := s.activities.ActivityDays(user, now.AddDate(0, 0, -streakLookbackDays), now)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.ComputeStreak(days, now))
}

// handleLeaderboard ranks users by total footprint over a window, lowest
// first — this board rewards the lightest footprint, not the heaviest.
// GET /api/leaderboard?days=7&limit=10
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	days, err := parseDaysParam(q.Get("days"), defaultSummaryDays, maxSummaryDays)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit := defaultLeaderboardSize
	if l := q.Get("limit"); l != "" {
		limit, err = strconv.Atoi(l)
		if err != nil || limit <= 0 || limit > maxLeaderboardSize {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
	}

	now := time.Now().UTC()
	rows, err := s.activities.TotalsByUser(now.AddDate(0, 0, -days), now, limit)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	if rows == nil {
		rows = []domain.UserTotal{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"days":        days,
		"leaderboard": rows,
	})
}

// handleWeeklyInsights returns the batch insight set for the last 7 days.
// GET /api/insights/weekly
func (s *Server) handleWeeklyInsights(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	insights, err := s.insights.Weekly(user)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	for _, tip := range insights {
		observability.TipsEmitted.WithLabelValues(string(tip.Type)).Inc()
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"insights": insights,
	})
}

// parseDaysParam parses an optional positive day-count query parameter.
func parseDaysParam(v string, def, max int) (int, error) {
	if v == "" {
		return def, nil
	}
	days, err := strconv.Atoi(v)
	if err != nil || days <= 0 || days > max {
		return 0, errors.New("invalid days parameter")
	}
	return days, nil
}
