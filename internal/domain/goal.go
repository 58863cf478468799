package domain

import (
	"math"
	"time"
)

// ─── Goal Types ─────────────────────────────────────────────────────────────
// Two goal variants share one record shape. At most one active goal of each
// variant exists per user; expiry is lazy — a goal past its end date simply
// stops being "active" at read time until explicitly archived.

// GoalVariant selects the progress formula.
type GoalVariant string

const (
	// GoalWeeklyReduction measures reduction achieved against a prior-week
	// baseline over a rolling 7-day window.
	GoalWeeklyReduction GoalVariant = "weekly_reduction"

	// GoalFixedEmission caps cumulative emissions at a fixed target over the
	// goal window.
	GoalFixedEmission GoalVariant = "fixed_emission"
)

// Valid reports whether v is a recognized goal variant.
func (v GoalVariant) Valid() bool {
	return v == GoalWeeklyReduction || v == GoalFixedEmission
}

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalAbandoned GoalStatus = "abandoned"
)

// Goal is a user's emission target over a time window [StartDate, EndDate).
// Baseline is computed once at creation from the equivalent prior period and
// never updated afterwards.
type Goal struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Variant   GoalVariant `json:"variant"`
	Category  Category    `json:"category"` // CategoryAll or one activity category
	StartDate time.Time   `json:"start_date"`
	EndDate   time.Time   `json:"end_date"`
	Baseline  float64     `json:"baseline"`
	Target    float64     `json:"target"`
	Status    GoalStatus  `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// ActiveAt reports whether the goal counts as active at the given instant.
// Status must be active AND the end date must not have passed.
func (g Goal) ActiveAt(now time.Time) bool {
	return g.Status == GoalActive && now.Before(g.EndDate)
}

// DaysRemaining returns the ceiling of the time left until the end date in
// days. Zero or negative past expiry — callers treat ≤0 as expired.
func (g Goal) DaysRemaining(now time.Time) int {
	return int(math.Ceil(g.EndDate.Sub(now).Hours() / 24))
}

// RemainingBudget is the emission budget left before the target is exceeded.
// Negative once the target is blown.
func (g Goal) RemainingBudget(current float64) float64 {
	return g.Target - current
}

// ─── Goal Progress ──────────────────────────────────────────────────────────

// GoalProgress is the evaluated state of a goal against current emissions.
// Ephemeral — computed per request from a store snapshot.
type GoalProgress struct {
	GoalID        string      `json:"goal_id"`
	Variant       GoalVariant `json:"variant"`
	Category      Category    `json:"category"`
	Current       float64     `json:"current"`
	Baseline      float64     `json:"baseline"`
	Target        float64     `json:"target"`
	ProgressPct   float64     `json:"progress_pct"`
	OnTrack       bool        `json:"on_track"`
	DaysRemaining int         `json:"days_remaining"`
	Expired       bool        `json:"expired"`
}
