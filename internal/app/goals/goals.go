// Package goals evaluates emission goals: baseline capture at creation,
// progress percentage, on-track status, and lazy expiry.
package goals

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack-app/ecotrack/internal/domain"
)

// DefaultFixedWindowDays is the goal window applied to a fixed emission goal
// when the caller does not choose one. Weekly reduction goals always run 7
// days.
const DefaultFixedWindowDays = 30

// Service evaluates and manages goals over the activity store.
type Service struct {
	activities domain.ActivityStore
	goals      domain.GoalStore
	now        func() time.Time
}

// NewService creates a goal service.
func NewService(activities domain.ActivityStore, goals domain.GoalStore) *Service {
	return &Service{activities: activities, goals: goals, now: time.Now}
}

// CreateParams are the caller-supplied fields of a new goal.
type CreateParams struct {
	Variant    domain.GoalVariant `json:"variant"`
	Category   domain.Category    `json:"category"`    // defaults to all
	Target     float64            `json:"target"`      // kg CO₂e
	WindowDays int                `json:"window_days"` // fixed emission only
}

// Create opens a new goal. The baseline is computed once, here, from the
// equivalent prior window — [now − 2·window, now − window) — and never
// recomputed. At most one active goal per variant is allowed.
func (s *Service) Create(userID string, p CreateParams) (*domain.Goal, error) {
	if !p.Variant.Valid() {
		return nil, fmt.Errorf("%w: unknown goal variant %q", domain.ErrValidation, p.Variant)
	}
	if p.Target <= 0 {
		return nil, fmt.Errorf("%w: target must be positive", domain.ErrValidation)
	}
	category := p.Category
	if category == "" {
		category = domain.CategoryAll
	}
	if category != domain.CategoryAll && !category.Valid() {
		return nil, fmt.Errorf("%w: unknown goal category %q", domain.ErrValidation, category)
	}

	now := s.now()
	existing, err := s.goals.ActiveGoal(userID, p.Variant, now)
	if err != nil {
		return nil, fmt.Errorf("check active goal: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrGoalConflict
	}

	windowDays := 7
	if p.Variant == domain.GoalFixedEmission {
		windowDays = p.WindowDays
		if windowDays <= 0 {
			windowDays = DefaultFixedWindowDays
		}
	}
	window := time.Duration(windowDays) * 24 * time.Hour

	baseline, err := s.activities.SumFootprint(userID, category, now.Add(-2*window), now.Add(-window))
	if err != nil {
		return nil, fmt.Errorf("compute baseline: %w", err)
	}

	g := domain.Goal{
		ID:        uuid.NewString(),
		UserID:    userID,
		Variant:   p.Variant,
		Category:  category,
		StartDate: now,
		EndDate:   now.Add(window),
		Baseline:  baseline,
		Target:    p.Target,
		Status:    domain.GoalActive,
		CreatedAt: now,
	}
	if err := s.goals.InsertGoal(g); err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}
	return &g, nil
}

// Progress evaluates a goal against the activities logged since its start.
//
// Weekly reduction: progress% = (baseline − current) / baseline × 100, the
// reduction achieved relative to the prior window. Fixed emission: progress%
// = current / target × 100, consumption of the budget. Both variants are
// on-track while current ≤ target. Zero denominators yield progress 0 —
// never a division fault.
func (s *Service) Progress(g domain.Goal) (*domain.GoalProgress, error) {
	now := s.now()

	current, err := s.activities.SumFootprint(g.UserID, g.Category, g.StartDate, now)
	if err != nil {
		return nil, fmt.Errorf("sum current emissions: %w", err)
	}

	var pct float64
	switch g.Variant {
	case domain.GoalWeeklyReduction:
		if g.Baseline != 0 {
			pct = (g.Baseline - current) / g.Baseline * 100
		}
	case domain.GoalFixedEmission:
		if g.Target != 0 {
			pct = current / g.Target * 100
		}
	}

	days := g.DaysRemaining(now)
	return &domain.GoalProgress{
		GoalID:        g.ID,
		Variant:       g.Variant,
		Category:      g.Category,
		Current:       current,
		Baseline:      g.Baseline,
		Target:        g.Target,
		ProgressPct:   pct,
		OnTrack:       current <= g.Target,
		DaysRemaining: days,
		Expired:       days <= 0,
	}, nil
}

// ActiveProgress evaluates the user's active goal of the given variant.
// Returns ErrNoActiveGoal when none exists or the last one has lapsed.
func (s *Service) ActiveProgress(userID string, variant domain.GoalVariant) (*domain.GoalProgress, error) {
	g, err := s.goals.ActiveGoal(userID, variant, s.now())
	if err != nil {
		return nil, fmt.Errorf("load active goal: %w", err)
	}
	if g == nil {
		return nil, domain.ErrNoActiveGoal
	}
	return s.Progress(*g)
}

// Active returns the user's active goal of the given variant, or nil.
func (s *Service) Active(userID string, variant domain.GoalVariant) (*domain.Goal, error) {
	return s.goals.ActiveGoal(userID, variant, s.now())
}

// Abandon archives a goal.
func (s *Service) Abandon(userID, id string) error {
	return s.goals.UpdateGoalStatus(userID, id, domain.GoalAbandoned)
}
