package insight

import (
	"fmt"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/domain"
)

// rollingAverageDays is the history window for the "above your average"
// comparison tier.
const rollingAverageDays = 30

// lowCarbonThresholdKg marks a single activity as a low-carbon win when no
// goal provides context.
const lowCarbonThresholdKg = 1

// Generator derives tips from activities against the user's goal and history.
type Generator struct {
	activities domain.ActivityStore
	goals      domain.GoalStore
	now        func() time.Time
}

// NewGenerator creates a tip generator.
func NewGenerator(activities domain.ActivityStore, goals domain.GoalStore) *Generator {
	return &Generator{activities: activities, goals: goals, now: time.Now}
}

// ForActivity derives at most one tip for a freshly logged activity.
//
// With an active fixed emission goal, a four-tier cascade applies, highest
// severity first; the first matching tier wins and the rest are not
// evaluated:
//
//	(a) budget exhausted       → warning with category alternatives
//	(b) within 10% of budget   → alert with low-emission suggestions
//	(c) above 30-day average   → info with optimization suggestions
//	(d) ≤50% used, >1 day left → success encouragement
//
// Without a goal, fixed per-category thresholds flag a high-emission info tip,
// and a footprint under 1 kg earns a low-carbon success tip. Anything else
// produces no tip.
//
// The evaluation is anchored on the activity's own timestamp: current usage is
// the stored history strictly before LoggedAt plus this activity's footprint,
// so the result does not depend on whether the activity has been inserted yet
// or on the clock tick between insert and evaluation.
func (g *Generator) ForActivity(a domain.Activity) (*domain.Tip, error) {
	now := g.now()

	goal, err := g.goals.ActiveGoal(a.UserID, domain.GoalFixedEmission, now)
	if err != nil {
		return nil, fmt.Errorf("load active goal: %w", err)
	}
	if goal == nil {
		return g.thresholdTip(a), nil
	}

	current, err := g.activities.SumFootprint(a.UserID, goal.Category, goal.StartDate, a.LoggedAt)
	if err != nil {
		return nil, fmt.Errorf("sum goal emissions: %w", err)
	}
	if goal.Category == domain.CategoryAll || goal.Category == a.Category {
		current += a.CarbonFootprint
	}
	remaining := goal.RemainingBudget(current)

	// Tier (a): budget exhausted.
	if remaining <= 0 {
		return &domain.Tip{
			Type:        domain.TipWarning,
			Title:       "Carbon budget exceeded",
			Message:     fmt.Sprintf("You are %.1f kg CO₂e over your %.0f kg goal. Every activity now adds to the overrun.", -remaining, goal.Target),
			Priority:    domain.PriorityHigh,
			Category:    a.Category,
			Actionable:  true,
			Suggestions: alternativesFor(a.Category),
		}, nil
	}

	// Tier (b): within 10% of the budget.
	if remaining <= goal.Target*0.1 {
		return &domain.Tip{
			Type:        domain.TipAlert,
			Title:       "Carbon budget nearly used",
			Message:     fmt.Sprintf("Only %.1f kg CO₂e left of your %.0f kg goal. Favor low-emission choices.", remaining, goal.Target),
			Priority:    domain.PriorityHigh,
			Category:    a.Category,
			Actionable:  true,
			Suggestions: optimizationsFor(a.Category),
		}, nil
	}

	// Tier (c): this activity is above the user's 30-day category average.
	avg, err := g.categoryAverage(a.UserID, a.Category, a.LoggedAt)
	if err != nil {
		return nil, err
	}
	if a.CarbonFootprint > avg {
		return &domain.Tip{
			Type:        domain.TipInfo,
			Title:       "Above your usual footprint",
			Message:     fmt.Sprintf("This %s activity produced %.2f kg CO₂e, above your %.2f kg average.", a.Category, a.CarbonFootprint, avg),
			Priority:    domain.PriorityMedium,
			Category:    a.Category,
			Actionable:  true,
			Suggestions: optimizationsFor(a.Category),
		}, nil
	}

	// Tier (d): comfortably on track with time to spare.
	if current <= goal.Target*0.5 && goal.DaysRemaining(now) > 1 {
		return &domain.Tip{
			Type:     domain.TipSuccess,
			Title:    "Well within budget",
			Message:  fmt.Sprintf("You have used %.2f of %.0f kg CO₂e with %d days to go. Keep it up!", current, goal.Target, goal.DaysRemaining(now)),
			Priority: domain.PriorityLow,
			Category: a.Category,
		}, nil
	}

	return nil, nil
}

// categoryAverage returns the user's 30-day rolling average footprint for the
// category over the window ending at ref (exclusive), falling back to the
// global average table when there is no history.
func (g *Generator) categoryAverage(userID string, cat domain.Category, ref time.Time) (float64, error) {
	avg, count, err := g.activities.CategoryAverage(userID, cat, ref.AddDate(0, 0, -rollingAverageDays), ref)
	if err != nil {
		return 0, fmt.Errorf("category average: %w", err)
	}
	if count == 0 {
		return globalCategoryAverages[cat], nil
	}
	return avg, nil
}

// thresholdTip applies the no-goal absolute thresholds.
func (g *Generator) thresholdTip(a domain.Activity) *domain.Tip {
	threshold, ok := highEmissionThresholds[a.Category]
	if !ok {
		threshold = highEmissionThresholds[domain.CategoryOther]
	}

	if a.CarbonFootprint > threshold {
		return &domain.Tip{
			Type:        domain.TipInfo,
			Title:       "High-emission activity",
			Message:     fmt.Sprintf("%.2f kg CO₂e is high for a %s activity.", a.CarbonFootprint, a.Category),
			Priority:    domain.PriorityMedium,
			Category:    a.Category,
			Actionable:  true,
			Suggestions: optimizationsFor(a.Category),
		}
	}

	if a.CarbonFootprint < lowCarbonThresholdKg {
		return &domain.Tip{
			Type:     domain.TipSuccess,
			Title:    "Low-carbon choice",
			Message:  fmt.Sprintf("Only %.2f kg CO₂e — a light footprint for %s.", a.CarbonFootprint, a.Category),
			Priority: domain.PriorityLow,
			Category: a.Category,
		}
	}

	return nil
}
