package insight

import (
	"fmt"
	"sort"

	"github.com/ecotrack-app/ecotrack/internal/domain"
)

// GlobalWeeklyAverageKg is the reference weekly footprint the batch insight
// compares against.
const GlobalWeeklyAverageKg = 35

// Weekly thresholds relative to the global average.
const (
	weeklyWarningKg = 50
	weeklySuccessKg = 20
)

// Weekly derives the batch insights for the user's last 7 days.
func (g *Generator) Weekly(userID string) ([]domain.Tip, error) {
	now := g.now()
	totals, err := g.activities.CategoryTotals(userID, now.AddDate(0, 0, -7), now)
	if err != nil {
		return nil, fmt.Errorf("weekly category totals: %w", err)
	}
	return WeeklyFromTotals(totals), nil
}

// WeeklyFromTotals derives the weekly insight set from per-category totals.
// An empty week produces a single "start tracking" insight. Otherwise the set
// always names the biggest contributor, plus a warning when the week exceeded
// 50 kg or a success note when it stayed under 20 kg.
func WeeklyFromTotals(totals map[domain.Category]float64) []domain.Tip {
	if len(totals) == 0 {
		return []domain.Tip{{
			Type:        domain.TipInfo,
			Title:       "Start tracking",
			Message:     "No activities logged this week. Log your first activity to see where your emissions come from.",
			Priority:    domain.PriorityHigh,
			Actionable:  true,
			Suggestions: genericAlternatives,
		}}
	}

	var total float64
	for _, v := range totals {
		total += v
	}

	top := topCategory(totals)
	share := 0.0
	if total != 0 {
		share = totals[top] / total * 100
	}

	insights := []domain.Tip{{
		Type:        domain.TipAlert,
		Title:       "Biggest contributor",
		Message:     fmt.Sprintf("%s was your largest source this week: %.2f kg CO₂e (%.0f%% of your total).", top, totals[top], share),
		Priority:    domain.PriorityMedium,
		Category:    top,
		Actionable:  true,
		Suggestions: optimizationsFor(top),
	}}

	switch {
	case total > weeklyWarningKg:
		insights = append(insights, domain.Tip{
			Type:     domain.TipWarning,
			Title:    "Heavy week",
			Message:  fmt.Sprintf("%.2f kg CO₂e this week, well above the %d kg global weekly average.", total, GlobalWeeklyAverageKg),
			Priority: domain.PriorityHigh,
			Category: top,
		})
	case total < weeklySuccessKg:
		insights = append(insights, domain.Tip{
			Type:     domain.TipSuccess,
			Title:    "Light week",
			Message:  fmt.Sprintf("%.2f kg CO₂e this week, under the %d kg global weekly average. Nice work.", total, GlobalWeeklyAverageKg),
			Priority: domain.PriorityLow,
		})
	}

	return insights
}

// TrendFor computes the week-over-week trend for a user from two window sums.
func (g *Generator) TrendFor(userID string) (domain.Trend, error) {
	now := g.now()

	prev, err := g.activities.SumFootprint(userID, domain.CategoryAll, now.AddDate(0, 0, -14), now.AddDate(0, 0, -7))
	if err != nil {
		return domain.Trend{}, fmt.Errorf("previous week sum: %w", err)
	}
	curr, err := g.activities.SumFootprint(userID, domain.CategoryAll, now.AddDate(0, 0, -7), now)
	if err != nil {
		return domain.Trend{}, fmt.Errorf("current week sum: %w", err)
	}

	return AnalyzeTrend([]domain.EmissionBucket{
		{Period: now.AddDate(0, 0, -14), Total: prev},
		{Period: now.AddDate(0, 0, -7), Total: curr},
	}), nil
}

// topCategory returns the highest-total category; ties break alphabetically
// so the result is deterministic.
func topCategory(totals map[domain.Category]float64) domain.Category {
	cats := make([]domain.Category, 0, len(totals))
	for c := range totals {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	top := cats[0]
	for _, c := range cats[1:] {
		if totals[c] > totals[top] {
			top = c
		}
	}
	return top
}
