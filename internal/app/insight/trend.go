// Package insight derives tips, weekly insights, and emission trends from
// activity history and the user's active goal. Everything produced here is
// ephemeral — handed to the notification layer, never persisted.
package insight

import (
	"fmt"

	"github.com/ecotrack-app/ecotrack/internal/domain"
)

// StableBandPct is the band within which a period-over-period change counts
// as stable. The boundary is inclusive: exactly ±5% is stable.
const StableBandPct = 5

// TrendAlertThresholdPct is the increase beyond which a trend becomes
// notification-worthy.
const TrendAlertThresholdPct = 15

// AnalyzeTrend compares the two most recent buckets of a chronologically
// ordered series. Fewer than two buckets, or a zero previous total, yields a
// stable trend with zero change. The percentage tests the stable band; the
// direction follows the sign of the absolute change — a negative previous
// total (possible with recycling credits) flips the percentage's sign but
// never the direction.
func AnalyzeTrend(buckets []domain.EmissionBucket) domain.Trend {
	if len(buckets) < 2 {
		return domain.Trend{Direction: domain.TrendStable}
	}

	prev := buckets[len(buckets)-2].Total
	curr := buckets[len(buckets)-1].Total
	abs := curr - prev

	var pct float64
	if prev != 0 {
		pct = abs / prev * 100
	}

	direction := domain.TrendStable
	if pct > StableBandPct || pct < -StableBandPct {
		if abs > 0 {
			direction = domain.TrendIncreasing
		} else {
			direction = domain.TrendDecreasing
		}
	}

	return domain.Trend{
		Direction:        direction,
		AbsoluteChange:   abs,
		PercentageChange: pct,
	}
}

// TrendAlert returns a notification-worthy tip for the trend, or nil.
// Only a rising trend past the threshold alerts; a falling trend is reported
// passively through the dashboard, never alerted.
func TrendAlert(t domain.Trend) *domain.Tip {
	if t.Direction != domain.TrendIncreasing || t.PercentageChange <= TrendAlertThresholdPct {
		return nil
	}
	return &domain.Tip{
		Type:       domain.TipAlert,
		Title:      "Emissions trending up",
		Message:    fmt.Sprintf("Your emissions rose %.1f%% compared to the previous period.", t.PercentageChange),
		Priority:   domain.PriorityHigh,
		Actionable: true,
	}
}
