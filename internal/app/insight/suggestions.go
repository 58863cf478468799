package insight

import "github.com/ecotrack-app/ecotrack/internal/domain"

// ─── Static Suggestion Tables ───────────────────────────────────────────────
// Per-category canned suggestion lists. Alternatives are served whole when a
// budget is blown; optimization lists are capped at three entries.

var alternativeSuggestions = map[domain.Category][]string{
	domain.CategoryTransport: {
		"Take public transit instead of driving",
		"Combine errands into a single trip",
		"Try cycling or walking for trips under 5 km",
		"Carpool for your regular commute",
	},
	domain.CategoryEnergy: {
		"Switch to LED lighting",
		"Lower your thermostat by 1-2 degrees",
		"Unplug devices on standby",
		"Run appliances on off-peak, lower-carbon hours",
	},
	domain.CategoryFood: {
		"Swap one meat meal for a plant-based one",
		"Choose chicken or fish over beef and lamb",
		"Buy seasonal, locally produced food",
		"Plan portions to cut food waste",
	},
	domain.CategoryWaste: {
		"Separate recyclables from general waste",
		"Compost food scraps",
		"Choose products with less packaging",
		"Repair or donate before discarding",
	},
}

var genericAlternatives = []string{
	"Log smaller, more frequent activities to spot your biggest sources",
	"Check your weekly insight for your top-emitting category",
	"Set a weekly reduction goal to track your improvement",
}

var optimizationSuggestions = map[domain.Category][]string{
	domain.CategoryTransport: {
		"Plan routes to avoid congestion",
		"Keep tires inflated for better efficiency",
		"Consider an electric or hybrid option for your next trip",
	},
	domain.CategoryEnergy: {
		"Shift heavy appliance use to daylight hours if you have solar",
		"Seal drafts before heating season",
		"Use a smart thermostat schedule",
	},
	domain.CategoryFood: {
		"Batch-cook to reduce energy per meal",
		"Reduce red meat portion sizes",
		"Freeze leftovers instead of discarding them",
	},
	domain.CategoryWaste: {
		"Rinse and sort recyclables properly",
		"Start a small compost bin",
		"Buy refills instead of new containers",
	},
}

var genericOptimizations = []string{
	"Track this category for a few weeks to find patterns",
	"Compare against your weekly insight",
	"Set a category-specific goal",
}

const maxOptimizationSuggestions = 3

// alternativesFor returns the full alternatives list for a category, falling
// back to the generic list.
func alternativesFor(cat domain.Category) []string {
	if s, ok := alternativeSuggestions[cat]; ok {
		return s
	}
	return genericAlternatives
}

// optimizationsFor returns at most three optimization suggestions for a
// category, falling back to the generic list.
func optimizationsFor(cat domain.Category) []string {
	s, ok := optimizationSuggestions[cat]
	if !ok {
		s = genericOptimizations
	}
	if len(s) > maxOptimizationSuggestions {
		s = s[:maxOptimizationSuggestions]
	}
	return s
}

// ─── Fallback Averages ──────────────────────────────────────────────────────

// globalCategoryAverages is the per-activity kg CO₂e average used when a user
// has no 30-day history in a category.
var globalCategoryAverages = map[domain.Category]float64{
	domain.CategoryTransport: 5.0,
	domain.CategoryEnergy:    4.0,
	domain.CategoryFood:      3.5,
	domain.CategoryWaste:     1.0,
	domain.CategoryOther:     2.0,
}

// highEmissionThresholds flags a single activity as high-emission when no
// goal provides context, in kg CO₂e.
var highEmissionThresholds = map[domain.Category]float64{
	domain.CategoryTransport: 10,
	domain.CategoryFood:      5,
	domain.CategoryEnergy:    8,
	domain.CategoryWaste:     2,
	domain.CategoryOther:     3,
}
