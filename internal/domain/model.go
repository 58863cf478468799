// Package domain contains pure business types with ZERO infrastructure imports.
// This is the innermost ring of clean architecture — it depends on nothing.
package domain

import (
	"fmt"
	"math"
	"time"
)

// ─── Activity Types ─────────────────────────────────────────────────────────

// Category classifies an activity by emission source.
type Category string

const (
	CategoryTransport Category = "transport"
	CategoryEnergy    Category = "energy"
	CategoryFood      Category = "food"
	CategoryWaste     Category = "waste"
	CategoryOther     Category = "other"

	// CategoryAll is only valid as a goal filter, never on an activity.
	CategoryAll Category = "all"
)

// Valid reports whether c is a recognized activity category.
func (c Category) Valid() bool {
	switch c {
	case CategoryTransport, CategoryEnergy, CategoryFood, CategoryWaste, CategoryOther:
		return true
	}
	return false
}

// Unit is a measurement unit for an activity quantity.
// Units group by physical dimension (distance, energy, weight, volume, time,
// count) but an activity's unit is not validated against its category: a
// quantity whose unit is unknown to a calculation passes through unconverted.
type Unit string

const (
	// Distance
	UnitKm     Unit = "km"
	UnitMiles  Unit = "miles"
	UnitMeters Unit = "m"

	// Energy
	UnitKWh Unit = "kWh"
	UnitMWh Unit = "MWh"
	UnitBTU Unit = "BTU"

	// Weight
	UnitKg       Unit = "kg"
	UnitLbs      Unit = "lbs"
	UnitGrams    Unit = "g"
	UnitServings Unit = "servings"

	// Volume / time / count
	UnitLiters  Unit = "liters"
	UnitGallons Unit = "gallons"
	UnitHours   Unit = "hours"
	UnitMinutes Unit = "minutes"
	UnitCount   Unit = "count"
)

// Quantity is a measured amount with its unit.
type Quantity struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// Validate checks that the quantity is a positive, finite amount.
func (q Quantity) Validate() error {
	if math.IsNaN(q.Value) || math.IsInf(q.Value, 0) {
		return fmt.Errorf("%w: quantity value must be finite", ErrValidation)
	}
	if q.Value <= 0 {
		return fmt.Errorf("%w: quantity value must be positive", ErrValidation)
	}
	if q.Unit == "" {
		return fmt.Errorf("%w: quantity unit is required", ErrValidation)
	}
	return nil
}

// ─── Category Detail Variants ───────────────────────────────────────────────
// One variant per category so that cross-category fields are unrepresentable.
// Details holds at most the variant matching the activity's category; the
// calculator reads only that variant and treats a missing one as "no detail".

// TransportDetail carries transport-specific context.
type TransportDetail struct {
	Mode string `json:"mode,omitempty"`
}

// EnergyDetail carries energy-specific context.
type EnergyDetail struct {
	Source string `json:"source,omitempty"`
}

// FoodDetail carries food-specific context.
type FoodDetail struct {
	FoodType string `json:"food_type,omitempty"`
}

// WasteDetail carries waste-specific context.
type WasteDetail struct {
	WasteType      string `json:"waste_type,omitempty"`
	DisposalMethod string `json:"disposal_method,omitempty"`
}

// Details is the tagged union of category-specific detail variants.
type Details struct {
	Transport *TransportDetail `json:"transport,omitempty"`
	Energy    *EnergyDetail    `json:"energy,omitempty"`
	Food      *FoodDetail      `json:"food,omitempty"`
	Waste     *WasteDetail     `json:"waste,omitempty"`
}

// ─── Activity ───────────────────────────────────────────────────────────────

const (
	MaxActivityNameLen        = 100
	MaxActivityDescriptionLen = 500
)

// Activity is a single logged emission-producing action.
// CarbonFootprint and EmissionFactor are derived: they are recomputed on every
// create and on every update touching quantity, category, or details — never
// left stale relative to the saved inputs.
type Activity struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Category        Category  `json:"category"`
	Quantity        Quantity  `json:"quantity"`
	Details         Details   `json:"details"`
	CarbonFootprint float64   `json:"carbon_footprint"`
	EmissionFactor  float64   `json:"emission_factor"`
	LoggedAt        time.Time `json:"logged_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Validate checks the caller-supplied fields of an activity.
func (a *Activity) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(a.Name) > MaxActivityNameLen {
		return fmt.Errorf("%w: name exceeds %d characters", ErrValidation, MaxActivityNameLen)
	}
	if len(a.Description) > MaxActivityDescriptionLen {
		return fmt.Errorf("%w: description exceeds %d characters", ErrValidation, MaxActivityDescriptionLen)
	}
	if !a.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, a.Category)
	}
	return a.Quantity.Validate()
}

// ─── Trend Types ────────────────────────────────────────────────────────────

// TrendDirection is the movement of emissions between two periods.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// Trend compares the two most recent emission period buckets.
// Ephemeral — derived per request, never persisted.
type Trend struct {
	Direction        TrendDirection `json:"direction"`
	AbsoluteChange   float64        `json:"absolute_change"`
	PercentageChange float64        `json:"percentage_change"`
}

// EmissionBucket is one period's total emissions in a chronological series.
type EmissionBucket struct {
	Period time.Time `json:"period"`
	Total  float64   `json:"total"`
}

// ─── Leaderboard Types ──────────────────────────────────────────────────────

// UserTotal is one leaderboard row: a user's total footprint over a window.
type UserTotal struct {
	UserID        string  `json:"user_id"`
	Total         float64 `json:"total"`
	ActivityCount int     `json:"activity_count"`
}

// ─── Streak Types ───────────────────────────────────────────────────────────

// Streak describes consecutive days with at least one logged activity.
type Streak struct {
	CurrentDays int       `json:"current_days"`
	LongestDays int       `json:"longest_days"`
	LastDate    time.Time `json:"last_date"`
}
