package carbon

import (
	"math"
	"testing"

	"github.com/ecotrack-app/ecotrack/internal/domain"
)

// ─── Conversion Tests ───────────────────────────────────────────────────────

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		unit   domain.Unit
		dim    Dimension
		want   float64
		wantOK bool
	}{
		{"miles to km", 100, domain.UnitMiles, DimensionDistance, 160.934, true},
		{"meters to km", 500, domain.UnitMeters, DimensionDistance, 0.5, true},
		{"km identity", 42, domain.UnitKm, DimensionDistance, 42, true},
		{"MWh to kWh", 1, domain.UnitMWh, DimensionEnergy, 1000, true},
		{"BTU to kWh", 1000, domain.UnitBTU, DimensionEnergy, 0.293071, true},
		{"kWh identity", 7, domain.UnitKWh, DimensionEnergy, 7, true},
		{"lbs to kg", 10, domain.UnitLbs, DimensionWeight, 4.53592, true},
		{"grams to kg", 250, domain.UnitGrams, DimensionWeight, 0.25, true},
		{"servings to kg approximation", 4, domain.UnitServings, DimensionWeight, 1, true},
		{"kg identity", 3, domain.UnitKg, DimensionWeight, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Convert(tt.value, tt.unit, tt.dim)
			if ok != tt.wantOK {
				t.Fatalf("Convert() ok = %v, want %v", ok, tt.wantOK)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Convert(%v, %q, %q) = %v, want %v", tt.value, tt.unit, tt.dim, got, tt.want)
			}
		})
	}
}

// ─── Pass-Through Fallback ──────────────────────────────────────────────────
// An unrecognized unit for the dimension is not an error: the value passes
// through unconverted, and Convert reports it was not recognized.

func TestConvert_PassThrough(t *testing.T) {
	tests := []struct {
		name string
		unit domain.Unit
		dim  Dimension
	}{
		{"km is not an energy unit", domain.UnitKm, DimensionEnergy},
		{"kWh is not a distance unit", domain.UnitKWh, DimensionDistance},
		{"liters never convert", domain.UnitLiters, DimensionWeight},
		{"count never converts", domain.UnitCount, DimensionDistance},
		{"unknown unit", domain.Unit("furlongs"), DimensionDistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Convert(12.5, tt.unit, tt.dim)
			if ok {
				t.Errorf("Convert() ok = true, want false for %q in %q", tt.unit, tt.dim)
			}
			if got != 12.5 {
				t.Errorf("pass-through changed the value: got %v, want 12.5", got)
			}
		})
	}
}

func TestToCanonical_IdentityVsPassThroughSameValue(t *testing.T) {
	// The identity conversion and the pass-through fallback are numerically
	// identical; only Convert's ok flag tells them apart.
	identity := ToCanonical(9, domain.UnitKm, DimensionDistance)
	passThrough := ToCanonical(9, domain.UnitCount, DimensionDistance)
	if identity != passThrough {
		t.Errorf("identity %v != pass-through %v", identity, passThrough)
	}
}
