// Package carbon is the footprint calculation core: unit conversion, the
// versioned emission-factor tables, and the per-category calculator. It is a
// pure function layer — no I/O, no shared state, no persistence.
package carbon

import "github.com/ecotrack-app/ecotrack/internal/domain"

// Dimension is the physical dimension a calculation is performed in. Each
// dimension has one canonical unit: km, kWh, kg.
type Dimension string

const (
	DimensionDistance Dimension = "distance" // canonical: km
	DimensionEnergy   Dimension = "energy"   // canonical: kWh
	DimensionWeight   Dimension = "weight"   // canonical: kg
)

// conversions maps a unit to its multiplier into the dimension's canonical
// unit. The canonical unit itself is present with factor 1 so that
// "recognized, identity" is distinguishable from "unrecognized, pass-through".
var conversions = map[Dimension]map[domain.Unit]float64{
	DimensionDistance: {
		domain.UnitKm:     1,
		domain.UnitMiles:  1.60934,
		domain.UnitMeters: 0.001,
	},
	DimensionEnergy: {
		domain.UnitKWh: 1,
		domain.UnitMWh: 1000,
		domain.UnitBTU: 0.000293071,
	},
	DimensionWeight: {
		domain.UnitKg:    1,
		domain.UnitLbs:   0.453592,
		domain.UnitGrams: 0.001,
		// One serving is approximated as 0.25 kg. This is a fixed, documented
		// approximation, not a real unit conversion.
		domain.UnitServings: 0.25,
	},
}

// Convert converts value from unit into the dimension's canonical unit.
// The second return reports whether the unit is recognized for the dimension;
// when false, value is returned unchanged.
func Convert(value float64, unit domain.Unit, dim Dimension) (float64, bool) {
	factor, ok := conversions[dim][unit]
	if !ok {
		return value, false
	}
	return value * factor, true
}

// ToCanonical is the single default-resolution step over Convert: a unit not
// recognized for the dimension passes through unconverted. This permissiveness
// is intentional — it is the fallback path the calculator relies on, not an
// error.
func ToCanonical(value float64, unit domain.Unit, dim Dimension) float64 {
	v, _ := Convert(value, unit, dim)
	return v
}
