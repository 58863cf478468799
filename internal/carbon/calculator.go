package carbon

import (
	"math"

	"github.com/ecotrack-app/ecotrack/internal/domain"
)

// Result is the outcome of a footprint calculation: the estimated footprint in
// kg CO₂e and the emission factor that produced it.
type Result struct {
	CarbonFootprint float64 `json:"carbon_footprint"`
	EmissionFactor  float64 `json:"emission_factor"`
}

// Calculate computes the carbon footprint for an activity's category,
// quantity, and detail variant. It always produces a result: unrecognized
// details resolve to per-category defaults, unrecognized units pass through
// unconverted, and an unrecognized category yields a zero footprint. The
// footprint is rounded half-away-from-zero to 2 decimals.
func Calculate(category domain.Category, q domain.Quantity, d domain.Details) Result {
	var canonical, factor float64

	switch category {
	case domain.CategoryTransport:
		canonical = ToCanonical(q.Value, q.Unit, DimensionDistance)
		factor = Lookup(TransportFactors, transportMode(d), DefaultTransportFactor)

	case domain.CategoryEnergy:
		canonical = ToCanonical(q.Value, q.Unit, DimensionEnergy)
		factor = Lookup(EnergyFactors, energySource(d), DefaultEnergyFactor)

	case domain.CategoryFood:
		canonical = ToCanonical(q.Value, q.Unit, DimensionWeight)
		factor = Lookup(FoodFactors, foodType(d), DefaultFoodFactor)

	case domain.CategoryWaste:
		canonical = ToCanonical(q.Value, q.Unit, DimensionWeight)
		factor = wasteFactor(d)

	default:
		// CategoryOther and anything unrecognized: no estimate.
		return Result{}
	}

	return Result{
		CarbonFootprint: round2(canonical * factor),
		EmissionFactor:  factor,
	}
}

// wasteFactor selects between the two waste lookup paths: general waste (or no
// waste type at all) resolves by disposal method, everything else by waste
// type. Both paths share the landfill default.
func wasteFactor(d domain.Details) float64 {
	if d.Waste == nil || d.Waste.WasteType == "" || d.Waste.WasteType == GeneralWaste {
		var method string
		if d.Waste != nil {
			method = d.Waste.DisposalMethod
		}
		return Lookup(DisposalFactors, method, DefaultWasteFactor)
	}
	return Lookup(WasteTypeFactors, d.Waste.WasteType, DefaultWasteFactor)
}

func transportMode(d domain.Details) string {
	if d.Transport == nil {
		return ""
	}
	return d.Transport.Mode
}

func energySource(d domain.Details) string {
	if d.Energy == nil {
		return ""
	}
	return d.Energy.Source
}

func foodType(d domain.Details) string {
	if d.Food == nil {
		return ""
	}
	return d.Food.FoodType
}

// round2 rounds half away from zero on the third decimal.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
