package carbon

// ─── Emission Factor Tables ─────────────────────────────────────────────────
// All static factors live here, and only here: the calculator and the
// /api/factors read endpoint consume the same tables, so the two can never
// drift. Factors are kg CO₂e per canonical unit (km, kWh, kg).

// TableVersion identifies the factor data set served and applied.
const TableVersion = "2024.1"

// TransportFactors maps a transport mode to kg CO₂e per km.
var TransportFactors = map[string]float64{
	"walking":      0,
	"cycling":      0,
	"car_gasoline": 0.21,
	"car_diesel":   0.17,
	"car_hybrid":   0.12,
	"car_electric": 0.05,
	"motorcycle":   0.103,
	"bus":          0.105,
	"train":        0.041,
	"subway":       0.035,
	"plane":        0.255,
}

// DefaultTransportFactor applies when the mode is absent or unrecognized.
// It equals the gasoline car factor.
const DefaultTransportFactor = 0.21

// EnergyFactors maps an energy source to kg CO₂e per kWh.
var EnergyFactors = map[string]float64{
	"grid_average": 0.45,
	"coal":         0.95,
	"natural_gas":  0.49,
	"solar":        0.05,
	"wind":         0.01,
	"hydro":        0.02,
	"nuclear":      0.01,
}

// DefaultEnergyFactor is the grid average, applied when the source is absent
// or unrecognized.
const DefaultEnergyFactor = 0.45

// FoodFactors maps a food type to kg CO₂e per kg.
var FoodFactors = map[string]float64{
	"beef":       27.0,
	"lamb":       24.5,
	"pork":       7.2,
	"chicken":    6.1,
	"fish":       5.4,
	"dairy":      3.2,
	"eggs":       4.5,
	"rice":       4.0,
	"vegetables": 0.4,
	"fruits":     0.5,
}

// DefaultFoodFactor applies when the food type is absent or unrecognized.
const DefaultFoodFactor = 2.0

// DisposalFactors maps a disposal method for general waste to kg CO₂e per kg.
var DisposalFactors = map[string]float64{
	"landfill":     0.5,
	"incineration": 0.3,
}

// WasteTypeFactors maps a non-general waste type to kg CO₂e per kg.
// Recycling is negative: it represents avoided emissions, so a recycling
// activity may legitimately carry a negative footprint.
var WasteTypeFactors = map[string]float64{
	"recycling": -0.1,
	"compost":   0.1,
	"hazardous": 2.0,
}

// DefaultWasteFactor applies for both waste lookup paths when the key is
// absent or unrecognized. It equals the landfill factor.
const DefaultWasteFactor = 0.5

// GeneralWaste is the waste type routed through the disposal-method table.
const GeneralWaste = "general_waste"

// Lookup resolves key in table, falling back to def when absent. Every factor
// table resolves through this one step so "missing key" behavior stays uniform.
func Lookup(table map[string]float64, key string, def float64) float64 {
	if f, ok := table[key]; ok {
		return f
	}
	return def
}
