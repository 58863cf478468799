package carbon

import (
	"testing"

	"github.com/ecotrack-app/ecotrack/internal/domain"
)

// ─── Calculator Tests ───────────────────────────────────────────────────────

func TestCalculate_Transport(t *testing.T) {
	tests := []struct {
		name       string
		quantity   domain.Quantity
		details    domain.Details
		want       float64
		wantFactor float64
	}{
		{
			name:       "gasoline car over 100 km",
			quantity:   domain.Quantity{Value: 100, Unit: domain.UnitKm},
			details:    domain.Details{Transport: &domain.TransportDetail{Mode: "car_gasoline"}},
			want:       21.00,
			wantFactor: 0.21,
		},
		{
			name:       "missing mode falls back to gasoline car",
			quantity:   domain.Quantity{Value: 10, Unit: domain.UnitKm},
			details:    domain.Details{},
			want:       2.10,
			wantFactor: 0.21,
		},
		{
			name:       "unrecognized mode falls back to gasoline car",
			quantity:   domain.Quantity{Value: 10, Unit: domain.UnitKm},
			details:    domain.Details{Transport: &domain.TransportDetail{Mode: "hoverboard"}},
			want:       2.10,
			wantFactor: 0.21,
		},
		{
			name:       "train over 100 miles",
			quantity:   domain.Quantity{Value: 100, Unit: domain.UnitMiles},
			details:    domain.Details{Transport: &domain.TransportDetail{Mode: "train"}},
			want:       6.60, // 160.934 km × 0.041
			wantFactor: 0.041,
		},
		{
			name:       "walking is zero emission",
			quantity:   domain.Quantity{Value: 5, Unit: domain.UnitKm},
			details:    domain.Details{Transport: &domain.TransportDetail{Mode: "walking"}},
			want:       0,
			wantFactor: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(domain.CategoryTransport, tt.quantity, tt.details)
			if got.CarbonFootprint != tt.want {
				t.Errorf("CarbonFootprint = %v, want %v", got.CarbonFootprint, tt.want)
			}
			if got.EmissionFactor != tt.wantFactor {
				t.Errorf("EmissionFactor = %v, want %v", got.EmissionFactor, tt.wantFactor)
			}
		})
	}
}

func TestCalculate_Energy(t *testing.T) {
	got := Calculate(domain.CategoryEnergy,
		domain.Quantity{Value: 1000, Unit: domain.UnitKWh},
		domain.Details{Energy: &domain.EnergyDetail{Source: "grid_average"}})
	if got.CarbonFootprint != 450.00 {
		t.Errorf("CarbonFootprint = %v, want 450.00", got.CarbonFootprint)
	}
	if got.EmissionFactor != 0.45 {
		t.Errorf("EmissionFactor = %v, want 0.45", got.EmissionFactor)
	}
}

func TestCalculate_Energy_MWhEqualsKWh(t *testing.T) {
	// Converting 1 MWh then applying the factor must equal computing directly
	// with 1000 kWh and the same source.
	detail := domain.Details{Energy: &domain.EnergyDetail{Source: "grid_average"}}
	mwh := Calculate(domain.CategoryEnergy, domain.Quantity{Value: 1, Unit: domain.UnitMWh}, detail)
	kwh := Calculate(domain.CategoryEnergy, domain.Quantity{Value: 1000, Unit: domain.UnitKWh}, detail)

	if mwh != kwh {
		t.Errorf("1 MWh result %+v != 1000 kWh result %+v", mwh, kwh)
	}
	if mwh.CarbonFootprint != 450.00 {
		t.Errorf("CarbonFootprint = %v, want 450.00", mwh.CarbonFootprint)
	}
}

func TestCalculate_Energy_DefaultSource(t *testing.T) {
	got := Calculate(domain.CategoryEnergy,
		domain.Quantity{Value: 10, Unit: domain.UnitKWh},
		domain.Details{})
	if got.EmissionFactor != 0.45 {
		t.Errorf("missing source should use grid average 0.45, got %v", got.EmissionFactor)
	}
	if got.CarbonFootprint != 4.50 {
		t.Errorf("CarbonFootprint = %v, want 4.50", got.CarbonFootprint)
	}
}

func TestCalculate_Food(t *testing.T) {
	tests := []struct {
		name       string
		quantity   domain.Quantity
		details    domain.Details
		want       float64
		wantFactor float64
	}{
		{
			name:       "2 kg of beef",
			quantity:   domain.Quantity{Value: 2, Unit: domain.UnitKg},
			details:    domain.Details{Food: &domain.FoodDetail{FoodType: "beef"}},
			want:       54.00,
			wantFactor: 27.0,
		},
		{
			name:       "servings approximation",
			quantity:   domain.Quantity{Value: 2, Unit: domain.UnitServings},
			details:    domain.Details{Food: &domain.FoodDetail{FoodType: "chicken"}},
			want:       3.05, // 0.5 kg × 6.1
			wantFactor: 6.1,
		},
		{
			name:       "unknown food type uses default",
			quantity:   domain.Quantity{Value: 3, Unit: domain.UnitKg},
			details:    domain.Details{Food: &domain.FoodDetail{FoodType: "ambrosia"}},
			want:       6.00,
			wantFactor: 2.0,
		},
		{
			name:       "no detail uses default",
			quantity:   domain.Quantity{Value: 1, Unit: domain.UnitKg},
			details:    domain.Details{},
			want:       2.00,
			wantFactor: 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(domain.CategoryFood, tt.quantity, tt.details)
			if got.CarbonFootprint != tt.want {
				t.Errorf("CarbonFootprint = %v, want %v", got.CarbonFootprint, tt.want)
			}
			if got.EmissionFactor != tt.wantFactor {
				t.Errorf("EmissionFactor = %v, want %v", got.EmissionFactor, tt.wantFactor)
			}
		})
	}
}

func TestCalculate_Waste(t *testing.T) {
	tests := []struct {
		name       string
		quantity   domain.Quantity
		details    domain.Details
		want       float64
		wantFactor float64
	}{
		{
			name:       "recycling yields negative footprint",
			quantity:   domain.Quantity{Value: 5, Unit: domain.UnitKg},
			details:    domain.Details{Waste: &domain.WasteDetail{WasteType: "recycling"}},
			want:       -0.50,
			wantFactor: -0.1,
		},
		{
			name:       "general waste by incineration",
			quantity:   domain.Quantity{Value: 2, Unit: domain.UnitKg},
			details:    domain.Details{Waste: &domain.WasteDetail{WasteType: "general_waste", DisposalMethod: "incineration"}},
			want:       0.60,
			wantFactor: 0.3,
		},
		{
			name:       "general waste without method defaults to landfill",
			quantity:   domain.Quantity{Value: 2, Unit: domain.UnitKg},
			details:    domain.Details{Waste: &domain.WasteDetail{WasteType: "general_waste"}},
			want:       1.00,
			wantFactor: 0.5,
		},
		{
			name:       "no waste detail at all defaults to landfill",
			quantity:   domain.Quantity{Value: 4, Unit: domain.UnitKg},
			details:    domain.Details{},
			want:       2.00,
			wantFactor: 0.5,
		},
		{
			name:       "hazardous waste",
			quantity:   domain.Quantity{Value: 1, Unit: domain.UnitKg},
			details:    domain.Details{Waste: &domain.WasteDetail{WasteType: "hazardous"}},
			want:       2.00,
			wantFactor: 2.0,
		},
		{
			name:       "unrecognized waste type uses default",
			quantity:   domain.Quantity{Value: 2, Unit: domain.UnitKg},
			details:    domain.Details{Waste: &domain.WasteDetail{WasteType: "mystery"}},
			want:       1.00,
			wantFactor: 0.5,
		},
		{
			name:       "lbs convert before factor",
			quantity:   domain.Quantity{Value: 10, Unit: domain.UnitLbs},
			details:    domain.Details{Waste: &domain.WasteDetail{WasteType: "compost"}},
			want:       0.45, // 4.53592 kg × 0.1
			wantFactor: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(domain.CategoryWaste, tt.quantity, tt.details)
			if got.CarbonFootprint != tt.want {
				t.Errorf("CarbonFootprint = %v, want %v", got.CarbonFootprint, tt.want)
			}
			if got.EmissionFactor != tt.wantFactor {
				t.Errorf("EmissionFactor = %v, want %v", got.EmissionFactor, tt.wantFactor)
			}
		})
	}
}

func TestCalculate_OtherAndUnknownCategory(t *testing.T) {
	for _, cat := range []domain.Category{domain.CategoryOther, domain.Category("mystery")} {
		t.Run(string(cat), func(t *testing.T) {
			got := Calculate(cat, domain.Quantity{Value: 100, Unit: domain.UnitKg}, domain.Details{})
			if got.CarbonFootprint != 0 || got.EmissionFactor != 0 {
				t.Errorf("got %+v, want zero result", got)
			}
		})
	}
}

func TestCalculate_LenientUnitCategoryMix(t *testing.T) {
	// A food activity recorded in km silently passes through the converter's
	// identity path and multiplies by the food factor. Lenient on purpose.
	got := Calculate(domain.CategoryFood,
		domain.Quantity{Value: 2, Unit: domain.UnitKm},
		domain.Details{Food: &domain.FoodDetail{FoodType: "beef"}})
	if got.CarbonFootprint != 54.00 {
		t.Errorf("CarbonFootprint = %v, want 54.00", got.CarbonFootprint)
	}
}

func TestCalculate_Rounding(t *testing.T) {
	// 0.105 kg general waste landfill: 0.105 × 0.5 = 0.0525 → rounds half
	// away from zero to 0.05; 0.11 × 0.5 = 0.055 → 0.06.
	tests := []struct {
		value float64
		want  float64
	}{
		{0.105, 0.05},
		{0.11, 0.06},
		{0.1, 0.05},
	}
	for _, tt := range tests {
		got := Calculate(domain.CategoryWaste,
			domain.Quantity{Value: tt.value, Unit: domain.UnitKg},
			domain.Details{Waste: &domain.WasteDetail{DisposalMethod: "landfill"}})
		if got.CarbonFootprint != tt.want {
			t.Errorf("Calculate(%v kg) footprint = %v, want %v", tt.value, got.CarbonFootprint, tt.want)
		}
	}
}

// ─── Factor Table Tests ─────────────────────────────────────────────────────

func TestFactorTableCoverage(t *testing.T) {
	if len(TransportFactors) != 11 {
		t.Errorf("TransportFactors has %d modes, want 11", len(TransportFactors))
	}
	if len(EnergyFactors) != 7 {
		t.Errorf("EnergyFactors has %d sources, want 7", len(EnergyFactors))
	}
	if len(FoodFactors) != 10 {
		t.Errorf("FoodFactors has %d types, want 10", len(FoodFactors))
	}
	if len(DisposalFactors) != 2 {
		t.Errorf("DisposalFactors has %d methods, want 2", len(DisposalFactors))
	}
}

func TestFactorDefaultsMatchNamedEntries(t *testing.T) {
	if TransportFactors["car_gasoline"] != DefaultTransportFactor {
		t.Error("transport default must equal the gasoline car factor")
	}
	if EnergyFactors["grid_average"] != DefaultEnergyFactor {
		t.Error("energy default must equal the grid average factor")
	}
	if DisposalFactors["landfill"] != DefaultWasteFactor {
		t.Error("waste default must equal the landfill factor")
	}
}

func TestLookup(t *testing.T) {
	table := map[string]float64{"a": 1.5}
	if got := Lookup(table, "a", 9); got != 1.5 {
		t.Errorf("Lookup(present) = %v, want 1.5", got)
	}
	if got := Lookup(table, "b", 9); got != 9 {
		t.Errorf("Lookup(absent) = %v, want default 9", got)
	}
	if got := Lookup(table, "", 9); got != 9 {
		t.Errorf("Lookup(empty key) = %v, want default 9", got)
	}
}
