package scoring

import (
	"testing"

	"github.com/carwise/carwise/internal/inventory"
	"github.com/carwise/carwise/internal/profile"
)

func TestScoreWeightedBudgetBands(t *testing.T) {
	cases := []struct {
		name  string
		price float64
		want  float64
	}{
		{"deep under budget", 14000, 25},
		{"under 85 percent", 16500, 20},
		{"at budget", 20000, 15},
		{"within 5 percent over", 21000, 8},
		{"within 10 percent over", 22000, 3},
		{"too expensive", 23000, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := inventory.Listing{Price: tc.price, Year: ReferenceYear}

			// No weights, no profile, no tags: everything but the budget
			// component is pinned (5 base driver fit, 0 bonus, 0 penalty).
			score := ScoreWeighted(l, 20000, profile.Weights{}, profile.TypeCommuter, nil)
			if got := score - 5; got != tc.want {
				t.Fatalf("expected %v budget points, got %v", tc.want, got)
			}
		})
	}
}

func TestScoreWeightedAgePenalty(t *testing.T) {
	cases := []struct {
		name string
		year int
		want float64
	}{
		{"new enough", ReferenceYear - 4, 0},
		{"over five years", ReferenceYear - 6, -2},
		{"over eight years", ReferenceYear - 9, -5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := inventory.Listing{Price: 10000, Year: tc.year}

			score := ScoreWeighted(l, 20000, profile.Weights{}, profile.TypeCommuter, nil)
			if got := score - 25 - 5; got != tc.want {
				t.Fatalf("expected penalty %v, got %v", tc.want, got)
			}
		})
	}
}

func TestPriorityPointsCappedAtForty(t *testing.T) {
	l := inventory.Listing{
		Reliability:  inventory.TierHigh,
		Insurance:    inventory.TierLow,
		Maintenance:  inventory.TierLow,
		Fuel:         "Electric",
		MPGCity:      120,
		MPGHighway:   100,
		SafetyRating: 5,
	}

	weights := profile.Weights{
		profile.FactorReliability:    1,
		profile.FactorInsurance:      1,
		profile.FactorMaintenance:    1,
		profile.FactorFuelEfficiency: 1,
		profile.FactorEnvironmental:  1,
		profile.FactorSafety:         1,
	}

	if got := priorityPoints(l, weights); got != 40 {
		t.Fatalf("expected the cap of 40, got %v", got)
	}
}

func TestPriorityPointsWeighting(t *testing.T) {
	l := inventory.Listing{Reliability: inventory.TierHigh}

	weights := profile.Weights{profile.FactorReliability: 0.4}
	if got := priorityPoints(l, weights); got != 10 {
		t.Fatalf("expected 25*0.4=10, got %v", got)
	}
}

func TestPreferenceBonusCappedAtFifteen(t *testing.T) {
	l := inventory.Listing{
		Brand: "Toyota",
		Type:  "SUV",
		Fuel:  "Hybrid",
		Color: "Blue",
	}

	p := &profile.Profile{
		SizePreference:  "Mid-size",
		FuelPreference:  profile.FuelPrefHybrid,
		BrandPreference: profile.BrandPrefJapanese,
		ColorPreference: "blue",
	}

	// 5 size + 5 fuel + 3 brand + 2 color hits the cap exactly; the color
	// match is case-insensitive.
	if got := preferenceBonus(l, p); got != 15 {
		t.Fatalf("expected 15, got %v", got)
	}
}

func TestPreferenceBonusPerformancePetrol(t *testing.T) {
	l := inventory.Listing{Brand: "Mazda", Type: "Coupe", Fuel: "Petrol"}
	p := &profile.Profile{FuelPreference: profile.FuelPrefPerformance}

	if got := preferenceBonus(l, p); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}

func TestBrandMatches(t *testing.T) {
	if !brandMatches(profile.BrandPrefJapanese, "Honda") {
		t.Fatalf("Honda should match the japanese list")
	}
	if brandMatches(profile.BrandPrefJapanese, "Ford") {
		t.Fatalf("Ford should not match the japanese list")
	}
	if brandMatches(profile.NoPreference, "Toyota") {
		t.Fatalf("no preference has no list")
	}
}

func TestScoreWeightedStaysInRange(t *testing.T) {
	best := inventory.Listing{
		Brand:        "Toyota",
		Type:         "SUV",
		Fuel:         "Hybrid",
		Color:        "Blue",
		Year:         ReferenceYear,
		Price:        10000,
		Reliability:  inventory.TierHigh,
		Insurance:    inventory.TierLow,
		Maintenance:  inventory.TierLow,
		MPGCity:      50,
		MPGHighway:   50,
		SafetyRating: 5,
		DriverTypes:  "Family",
	}

	p := &profile.Profile{
		SizePreference:  "Mid-size",
		FuelPreference:  profile.FuelPrefHybrid,
		BrandPreference: profile.BrandPrefJapanese,
		ColorPreference: "Blue",
	}

	weights := profile.Weights{
		profile.FactorReliability: 1,
		profile.FactorInsurance:   1,
		profile.FactorSafety:      1,
	}

	score := ScoreWeighted(best, 20000, weights, profile.TypeFamily, p)
	if score != 100 {
		t.Fatalf("expected every component maxed to total 100, got %v", score)
	}

	worst := inventory.Listing{Price: 1, Year: ReferenceYear - 20}
	if got := ScoreWeighted(worst, 20000, profile.Weights{}, profile.TypeCommuter, nil); got < 0 {
		t.Fatalf("score must not go negative, got %v", got)
	}
}
