package inventory

import "testing"

func sampleSet() *Inventory {
	return &Inventory{Items: []Listing{
		{ID: 1, Price: 9000, Mileage: 80000, SafetyRating: 4},
		{ID: 2, Price: 15000, Mileage: 30000, SafetyRating: 5},
		{ID: 3, Price: 7000, Mileage: 120000, SafetyRating: 3},
	}}
}

func TestCloneIsIndependent(t *testing.T) {
	set := sampleSet()
	clone := set.Clone()

	clone.Items[0].Price = 1
	clone.Items = clone.Items[:1]

	if set.Items[0].Price != 9000 || set.Len() != 3 {
		t.Fatalf("mutating the clone must not touch the original")
	}
}

func TestFindByID(t *testing.T) {
	set := sampleSet()

	l, ok := set.FindByID(2)
	if !ok || l.Price != 15000 {
		t.Fatalf("expected listing 2, got %+v (ok=%v)", l, ok)
	}

	if _, ok := set.FindByID(99); ok {
		t.Fatalf("unknown id must not be found")
	}
}

func TestPricedAtMost(t *testing.T) {
	set := sampleSet()

	cheap := set.PricedAtMost(9000)
	if cheap.Len() != 2 {
		t.Fatalf("expected 2 listings at or under 9000, got %d", cheap.Len())
	}
}

func TestOrderedCuts(t *testing.T) {
	set := sampleSet()

	cheapest := set.Cheapest(2)
	if len(cheapest) != 2 || cheapest[0].ID != 3 || cheapest[1].ID != 1 {
		t.Fatalf("unexpected cheapest cut: %+v", cheapest)
	}

	lowest := set.LowestMileage(1)
	if len(lowest) != 1 || lowest[0].ID != 2 {
		t.Fatalf("unexpected lowest-mileage cut: %+v", lowest)
	}

	safest := set.HighestSafety(1)
	if len(safest) != 1 || safest[0].ID != 2 {
		t.Fatalf("unexpected safest cut: %+v", safest)
	}

	all := set.Cheapest(10)
	if len(all) != 3 {
		t.Fatalf("oversized cut must return everything, got %d", len(all))
	}

	// The cuts must not reorder the set itself.
	if set.Items[0].ID != 1 {
		t.Fatalf("the set was reordered")
	}
}

func TestListingHelpers(t *testing.T) {
	l := Listing{
		Brand:       "Honda",
		Model:       "Civic",
		Year:        2016,
		Color:       "Blue",
		MPGCity:     28,
		MPGHighway:  36,
		DriverTypes: "Student; Budget ;",
	}

	tags := l.DriverTags()
	if len(tags) != 2 || tags[0] != "Student" || tags[1] != "Budget" {
		t.Fatalf("unexpected tags: %v", tags)
	}

	if got := l.CombinedMPG(); got != 32 {
		t.Fatalf("expected combined 32 mpg, got %v", got)
	}

	if got := l.Title(); got != "2016 Honda Civic (Blue)" {
		t.Fatalf("unexpected title: %s", got)
	}

	l.Color = ""
	if got := l.Title(); got != "2016 Honda Civic" {
		t.Fatalf("unexpected colorless title: %s", got)
	}
}

func TestInsights(t *testing.T) {
	listings := []Listing{
		{Price: 10000, MPGCity: 30, MPGHighway: 40, SafetyRating: 5, Reliability: TierHigh, Insurance: TierLow, Type: "Sedan"},
		{Price: 20000, MPGCity: 20, MPGHighway: 24, SafetyRating: 3, Reliability: TierMedium, Insurance: TierHigh, Type: "SUV"},
		{Price: 30000, MPGCity: 16, MPGHighway: 20, SafetyRating: 4, Reliability: TierHigh, Insurance: TierLow, Type: "Sedan"},
	}

	report := Insights(listings)

	if report.Total != 3 {
		t.Fatalf("expected total 3, got %d", report.Total)
	}
	if report.AveragePrice != 20000 {
		t.Fatalf("expected average price 20000, got %v", report.AveragePrice)
	}
	if report.HighReliability != 2 || report.LowInsurance != 2 {
		t.Fatalf("unexpected tier counts: %+v", report)
	}
	if report.FuelEfficient != 1 {
		t.Fatalf("expected 1 fuel-efficient listing, got %d", report.FuelEfficient)
	}
	if report.CountByType["Sedan"] != 2 || report.CountByType["SUV"] != 1 {
		t.Fatalf("unexpected type counts: %v", report.CountByType)
	}
}

func TestInsightsEmpty(t *testing.T) {
	report := Insights(nil)
	if report.Total != 0 || report.AveragePrice != 0 {
		t.Fatalf("empty input must yield a zero report, got %+v", report)
	}
}
