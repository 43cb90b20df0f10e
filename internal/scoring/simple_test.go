package scoring

import (
	"testing"

	"github.com/carwise/carwise/internal/inventory"
	"github.com/carwise/carwise/internal/profile"
)

func TestScoreSimplePerfectMatch(t *testing.T) {
	l := inventory.Listing{
		Price:       15000,
		Reliability: inventory.TierHigh,
		DriverTypes: "Student;Budget",
	}

	// 30 budget + 40 priority + 30 exact tag.
	score := ScoreSimple(l, 20000, profile.PriorityReliability, profile.TypeStudent)
	if score != 100 {
		t.Fatalf("expected a perfect 100, got %v", score)
	}
}

func TestScoreSimpleBudgetBands(t *testing.T) {
	cases := []struct {
		name  string
		price float64
		want  float64
	}{
		{"well under budget", 16000, 30},
		{"at budget", 20000, 20},
		{"slightly over", 21500, 10},
		{"too expensive", 23000, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := inventory.Listing{Price: tc.price, Reliability: inventory.TierLow}

			// Isolate the budget component: low tier adds 10, no tags add 5.
			score := ScoreSimple(l, 20000, profile.PriorityReliability, profile.TypeCommuter)
			if got := score - 10 - 5; got != tc.want {
				t.Fatalf("expected %v budget points, got %v (total %v)", tc.want, got, score)
			}
		})
	}
}

func TestScoreSimplePriorityTiers(t *testing.T) {
	cases := []struct {
		name     string
		priority profile.Priority
		listing  inventory.Listing
		want     float64
	}{
		{"reliability best", profile.PriorityReliability, inventory.Listing{Reliability: inventory.TierHigh}, 40},
		{"reliability mid", profile.PriorityReliability, inventory.Listing{Reliability: inventory.TierMedium}, 25},
		{"reliability worst", profile.PriorityReliability, inventory.Listing{Reliability: inventory.TierLow}, 10},
		{"insurance best is low", profile.PriorityLowInsurance, inventory.Listing{Insurance: inventory.TierLow}, 40},
		{"maintenance best is low", profile.PriorityLowMaintenance, inventory.Listing{Maintenance: inventory.TierLow}, 40},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.listing.Price = 100000 // over any band, 0 budget points

			score := ScoreSimple(tc.listing, 10000, tc.priority, profile.TypeCommuter)
			if got := score - 5; got != tc.want {
				t.Fatalf("expected %v priority points, got %v", tc.want, got)
			}
		})
	}
}

func TestDriverTypeFit(t *testing.T) {
	cases := []struct {
		name     string
		tags     string
		userType profile.UserType
		want     float64
	}{
		{"exact match", "Student;Budget", profile.TypeStudent, 30},
		{"substring match", "FamilyFriendly", profile.TypeFamily, 20},
		{"case-insensitive substring", "budget-minded", profile.TypeBudget, 20},
		{"no match", "Luxury", profile.TypeStudent, 5},
		{"no tags", "", profile.TypeCommuter, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := inventory.Listing{DriverTypes: tc.tags}
			if got := driverTypeFit(l, tc.userType, 30, 20, 5); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(-3); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := clamp(140); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	if got := clamp(55); got != 55 {
		t.Fatalf("expected 55, got %v", got)
	}
}
