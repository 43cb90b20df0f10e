package scoring

import (
	"strings"

	"github.com/carwise/carwise/internal/inventory"
	"github.com/carwise/carwise/internal/profile"
)

// ReferenceYear anchors the vehicle-age penalty. Fixed rather than derived
// from the clock so scores are reproducible.
const ReferenceYear = 2025

// ScoreWeighted computes the richer score: stepped budget fit up to 25,
// weighted priority factors capped at 40, user-type suitability up to 20,
// personal-preference bonus capped at 15, then the age penalty and a final
// clamp to [0,100].
//
// The budget, brand and performance weights may be present in the map but do
// not contribute points here; only the six factors below do.
func ScoreWeighted(l inventory.Listing, budget float64, weights profile.Weights, userType profile.UserType, p *profile.Profile) float64 {
	var score float64

	switch {
	case l.Price <= budget*0.7:
		score += 25
	case l.Price <= budget*0.85:
		score += 20
	case l.Price <= budget:
		score += 15
	case l.Price <= budget*1.05:
		score += 8
	case l.Price <= budget*1.1:
		score += 3
	}

	score += priorityPoints(l, weights)
	score += driverTypeFit(l, userType, 20, 15, 5)
	score += preferenceBonus(l, p)

	age := ReferenceYear - l.Year
	if age > 8 {
		score -= 5
	} else if age > 5 {
		score -= 2
	}

	return clamp(score)
}

func priorityPoints(l inventory.Listing, weights profile.Weights) float64 {
	var points float64

	if w := weights[profile.FactorReliability]; w > 0 {
		points += tierPoints(l.Reliability, inventory.TierHigh, 25, 15, 5) * w
	}
	if w := weights[profile.FactorInsurance]; w > 0 {
		points += tierPoints(l.Insurance, inventory.TierLow, 20, 12, 3) * w
	}
	if w := weights[profile.FactorMaintenance]; w > 0 {
		points += tierPoints(l.Maintenance, inventory.TierLow, 20, 12, 3) * w
	}
	if w := weights[profile.FactorFuelEfficiency]; w > 0 {
		points += mpgPoints(l.CombinedMPG()) * w
	}
	if w := weights[profile.FactorEnvironmental]; w > 0 {
		points += fuelPoints(l.Fuel) * w
	}
	if w := weights[profile.FactorSafety]; w > 0 {
		points += safetyPoints(l.SafetyRating) * w
	}

	if points > 40 {
		points = 40
	}
	return points
}

func tierPoints(tier, best inventory.Tier, top, mid, low float64) float64 {
	switch tier {
	case best:
		return top
	case inventory.TierMedium:
		return mid
	default:
		return low
	}
}

func mpgPoints(combined float64) float64 {
	switch {
	case combined >= 40:
		return 25
	case combined >= 30:
		return 20
	case combined >= 25:
		return 15
	case combined >= 20:
		return 10
	default:
		return 5
	}
}

func fuelPoints(fuel string) float64 {
	switch fuel {
	case "Electric":
		return 25
	case "Hybrid":
		return 20
	default:
		return 5
	}
}

func safetyPoints(rating int) float64 {
	switch rating {
	case 5:
		return 20
	case 4:
		return 15
	case 3:
		return 10
	default:
		return 5
	}
}

func preferenceBonus(l inventory.Listing, p *profile.Profile) float64 {
	if p == nil {
		return 0
	}

	var bonus float64

	switch p.SizePreference {
	case "Compact/Small":
		if l.Type == "Hatchback" || l.Type == "Sedan" {
			bonus += 5
		}
	case "Mid-size":
		if l.Type == "Sedan" || l.Type == "SUV" {
			bonus += 5
		}
	case "Large":
		if l.Type == "SUV" || l.Type == "Truck" || l.Type == "Van" {
			bonus += 5
		}
	}

	switch p.FuelPreference {
	case profile.FuelPrefHybrid:
		if l.Fuel == "Electric" || l.Fuel == "Hybrid" {
			bonus += 5
		}
	case profile.FuelPrefPerformance:
		if (l.Type == "Coupe" || l.Type == "Sedan") && l.Fuel == "Petrol" {
			bonus += 3
		}
	}

	if brandMatches(p.BrandPreference, l.Brand) {
		bonus += 3
	}

	if p.ColorPreference != "" && p.ColorPreference != profile.NoPreference &&
		strings.EqualFold(l.Color, p.ColorPreference) {
		bonus += 2
	}

	if bonus > 15 {
		bonus = 15
	}
	return bonus
}
