// Package scoring holds the deterministic recommendation scorers. Both
// variants map a listing and a user profile to a match score in [0,100],
// clamped at the computation site.
package scoring

import (
	"strings"

	"github.com/carwise/carwise/internal/inventory"
	"github.com/carwise/carwise/internal/profile"
)

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ScoreSimple computes the fixed-weight score: budget fit up to 30 points,
// the single chosen priority up to 40, driver-type suitability up to 30.
func ScoreSimple(l inventory.Listing, budget float64, priority profile.Priority, userType profile.UserType) float64 {
	var score float64

	switch {
	case l.Price <= budget*0.8:
		score += 30
	case l.Price <= budget:
		score += 20
	case l.Price <= budget*1.1:
		score += 10
	}

	var tier inventory.Tier
	var best inventory.Tier
	switch priority {
	case profile.PriorityReliability:
		tier, best = l.Reliability, inventory.TierHigh
	case profile.PriorityLowInsurance:
		tier, best = l.Insurance, inventory.TierLow
	case profile.PriorityLowMaintenance:
		tier, best = l.Maintenance, inventory.TierLow
	}
	switch tier {
	case best:
		score += 40
	case inventory.TierMedium:
		score += 25
	default:
		score += 10
	}

	score += driverTypeFit(l, userType, 30, 20, 5)

	return clamp(score)
}

// driverTypeFit awards exact for an exact tag match, partial for a
// case-insensitive substring match against any tag, and base otherwise.
func driverTypeFit(l inventory.Listing, userType profile.UserType, exact, partial, base float64) float64 {
	tags := l.DriverTags()
	for _, tag := range tags {
		if tag == string(userType) {
			return exact
		}
	}
	lower := strings.ToLower(string(userType))
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), lower) {
			return partial
		}
	}
	return base
}
