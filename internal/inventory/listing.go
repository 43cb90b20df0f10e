package inventory

import (
	"fmt"
	"strings"
)

// Tier is a Low/Medium/High cost or quality band carried by a listing.
type Tier string

const (
	TierLow    Tier = "Low"
	TierMedium Tier = "Medium"
	TierHigh   Tier = "High"
)

// IsValid checks if the tier is one of the known bands.
func (t Tier) IsValid() bool {
	switch t {
	case TierLow, TierMedium, TierHigh:
		return true
	}
	return false
}

// Listing is one used-car ad from the dataset. Listings are immutable for the
// duration of a request; scores live on scored wrappers, never here.
type Listing struct {
	ID           int
	Brand        string
	Model        string
	Year         int
	Mileage      int
	Price        float64
	Fuel         string
	Type         string
	Reliability  Tier
	Insurance    Tier
	Maintenance  Tier
	DriverTypes  string // semicolon-joined tags, e.g. "Student;Budget"
	Color        string
	MPGCity      int
	MPGHighway   int
	SafetyRating int
	CargoSpace   int
}

// DriverTags returns the suitable-driver-type tags split out of the
// semicolon-joined field, trimmed.
func (l Listing) DriverTags() []string {
	parts := strings.Split(l.DriverTypes, ";")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// CombinedMPG is the average of the city and highway figures.
func (l Listing) CombinedMPG() float64 {
	return (float64(l.MPGCity) + float64(l.MPGHighway)) / 2
}

// Title is the short display name of the ad, e.g. "2016 Honda Civic (Blue)".
func (l Listing) Title() string {
	if l.Color == "" {
		return fmt.Sprintf("%d %s %s", l.Year, l.Brand, l.Model)
	}
	return fmt.Sprintf("%d %s %s (%s)", l.Year, l.Brand, l.Model, l.Color)
}
