package scoring

import "github.com/carwise/carwise/internal/profile"

// brandLists maps each stated brand preference to the brands it covers.
// Configuration data, not logic; adding a brand is a data change.
var brandLists = map[string][]string{
	profile.BrandPrefJapanese: {
		"Toyota", "Honda", "Mazda", "Subaru", "Nissan", "Mitsubishi", "Lexus", "Acura", "Infiniti",
	},
	profile.BrandPrefAmerican: {
		"Ford", "Chevrolet", "Dodge", "Jeep", "Cadillac", "Buick", "GMC", "Lincoln", "Ram",
	},
	profile.BrandPrefEuropean: {
		"BMW", "Audi", "Mercedes", "Volkswagen", "Volvo", "Mini", "Jaguar", "Land Rover",
	},
	profile.BrandPrefPerformance: {
		"BMW", "Audi", "Mercedes", "Lexus", "Cadillac", "Lincoln", "Porsche", "Jaguar", "Maserati",
	},
	profile.BrandPrefBudget: {
		"Hyundai", "Kia", "Nissan", "Mitsubishi", "Chevrolet", "Ford",
	},
}

func brandMatches(preference, brand string) bool {
	for _, b := range brandLists[preference] {
		if b == brand {
			return true
		}
	}
	return false
}
