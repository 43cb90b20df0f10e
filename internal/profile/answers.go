package profile

// The questionnaire offers fixed answer sets; a profile is only valid when
// every answer is drawn from its set. The wording is load-bearing: the
// classifier and the preference bonuses match on these exact strings.

const (
	NoPreference = "No preference"

	UsageWorkCommute   = "Daily commuting to work"
	UsageSchoolCommute = "Daily commuting to school"
	UsageFamily        = "Family transportation"
	UsageWeekendTrips  = "Weekend trips"
	UsageOccasional    = "Occasional use"

	BudgetPriorityCheapest    = "The cheapest option possible"
	BudgetPriorityInsurance   = "Low insurance costs"
	BudgetPriorityMaintenance = "Low maintenance costs"
	BudgetPriorityResale      = "Good resale value"
	BudgetPriorityFuel        = "Low fuel costs"

	FuelPrefEfficiency  = "Fuel efficiency is important"
	FuelPrefHybrid      = "Interested in hybrid/electric"
	FuelPrefPerformance = "Performance over efficiency"

	BrandPrefJapanese    = "Japanese brands (Toyota, Honda, etc.)"
	BrandPrefAmerican    = "American brands (Ford, Chevrolet, etc.)"
	BrandPrefEuropean    = "European brands (BMW, Audi, etc.)"
	BrandPrefPerformance = "Performance and luxury brands"
	BrandPrefBudget      = "Budget-friendly brands"

	FeatureSafety     = "Safety features"
	FeatureTech       = "Technology/Infotainment"
	FeatureFuel       = "Fuel efficiency"
	FeatureCargo      = "Cargo space"
	FeatureComfort    = "Comfort"
	FeatureStyle      = "Style/Appearance"
	FeatureLowMileage = "Low mileage"
	FeatureRecord     = "Reliability record"
)

var (
	AgeBrackets = []string{"18-25", "26-35", "36-45", "46-55", "55+"}

	HouseholdSizes = []string{"Just me", "2 people", "3-4 people", "5+ people"}

	ExperienceLevels = []string{"New driver", "Some experience", "Experienced", "Very experienced"}

	Locations = []string{"City/Urban", "Suburban", "Rural", "Mixed environments"}

	UsagePatterns = []string{
		UsageWorkCommute, UsageSchoolCommute, UsageFamily, UsageWeekendTrips, UsageOccasional,
	}

	MileageCeilings = []string{
		"Under 50k miles", "Under 75k miles", "Under 100k miles",
		"Under 125k miles", "Under 150k miles", NoPreference,
	}

	FuelPreferences = []string{
		NoPreference, FuelPrefEfficiency, FuelPrefHybrid, FuelPrefPerformance,
	}

	SizePreferences = []string{"Compact/Small", "Mid-size", "Large", NoPreference}

	ColorPreferences = []string{
		NoPreference, "White", "Black", "Silver", "Gray", "Red", "Blue", "Green", "Yellow", "Orange",
	}

	ImportanceLevels = []string{"Somewhat important", "Important", "Very important", "Extremely important"}

	PerformanceLevels = []string{"Not important", "Somewhat important", "Important", "Very important"}

	BudgetPriorities = []string{
		BudgetPriorityCheapest, BudgetPriorityInsurance, BudgetPriorityMaintenance,
		BudgetPriorityResale, BudgetPriorityFuel,
	}

	BrandPreferences = []string{
		NoPreference, BrandPrefJapanese, BrandPrefAmerican, BrandPrefEuropean,
		BrandPrefPerformance, BrandPrefBudget,
	}

	Features = []string{
		FeatureSafety, FeatureTech, FeatureFuel, FeatureCargo,
		FeatureComfort, FeatureStyle, FeatureLowMileage, FeatureRecord,
	}
)
