package profile

// UserType classifies the requester's usage pattern.
type UserType string

const (
	TypeStudent    UserType = "Student"
	TypeFamily     UserType = "Family"
	TypeCommuter   UserType = "Commuter"
	TypeEnthusiast UserType = "Enthusiast"
	TypeBudget     UserType = "Budget"
)

// AllUserTypes returns every valid user type.
func AllUserTypes() []UserType {
	return []UserType{TypeStudent, TypeFamily, TypeCommuter, TypeEnthusiast, TypeBudget}
}

// IsValid checks if the user type is part of the enumeration.
func (u UserType) IsValid() bool {
	switch u {
	case TypeStudent, TypeFamily, TypeCommuter, TypeEnthusiast, TypeBudget:
		return true
	}
	return false
}

func (u UserType) String() string { return string(u) }

// Priority is the single dominant attribute the simple scorer weights hardest.
type Priority string

const (
	PriorityReliability    Priority = "Reliability"
	PriorityLowInsurance   Priority = "Low Insurance Cost"
	PriorityLowMaintenance Priority = "Low Maintenance Cost"
)

// Factor names one component of the weighted priority map.
type Factor string

const (
	FactorReliability    Factor = "reliability"
	FactorInsurance      Factor = "insurance"
	FactorMaintenance    Factor = "maintenance"
	FactorBudget         Factor = "budget"
	FactorBrand          Factor = "brand"
	FactorPerformance    Factor = "performance"
	FactorFuelEfficiency Factor = "fuel_efficiency"
	FactorEnvironmental  Factor = "environmental"
	FactorSafety         Factor = "safety"
)

// Weights maps priority factors to relative weights. Weights are additive and
// deliberately unnormalized: the sum may exceed 1.0 and feeds straight into
// point multipliers, never a probability distribution.
type Weights map[Factor]float64

// Top returns the heaviest factor, or false when the map is empty.
func (w Weights) Top() (Factor, bool) {
	var best Factor
	found := false
	for f, weight := range w {
		if !found || weight > w[best] {
			best = f
			found = true
		}
	}
	return best, found
}

// DisplayName renders a factor for the results header.
func (f Factor) DisplayName() string {
	switch f {
	case FactorReliability:
		return "Reliability"
	case FactorInsurance:
		return "Low Insurance Cost"
	case FactorMaintenance:
		return "Low Maintenance Cost"
	case FactorBudget:
		return "Budget Value"
	case FactorFuelEfficiency:
		return "Fuel Efficiency"
	case FactorSafety:
		return "Safety"
	case FactorPerformance:
		return "Performance"
	case FactorEnvironmental:
		return "Environmental"
	case FactorBrand:
		return "Brand"
	default:
		return string(f)
	}
}

func youngDriver(p *Profile) bool {
	return p.Age == "18-25" || p.Age == "26-35"
}

func largeHousehold(p *Profile) bool {
	return p.HouseholdSize == "3-4 people" || p.HouseholdSize == "5+ people"
}

func enthusiastSignals(p *Profile) bool {
	return p.PerformanceImportance == "Very important" || p.BrandPreference == BrandPrefPerformance
}

// ClassifySimple derives the user type and single dominant priority using a
// first-match rule chain: student, family, commuter, enthusiast, budget, with
// Commuter as the default. This ordering differs from ClassifyWeighted's
// last-match overrides; both are intentional and kept side by side.
func ClassifySimple(p *Profile) (UserType, Priority) {
	userType := TypeCommuter

	switch {
	case p.Age == "18-25" && (p.Usage == UsageSchoolCommute || p.Usage == UsageWeekendTrips):
		userType = TypeStudent
	case largeHousehold(p):
		userType = TypeFamily
	case p.Usage == UsageWorkCommute:
		userType = TypeCommuter
	case enthusiastSignals(p):
		userType = TypeEnthusiast
	case p.BudgetPriority == BudgetPriorityCheapest:
		userType = TypeBudget
	}

	priority := PriorityReliability
	switch {
	case p.BudgetPriority == BudgetPriorityInsurance:
		priority = PriorityLowInsurance
	case p.BudgetPriority == BudgetPriorityMaintenance:
		priority = PriorityLowMaintenance
	case p.ReliabilityImportance == "Extremely important":
		priority = PriorityReliability
	}

	return userType, priority
}

// ClassifyWeighted derives the user type with last-match-wins overrides and
// builds the additive priority weight map. The age-gated block runs first;
// the household/usage chain after it overwrites its result when it matches.
func ClassifyWeighted(p *Profile) (UserType, Weights) {
	userType := TypeCommuter

	if youngDriver(p) {
		switch {
		case p.Usage == UsageSchoolCommute || p.Usage == UsageWeekendTrips:
			userType = TypeStudent
		case enthusiastSignals(p):
			userType = TypeEnthusiast
		case p.BudgetPriority == BudgetPriorityCheapest:
			userType = TypeBudget
		}
	}

	switch {
	case largeHousehold(p):
		userType = TypeFamily
	case p.Usage == UsageWorkCommute:
		userType = TypeCommuter
	case enthusiastSignals(p):
		userType = TypeEnthusiast
	case p.BudgetPriority == BudgetPriorityCheapest && p.Age == "18-25":
		userType = TypeBudget
	}

	weights := Weights{}

	switch p.BudgetPriority {
	case BudgetPriorityInsurance:
		weights[FactorInsurance] = 0.4
		weights[FactorBudget] = 0.3
	case BudgetPriorityMaintenance:
		weights[FactorMaintenance] = 0.4
		weights[FactorBudget] = 0.3
	case BudgetPriorityCheapest:
		weights[FactorBudget] = 0.5
		weights[FactorInsurance] = 0.2
		weights[FactorMaintenance] = 0.2
	case BudgetPriorityResale:
		weights[FactorReliability] = 0.3
		weights[FactorBrand] = 0.3
	}

	switch p.ReliabilityImportance {
	case "Extremely important":
		weights[FactorReliability] += 0.4
	case "Very important":
		weights[FactorReliability] += 0.3
	}

	switch p.PerformanceImportance {
	case "Very important":
		weights[FactorPerformance] = 0.3
	case "Important":
		weights[FactorPerformance] = 0.2
	}

	switch p.FuelPreference {
	case FuelPrefEfficiency:
		weights[FactorFuelEfficiency] = 0.3
	case FuelPrefHybrid:
		weights[FactorFuelEfficiency] = 0.4
		weights[FactorEnvironmental] = 0.2
	}

	if largeHousehold(p) || p.WantsFeature(FeatureSafety) {
		weights[FactorSafety] = 0.3
	}

	return userType, weights
}
