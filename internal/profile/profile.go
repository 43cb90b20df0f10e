package profile

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

// Profile is one questionnaire submission. It is constructed fresh per
// request, validated once, and never merged across sessions.
type Profile struct {
	Age             string  `mapstructure:"age" validate:"required"`
	HouseholdSize   string  `mapstructure:"household-size" validate:"required"`
	Experience      string  `mapstructure:"experience" validate:"required"`
	Location        string  `mapstructure:"location" validate:"required"`
	Budget          float64 `mapstructure:"budget" validate:"gte=1000,lte=200000"`
	MileageCeiling  string  `mapstructure:"mileage-ceiling"`
	Usage           string  `mapstructure:"usage" validate:"required"`
	FuelPreference  string  `mapstructure:"fuel-preference" validate:"required"`
	SizePreference  string  `mapstructure:"size-preference" validate:"required"`
	ColorPreference string  `mapstructure:"color-preference"`

	ReliabilityImportance string   `mapstructure:"reliability" validate:"required"`
	BudgetPriority        string   `mapstructure:"budget-priority" validate:"required"`
	ExtraBudgetPriorities []string `mapstructure:"extra-budget-priorities"`
	PerformanceImportance string   `mapstructure:"performance" validate:"required"`
	BrandPreference       string   `mapstructure:"brand" validate:"required"`
	Features              []string `mapstructure:"features"`
}

var validate = validator.New()

// Validate checks structural constraints plus membership of every answer in
// its questionnaire answer set.
func (p *Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("profile: %w", err)
	}

	checks := []struct {
		field   string
		value   string
		allowed []string
		// optional answers may be empty
		optional bool
	}{
		{"age", p.Age, AgeBrackets, false},
		{"household-size", p.HouseholdSize, HouseholdSizes, false},
		{"experience", p.Experience, ExperienceLevels, false},
		{"location", p.Location, Locations, false},
		{"mileage-ceiling", p.MileageCeiling, MileageCeilings, true},
		{"usage", p.Usage, UsagePatterns, false},
		{"fuel-preference", p.FuelPreference, FuelPreferences, false},
		{"size-preference", p.SizePreference, SizePreferences, false},
		{"color-preference", p.ColorPreference, ColorPreferences, true},
		{"reliability", p.ReliabilityImportance, ImportanceLevels, false},
		{"budget-priority", p.BudgetPriority, BudgetPriorities, false},
		{"performance", p.PerformanceImportance, PerformanceLevels, false},
		{"brand", p.BrandPreference, BrandPreferences, false},
	}

	for _, c := range checks {
		if c.optional && c.value == "" {
			continue
		}
		if !slices.Contains(c.allowed, c.value) {
			return fmt.Errorf("profile: %s: unknown answer %q", c.field, c.value)
		}
	}

	for _, f := range p.Features {
		if !slices.Contains(Features, f) {
			return fmt.Errorf("profile: features: unknown answer %q", f)
		}
	}
	for _, bp := range p.ExtraBudgetPriorities {
		if !slices.Contains(BudgetPriorities, bp) {
			return fmt.Errorf("profile: extra-budget-priorities: unknown answer %q", bp)
		}
	}

	return nil
}

// WantsFeature reports whether the named feature was selected.
func (p *Profile) WantsFeature(name string) bool {
	return slices.Contains(p.Features, name)
}
