package profile

import "testing"

func TestValidateAcceptsQuestionnaireAnswers(t *testing.T) {
	p := baseProfile()
	p.Features = []string{FeatureSafety, FeatureCargo}
	p.MileageCeiling = "Under 100k miles"
	p.ColorPreference = "Blue"

	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateOptionalAnswersMayBeEmpty(t *testing.T) {
	p := baseProfile()
	p.MileageCeiling = ""
	p.ColorPreference = ""
	p.Features = nil

	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsBadAnswers(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"budget too low", func(p *Profile) { p.Budget = 500 }},
		{"budget too high", func(p *Profile) { p.Budget = 300000 }},
		{"missing age", func(p *Profile) { p.Age = "" }},
		{"unknown age bracket", func(p *Profile) { p.Age = "17-18" }},
		{"unknown usage", func(p *Profile) { p.Usage = "Racing" }},
		{"unknown feature", func(p *Profile) { p.Features = []string{"Heated seats"} }},
		{"unknown extra budget priority", func(p *Profile) { p.ExtraBudgetPriorities = []string{"Free parking"} }},
		{"unknown brand preference", func(p *Profile) { p.BrandPreference = "Korean brands" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseProfile()
			tc.mutate(p)

			if err := p.Validate(); err == nil {
				t.Fatalf("expected a validation error")
			}
		})
	}
}

func TestWantsFeature(t *testing.T) {
	p := baseProfile()
	p.Features = []string{FeatureSafety}

	if !p.WantsFeature(FeatureSafety) {
		t.Fatalf("expected the selected feature to be reported")
	}
	if p.WantsFeature(FeatureCargo) {
		t.Fatalf("unselected feature must not be reported")
	}
}
