package selection

import (
	"math/rand"

	"github.com/carwise/carwise/internal/inventory"
)

const (
	// BudgetHeadroom widens the budget cut for the AI batch; the rule path
	// uses its own, tighter 1.1 cut at ranking time.
	BudgetHeadroom = 1.2
	// FallbackCheapest is how many of the globally cheapest listings stand in
	// when nothing fits the widened budget.
	FallbackCheapest = 20
	// MaxSample caps the batch handed to the AI provider.
	MaxSample = 25

	sampleCheapest   = 8
	sampleLowMileage = 8
	sampleHighSafety = 9
)

type budgetPrefilter struct {
	budget float64
}

// NewBudgetPrefilter keeps listings priced within 20% over budget. When the
// cut leaves nothing, the 20 cheapest listings overall are used instead so
// the user always sees something.
func NewBudgetPrefilter(budget float64) Filter {
	return &budgetPrefilter{budget: budget}
}

func (f *budgetPrefilter) Name() string { return "budget_prefilter" }

func (f *budgetPrefilter) Apply(set *inventory.Inventory) (*inventory.Inventory, Step, error) {
	initial := set.Len()

	next := set.PricedAtMost(f.budget * BudgetHeadroom)
	if next.Len() == 0 {
		next = &inventory.Inventory{Items: set.Cheapest(FallbackCheapest)}
	}

	return next, Step{Initial: initial, Dropped: initial - next.Len(), Left: next.Len()}, nil
}

type sampler struct {
	rng *rand.Rand
}

// NewSampler builds the representative sample sent to the AI provider: the 8
// cheapest, the 8 lowest-mileage, and a random draw of up to 9 of the
// highest-safety listings, deduplicated and capped at 25. Sets of 25 or
// fewer pass through untouched. The random draw makes repeated runs differ;
// inject a seeded rng for reproducibility.
func NewSampler(rng *rand.Rand) Filter {
	return &sampler{rng: rng}
}

func (f *sampler) Name() string { return "sampler" }

func (f *sampler) Apply(set *inventory.Inventory) (*inventory.Inventory, Step, error) {
	initial := set.Len()
	if initial <= MaxSample {
		return set, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	safest := set.HighestSafety(sampleHighSafety)
	f.rng.Shuffle(len(safest), func(i, j int) {
		safest[i], safest[j] = safest[j], safest[i]
	})

	picked := &inventory.Inventory{}
	seen := make(map[int]struct{})
	for _, group := range [][]inventory.Listing{
		set.Cheapest(sampleCheapest),
		set.LowestMileage(sampleLowMileage),
		safest,
	} {
		for _, l := range group {
			if _, ok := seen[l.ID]; ok {
				continue
			}
			seen[l.ID] = struct{}{}
			picked.Items = append(picked.Items, l)
		}
	}

	if picked.Len() > MaxSample {
		picked.Items = picked.Items[:MaxSample]
	}

	return picked, Step{Initial: initial, Dropped: initial - picked.Len(), Left: picked.Len()}, nil
}
