package scoring

import (
	"sort"

	"github.com/carwise/carwise/internal/inventory"
)

// DefaultTopResults caps the rule-based result list.
const DefaultTopResults = 10

// Ranked pairs a listing with its match score.
type Ranked struct {
	Listing inventory.Listing
	Score   float64
}

// Rank scores every listing, drops anything priced more than 10% over
// budget, and returns up to top results ordered by descending score. The
// order of equal-score listings is unspecified.
func Rank(inv *inventory.Inventory, budget float64, score func(inventory.Listing) float64, top int) []Ranked {
	if top <= 0 {
		top = DefaultTopResults
	}

	ranked := make([]Ranked, 0, inv.Len())
	for _, l := range inv.Items {
		if l.Price > budget*1.1 {
			continue
		}
		ranked = append(ranked, Ranked{Listing: l, Score: score(l)})
	}

	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	if len(ranked) > top {
		ranked = ranked[:top]
	}
	return ranked
}
