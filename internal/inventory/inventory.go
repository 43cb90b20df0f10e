package inventory

import "sort"

// Inventory is the in-memory dataset of listings. It is loaded once at
// startup, treated as read-only and passed by handle to the scoring paths;
// the selection steps work on clones, never on the loaded set itself.
type Inventory struct {
	Items []Listing
}

func (v *Inventory) Len() int {
	return len(v.Items)
}

// Clone returns a shallow copy the caller may reorder or shrink freely.
func (v *Inventory) Clone() *Inventory {
	items := make([]Listing, len(v.Items))
	copy(items, v.Items)
	return &Inventory{Items: items}
}

// FindByID returns the listing with the given id, or false when absent.
func (v *Inventory) FindByID(id int) (Listing, bool) {
	for _, l := range v.Items {
		if l.ID == id {
			return l, true
		}
	}
	return Listing{}, false
}

// PricedAtMost returns a new set holding only listings priced at or below limit.
func (v *Inventory) PricedAtMost(limit float64) *Inventory {
	out := &Inventory{}
	for _, l := range v.Items {
		if l.Price <= limit {
			out.Items = append(out.Items, l)
		}
	}
	return out
}

// Cheapest returns up to n listings with the lowest prices.
func (v *Inventory) Cheapest(n int) []Listing {
	return v.bottomBy(n, func(a, b Listing) bool { return a.Price < b.Price })
}

// LowestMileage returns up to n listings with the lowest mileage.
func (v *Inventory) LowestMileage(n int) []Listing {
	return v.bottomBy(n, func(a, b Listing) bool { return a.Mileage < b.Mileage })
}

// HighestSafety returns up to n listings with the highest safety rating.
func (v *Inventory) HighestSafety(n int) []Listing {
	return v.bottomBy(n, func(a, b Listing) bool { return a.SafetyRating > b.SafetyRating })
}

func (v *Inventory) bottomBy(n int, less func(a, b Listing) bool) []Listing {
	items := make([]Listing, len(v.Items))
	copy(items, v.Items)
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
