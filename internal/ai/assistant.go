package ai

import (
	"context"

	"github.com/carwise/carwise/internal/inventory"
	"github.com/carwise/carwise/internal/profile"
)

// ScoredListing is one listing with the provider's match and pricing scores
// attached. Both scores are always in [0,100].
type ScoredListing struct {
	Listing inventory.Listing
	Match   int
	Pricing int
	Reason  string
}

// Result is the outcome of one scoring batch.
type Result struct {
	Listings []ScoredListing
	Summary  string
	// Fallback is true when the provider call failed and the deterministic
	// scorer produced the listings instead.
	Fallback bool
}

// Scorer ranks an inventory for a profile.
type Scorer interface {
	Score(ctx context.Context, inv *inventory.Inventory, p *profile.Profile) (*Result, error)
}

// Turn is one message of a consultant conversation.
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// Consultant answers free-form car questions. Ask returns a channel of
// incremental text chunks; the caller consumes it until close and joins the
// chunks into the durable reply. A nil channel with an error signals the
// caller to show its fixed apology message instead.
type Consultant interface {
	Ask(ctx context.Context, message string) (<-chan string, error)
	Session() string
	History() []Turn
}
