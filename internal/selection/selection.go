// Package selection implements the listing funnel that narrows the dataset
// before a scoring batch is sent to the AI provider. Steps run sequentially
// over a working copy of the inventory; the loaded dataset is never touched.
package selection

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/carwise/carwise/internal/inventory"
)

// Filter represents a single funnel step applied to a listings set.
type Filter interface {
	Name() string
	Apply(set *inventory.Inventory) (*inventory.Inventory, Step, error)
}

// Step describes the result of executing a funnel step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the supplied steps sequentially, returning the resulting set.
func Run(logger *zap.Logger, steps []Filter, set *inventory.Inventory) (*inventory.Inventory, error) {
	set = set.Clone()

	for _, step := range steps {
		next, info, err := step.Apply(set)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if logger != nil {
			logger.Info("selection step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		set = next
	}

	return set, nil
}
