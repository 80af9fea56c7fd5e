// Package builder provides deterministic hypergraph fixture constructors
// used by tests. It centralizes
// common settings (RNG source, default hyperedge arity) so constructor
// implementations stay DRY and consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// Use newBuilderConfig to obtain a config with sensible defaults, then
// apply any number of BuilderOption in order; later options override
// earlier ones.
package builder

import "math/rand"

// builderConfig holds the configurable parameters for hypergraph
// constructors: rng (defaults to a source seeded with 1; a nil rng makes
// RandomHyperedges report ErrNeedRandSource) and arity
// (the element count per generated hyperedge where a constructor allows
// it, e.g. RandomHyperedges).
//
// builderConfig is not safe for concurrent mutation; each BuildGraph
// invocation creates its own.
type builderConfig struct {
	rng   *rand.Rand
	arity int
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		rng:   rand.New(rand.NewSource(1)),
		arity: 2,
	}
	var opt BuilderOption
	for _, opt = range opts {
		opt(cfg)
	}
	return cfg
}
