package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating a builderConfig
// before construction begins. As a rule, option constructors never panic
// and ignore nil/invalid inputs.
type BuilderOption func(cfg *builderConfig)

// WithRand supplies an explicit RNG source for stochastic constructors
// (RandomHyperedges). A nil rng is a no-op.
func WithRand(r *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithSeed seeds a fresh RNG, for reproducible stochastic constructors.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithArity sets the element count used by RandomHyperedges for each
// generated edge. Values below 2 are ignored.
func WithArity(n int) BuilderOption {
	return func(cfg *builderConfig) {
		if n >= 2 {
			cfg.arity = n
		}
	}
}
