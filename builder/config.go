package builder

import "math/rand"

// builderConfig holds the resolved, immutable state BuildPuzzle draws its
// randomness and density from.
type builderConfig struct {
	rng     *rand.Rand
	density float64
}

// defaultSeed is used when a caller does not supply WithSeed, so BuildPuzzle
// is reproducible out of the box rather than silently flaky.
const defaultSeed = int64(0)

// defaultDensity is the fraction of cells inked when a caller does not
// supply WithDensity.
const defaultDensity = 0.5

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:     rand.New(rand.NewSource(defaultSeed)),
		density: defaultDensity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option mutates a builderConfig before BuildPuzzle uses it.
type Option func(*builderConfig)

// WithSeed freezes BuildPuzzle's random grid generation: the same seed,
// dimensions, and density always produce the same grid.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithDensity sets the approximate fraction of inked cells, in [0, 1].
// BuildPuzzle validates the resolved value and returns ErrInvalidDensity
// rather than clamping it silently.
func WithDensity(p float64) Option {
	return func(cfg *builderConfig) { cfg.density = p }
}
