package wordspace

import (
	"math/rand"

	"go.uber.org/zap"
)

// Option customizes a Collection at construction time. It mutates a
// collectionConfig before the Collection is built.
//
// As a rule, option constructors never panic at runtime and ignore nil
// inputs.
type Option func(cfg *collectionConfig)

// collectionConfig holds the configurable parameters for NewCollection.
type collectionConfig struct {
	logger     *zap.Logger
	rng        *rand.Rand
	dimensions int
	plusBasis  int
	minusBasis int
	sparseMode bool
}

func newCollectionConfig(opts ...Option) *collectionConfig {
	cfg := &collectionConfig{
		logger:     zap.NewNop(),
		rng:        rand.New(rand.NewSource(1)),
		dimensions: 0,
		plusBasis:  0,
		minusBasis: 0,
		sparseMode: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger injects a *zap.Logger for diagnostic logging (vector
// creation, dimension freezing, race losses). If logger is nil, this
// option is a no-op and the collection keeps a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *collectionConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithRand sets an explicit *rand.Rand source for BasisVector generation.
// If rng is nil, this option is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *collectionConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and
// assigns it as the RNG source, for reproducible basis vectors.
func WithSeed(seed int64) Option {
	return func(cfg *collectionConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDimensions sets the collection's dimensionality and plus/minus
// basis counts at construction. A positive dimensions also freezes them at
// once, so every later SetDimensions call fails with ErrDimensionsFrozen;
// with dimensions 0 they stay changeable through SetDimensions.
func WithDimensions(dimensions, plusBasis, minusBasis int) Option {
	return func(cfg *collectionConfig) {
		cfg.dimensions = dimensions
		cfg.plusBasis = plusBasis
		cfg.minusBasis = minusBasis
	}
}

// WithSparseMode toggles whether newly created context vectors start out
// sparse (the default) or dense.
func WithSparseMode(sparse bool) Option {
	return func(cfg *collectionConfig) {
		cfg.sparseMode = sparse
	}
}
