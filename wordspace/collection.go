package wordspace

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/katalvlaran/vecspace/vector"
)

// Collection is a concurrent store of term vectors (a term's identity in
// the space) and context vectors (the running fold of the term vectors
// observed near each key), keyed by string. Dimensionality and basis
// counts apply in sparse and dense mode alike, and can be changed only
// until the dimensionality is fixed: SetDimensions after that point fails
// with ErrDimensionsFrozen.
type Collection struct {
	logger *zap.Logger
	rng    *rand.Rand
	rngMu  sync.Mutex

	terms    *shardedMap[*vector.TermVector]
	contexts *shardedMap[vector.Vector]
	nextOneHotIndex atomic.Uint32

	dimMu      sync.Mutex
	dimensions int
	plusBasis  int
	minusBasis int
	sparseMode bool
	frozen     atomic.Bool
}

// NewCollection returns an empty Collection configured by opts.
func NewCollection(opts ...Option) *Collection {
	cfg := newCollectionConfig(opts...)
	c := &Collection{
		logger:     cfg.logger,
		rng:        cfg.rng,
		terms:      newShardedMap[*vector.TermVector](),
		contexts:   newShardedMap[vector.Vector](),
		dimensions: cfg.dimensions,
		plusBasis:  cfg.plusBasis,
		minusBasis: cfg.minusBasis,
		sparseMode: cfg.sparseMode,
	}
	if cfg.dimensions > 0 {
		c.frozen.Store(true)
	}
	return c
}

// SetDimensions configures the space's dimensionality and basis counts.
// It applies in sparse and dense mode alike; sparse mode does not ignore
// it. It succeeds only while the dimensionality is unfixed: a positive
// WithDimensions at construction, and every MakeTermVector,
// MakeContextVector, or dense-mode SetOneHotVector call, fix it, after
// which SetDimensions fails with ErrDimensionsFrozen.
func (c *Collection) SetDimensions(dimensions, plusBasis, minusBasis int) error {
	c.dimMu.Lock()
	defer c.dimMu.Unlock()
	if c.frozen.Load() {
		return ErrDimensionsFrozen
	}
	c.dimensions = dimensions
	c.plusBasis = plusBasis
	c.minusBasis = minusBasis
	return nil
}

// HaveTermVector reports whether key already has a term vector.
func (c *Collection) HaveTermVector(key string) bool {
	return c.terms.Contains(key)
}

// SetTermVector inserts tv for key iff key has no existing term vector,
// reporting whether the insert took effect.
func (c *Collection) SetTermVector(key string, tv *vector.TermVector) bool {
	_, won := c.terms.LoadOrStore(key, tv)
	return won
}

// SetOneHotVector creates a term vector holding the single entry
// (idx, val), assigns weight as its frequency, and installs it for key via
// SetTermVector, reporting whether the insert took effect. The term vector
// is a one-element sparse vector in both modes: in dense mode the call
// also fixes the dimensionality, but no dense vector sized to the
// dimensions is built.
func (c *Collection) SetOneHotVector(key string, idx uint32, val, weight float64) bool {
	if !c.sparseMode {
		// Dense mode only sizes the space; a single observed position is
		// stored the same way as in sparse mode.
		c.freezeAndReadDimensions()
	}
	tv := vector.NewTermVector(1)
	tv.NewElement(idx, val)
	tv.SetVectorFreq(weight)
	return c.SetTermVector(key, tv)
}

// MakeTermVector returns key's existing term vector, or atomically mints
// one if absent: when the dimensionality is 0, a one-hot vector with value
// 1 at the next index of a per-collection counter (0, 1, 2, ... in minting
// order, independent of the term map's size; an index drawn by a caller
// that loses the race is not reused), else a random basis vector
// parameterized by (dimensions, plusBasis, minusBasis). Concurrent callers racing to create the same
// key's vector never observe two distinct vectors: the loser of the race
// discards its candidate and returns the winner's.
func (c *Collection) MakeTermVector(key string) (*vector.TermVector, error) {
	if tv, ok := c.terms.Lookup(key); ok {
		return tv, nil
	}

	dims, plus, minus := c.freezeAndReadDimensions()
	var basis *vector.Sparse
	if dims <= 0 {
		idx := c.nextOneHotIndex.Add(1) - 1
		basis = vector.NewSparse(1)
		basis.NewElement(idx, 1)
	} else {
		var err error
		basis, err = c.randBasis(dims, plus, minus)
		if err != nil {
			return nil, err
		}
	}
	candidate := &vector.TermVector{Sparse: basis}
	winner, won := c.terms.LoadOrStore(key, candidate)
	if !won {
		c.logger.Debug("term vector race lost, discarding candidate", zap.String("key", key))
	}
	return winner, nil
}

// MakeContextVector returns key's existing context vector, or atomically
// creates a fresh empty one if absent, with the same race-tolerant
// create-or-fetch semantics as MakeTermVector. The new vector is Sparse
// unless WithSparseMode(false) was set at construction, in which case it
// is Dense and pre-sized to the collection's frozen dimensionality.
func (c *Collection) MakeContextVector(key string) vector.Vector {
	if cv, ok := c.contexts.Lookup(key); ok {
		return cv
	}
	dims, _, _ := c.freezeAndReadDimensions()
	var candidate vector.Vector
	if c.sparseMode {
		candidate = vector.NewSparse(0)
	} else {
		d := vector.NewDense(dims)
		if dims > 0 {
			d.SetElement(dims-1, 0)
		}
		candidate = d
	}
	winner, won := c.contexts.LoadOrStore(key, candidate)
	if !won {
		c.logger.Debug("context vector race lost, discarding candidate", zap.String("key", key))
	}
	return winner
}

// GetTermVector returns key's term vector and whether it exists.
func (c *Collection) GetTermVector(key string) (*vector.TermVector, bool) {
	return c.terms.Lookup(key)
}

// RequireTermVector is GetTermVector's error-returning counterpart, for
// callers that want a reason instead of a bare bool: it returns
// ErrTermNotFound when key has no term vector.
func (c *Collection) RequireTermVector(key string) (*vector.TermVector, error) {
	tv, ok := c.terms.Lookup(key)
	if !ok {
		return nil, ErrTermNotFound
	}
	return tv, nil
}

// GetContextVector returns key's context vector and whether it exists.
func (c *Collection) GetContextVector(key string) (vector.Vector, bool) {
	return c.contexts.Lookup(key)
}

// AddTerm folds w*term.weight() of term's term vector (minting one if
// absent) into key's context vector (creating it if absent). It fails
// only when minting a basis term vector fails (ErrInvalidBasis); a fresh
// term vector and a fresh context vector are both acceptable outcomes of a
// first observation.
func (c *Collection) AddTerm(key, term string, w float64) error {
	cv := c.MakeContextVector(key)
	tv, err := c.MakeTermVector(term)
	if err != nil {
		return err
	}
	vector.Incr(cv, tv.Sparse, w*tv.Weight())
	return nil
}

// UpdateContextVector performs the same fold as AddTerm but never mints a
// term vector for term: if none exists, key's context vector is still
// created if absent, but is left unchanged — an unobserved term
// contributes nothing.
func (c *Collection) UpdateContextVector(key, term string, w float64) error {
	cv := c.MakeContextVector(key)
	tv, ok := c.terms.Lookup(term)
	if !ok {
		return nil
	}
	vector.Incr(cv, tv.Sparse, w*tv.Weight())
	return nil
}

// freezeAndReadDimensions marks dimensions as frozen (future
// SetDimensions calls fail) and returns the current dimensionality and
// basis counts.
func (c *Collection) freezeAndReadDimensions() (dims, plus, minus int) {
	c.dimMu.Lock()
	defer c.dimMu.Unlock()
	c.frozen.Store(true)
	return c.dimensions, c.plusBasis, c.minusBasis
}

// randBasis generates a basis vector under rngMu: *rand.Rand is not safe
// for concurrent use by multiple goroutines, so every draw from c.rng —
// however brief — must be serialized here rather than handing the
// pointer out to callers.
func (c *Collection) randBasis(dims, plus, minus int) (*vector.Sparse, error) {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return BasisVector(dims, plus, minus, c.rng)
}
