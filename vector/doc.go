// Package vector implements a representation-polymorphic numeric vector
// engine: Dense (fully materialized), Sparse (sorted index/value pairs),
// and OneHot (single nonzero, stored inline) vectors that interoperate
// under one contract — Add, Incr, Scale, Normalize, and Length produce
// representation-independent results. Hash and Equal are
// representation-sensitive; CanonicalEqual compares across representations.
//
// Every Vector carries an optional key and label, a weight defaulting to
// 1.0, a cached L2 length invalidated by every mutation, and opaque user
// data. Mutators serialize on a per-vector critical section; readers of
// element values do not lock, matching the original engine's documented
// tradeoff (tearing of individual loads/stores is assumed benign, and
// concurrent reallocation of the backing store is excluded by the mutex —
// mutating a vector concurrently with readers of the *same* vector is
// undefined).
//
// Sparse storage keeps indices strictly increasing; a stored zero value is
// permitted but semantically equivalent to absence. OneHot is a read-only
// operand: the core never auto-promotes it to a two-nonzero sparse vector,
// callers arrange promotion themselves when they need to mutate past a
// second element.
package vector
