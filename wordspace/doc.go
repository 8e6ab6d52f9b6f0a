// Package wordspace implements a concurrent collection of term and context
// vectors, the layer above the vector package that models a Random
// Indexing / HAL-style word-space: each term owns a sparse index vector
// (its identity in the space) and a context vector (the fold of every
// other term's index vector observed near it).
//
// Collection is safe for concurrent use. Term and context vectors are
// held in sharded maps guarded by per-shard sync.RWMutex, following the
// same split-lock shape core.Graph uses for its vertex and edge/adjacency
// tables: readers take a shared lock, and only an insert takes the
// exclusive one, for the one shard it hashes to.
package wordspace
