// Package vecspace (vecspace) is a representation-polymorphic numeric
// vector engine, plus a concurrent word-space collection layered on top
// of it.
//
// A modern, thread-safe library that brings together:
//
//   - Three vector representations behind one interface: Dense (fully
//     materialized), Sparse (sorted index/value pairs), and OneHot (a
//     single inline entry) — arithmetic works across any pairing.
//   - A growable buffer builder with an inline reservoir, a standalone
//     generic append buffer (the vector package does not use it).
//   - A concurrent Collection of term and context vectors for Random
//     Indexing / HAL-style word-space construction, safe for concurrent
//     AddTerm calls from many goroutines.
//
// Everything is organized under four subpackages:
//
//	scalarconv/ — cursor-advancing scalar text parsing (int32/uint32/float32/float64/...)
//	buffer/     — Builder[T] and ParallelBuilder[T], the generic growable backing store
//	vector/     — Dense, Sparse, OneHot, the representation dispatcher, and the text codec
//	wordspace/  — Collection, the race-tolerant term/context vector store
//
// Each subpackage's _test.go files show end-to-end usage.
package vecspace
