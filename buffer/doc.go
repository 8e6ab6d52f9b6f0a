// Package buffer implements an amortized-growth, typed append buffer for
// building up large arrays element by element without quadratic
// reallocation cost. It is standalone: the vector package allocates its
// own slices and does not use it.
//
// Builder[T] keeps a small inline reservoir (16 elements) before falling
// back to a heap-allocated slice, and grows the heap slice according to a
// fixed policy tuned for large vector construction:
//
//	size > 200,000,000 elements -> new = 5*size/4
//	size >   1,000,000 elements -> new = 3*size/2
//	otherwise                   -> new = 2*size + 50
//
// These constants are load-bearing for amortized-append cost and memory
// headroom at large sizes and must not be changed casually.
//
// ParallelBuilder[T] adds a reader/writer split so that many goroutines can
// reserve and fill disjoint index ranges concurrently: ReserveElements
// takes the exclusive side (it may move the backing array), SetElement
// takes the shared side (it only ever writes into already-reserved slots).
package buffer
