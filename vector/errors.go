package vector

import "errors"

// Sentinel errors for the vector package. Per package convention, these
// are never wrapped with formatted context at the definition site; check
// with errors.Is.
var (
	// ErrDuplicateIndex indicates NewElement was called with an index
	// already present in the sparse vector.
	ErrDuplicateIndex = errors.New("vector: index already present")

	// ErrParse indicates the textual form could not be parsed.
	ErrParse = errors.New("vector: parse failed")
)
