package wordspace

import "errors"

// Sentinel errors for the wordspace package.
var (
	// ErrDimensionsFrozen indicates SetDimensions was called after the
	// collection's dimensionality was fixed, by a positive WithDimensions
	// or by the creation of a term or context vector.
	ErrDimensionsFrozen = errors.New("wordspace: dimensions already frozen")

	// ErrTermNotFound indicates a lookup referenced a term with no term
	// vector in the collection.
	ErrTermNotFound = errors.New("wordspace: term not found")

	// ErrInvalidBasis indicates BasisVector was asked for more +1/-1
	// entries than the vector has dimensions for.
	ErrInvalidBasis = errors.New("wordspace: basis count exceeds dimensions")
)
