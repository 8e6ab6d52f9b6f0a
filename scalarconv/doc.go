// Package scalarconv parses a single numeric or character scalar from the
// head of a string cursor, advancing the cursor past the consumed text.
//
// Each Parse* function mirrors the behavior of the C standard library's
// strtol/strtoul/strtof/strtod family that the original vector-engine
// implementation built on: on success the cursor advances and the typed
// output is filled in; on empty input, a non-convertible prefix, or range
// overflow the cursor is left untouched and the output is zeroed.
//
// Integer variants auto-detect base the same way strtol does: a leading
// "0" selects octal, "0x"/"0X" selects hex, anything else is decimal.
// Float variants accept an optional sign, decimal digits with an optional
// fractional part, and an optional exponent, and convert that prefix with
// strconv.ParseFloat; hexadecimal floats, "inf", and "nan" are not
// accepted.
//
// Complexity: every Parse* call is O(len(consumed prefix)).
package scalarconv
