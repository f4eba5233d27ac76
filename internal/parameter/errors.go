package parameter

import "errors"

// Errors used internally by the recovery heuristics.
//
// None of these escape the public functions: each marks a step that
// could not produce a result, and the caller falls through to the next
// step instead.
var (
	// ErrMalformedEnum indicates EnumValuesJSON could not be decoded.
	ErrMalformedEnum = errors.New("parameter: malformed structured enumeration")

	// ErrTooFewEnumValues indicates fewer than two distinct values were found.
	ErrTooFewEnumValues = errors.New("parameter: fewer than two enumeration values")
)
