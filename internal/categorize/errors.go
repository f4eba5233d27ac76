package categorize

import "errors"

// Sentinel errors for the categorize package.
var (
	// ErrUnknownCategory is returned by Parse for an unrecognised category name.
	ErrUnknownCategory = errors.New("categorize: unknown category")

	// ErrPredicatePanic wraps a panic recovered while evaluating a predicate.
	ErrPredicatePanic = errors.New("categorize: predicate panicked")
)
