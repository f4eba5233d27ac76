// Package report enriches parameter records and aggregates them.
//
// Enrich combines the type, enumeration, range, unit, boolean and category
// results of one record into an EnrichedParameter. A Reporter groups
// records by category in priority order, computes summary statistics and
// filters collections by search term, category and type code.
//
// Everything here is a pure function of its inputs; a Reporter is safe for
// concurrent use as long as its Classifier is.
package report
