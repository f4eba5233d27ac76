// Package parameter recovers typed metadata from raw device-description
// parameter records.
//
// IODD and EDS files describe parameters inconsistently. IODD usually
// carries structured enumerations and unit codes; EDS often carries only a
// CIP type code plus free-text help strings where a human wrote the
// enumeration or unit. The functions here turn a Record, whatever its
// source, into normalised descriptors:
//
//   - RecoverEnum: structured enumeration first, then "0 = Off, 1 = On"
//     style patterns scanned from the free-text fields
//   - IsBoolean: BOOL type code, a {0,1} enumeration, or a 0..1 range
//   - ValidateRange: numeric min/max/default and default-within-bounds
//   - ResolveUnit: unit code lookup, or free-text unit inference for
//     formats without a unit code field
//
// # Evaluation Order
//
// Every heuristic is an ordered list evaluated with early exit. The order
// of enumSources, enumPatterns, defaultFallbacks and unitInferenceSteps is
// part of the behaviour: changing it changes what gets extracted from
// ambiguous help text.
//
// # Thread Safety
//
// All functions are pure. Records are taken by value and never modified;
// the package holds only read-only tables and compiled expressions.
package parameter
