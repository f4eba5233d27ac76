package parameter

import (
	"strings"
	"unicode"
)

// RangeDescriptor is the numeric view of a record's min/max/default.
//
// Fields that are absent or unparsable are nil. HasRange is true when
// either bound is present. IsDefaultValid is false only when a numeric
// default lies strictly outside an available bound.
type RangeDescriptor struct {
	Min            *float64 `json:"min"`
	Max            *float64 `json:"max"`
	Default        *float64 `json:"default"`
	HasRange       bool     `json:"has_range"`
	IsDefaultValid bool     `json:"is_default_valid"`
	RangeSize      *float64 `json:"range_size"`
}

// ValidateRange parses and checks a record's numeric constraints.
//
// The default is read leniently: every character other than digits, '.'
// and '-' is dropped before parsing, so "10 ms" reads as 10.
func ValidateRange(rec Record) RangeDescriptor {
	desc := RangeDescriptor{
		Min:            floatPtr(rec.MinValue),
		Max:            floatPtr(rec.MaxValue),
		Default:        floatPtr(numericChars(rec.DefaultValue)),
		IsDefaultValid: true,
	}
	desc.HasRange = desc.Min != nil || desc.Max != nil

	if desc.Default != nil {
		if desc.Min != nil && *desc.Default < *desc.Min {
			desc.IsDefaultValid = false
		}
		if desc.Max != nil && *desc.Default > *desc.Max {
			desc.IsDefaultValid = false
		}
	}

	if desc.Min != nil && desc.Max != nil {
		size := *desc.Max - *desc.Min
		desc.RangeSize = &size
	}

	return desc
}

// numericChars keeps only digits, '.' and '-'.
func numericChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '.' || r == '-' || (r < unicode.MaxASCII && unicode.IsDigit(r)) {
			return r
		}
		return -1
	}, s)
}

func floatPtr(s string) *float64 {
	f, ok := parseFloat(s)
	if !ok {
		return nil
	}
	return &f
}
