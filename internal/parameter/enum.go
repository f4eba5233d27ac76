package parameter

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// minEnumValues is the smallest value count treated as an enumeration.
const minEnumValues = 2

// EnumDescriptor is a recovered enumeration.
//
// Values are sorted ascending and unique by Value. Count always equals
// len(Values) and is at least 2.
type EnumDescriptor struct {
	IsEnum       bool        `json:"is_enum"`
	Values       []EnumValue `json:"values"`
	DefaultValue *int        `json:"default_value"`
	Count        int         `json:"count"`
}

// ValueSet returns the enumeration's values.
func (d *EnumDescriptor) ValueSet() []int {
	values := make([]int, len(d.Values))
	for i, v := range d.Values {
		values[i] = v.Value
	}
	return values
}

// enumSource is a free-text field scanned for enumeration patterns.
type enumSource struct {
	name  string
	field func(Record) string
}

// enumSources lists the free-text fields in scan order.
var enumSources = []enumSource{
	{"default_value", func(r Record) string { return r.DefaultValue }},
	{"help_string_1", func(r Record) string { return r.HelpString1 }},
	{"help_string_2", func(r Record) string { return r.HelpString2 }},
	{"help_string_3", func(r Record) string { return r.HelpString3 }},
	{"description", func(r Record) string { return r.Description }},
}

// enumPattern matches the "<int> <separator>" marker in front of a label.
// The integer may carry a leading minus sign.
// The label runs from the end of one marker to the start of the next.
type enumPattern struct {
	name   string
	marker *regexp.Regexp
}

// enumPatterns lists the patterns in the order they are tried per source.
var enumPatterns = []enumPattern{
	{"equals", regexp.MustCompile(`(-?\d+)\s*=\s*`)},
	{"colon", regexp.MustCompile(`(-?\d+)\s*:\s*`)},
	{"value-dash", regexp.MustCompile(`(?i)\bvalue\s+(-?\d+)\s*-\s*`)},
}

var (
	defaultMarker = regexp.MustCompile(`(?i)\(default\)`)
	leadingDigits = regexp.MustCompile(`^-?\d+`)
)

// labelTrailing is the punctuation stripped from the end of a label.
const labelTrailing = ",;."

// RecoverEnum returns the enumeration described by a record, or nil.
//
// A structured enumeration (EnumValues, else EnumValuesJSON) with at least
// two entries wins. Otherwise the free-text fields are scanned in the
// order of enumSources; within each field the patterns are tried in order
// and the first pattern producing two or more distinct values ends the
// search. A single value is never an enumeration.
func RecoverEnum(rec Record) *EnumDescriptor {
	if desc, err := structuredEnum(rec); err == nil && desc != nil {
		return desc
	}
	return textEnum(rec)
}

// structuredEnum builds the descriptor from the parser-supplied
// enumeration. It returns nil, nil when the record carries none.
func structuredEnum(rec Record) (*EnumDescriptor, error) {
	values := rec.EnumValues
	if len(values) == 0 && strings.TrimSpace(rec.EnumValuesJSON) != "" {
		if err := json.Unmarshal([]byte(rec.EnumValuesJSON), &values); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedEnum, err)
		}
	}
	if len(values) < minEnumValues {
		return nil, nil
	}

	labelled := make([]EnumValue, len(values))
	copy(labelled, values)

	return newEnumDescriptor(labelled, func() *int {
		return leadingInt(rec.DefaultValue)
	})
}

// textEnum scans the free-text fields for an enumeration.
func textEnum(rec Record) *EnumDescriptor {
	for _, src := range enumSources {
		text := src.field(rec)
		if text == "" {
			continue
		}
		for _, pattern := range enumPatterns {
			entries := pattern.extract(text)
			if distinctValues(entries) < minEnumValues {
				continue
			}
			desc, err := newEnumDescriptor(entries, func() *int {
				return textDefault(rec)
			})
			if err != nil {
				continue
			}
			return desc
		}
	}
	return nil
}

// extract returns every labelled value the pattern finds in text.
func (p enumPattern) extract(text string) []EnumValue {
	matches := p.marker.FindAllStringSubmatchIndex(text, -1)
	entries := make([]EnumValue, 0, len(matches))

	for i, m := range matches {
		value, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}

		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		label, isDefault := cleanLabel(text[m[1]:end])
		if label == "" {
			continue
		}
		entries = append(entries, EnumValue{Value: value, Label: label, IsDefault: isDefault})
	}
	return entries
}

// cleanLabel trims a raw label segment, strips trailing punctuation and
// removes a "(default)" marker, reporting whether one was present.
func cleanLabel(raw string) (string, bool) {
	if i := strings.IndexAny(raw, "\r\n"); i >= 0 {
		raw = raw[:i]
	}
	label := stripTrailing(raw)

	isDefault := defaultMarker.MatchString(label)
	if isDefault {
		label = stripTrailing(defaultMarker.ReplaceAllString(label, ""))
		label = strings.Join(strings.Fields(label), " ")
	}
	return label, isDefault
}

func stripTrailing(s string) string {
	s = strings.TrimSpace(s)
	for s != "" && strings.ContainsRune(labelTrailing, rune(s[len(s)-1])) {
		s = strings.TrimSpace(s[:len(s)-1])
	}
	return s
}

// defaultFallbacks lists the default-value sources used when no free-text
// entry was marked "(default)".
var defaultFallbacks = []func(Record) *int{
	func(r Record) *int { return leadingInt(r.DefaultValue) },
	func(r Record) *int { return numericInt(r.MinValue) },
}

func textDefault(rec Record) *int {
	for _, fallback := range defaultFallbacks {
		if v := fallback(rec); v != nil {
			return v
		}
	}
	return nil
}

// newEnumDescriptor deduplicates by value (first occurrence wins), keeps a
// single default flag, and sorts ascending. fallback supplies the default
// when no entry is flagged.
func newEnumDescriptor(entries []EnumValue, fallback func() *int) (*EnumDescriptor, error) {
	seen := make(map[int]bool, len(entries))
	values := make([]EnumValue, 0, len(entries))
	var defaultValue *int

	for _, e := range entries {
		if seen[e.Value] {
			continue
		}
		seen[e.Value] = true

		if e.IsDefault {
			if defaultValue == nil {
				v := e.Value
				defaultValue = &v
			} else {
				e.IsDefault = false
			}
		}
		values = append(values, e)
	}

	if len(values) < minEnumValues {
		return nil, ErrTooFewEnumValues
	}

	sort.Slice(values, func(i, j int) bool {
		return values[i].Value < values[j].Value
	})

	if defaultValue == nil {
		defaultValue = fallback()
	}

	return &EnumDescriptor{
		IsEnum:       true,
		Values:       values,
		DefaultValue: defaultValue,
		Count:        len(values),
	}, nil
}

func distinctValues(entries []EnumValue) int {
	seen := make(map[int]bool, len(entries))
	for _, e := range entries {
		seen[e.Value] = true
	}
	return len(seen)
}

// leadingInt parses the optionally signed digits at the start of s.
func leadingInt(s string) *int {
	digits := leadingDigits.FindString(strings.TrimSpace(s))
	if digits == "" {
		return nil
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &v
}

// numericInt returns the integer part of s when s is a finite number.
func numericInt(s string) *int {
	f, ok := parseFloat(s)
	if !ok {
		return nil
	}
	v := int(f)
	return &v
}

// parseFloat parses a finite float, ignoring surrounding whitespace.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
