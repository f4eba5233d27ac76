package parameter

import (
	"strings"
)

// Format identifies the description file format a record was parsed from.
type Format string

// Supported source formats.
const (
	FormatUnknown Format = ""
	FormatIODD    Format = "iodd"
	FormatEDS     Format = "eds"
)

// HasUnitCode reports whether records of this format carry a numeric unit
// code field. Only IODD does; EDS units are free text.
func (f Format) HasUnitCode() bool {
	return f == FormatIODD
}

// EnumValue is one entry of an enumeration.
type EnumValue struct {
	Value     int    `json:"value"`
	Label     string `json:"label"`
	IsDefault bool   `json:"is_default"`
}

// Record is a raw parameter as handed over by an IODD or EDS parser.
//
// String fields use "" for absent. TypeCode and UnitCode are nil when the
// source did not provide them.
type Record struct {
	// Name is the parameter name from the description file.
	Name string `json:"name"`

	// Source identifies the originating file or device (optional).
	Source string `json:"source,omitempty"`

	// Format is the description file format.
	Format Format `json:"format,omitempty"`

	// TypeCode is the protocol data type code (e.g. 0xC7 for UINT).
	TypeCode *int `json:"type_code,omitempty"`

	DefaultValue string `json:"default_value,omitempty"`
	MinValue     string `json:"min_value,omitempty"`
	MaxValue     string `json:"max_value,omitempty"`
	Description  string `json:"description,omitempty"`

	HelpString1 string `json:"help_string_1,omitempty"`
	HelpString2 string `json:"help_string_2,omitempty"`
	HelpString3 string `json:"help_string_3,omitempty"`

	// EnumValues is a pre-structured enumeration supplied by the parser.
	EnumValues []EnumValue `json:"enum_values,omitempty"`

	// EnumValuesJSON is the serialised form of EnumValues, as stored by
	// upstream persistence. Used only when EnumValues is empty.
	EnumValuesJSON string `json:"enum_values_json,omitempty"`

	// UnitCode is the numeric unit code (IODD only).
	UnitCode *int `json:"unit_code,omitempty"`
}

// HelpStrings returns the three help strings in order.
func (r Record) HelpStrings() []string {
	return []string{r.HelpString1, r.HelpString2, r.HelpString3}
}

// SearchText returns every free-text field joined by newlines: name,
// description, then the help strings. Empty fields are skipped.
func (r Record) SearchText() string {
	parts := make([]string, 0, 5)
	for _, s := range []string{r.Name, r.Description, r.HelpString1, r.HelpString2, r.HelpString3} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}
