package parameter

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nerrad567/devparam/internal/catalog"
)

// Free-text label length limits (in characters).
const (
	maxShortLabelLen = 20 // description / help string used verbatim
	maxNameSuffixLen = 15 // parenthesised suffix of the parameter name
)

const sentencePunctuation = ".!?"

// textUnit is one entry of the free-text unit catalogue.
type textUnit struct {
	keyword  string
	symbol   string
	name     string
	category string
}

// textUnits is matched in order against the lowercased description as a
// plain substring. Longer or prefixed keywords come before the words they
// contain.
var textUnits = []textUnit{
	{"microsecond", "µs", "Microsecond", catalog.UnitTime},
	{"millisecond", "ms", "Millisecond", catalog.UnitTime},
	{"second", "s", "Second", catalog.UnitTime},
	{"minute", "min", "Minute", catalog.UnitTime},
	{"hour", "h", "Hour", catalog.UnitTime},

	{"millimeter", "mm", "Millimetre", catalog.UnitLength},
	{"millimetre", "mm", "Millimetre", catalog.UnitLength},
	{"centimeter", "cm", "Centimetre", catalog.UnitLength},
	{"centimetre", "cm", "Centimetre", catalog.UnitLength},
	{"meter", "m", "Metre", catalog.UnitLength},
	{"metre", "m", "Metre", catalog.UnitLength},
	{"kilobyte", "kB", "Kilobyte", catalog.UnitData},
	{"byte", "bytes", "Byte", catalog.UnitData},
	{"bits", "bits", "Bit", catalog.UnitData},

	{"megahertz", "MHz", "Megahertz", catalog.UnitFrequency},
	{"kilohertz", "kHz", "Kilohertz", catalog.UnitFrequency},
	{"hertz", "Hz", "Hertz", catalog.UnitFrequency},
	{"baud", "Bd", "Baud", catalog.UnitFrequency},

	{"millivolt", "mV", "Millivolt", catalog.UnitVoltage},
	{"volt", "V", "Volt", catalog.UnitVoltage},
	{"milliamp", "mA", "Milliampere", catalog.UnitCurrent},
	{"ampere", "A", "Ampere", catalog.UnitCurrent},
	{"amps", "A", "Ampere", catalog.UnitCurrent},
	{"kilowatt", "kW", "Kilowatt", catalog.UnitPower},
	{"watt", "W", "Watt", catalog.UnitPower},

	{"percent", "%", "Percent", catalog.UnitRatio},

	{"celsius", "°C", "Degree Celsius", catalog.UnitTemperature},
	{"fahrenheit", "°F", "Degree Fahrenheit", catalog.UnitTemperature},
	{"kelvin", "K", "Kelvin", catalog.UnitTemperature},

	{"millibar", "mbar", "Millibar", catalog.UnitPressure},
	{"pascal", "Pa", "Pascal", catalog.UnitPressure},
	{"psi", "psi", "Pound per square inch", catalog.UnitPressure},

	{"degree", "°", "Degree (angle)", catalog.UnitAngle},
	{"rpm", "1/min", "Revolutions per minute", catalog.UnitFrequency},
}

var nameSuffix = regexp.MustCompile(`\(([^()]*)\)\s*$`)

// UnresolvedUnit is returned when no unit signal was found in free text.
// It differs from catalog.NoUnit: the unit is unknown, not absent.
func UnresolvedUnit() catalog.Unit {
	return catalog.Unit{Name: "Unresolved", Category: catalog.UnitUnknown}
}

// ResolveUnit derives the display unit for a record.
//
// When a code is given, or the record's format has a unit code field, the
// code is looked up in the unit catalogue (nil and 0 mean "no unit") and
// the result is always resolved. Otherwise the free-text steps run in
// order:
//
//  1. a known unit word in the description
//  2. a short description (under 20 characters, no sentence punctuation)
//     taken verbatim
//  3. the same test applied to HelpString1
//  4. a parenthesised suffix of the name shorter than 15 characters
//
// If none applies it returns UnresolvedUnit and false.
func ResolveUnit(code *int, rec Record) (catalog.Unit, bool) {
	if code != nil || rec.Format.HasUnitCode() {
		return catalog.ResolveUnitCode(code), true
	}
	return InferUnit(rec)
}

// unitInferenceSteps is the free-text resolution chain.
var unitInferenceSteps = []func(Record) (catalog.Unit, bool){
	func(r Record) (catalog.Unit, bool) { return unitFromKeywords(r.Description) },
	func(r Record) (catalog.Unit, bool) { return unitFromShortText(r.Description) },
	func(r Record) (catalog.Unit, bool) { return unitFromShortText(r.HelpString1) },
	func(r Record) (catalog.Unit, bool) { return unitFromNameSuffix(r.Name) },
}

// InferUnit runs only the free-text chain of ResolveUnit.
func InferUnit(rec Record) (catalog.Unit, bool) {
	for _, step := range unitInferenceSteps {
		if unit, ok := step(rec); ok {
			return unit, true
		}
	}
	return UnresolvedUnit(), false
}

func unitFromKeywords(text string) (catalog.Unit, bool) {
	if text == "" {
		return catalog.Unit{}, false
	}
	text = strings.ToLower(text)
	for _, u := range textUnits {
		if strings.Contains(text, u.keyword) {
			return catalog.Unit{Symbol: u.symbol, Name: u.name, Category: u.category}, true
		}
	}
	return catalog.Unit{}, false
}

func unitFromShortText(text string) (catalog.Unit, bool) {
	text = strings.TrimSpace(text)
	if text == "" || utf8.RuneCountInString(text) >= maxShortLabelLen {
		return catalog.Unit{}, false
	}
	if strings.ContainsAny(text, sentencePunctuation) {
		return catalog.Unit{}, false
	}
	return symbolUnit(text), true
}

func unitFromNameSuffix(name string) (catalog.Unit, bool) {
	m := nameSuffix.FindStringSubmatch(name)
	if m == nil {
		return catalog.Unit{}, false
	}
	label := strings.TrimSpace(m[1])
	if label == "" || utf8.RuneCountInString(label) >= maxNameSuffixLen {
		return catalog.Unit{}, false
	}
	return symbolUnit(label), true
}

// symbolUnit wraps a verbatim label, borrowing name and category from the
// free-text catalogue when the label is a known symbol.
func symbolUnit(label string) catalog.Unit {
	for _, u := range textUnits {
		if u.symbol == label {
			return catalog.Unit{Symbol: u.symbol, Name: u.name, Category: u.category}
		}
	}
	return catalog.Unit{Symbol: label, Name: label, Category: catalog.UnitCustom}
}
