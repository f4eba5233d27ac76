package catalog

import "fmt"

// Unit categories used by the code table and the free-text resolver.
const (
	UnitDimensionless = "Dimensionless"
	UnitUnknown       = "Unknown"
	UnitCustom        = "Custom"

	UnitTemperature = "Temperature"
	UnitLength      = "Length"
	UnitVolume      = "Volume"
	UnitTime        = "Time"
	UnitVelocity    = "Velocity"
	UnitFrequency   = "Frequency"
	UnitPressure    = "Pressure"
	UnitCurrent     = "Current"
	UnitVoltage     = "Voltage"
	UnitPower       = "Power"
	UnitEnergy      = "Energy"
	UnitResistance  = "Resistance"
	UnitRatio       = "Ratio"
	UnitFlow        = "Flow"
	UnitMass        = "Mass"
	UnitForce       = "Force"
	UnitAngle       = "Angle"
	UnitIlluminance = "Illuminance"
	UnitData        = "Data"
)

// Unit describes a physical unit.
//
// Code is nil when the unit was recovered from free text rather than a
// numeric unit code.
type Unit struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Code     *int   `json:"code"`
}

type unitEntry struct {
	symbol   string
	name     string
	category string
}

// IO-Link unit codes (IODD UnitCodes, IEC 61987).
var unitTable = map[int]unitEntry{
	1000: {"K", "Kelvin", UnitTemperature},
	1001: {"°C", "Degree Celsius", UnitTemperature},
	1002: {"°F", "Degree Fahrenheit", UnitTemperature},

	1010: {"m", "Metre", UnitLength},
	1012: {"cm", "Centimetre", UnitLength},
	1013: {"mm", "Millimetre", UnitLength},
	1014: {"µm", "Micrometre", UnitLength},
	1018: {"ft", "Foot", UnitLength},
	1019: {"in", "Inch", UnitLength},

	1034: {"m³", "Cubic metre", UnitVolume},
	1038: {"l", "Litre", UnitVolume},

	1054: {"s", "Second", UnitTime},
	1056: {"ms", "Millisecond", UnitTime},
	1057: {"µs", "Microsecond", UnitTime},
	1058: {"min", "Minute", UnitTime},
	1059: {"h", "Hour", UnitTime},
	1060: {"d", "Day", UnitTime},

	1061: {"m/s", "Metre per second", UnitVelocity},
	1062: {"mm/s", "Millimetre per second", UnitVelocity},

	1077: {"Hz", "Hertz", UnitFrequency},
	1081: {"kHz", "Kilohertz", UnitFrequency},
	1083: {"1/min", "Revolutions per minute", UnitFrequency},

	1088: {"kg", "Kilogram", UnitMass},
	1089: {"g", "Gram", UnitMass},
	1120: {"N", "Newton", UnitForce},

	1130: {"Pa", "Pascal", UnitPressure},
	1133: {"kPa", "Kilopascal", UnitPressure},
	1137: {"bar", "Bar", UnitPressure},
	1138: {"mbar", "Millibar", UnitPressure},
	1141: {"psi", "Pound per square inch", UnitPressure},

	1179: {"J", "Joule", UnitEnergy},
	1190: {"kWh", "Kilowatt hour", UnitEnergy},
	1196: {"W", "Watt", UnitPower},
	1197: {"kW", "Kilowatt", UnitPower},

	1209: {"A", "Ampere", UnitCurrent},
	1211: {"mA", "Milliampere", UnitCurrent},
	1212: {"µA", "Microampere", UnitCurrent},
	1240: {"V", "Volt", UnitVoltage},
	1243: {"mV", "Millivolt", UnitVoltage},
	1281: {"Ω", "Ohm", UnitResistance},
	1284: {"kΩ", "Kiloohm", UnitResistance},

	1342: {"%", "Percent", UnitRatio},
	1423: {"ppm", "Parts per million", UnitRatio},

	1347: {"m³/s", "Cubic metre per second", UnitFlow},
	1349: {"m³/h", "Cubic metre per hour", UnitFlow},
	1351: {"l/s", "Litre per second", UnitFlow},
	1352: {"l/min", "Litre per minute", UnitFlow},
	1353: {"l/h", "Litre per hour", UnitFlow},

	1004: {"°", "Degree (angle)", UnitAngle},
	1005: {"rad", "Radian", UnitAngle},
	1006: {"lx", "Lux", UnitIlluminance},
}

// NoUnit returns the canonical descriptor for a dimensionless value.
func NoUnit() Unit {
	return Unit{Name: "No unit", Category: UnitDimensionless}
}

// LookupUnit returns the table entry for a unit code.
func LookupUnit(code int) (Unit, bool) {
	entry, ok := unitTable[code]
	if !ok {
		return Unit{}, false
	}
	return Unit{
		Symbol:   entry.symbol,
		Name:     entry.name,
		Category: entry.category,
		Code:     intPtr(code),
	}, true
}

// ResolveUnitCode maps a numeric unit code to a descriptor.
//
// nil and 0 mean "no unit". Codes absent from the table produce an
// Unknown descriptor whose symbol is the bracketed code.
func ResolveUnitCode(code *int) Unit {
	if code == nil || *code == 0 {
		return NoUnit()
	}
	if unit, ok := LookupUnit(*code); ok {
		return unit
	}
	return Unit{
		Symbol:   fmt.Sprintf("[%d]", *code),
		Name:     fmt.Sprintf("Unknown unit (%d)", *code),
		Category: UnitUnknown,
		Code:     intPtr(*code),
	}
}
