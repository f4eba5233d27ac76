package parameter

import "github.com/nerrad567/devparam/internal/catalog"

// sampleRecords returns a mix of IODD- and EDS-style records used by the
// invariant tests.
func sampleRecords() []Record {
	return []Record{
		{Name: "Empty"},
		{Name: "Port Layout", Format: FormatEDS, TypeCode: intp(catalog.CodeUSINT), DefaultValue: "0 = Port based (default), 1 = Pin based"},
		{Name: "Switch", Format: FormatIODD, TypeCode: intp(catalog.CodeBOOL)},
		{Name: "Abbrev Switch", Format: FormatEDS, TypeCode: intp(catalog.AliasBOOL)},
		{Name: "Range01", MinValue: "0", MaxValue: "1", DefaultValue: "1"},
		{Name: "Watchdog Timer (ms)", HelpString2: "RPI watchdog timeout period", MinValue: "10", MaxValue: "1000", DefaultValue: "100 ms"},
		{Name: "Mode", HelpString1: "0: Off; 1: Fast; 2: Slow; 2: Again"},
		{Name: "Dup structured", EnumValues: []EnumValue{{Value: 1, Label: "A"}, {Value: 1, Label: "B"}}, HelpString1: "value 3 - C, value 4 - D (default)"},
		{Name: "Bad JSON", EnumValuesJSON: "[", Description: "1 = One, 2 = Two, 3 = Three"},
		{Name: "Noise", DefaultValue: "not a number", Description: "Some long sentence. With punctuation!"},
		{Name: "Neg", MinValue: "-10", MaxValue: "-1", DefaultValue: "-20"},
		{Name: "Unknown type", TypeCode: intp(9999), HelpString3: "0=No,1=Yes"},
	}
}
