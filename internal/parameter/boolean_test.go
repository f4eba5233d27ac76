package parameter

import (
	"testing"

	"github.com/nerrad567/devparam/internal/catalog"
)

func TestIsBoolean(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want bool
	}{
		{"BOOL type code", Record{TypeCode: intp(catalog.CodeBOOL)}, true},
		{"BOOL decimal 193", Record{TypeCode: intp(193)}, true},
		{"abbreviated BOOL", Record{TypeCode: intp(catalog.AliasBOOL)}, true},
		{"zero-one enumeration", Record{HelpString1: "0 = Disabled, 1 = Enabled"}, true},
		{"zero-one structured enumeration", Record{EnumValues: []EnumValue{{Value: 1, Label: "On"}, {Value: 0, Label: "Off"}}}, true},
		{"zero-one range", Record{MinValue: "0", MaxValue: "1", DefaultValue: "1"}, true},

		{"no signal", Record{Name: "Speed"}, false},
		{"three-value enumeration", Record{HelpString1: "0 = A, 1 = B, 2 = C"}, false},
		{"one-two enumeration", Record{HelpString1: "1 = A, 2 = B"}, false},
		{"range with spaces is not exact", Record{MinValue: " 0", MaxValue: "1"}, false},
		{"range written as floats", Record{MinValue: "0.0", MaxValue: "1.0"}, false},
		{"wider range", Record{MinValue: "0", MaxValue: "2"}, false},
		{"USINT code", Record{TypeCode: intp(catalog.CodeUSINT)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBoolean(tt.rec); got != tt.want {
				t.Errorf("IsBoolean() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestIsBoolean_AgreesWithEnum checks that every {0,1} enumeration is boolean.
func TestIsBoolean_AgreesWithEnum(t *testing.T) {
	for _, rec := range sampleRecords() {
		desc := RecoverEnum(rec)
		if desc == nil || desc.Count != 2 {
			continue
		}
		if desc.Values[0].Value == 0 && desc.Values[1].Value == 1 && !IsBoolean(rec) {
			t.Errorf("%q: {0,1} enumeration but IsBoolean() = false", rec.Name)
		}
	}
}
