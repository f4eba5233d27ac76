package parameter

import (
	"testing"
)

func floatp(v float64) *float64 { return &v }

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want RangeDescriptor
	}{
		{
			name: "zero-one with default",
			rec:  Record{MinValue: "0", MaxValue: "1", DefaultValue: "1"},
			want: RangeDescriptor{Min: floatp(0), Max: floatp(1), Default: floatp(1), HasRange: true, IsDefaultValid: true, RangeSize: floatp(1)},
		},
		{
			name: "unparsable default and no bounds",
			rec:  Record{DefaultValue: "not a number"},
			want: RangeDescriptor{IsDefaultValid: true},
		},
		{
			name: "default below min",
			rec:  Record{MinValue: "10", MaxValue: "100", DefaultValue: "5"},
			want: RangeDescriptor{Min: floatp(10), Max: floatp(100), Default: floatp(5), HasRange: true, IsDefaultValid: false, RangeSize: floatp(90)},
		},
		{
			name: "default above max",
			rec:  Record{MaxValue: "100", DefaultValue: "250"},
			want: RangeDescriptor{Max: floatp(100), Default: floatp(250), HasRange: true, IsDefaultValid: false},
		},
		{
			name: "default on the bound is valid",
			rec:  Record{MinValue: "10", DefaultValue: "10"},
			want: RangeDescriptor{Min: floatp(10), Default: floatp(10), HasRange: true, IsDefaultValid: true},
		},
		{
			name: "default with unit text",
			rec:  Record{MinValue: "1", MaxValue: "1000", DefaultValue: "100 ms"},
			want: RangeDescriptor{Min: floatp(1), Max: floatp(1000), Default: floatp(100), HasRange: true, IsDefaultValid: true, RangeSize: floatp(999)},
		},
		{
			name: "negative and fractional",
			rec:  Record{MinValue: "-10.5", MaxValue: "-1", DefaultValue: "-2.5"},
			want: RangeDescriptor{Min: floatp(-10.5), Max: floatp(-1), Default: floatp(-2.5), HasRange: true, IsDefaultValid: true, RangeSize: floatp(9.5)},
		},
		{
			name: "unparsable bounds are nil",
			rec:  Record{MinValue: "low", MaxValue: "0x10", DefaultValue: "5"},
			want: RangeDescriptor{Default: floatp(5), IsDefaultValid: true},
		},
		{
			name: "stripped default that is not a number",
			rec:  Record{MinValue: "0", DefaultValue: "v1.2.3"},
			want: RangeDescriptor{Min: floatp(0), HasRange: true, IsDefaultValid: true},
		},
		{
			name: "lone minus sign",
			rec:  Record{DefaultValue: "n/a - see manual"},
			want: RangeDescriptor{IsDefaultValid: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateRange(tt.rec)
			assertFloatPtr(t, "Min", got.Min, tt.want.Min)
			assertFloatPtr(t, "Max", got.Max, tt.want.Max)
			assertFloatPtr(t, "Default", got.Default, tt.want.Default)
			assertFloatPtr(t, "RangeSize", got.RangeSize, tt.want.RangeSize)
			if got.HasRange != tt.want.HasRange {
				t.Errorf("HasRange = %v, want %v", got.HasRange, tt.want.HasRange)
			}
			if got.IsDefaultValid != tt.want.IsDefaultValid {
				t.Errorf("IsDefaultValid = %v, want %v", got.IsDefaultValid, tt.want.IsDefaultValid)
			}
		})
	}
}

// TestValidateRange_NoBoundsAlwaysValid checks that a record without
// bounds never reports an invalid default.
func TestValidateRange_NoBoundsAlwaysValid(t *testing.T) {
	defaults := []string{"", "0", "-99999", "1e9", "abc", "12.5 %", "--"}
	for _, d := range defaults {
		got := ValidateRange(Record{DefaultValue: d})
		if got.HasRange {
			t.Errorf("default %q: HasRange = true", d)
		}
		if !got.IsDefaultValid {
			t.Errorf("default %q: IsDefaultValid = false without bounds", d)
		}
	}
}

func TestNumericChars(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100 ms", "100"},
		{"-2.5 V", "-2.5"},
		{"0x1F", "01"},
		{"abc", ""},
		{"1,000", "1000"},
		{"\u0663", ""}, // Arabic-Indic digit three
	}
	for _, tt := range tests {
		if got := numericChars(tt.in); got != tt.want {
			t.Errorf("numericChars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func assertFloatPtr(t *testing.T, field string, got, want *float64) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Errorf("%s = %v, want %v", field, fmtFloat(got), fmtFloat(want))
	case *got != *want:
		t.Errorf("%s = %v, want %v", field, *got, *want)
	}
}

func fmtFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
