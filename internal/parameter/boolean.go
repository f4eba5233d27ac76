package parameter

import "github.com/nerrad567/devparam/internal/catalog"

// booleanCheck is one independent reason for treating a record as boolean.
type booleanCheck struct {
	name  string
	check func(Record) bool
}

var booleanChecks = []booleanCheck{
	{"type_code", hasBooleanTypeCode},
	{"enum_zero_one", hasZeroOneEnum},
	{"range_zero_one", hasZeroOneRange},
}

// IsBoolean reports whether a record describes a boolean parameter.
//
// It is true when any of these hold: the type code is BOOL (native 0xC1 or
// abbreviated 1); the recovered enumeration has exactly the values 0 and
// 1; MinValue is "0" and MaxValue is "1" (exact strings).
func IsBoolean(rec Record) bool {
	for _, c := range booleanChecks {
		if c.check(rec) {
			return true
		}
	}
	return false
}

func hasBooleanTypeCode(rec Record) bool {
	return rec.TypeCode != nil && catalog.IsBooleanCode(*rec.TypeCode)
}

func hasZeroOneEnum(rec Record) bool {
	desc := RecoverEnum(rec)
	if desc == nil || desc.Count != 2 {
		return false
	}
	// Values are sorted and unique.
	return desc.Values[0].Value == 0 && desc.Values[1].Value == 1
}

func hasZeroOneRange(rec Record) bool {
	return rec.MinValue == "0" && rec.MaxValue == "1"
}
