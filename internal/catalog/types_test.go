package catalog

import (
	"reflect"
	"testing"
)

func TestDecodeType_KnownCodes(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		wantName string
		wantCat  TypeCategory
		wantSize int // 0 = nil
	}{
		{"BOOL native", CodeBOOL, "BOOL", TypeBoolean, 0},
		{"BOOL decimal", 193, "BOOL", TypeBoolean, 0},
		{"SINT", CodeSINT, "SINT", TypeInteger, 1},
		{"INT", CodeINT, "INT", TypeInteger, 2},
		{"DINT", CodeDINT, "DINT", TypeInteger, 4},
		{"LINT", CodeLINT, "LINT", TypeInteger, 8},
		{"USINT", CodeUSINT, "USINT", TypeInteger, 1},
		{"UINT", CodeUINT, "UINT", TypeInteger, 2},
		{"UDINT", CodeUDINT, "UDINT", TypeInteger, 4},
		{"ULINT", CodeULINT, "ULINT", TypeInteger, 8},
		{"REAL", CodeREAL, "REAL", TypeFloat, 4},
		{"LREAL", CodeLREAL, "LREAL", TypeFloat, 8},
		{"BYTE", CodeBYTE, "BYTE", TypeBitString, 1},
		{"WORD", CodeWORD, "WORD", TypeBitString, 2},
		{"DWORD", CodeDWORD, "DWORD", TypeBitString, 4},
		{"LWORD", CodeLWORD, "LWORD", TypeBitString, 8},
		{"STRING", CodeSTRING, "STRING", TypeString, 0},
		{"STRING2", CodeSTRING2, "STRING2", TypeString, 0},
		{"abbreviated struct", CodeAbbrevStruct, "ABBREV_STRUCT", TypeStructured, 0},
		{"struct", CodeStruct, "STRUCT", TypeStructured, 0},
		{"TIME", CodeTIME, "TIME", TypeTime, 4},
		{"LTIME", CodeLTIME, "LTIME", TypeTime, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := tt.code
			got := DecodeType(&code)

			if got.CanonicalName != tt.wantName {
				t.Errorf("CanonicalName = %q, want %q", got.CanonicalName, tt.wantName)
			}
			if got.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCat)
			}
			switch {
			case tt.wantSize == 0 && got.SizeBytes != nil:
				t.Errorf("SizeBytes = %d, want nil", *got.SizeBytes)
			case tt.wantSize != 0 && (got.SizeBytes == nil || *got.SizeBytes != tt.wantSize):
				t.Errorf("SizeBytes = %v, want %d", got.SizeBytes, tt.wantSize)
			}
			if !got.IsKnown() {
				t.Error("IsKnown() = false, want true")
			}
		})
	}
}

func TestDecodeType_AliasesMatchCanonical(t *testing.T) {
	pairs := map[int]int{
		AliasBOOL:  CodeBOOL,
		AliasUSINT: CodeUSINT,
		AliasUINT:  CodeUINT,
		AliasUDINT: CodeUDINT,
		AliasULINT: CodeULINT,
	}

	for alias, canonical := range pairs {
		a, c := alias, canonical
		got := DecodeType(&a)
		want := DecodeType(&c)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("DecodeType(%d) = %+v, want %+v", alias, got, want)
		}
	}
}

func TestDecodeType_Unknown(t *testing.T) {
	t.Run("unregistered code", func(t *testing.T) {
		code := 9999
		got := DecodeType(&code)
		if got.CanonicalName != "Type9999" {
			t.Errorf("CanonicalName = %q, want Type9999", got.CanonicalName)
		}
		if got.DisplayName != "Unknown Type (9999)" {
			t.Errorf("DisplayName = %q", got.DisplayName)
		}
		if got.Category != TypeUnknown {
			t.Errorf("Category = %q, want Unknown", got.Category)
		}
		if got.SizeBytes != nil {
			t.Error("SizeBytes should be nil")
		}
		if got.Code == nil || *got.Code != 9999 {
			t.Errorf("Code = %v, want 9999", got.Code)
		}
	})

	t.Run("nil code", func(t *testing.T) {
		got := DecodeType(nil)
		if got.CanonicalName != "Type" || got.DisplayName != "Unknown Type ()" {
			t.Errorf("DecodeType(nil) = %q / %q, want empty code text", got.CanonicalName, got.DisplayName)
		}
		if got.Category != TypeUnknown {
			t.Errorf("Category = %q, want Unknown", got.Category)
		}
		if got.Code != nil {
			t.Error("Code should be nil")
		}
		if got.IsKnown() {
			t.Error("IsKnown() = true, want false")
		}
	})

	t.Run("negative code", func(t *testing.T) {
		code := -5
		if got := DecodeType(&code); got.CanonicalName != "Type-5" {
			t.Errorf("CanonicalName = %q, want Type-5", got.CanonicalName)
		}
	})
}

func TestDecodeType_Idempotent(t *testing.T) {
	for _, code := range TypeCodes() {
		c := code
		first := DecodeType(&c)
		second := DecodeType(&c)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("DecodeType(0x%X) not idempotent: %+v vs %+v", code, first, second)
		}
	}
}

func TestDecodeType_ReturnsCopies(t *testing.T) {
	code := CodeUINT
	first := DecodeType(&code)
	*first.SizeBytes = 99
	*first.Code = 1

	second := DecodeType(&code)
	if *second.SizeBytes != 2 || *second.Code != CodeUINT {
		t.Errorf("mutating a result changed the table: %+v", second)
	}
}

func TestIsBooleanCode(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{CodeBOOL, true},
		{AliasBOOL, true},
		{CodeUSINT, false},
		{0, false},
	}
	for _, tt := range tests {
		if got := IsBooleanCode(tt.code); got != tt.want {
			t.Errorf("IsBooleanCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestCanonicalTypeCode(t *testing.T) {
	if got := CanonicalTypeCode(AliasUINT); got != CodeUINT {
		t.Errorf("CanonicalTypeCode(7) = 0x%X, want 0xC7", got)
	}
	if got := CanonicalTypeCode(CodeREAL); got != CodeREAL {
		t.Errorf("CanonicalTypeCode(0xCA) = 0x%X, want unchanged", got)
	}
	if got := CanonicalTypeCode(42); got != 42 {
		t.Errorf("CanonicalTypeCode(42) = %d, want 42", got)
	}
}
