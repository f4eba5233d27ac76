package catalog

import "strconv"

// TypeCategory is the structural family of a data type.
type TypeCategory string

// Type categories.
const (
	TypeBoolean    TypeCategory = "Boolean"
	TypeInteger    TypeCategory = "Integer"
	TypeFloat      TypeCategory = "Float"
	TypeBitString  TypeCategory = "BitString"
	TypeString     TypeCategory = "String"
	TypeStructured TypeCategory = "Structured"
	TypeTime       TypeCategory = "Time"
	TypeUnknown    TypeCategory = "Unknown"
)

// CIP elementary data type codes.
const (
	CodeAbbrevStruct = 0xA0 // Abbreviated structure
	CodeStruct       = 0xA2 // Formal structure

	CodeBOOL   = 0xC1
	CodeSINT   = 0xC2
	CodeINT    = 0xC3
	CodeDINT   = 0xC4
	CodeLINT   = 0xC5
	CodeUSINT  = 0xC6
	CodeUINT   = 0xC7
	CodeUDINT  = 0xC8
	CodeULINT  = 0xC9
	CodeREAL   = 0xCA
	CodeLREAL  = 0xCB
	CodeDATE   = 0xCD
	CodeTOD    = 0xCE
	CodeDT     = 0xCF
	CodeSTRING = 0xD0 // 1 byte per character

	CodeBYTE    = 0xD1
	CodeWORD    = 0xD2
	CodeDWORD   = 0xD3
	CodeLWORD   = 0xD4
	CodeSTRING2 = 0xD5 // 2 bytes per character

	CodeFTIME       = 0xD6
	CodeLTIME       = 0xD7
	CodeITIME       = 0xD8
	CodeSTRINGN     = 0xD9
	CodeShortString = 0xDA
	CodeTIME        = 0xDB
	CodeEPATH       = 0xDC
	CodeENGUNIT     = 0xDD
	CodeSTRINGI     = 0xDE
)

// Abbreviated decimal aliases written by some EDS generators.
// They are the low nibble of the canonical code.
const (
	AliasBOOL  = 1
	AliasUSINT = 6
	AliasUINT  = 7
	AliasUDINT = 8
	AliasULINT = 9
)

// TypeDescriptor is the canonical description of a protocol data type.
//
// SizeBytes is nil for variable-length and bit-sized types.
type TypeDescriptor struct {
	Code          *int         `json:"code"`
	CanonicalName string       `json:"canonical_name"`
	DisplayName   string       `json:"display_name"`
	SizeBytes     *int         `json:"size_bytes"`
	Category      TypeCategory `json:"category"`
}

// IsKnown reports whether the descriptor came from the code table.
func (d TypeDescriptor) IsKnown() bool {
	return d.Category != TypeUnknown
}

type typeEntry struct {
	name     string
	display  string
	size     int // 0 = variable length or bit-sized
	category TypeCategory
}

var typeTable = map[int]typeEntry{
	CodeAbbrevStruct: {"ABBREV_STRUCT", "Abbreviated Structure", 0, TypeStructured},
	CodeStruct:       {"STRUCT", "Structure", 0, TypeStructured},

	CodeBOOL: {"BOOL", "Boolean", 0, TypeBoolean},

	CodeSINT:  {"SINT", "Short Integer", 1, TypeInteger},
	CodeINT:   {"INT", "Integer", 2, TypeInteger},
	CodeDINT:  {"DINT", "Double Integer", 4, TypeInteger},
	CodeLINT:  {"LINT", "Long Integer", 8, TypeInteger},
	CodeUSINT: {"USINT", "Unsigned Short Integer", 1, TypeInteger},
	CodeUINT:  {"UINT", "Unsigned Integer", 2, TypeInteger},
	CodeUDINT: {"UDINT", "Unsigned Double Integer", 4, TypeInteger},
	CodeULINT: {"ULINT", "Unsigned Long Integer", 8, TypeInteger},

	CodeREAL:  {"REAL", "Floating Point (32-bit)", 4, TypeFloat},
	CodeLREAL: {"LREAL", "Floating Point (64-bit)", 8, TypeFloat},

	CodeDATE: {"DATE", "Date", 2, TypeTime},
	CodeTOD:  {"TIME_OF_DAY", "Time of Day", 4, TypeTime},
	CodeDT:   {"DATE_AND_TIME", "Date and Time", 6, TypeTime},

	CodeBYTE:  {"BYTE", "Bit String (8 bits)", 1, TypeBitString},
	CodeWORD:  {"WORD", "Bit String (16 bits)", 2, TypeBitString},
	CodeDWORD: {"DWORD", "Bit String (32 bits)", 4, TypeBitString},
	CodeLWORD: {"LWORD", "Bit String (64 bits)", 8, TypeBitString},

	CodeSTRING:      {"STRING", "Character String (1 byte/char)", 0, TypeString},
	CodeSTRING2:     {"STRING2", "Character String (2 bytes/char)", 0, TypeString},
	CodeSTRINGN:     {"STRINGN", "Character String (N bytes/char)", 0, TypeString},
	CodeShortString: {"SHORT_STRING", "Short Character String", 0, TypeString},
	CodeSTRINGI:     {"STRINGI", "International Character String", 0, TypeString},

	CodeFTIME: {"FTIME", "Duration (high resolution)", 4, TypeTime},
	CodeLTIME: {"LTIME", "Duration (long)", 8, TypeTime},
	CodeITIME: {"ITIME", "Duration (short)", 2, TypeTime},
	CodeTIME:  {"TIME", "Duration (milliseconds)", 4, TypeTime},

	CodeEPATH:   {"EPATH", "CIP Path Segments", 0, TypeStructured},
	CodeENGUNIT: {"ENGUNIT", "Engineering Units", 2, TypeInteger},
}

var typeAliases = map[int]int{
	AliasBOOL:  CodeBOOL,
	AliasUSINT: CodeUSINT,
	AliasUINT:  CodeUINT,
	AliasUDINT: CodeUDINT,
	AliasULINT: CodeULINT,
}

// CanonicalTypeCode maps an abbreviated alias to its canonical code.
// Any other value is returned unchanged.
func CanonicalTypeCode(code int) int {
	if canonical, ok := typeAliases[code]; ok {
		return canonical
	}
	return code
}

// IsBooleanCode reports whether code is BOOL in its native or
// abbreviated form.
func IsBooleanCode(code int) bool {
	return code == CodeBOOL || code == AliasBOOL
}

// DecodeType returns the descriptor for a type code.
//
// A nil code, or one missing from the table, yields a descriptor named
// "Type<code>" / "Unknown Type (<code>)" with category Unknown and no size.
// A nil code renders as empty text: "Type" / "Unknown Type ()". Aliases
// resolve to the descriptor of their canonical code.
func DecodeType(code *int) TypeDescriptor {
	if code == nil {
		return unknownType(nil, "")
	}

	canonical := CanonicalTypeCode(*code)
	entry, ok := typeTable[canonical]
	if !ok {
		return unknownType(intPtr(*code), strconv.Itoa(*code))
	}

	desc := TypeDescriptor{
		Code:          intPtr(canonical),
		CanonicalName: entry.name,
		DisplayName:   entry.display,
		Category:      entry.category,
	}
	if entry.size > 0 {
		desc.SizeBytes = intPtr(entry.size)
	}
	return desc
}

func unknownType(code *int, text string) TypeDescriptor {
	return TypeDescriptor{
		Code:          code,
		CanonicalName: "Type" + text,
		DisplayName:   "Unknown Type (" + text + ")",
		Category:      TypeUnknown,
	}
}

// TypeCodes returns every canonical code in the table, unordered.
func TypeCodes() []int {
	codes := make([]int, 0, len(typeTable))
	for code := range typeTable {
		codes = append(codes, code)
	}
	return codes
}

func intPtr(v int) *int {
	return &v
}
