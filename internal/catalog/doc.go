// Package catalog holds the read-only code tables used to interpret
// device-description parameters.
//
// Two tables live here:
//
//   - Type codes: CIP elementary data type codes (0xC1 BOOL through 0xDE
//     STRINGI, plus the 0xA0/0xA2 structure codes) and the abbreviated
//     decimal aliases some EDS generators write for BOOL and the unsigned
//     integer family. DecodeType never fails: unknown codes produce an
//     Unknown descriptor carrying the original code.
//   - Unit codes: IO-Link / IEC 61987 engineering unit codes as used by IODD
//     files. ResolveUnitCode maps 0 and nil to the "no unit" descriptor and
//     unknown codes to an explicit unknown-unit descriptor.
//
// # Thread Safety
//
// Both tables are built at package initialisation and never modified.
// Every lookup returns a copy, so callers may freely mutate results and
// call into this package from any number of goroutines.
//
// # Usage
//
//	code := 0xC7
//	desc := catalog.DecodeType(&code)
//	fmt.Println(desc.CanonicalName, *desc.SizeBytes) // UINT 2
//
//	unit := catalog.ResolveUnitCode(&unitCode)
//	fmt.Println(unit.Symbol)
package catalog
