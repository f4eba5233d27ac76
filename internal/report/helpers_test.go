package report

import (
	"github.com/nerrad567/devparam/internal/catalog"
	"github.com/nerrad567/devparam/internal/parameter"
)

func intp(v int) *int { return &v }

// fixtureRecords covers one timing, one I/O configuration, one diagnostic
// and one uncategorised parameter.
func fixtureRecords() []parameter.Record {
	return []parameter.Record{
		{
			Name:         "Watchdog Timer (ms)",
			Format:       parameter.FormatEDS,
			TypeCode:     intp(catalog.CodeUINT),
			HelpString2:  "RPI watchdog timeout period",
			MinValue:     "10",
			MaxValue:     "1000",
			DefaultValue: "100",
		},
		{
			Name:         "Port Layout",
			Format:       parameter.FormatEDS,
			TypeCode:     intp(catalog.CodeUSINT),
			DefaultValue: "0 = Port based (default), 1 = Pin based",
		},
		{
			Name:     "Vendor Code",
			Format:   parameter.FormatIODD,
			TypeCode: intp(catalog.CodeUDINT),
		},
		{
			Name:     "Device Status",
			Format:   parameter.FormatIODD,
			TypeCode: intp(catalog.CodeBOOL),
			UnitCode: intp(0),
		},
	}
}
