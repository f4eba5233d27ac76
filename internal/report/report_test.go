package report

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/nerrad567/devparam/internal/catalog"
	"github.com/nerrad567/devparam/internal/categorize"
	"github.com/nerrad567/devparam/internal/parameter"
)

func names(recs []parameter.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Name
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGroup(t *testing.T) {
	r := New(nil)
	recs := fixtureRecords()

	t.Run("non-empty only", func(t *testing.T) {
		groups := r.Group(recs, false)
		want := []categorize.Category{categorize.NetworkTiming, categorize.IoConfiguration, categorize.Diagnostic, categorize.Other}
		if len(groups) != len(want) {
			t.Fatalf("Group() returned %d groups, want %d", len(groups), len(want))
		}
		for i, g := range groups {
			if g.Category != want[i] {
				t.Errorf("groups[%d] = %q, want %q", i, g.Category, want[i])
			}
			if g.Count != len(g.Records) || g.Count != 1 {
				t.Errorf("groups[%d] count = %d, records = %d", i, g.Count, len(g.Records))
			}
			if g.Info != g.Category.Info() {
				t.Errorf("groups[%d] info mismatch", i)
			}
		}
	})

	t.Run("include empty", func(t *testing.T) {
		groups := r.Group(recs, true)
		all := categorize.All()
		if len(groups) != len(all) {
			t.Fatalf("Group() returned %d groups, want %d", len(groups), len(all))
		}
		for i, g := range groups {
			if g.Category != all[i] {
				t.Errorf("groups[%d] = %q, want %q", i, g.Category, all[i])
			}
			if g.Records == nil {
				t.Errorf("groups[%d] records nil, want empty slice", i)
			}
		}
	})

	t.Run("enriched input agrees", func(t *testing.T) {
		a := r.Group(recs, true)
		b := GroupEnriched(r.EnrichAll(recs), true)
		for i := range a {
			if a[i].Category != b[i].Category || a[i].Count != b[i].Count {
				t.Errorf("group %d: %q/%d vs %q/%d", i, a[i].Category, a[i].Count, b[i].Category, b[i].Count)
			}
		}
	})
}

func TestStatistics(t *testing.T) {
	stats := New(nil).Statistics(fixtureRecords())

	if stats.Total != 4 || stats.Categorized != 3 || stats.Uncategorized != 1 {
		t.Errorf("Total/Categorized/Uncategorized = %d/%d/%d, want 4/3/1",
			stats.Total, stats.Categorized, stats.Uncategorized)
	}
	if stats.CategorizationRate != 75 {
		t.Errorf("CategorizationRate = %v, want 75", stats.CategorizationRate)
	}
	if len(stats.Categories) != len(categorize.All()) {
		t.Fatalf("Categories has %d entries, want %d", len(stats.Categories), len(categorize.All()))
	}
	if got := stats.Count(categorize.NetworkTiming); got != 1 {
		t.Errorf("Count(NetworkTiming) = %d, want 1", got)
	}
	if got := stats.Count(categorize.VariableData); got != 0 {
		t.Errorf("Count(VariableData) = %d, want 0", got)
	}
	if stats.Categories[0].Percentage != 25 {
		t.Errorf("NetworkTiming percentage = %v, want 25", stats.Categories[0].Percentage)
	}
	if stats.TypeCategories[catalog.TypeInteger] != 3 || stats.TypeCategories[catalog.TypeBoolean] != 1 {
		t.Errorf("TypeCategories = %v", stats.TypeCategories)
	}
	if stats.Enums != 1 || stats.Booleans != 2 || stats.Ranged != 1 {
		t.Errorf("Enums/Booleans/Ranged = %d/%d/%d, want 1/2/1", stats.Enums, stats.Booleans, stats.Ranged)
	}

	var sum float64
	for _, c := range stats.Categories {
		sum += c.Percentage
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
}

func TestStatistics_Empty(t *testing.T) {
	stats := Summarize(nil)
	if stats.Total != 0 || stats.CategorizationRate != 0 {
		t.Errorf("empty statistics = %+v", stats)
	}
	for _, c := range stats.Categories {
		if c.Count != 0 || c.Percentage != 0 {
			t.Errorf("%q: count %d percentage %v, want 0", c.Category, c.Count, c.Percentage)
		}
	}
}

// TestStatistics_Closure checks categorized + uncategorized == total over
// growing prefixes of the fixtures.
func TestStatistics_Closure(t *testing.T) {
	r := New(nil)
	recs := append(fixtureRecords(),
		parameter.Record{Name: "Dynamic Table"},
		parameter.Record{},
		parameter.Record{Name: "Enable Feature"},
	)
	for n := 0; n <= len(recs); n++ {
		s := r.Statistics(recs[:n])
		if s.Categorized+s.Uncategorized != n {
			t.Errorf("n=%d: %d + %d != %d", n, s.Categorized, s.Uncategorized, n)
		}
	}
}

func TestFilter(t *testing.T) {
	r := New(nil)
	recs := fixtureRecords()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"zero criteria keeps all", Criteria{}, names(recs)},
		{"search name", Criteria{SearchTerm: "WATCHDOG"}, []string{"Watchdog Timer (ms)"}},
		{"search help text", Criteria{SearchTerm: "timeout"}, []string{"Watchdog Timer (ms)"}},
		{"search is trimmed", Criteria{SearchTerm: "  port "}, []string{"Port Layout"}},
		{"search ignores default value", Criteria{SearchTerm: "pin based"}, []string{}},
		{"categories", Criteria{Categories: []categorize.Category{categorize.Other, categorize.Diagnostic}}, []string{"Vendor Code", "Device Status"}},
		{"type codes exact", Criteria{TypeCodes: []int{catalog.CodeUSINT, catalog.CodeBOOL}}, []string{"Port Layout", "Device Status"}},
		{"alias is not the canonical code", Criteria{TypeCodes: []int{catalog.AliasUSINT}}, []string{}},
		{"combined with AND", Criteria{SearchTerm: "e", TypeCodes: []int{catalog.CodeUDINT, catalog.CodeUINT}, Categories: []categorize.Category{categorize.Other}}, []string{"Vendor Code"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(r.Filter(recs, tt.criteria))
			if !equalStrings(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_DropsRecordsWithoutTypeCode(t *testing.T) {
	recs := []parameter.Record{{Name: "a"}, {Name: "b", TypeCode: intp(catalog.CodeINT)}}
	got := New(nil).Filter(recs, Criteria{TypeCodes: []int{catalog.CodeINT}})
	if len(got) != 1 || got[0].Name != "b" {
		t.Errorf("Filter() = %v, want [b]", names(got))
	}
}

func TestCriteria_IsZero(t *testing.T) {
	if !(Criteria{SearchTerm: "  "}).IsZero() {
		t.Error("blank search term should be zero")
	}
	if (Criteria{TypeCodes: []int{1}}).IsZero() {
		t.Error("type codes should not be zero")
	}
}

func TestNewRun(t *testing.T) {
	recs := fixtureRecords()
	run := New(nil).NewRun("sensor.eds", recs)

	if run.ID == uuid.Nil {
		t.Error("run ID is nil")
	}
	if run.Source != "sensor.eds" {
		t.Errorf("Source = %q", run.Source)
	}
	if run.CreatedAt.IsZero() || run.CreatedAt.Location().String() != "UTC" {
		t.Errorf("CreatedAt = %v, want UTC timestamp", run.CreatedAt)
	}
	if len(run.Parameters) != len(recs) || run.Statistics.Total != len(recs) {
		t.Errorf("run has %d parameters, statistics total %d", len(run.Parameters), run.Statistics.Total)
	}

	other := New(nil).NewRun("sensor.eds", recs)
	if other.ID == run.ID {
		t.Error("two runs share an ID")
	}
}
