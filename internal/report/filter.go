package report

import (
	"slices"
	"strings"

	"github.com/nerrad567/devparam/internal/categorize"
	"github.com/nerrad567/devparam/internal/parameter"
)

// Criteria restricts a record collection. Zero-valued fields do not
// filter; set fields combine with AND.
type Criteria struct {
	// SearchTerm matches case-insensitively against the name, description
	// and help strings.
	SearchTerm string

	// Categories keeps records classified into one of these categories.
	Categories []categorize.Category

	// TypeCodes keeps records whose type code is one of these, compared
	// exactly. Records without a type code are dropped.
	TypeCodes []int
}

// IsZero reports whether c filters nothing.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.SearchTerm) == "" && len(c.Categories) == 0 && len(c.TypeCodes) == 0
}

// Filter returns the records of recs that satisfy c, in input order.
func (r *Reporter) Filter(recs []parameter.Record, c Criteria) []parameter.Record {
	term := strings.ToLower(strings.TrimSpace(c.SearchTerm))
	out := make([]parameter.Record, 0, len(recs))
	for _, rec := range recs {
		if term != "" && !strings.Contains(strings.ToLower(rec.SearchText()), term) {
			continue
		}
		if len(c.TypeCodes) > 0 && (rec.TypeCode == nil || !slices.Contains(c.TypeCodes, *rec.TypeCode)) {
			continue
		}
		if len(c.Categories) > 0 && !slices.Contains(c.Categories, r.classifier.Classify(rec)) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
