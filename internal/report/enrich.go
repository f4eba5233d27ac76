package report

import (
	"github.com/nerrad567/devparam/internal/catalog"
	"github.com/nerrad567/devparam/internal/categorize"
	"github.com/nerrad567/devparam/internal/parameter"
)

// EnrichedParameter is a record together with every descriptor derived
// from it.
type EnrichedParameter struct {
	Record       parameter.Record          `json:"record"`
	Type         catalog.TypeDescriptor    `json:"type"`
	Enum         *parameter.EnumDescriptor `json:"enum"`
	Range        parameter.RangeDescriptor `json:"range"`
	Unit         catalog.Unit              `json:"unit"`
	UnitResolved bool                      `json:"unit_resolved"`
	IsBoolean    bool                      `json:"is_boolean"`
	Category     categorize.Category       `json:"category"`
}

// Classifier assigns a category to a record.
// *categorize.Categorizer satisfies it.
type Classifier interface {
	Classify(rec parameter.Record) categorize.Category
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(rec parameter.Record) categorize.Category

// Classify calls f(rec).
func (f ClassifierFunc) Classify(rec parameter.Record) categorize.Category {
	return f(rec)
}

// Reporter enriches and aggregates records using one classifier.
type Reporter struct {
	classifier Classifier
}

// New returns a Reporter. A nil classifier uses categorize.Classify.
func New(classifier Classifier) *Reporter {
	if classifier == nil {
		classifier = ClassifierFunc(categorize.Classify)
	}
	return &Reporter{classifier: classifier}
}

var defaultReporter = New(nil)

// Enrich derives all descriptors for rec with the default classifier.
func Enrich(rec parameter.Record) EnrichedParameter {
	return defaultReporter.Enrich(rec)
}

// EnrichAll enriches recs with the default classifier, preserving order.
func EnrichAll(recs []parameter.Record) []EnrichedParameter {
	return defaultReporter.EnrichAll(recs)
}

// Enrich derives all descriptors for rec.
func (r *Reporter) Enrich(rec parameter.Record) EnrichedParameter {
	unit, resolved := parameter.ResolveUnit(rec.UnitCode, rec)
	return EnrichedParameter{
		Record:       rec,
		Type:         catalog.DecodeType(rec.TypeCode),
		Enum:         parameter.RecoverEnum(rec),
		Range:        parameter.ValidateRange(rec),
		Unit:         unit,
		UnitResolved: resolved,
		IsBoolean:    parameter.IsBoolean(rec),
		Category:     r.classifier.Classify(rec),
	}
}

// EnrichAll enriches recs, preserving order.
func (r *Reporter) EnrichAll(recs []parameter.Record) []EnrichedParameter {
	out := make([]EnrichedParameter, len(recs))
	for i, rec := range recs {
		out[i] = r.Enrich(rec)
	}
	return out
}
