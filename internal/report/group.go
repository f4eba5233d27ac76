package report

import (
	"github.com/nerrad567/devparam/internal/categorize"
	"github.com/nerrad567/devparam/internal/parameter"
)

// Group is the set of records classified into one category.
type Group struct {
	Category categorize.Category `json:"category"`
	Info     categorize.Info     `json:"info"`
	Records  []parameter.Record  `json:"records"`
	Count    int                 `json:"count"`
}

// Group partitions recs by category, ordered by category priority. Record
// order within a group follows the input. Empty categories are included
// only when includeEmpty is set.
func (r *Reporter) Group(recs []parameter.Record, includeEmpty bool) []Group {
	buckets := make(map[categorize.Category][]parameter.Record)
	for _, rec := range recs {
		cat := r.classifier.Classify(rec)
		buckets[cat] = append(buckets[cat], rec)
	}
	return orderedGroups(buckets, includeEmpty)
}

// GroupEnriched partitions already enriched parameters by their category.
func GroupEnriched(params []EnrichedParameter, includeEmpty bool) []Group {
	buckets := make(map[categorize.Category][]parameter.Record)
	for _, p := range params {
		buckets[p.Category] = append(buckets[p.Category], p.Record)
	}
	return orderedGroups(buckets, includeEmpty)
}

func orderedGroups(buckets map[categorize.Category][]parameter.Record, includeEmpty bool) []Group {
	groups := make([]Group, 0, len(categorize.All()))
	for _, cat := range categorize.All() {
		recs := buckets[cat]
		if len(recs) == 0 && !includeEmpty {
			continue
		}
		if recs == nil {
			recs = []parameter.Record{}
		}
		groups = append(groups, Group{
			Category: cat,
			Info:     cat.Info(),
			Records:  recs,
			Count:    len(recs),
		})
	}
	return groups
}
