package report

import (
	"github.com/nerrad567/devparam/internal/catalog"
	"github.com/nerrad567/devparam/internal/categorize"
	"github.com/nerrad567/devparam/internal/parameter"
)

// Statistics summarises a parameter collection.
type Statistics struct {
	Total              int     `json:"total"`
	Categorized        int     `json:"categorized"`
	Uncategorized      int     `json:"uncategorized"`
	CategorizationRate float64 `json:"categorization_rate"`

	// Categories lists every category in priority order, including empty
	// ones.
	Categories []CategoryCount `json:"categories"`

	TypeCategories map[catalog.TypeCategory]int `json:"type_categories"`
	Enums          int                          `json:"enums"`
	Booleans       int                          `json:"booleans"`
	Ranged         int                          `json:"ranged"`
}

// CategoryCount is the share of one category.
type CategoryCount struct {
	Category    categorize.Category `json:"category"`
	DisplayName string              `json:"display_name"`
	Count       int                 `json:"count"`
	Percentage  float64             `json:"percentage"`
}

// Count returns the number of records in cat.
func (s Statistics) Count(cat categorize.Category) int {
	for _, c := range s.Categories {
		if c.Category == cat {
			return c.Count
		}
	}
	return 0
}

// Statistics enriches recs and summarises them.
func (r *Reporter) Statistics(recs []parameter.Record) Statistics {
	return Summarize(r.EnrichAll(recs))
}

// Summarize computes statistics over enriched parameters. Rates and
// percentages are 0 for an empty collection.
func Summarize(params []EnrichedParameter) Statistics {
	stats := Statistics{
		Total:          len(params),
		TypeCategories: make(map[catalog.TypeCategory]int),
	}

	perCategory := make(map[categorize.Category]int)
	for _, p := range params {
		perCategory[p.Category]++
		stats.TypeCategories[p.Type.Category]++
		if p.Enum != nil {
			stats.Enums++
		}
		if p.IsBoolean {
			stats.Booleans++
		}
		if p.Range.HasRange {
			stats.Ranged++
		}
	}

	stats.Uncategorized = perCategory[categorize.Other]
	stats.Categorized = stats.Total - stats.Uncategorized
	stats.CategorizationRate = percent(stats.Categorized, stats.Total)

	stats.Categories = make([]CategoryCount, 0, len(categorize.All()))
	for _, cat := range categorize.All() {
		stats.Categories = append(stats.Categories, CategoryCount{
			Category:    cat,
			DisplayName: cat.Info().DisplayName,
			Count:       perCategory[cat],
			Percentage:  percent(perCategory[cat], stats.Total),
		})
	}

	return stats
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
