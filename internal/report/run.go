package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/devparam/internal/parameter"
)

// Run is one batch of enriched parameters, the unit handed to exporters.
type Run struct {
	ID         uuid.UUID           `json:"id"`
	Source     string              `json:"source"`
	CreatedAt  time.Time           `json:"created_at"`
	Parameters []EnrichedParameter `json:"parameters"`
	Statistics Statistics          `json:"statistics"`
}

// NewRun enriches recs and summarises them under a fresh run ID.
func (r *Reporter) NewRun(source string, recs []parameter.Record) Run {
	params := r.EnrichAll(recs)
	return Run{
		ID:         uuid.New(),
		Source:     source,
		CreatedAt:  time.Now().UTC(),
		Parameters: params,
		Statistics: Summarize(params),
	}
}
