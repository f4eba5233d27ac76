package export

import (
	"context"
	"fmt"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/nerrad567/devparam/internal/report"
)

// Measurement names written by StatsWriter.
const (
	MeasurementStatistics = "parameter_statistics"
	MeasurementCategory   = "parameter_category"
)

// PointWriter queues points and flushes them.
// *influxdb.Client satisfies it.
type PointWriter interface {
	WritePoints(points ...*write.Point) error
	Flush()
}

// StatsWriter records run statistics as time-series points.
type StatsWriter struct {
	writer PointWriter
}

// NewStatsWriter returns a StatsWriter over w.
func NewStatsWriter(w PointWriter) *StatsWriter {
	return &StatsWriter{writer: w}
}

// Name identifies the sink in logs.
func (w *StatsWriter) Name() string {
	return "influxdb"
}

// Export writes run. It implements Sink.
func (w *StatsWriter) Export(ctx context.Context, run report.Run) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("writing run statistics: %w", err)
	}
	return w.WriteRun(run)
}

// WriteRun writes the points of run and flushes them. Write failures after
// the flush arrive through the client's error callback.
func (w *StatsWriter) WriteRun(run report.Run) error {
	if err := w.writer.WritePoints(RunPoints(run)...); err != nil {
		return fmt.Errorf("writing run statistics: %w", err)
	}
	w.writer.Flush()
	return nil
}

// RunPoints builds one parameter_statistics point and one
// parameter_category point per category, all stamped with the run's
// creation time.
//
// Tags: source, run_id (and category on category points).
func RunPoints(run report.Run) []*write.Point {
	stats := run.Statistics
	tags := map[string]string{
		"source": run.Source,
		"run_id": run.ID.String(),
	}

	points := make([]*write.Point, 0, len(stats.Categories)+1)
	points = append(points, write.NewPoint(
		MeasurementStatistics,
		tags,
		map[string]interface{}{
			"total":         stats.Total,
			"categorized":   stats.Categorized,
			"uncategorized": stats.Uncategorized,
			"rate":          stats.CategorizationRate,
			"enums":         stats.Enums,
			"booleans":      stats.Booleans,
			"ranged":        stats.Ranged,
		},
		run.CreatedAt,
	))

	for _, c := range stats.Categories {
		points = append(points, write.NewPoint(
			MeasurementCategory,
			map[string]string{
				"source":   run.Source,
				"run_id":   run.ID.String(),
				"category": string(c.Category),
			},
			map[string]interface{}{
				"count":      c.Count,
				"percentage": c.Percentage,
			},
			run.CreatedAt,
		))
	}

	return points
}
