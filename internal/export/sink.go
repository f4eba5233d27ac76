package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/nerrad567/devparam/internal/report"
)

// Sink receives finished runs.
type Sink interface {
	Name() string
	Export(ctx context.Context, run report.Run) error
}

// Logger is the subset of logging.Logger used by Fanout.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Fanout exports a run to every sink in order.
type Fanout struct {
	sinks  []Sink
	logger Logger
}

// NewFanout returns a Fanout over sinks. Nil sinks are dropped and a nil
// logger is allowed.
func NewFanout(logger Logger, sinks ...Sink) *Fanout {
	f := &Fanout{logger: logger}
	for _, s := range sinks {
		if s != nil {
			f.sinks = append(f.sinks, s)
		}
	}
	return f
}

// Len returns the number of sinks.
func (f *Fanout) Len() int {
	return len(f.sinks)
}

// Export hands run to each sink. A failing sink is logged and the others
// still run; the returned error wraps ErrExportFailed and every sink error.
// A cancelled context stops before the next sink.
func (f *Fanout) Export(ctx context.Context, run report.Run) error {
	var errs []error
	for _, s := range f.sinks {
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			break
		}

		if err := s.Export(ctx, run); err != nil {
			if f.logger != nil {
				f.logger.Warn("export sink failed",
					"sink", s.Name(),
					"run_id", run.ID.String(),
					"error", err,
				)
			}
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}

		if f.logger != nil {
			f.logger.Info("run exported",
				"sink", s.Name(),
				"run_id", run.ID.String(),
				"parameters", len(run.Parameters),
			)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrExportFailed, errors.Join(errs...))
	}
	return nil
}

var (
	_ Sink = (*SQLiteStore)(nil)
	_ Sink = (*Publisher)(nil)
	_ Sink = (*StatsWriter)(nil)
)
