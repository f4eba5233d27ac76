package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/devparam/internal/categorize"
	"github.com/nerrad567/devparam/internal/infrastructure/database"
	"github.com/nerrad567/devparam/internal/report"
)

// RunSummary is the stored header of a run, without its parameters.
type RunSummary struct {
	ID                 uuid.UUID `json:"id"`
	Source             string    `json:"source"`
	CreatedAt          time.Time `json:"created_at"`
	Total              int       `json:"total"`
	Categorized        int       `json:"categorized"`
	Uncategorized      int       `json:"uncategorized"`
	CategorizationRate float64   `json:"categorization_rate"`
}

// SQLiteStore persists runs in the export database. The schema comes from
// the migrations package and must be applied before use.
type SQLiteStore struct {
	db *database.DB
}

// NewSQLiteStore creates a store over an open, migrated database.
func NewSQLiteStore(db *database.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Name identifies the sink in logs.
func (s *SQLiteStore) Name() string {
	return "sqlite"
}

// Export saves run. It implements Sink.
func (s *SQLiteStore) Export(ctx context.Context, run report.Run) error {
	return s.SaveRun(ctx, run)
}

// SaveRun writes the run header and one row per enriched parameter in a
// single transaction.
func (s *SQLiteStore) SaveRun(ctx context.Context, run report.Run) error {
	statsJSON, err := json.Marshal(run.Statistics)
	if err != nil {
		return fmt.Errorf("marshalling run statistics: %w", err)
	}

	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO runs (
				id, source, created_at, total, categorized, uncategorized,
				categorization_rate, statistics
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID.String(),
			run.Source,
			run.CreatedAt.UTC().Format(time.RFC3339Nano),
			run.Statistics.Total,
			run.Statistics.Categorized,
			run.Statistics.Uncategorized,
			run.Statistics.CategorizationRate,
			string(statsJSON),
		)
		if err != nil {
			return fmt.Errorf("inserting run: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO parameters (
				run_id, position, name, source, format, type_code, type_name,
				type_category, category, is_boolean, is_enum, unit_symbol,
				unit_resolved, document
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("preparing parameter insert: %w", err)
		}
		defer stmt.Close()

		for i, p := range run.Parameters {
			doc, err := json.Marshal(p)
			if err != nil {
				return fmt.Errorf("marshalling parameter %q: %w", p.Record.Name, err)
			}

			var typeCode sql.NullInt64
			if p.Record.TypeCode != nil {
				typeCode = sql.NullInt64{Int64: int64(*p.Record.TypeCode), Valid: true}
			}

			_, err = stmt.ExecContext(ctx,
				run.ID.String(),
				i,
				p.Record.Name,
				parameterSource(run, p),
				string(p.Record.Format),
				typeCode,
				p.Type.CanonicalName,
				string(p.Type.Category),
				string(p.Category),
				boolToInt(p.IsBoolean),
				boolToInt(p.Enum != nil),
				p.Unit.Symbol,
				boolToInt(p.UnitResolved),
				string(doc),
			)
			if err != nil {
				return fmt.Errorf("inserting parameter %q: %w", p.Record.Name, err)
			}
		}
		return nil
	})
}

// GetRun loads a run with its statistics and parameters.
// Returns ErrRunNotFound if the run does not exist.
func (s *SQLiteStore) GetRun(ctx context.Context, id uuid.UUID) (*report.Run, error) {
	var (
		source    string
		createdAt string
		statsJSON string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT source, created_at, statistics FROM runs WHERE id = ?`,
		id.String(),
	).Scan(&source, &createdAt, &statsJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("querying run: %w", err)
	}

	run := &report.Run{ID: id, Source: source}
	if run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parsing run created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(statsJSON), &run.Statistics); err != nil {
		return nil, fmt.Errorf("unmarshalling run statistics: %w", err)
	}

	if run.Parameters, err = s.ListParameters(ctx, id); err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns the stored run headers, newest first.
func (s *SQLiteStore) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, created_at, total, categorized, uncategorized, categorization_rate
		FROM runs
		ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var (
			r         RunSummary
			id        string
			createdAt string
		)
		if err := rows.Scan(&id, &r.Source, &createdAt, &r.Total, &r.Categorized, &r.Uncategorized, &r.CategorizationRate); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing run id %q: %w", id, err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parsing run created_at: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// ListParameters returns the enriched parameters of a run in their
// original order. An unknown run yields an empty list.
func (s *SQLiteStore) ListParameters(ctx context.Context, id uuid.UUID) ([]report.EnrichedParameter, error) {
	return s.queryParameters(ctx, `
		SELECT document FROM parameters
		WHERE run_id = ?
		ORDER BY position`, id.String())
}

// ListParametersByCategory returns the parameters of a run classified
// into cat, in their original order.
func (s *SQLiteStore) ListParametersByCategory(ctx context.Context, id uuid.UUID, cat categorize.Category) ([]report.EnrichedParameter, error) {
	return s.queryParameters(ctx, `
		SELECT document FROM parameters
		WHERE run_id = ? AND category = ?
		ORDER BY position`, id.String(), string(cat))
}

// DeleteRun removes a run and, through the foreign key, its parameters.
// Returns ErrRunNotFound if the run does not exist.
func (s *SQLiteStore) DeleteRun(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return ErrRunNotFound
	}
	return nil
}

func (s *SQLiteStore) queryParameters(ctx context.Context, query string, args ...any) ([]report.EnrichedParameter, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying parameters: %w", err)
	}
	defer rows.Close()

	params := make([]report.EnrichedParameter, 0)
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scanning parameter: %w", err)
		}
		var p report.EnrichedParameter
		if err := json.Unmarshal([]byte(doc), &p); err != nil {
			return nil, fmt.Errorf("unmarshalling parameter: %w", err)
		}
		params = append(params, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating parameters: %w", err)
	}
	return params, nil
}

// parameterSource is the record's own source, or the run's when unset.
func parameterSource(run report.Run, p report.EnrichedParameter) string {
	if p.Record.Source != "" {
		return p.Record.Source
	}
	return run.Source
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
