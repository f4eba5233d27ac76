package export

import (
	"context"
	"testing"

	"github.com/nerrad567/devparam/internal/catalog"
	"github.com/nerrad567/devparam/internal/infrastructure/database"
	"github.com/nerrad567/devparam/internal/parameter"
	"github.com/nerrad567/devparam/internal/report"
	"github.com/nerrad567/devparam/migrations"
)

func intp(v int) *int { return &v }

// testRun returns a run over one timing, one I/O configuration, one
// diagnostic and one uncategorised parameter.
func testRun(t *testing.T) report.Run {
	t.Helper()
	recs := []parameter.Record{
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
	return report.New(nil).NewRun("sensor.eds", recs)
}

// openTestStore opens a migrated in-memory export store.
func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	db, err := database.Open(database.Config{Path: database.MemoryPath, BusyTimeout: 5})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close() //nolint:errcheck // Test cleanup
	})

	if err := db.Migrate(context.Background(), migrations.FS); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return NewSQLiteStore(db)
}

// recordingLogger captures log calls.
type recordingLogger struct {
	infos []string
	warns []string
}

func (l *recordingLogger) Info(msg string, _ ...any) { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Warn(msg string, _ ...any) { l.warns = append(l.warns, msg) }
