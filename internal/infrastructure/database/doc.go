// Package database provides SQLite connectivity for the devparam export store.
//
// This package manages:
//   - Connections with WAL mode and a busy timeout
//   - In-memory databases for tests and dry runs (MemoryPath)
//   - Schema migrations read from an fs.FS (see the migrations package)
//   - Transaction helpers
//
// All queries use parameterised statements. Database files are created
// with 0600 permissions.
//
// Usage:
//
//	db, err := database.Open(database.FromAppConfig(cfg.Database))
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx, migrations.FS); err != nil {
//	    return err
//	}
//
// Migrations are additive: new columns must be nullable or carry a
// default, and every .up.sql has a matching .down.sql.
package database
