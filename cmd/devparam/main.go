// devparam recovers typed parameter metadata from device-description
// records.
//
// It reads record documents produced by the IODD and EDS parsers, enriches
// every record (type, enumeration, range, unit, boolean flag, category),
// prints a grouped report, and exports each run to the sinks enabled in the
// configuration: a SQLite snapshot store, an MQTT broker, and InfluxDB.
//
// Usage:
//
//	devparam [-config file] [-category list] [-search text] [-type list] [-json] records...
//	devparam [-config file] -rollback
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/nerrad567/devparam/internal/categorize"
	"github.com/nerrad567/devparam/internal/export"
	"github.com/nerrad567/devparam/internal/infrastructure/config"
	"github.com/nerrad567/devparam/internal/infrastructure/database"
	"github.com/nerrad567/devparam/internal/infrastructure/influxdb"
	"github.com/nerrad567/devparam/internal/infrastructure/logging"
	"github.com/nerrad567/devparam/internal/infrastructure/mqtt"
	"github.com/nerrad567/devparam/internal/ingest"
	"github.com/nerrad567/devparam/internal/report"
	"github.com/nerrad567/devparam/migrations"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// errUsage is returned when the command line cannot be used.
var errUsage = errors.New("usage: devparam [flags] records...")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	configPath string
	criteria   report.Criteria
	jsonOutput bool
	rollback   bool
	files      []string
}

// parseFlags parses args. Flag errors and usage go to stderr.
func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("devparam", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	var categories, types string
	fs.StringVar(&opts.configPath, "config", getConfigPath(), "configuration file (env DEVPARAM_CONFIG); empty uses defaults")
	fs.StringVar(&categories, "category", "", "comma-separated categories to keep (id or display name)")
	fs.StringVar(&opts.criteria.SearchTerm, "search", "", "keep records whose name, description or help text contains this")
	fs.StringVar(&types, "type", "", "comma-separated type codes to keep (decimal or 0x hex)")
	fs.BoolVar(&opts.jsonOutput, "json", false, "print runs as JSON instead of a text report")
	fs.BoolVar(&opts.rollback, "rollback", false, "roll back the newest export schema migration and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	for _, s := range splitList(categories) {
		cat, err := categorize.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: -category: %w", errUsage, err)
		}
		opts.criteria.Categories = append(opts.criteria.Categories, cat)
	}

	for _, s := range splitList(types) {
		code, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: -type %q is not a type code", errUsage, s)
		}
		opts.criteria.TypeCodes = append(opts.criteria.TypeCodes, int(code))
	}

	opts.files = fs.Args()
	if len(opts.files) == 0 && !opts.rollback {
		return nil, fmt.Errorf("%w: no record files given", errUsage)
	}
	return opts, nil
}

// run is the actual application logic, separated from main for testability.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logging.New(cfg.Logging, version)
	log.Info("starting devparam",
		"version", version,
		"commit", commit,
		"build_date", date,
		"config", opts.configPath,
	)

	if opts.rollback {
		return rollbackSchema(ctx, cfg, log)
	}

	loader, err := ingest.NewLoader(ingest.Options{
		ValidateSchema: cfg.Ingest.ValidateSchema,
		MaxFileSize:    cfg.Ingest.MaxFileSize,
	})
	if err != nil {
		return fmt.Errorf("creating loader: %w", err)
	}

	reporter := report.New(categorize.NewCategorizer(log))

	sinks, closeSinks, err := openSinks(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSinks()
	fanout := export.NewFanout(log, sinks...)

	var exportErrs []error
	for _, path := range opts.files {
		if err := ctx.Err(); err != nil {
			return err
		}

		doc, err := loader.LoadFile(path)
		if err != nil {
			return err
		}

		recs := doc.Parameters
		if !opts.criteria.IsZero() {
			recs = reporter.Filter(recs, opts.criteria)
		}
		batch := reporter.NewRun(doc.Source, recs)
		log.Info("run enriched",
			"run_id", batch.ID.String(),
			"source", batch.Source,
			"loaded", len(doc.Parameters),
			"kept", len(recs),
		)

		if opts.jsonOutput {
			err = writeJSON(stdout, batch)
		} else {
			err = writeReport(stdout, batch, cfg.Report.IncludeEmptyCategories)
		}
		if err != nil {
			return fmt.Errorf("writing report: %w", err)
		}

		if fanout.Len() > 0 {
			if err := fanout.Export(ctx, batch); err != nil {
				exportErrs = append(exportErrs, err)
			}
		}
	}

	return errors.Join(exportErrs...)
}

// openSinks connects every export sink enabled in cfg. The returned
// function closes them in reverse order.
func openSinks(ctx context.Context, cfg *config.Config, log *logging.Logger) ([]export.Sink, func(), error) {
	var (
		sinks   []export.Sink
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.Database.Enabled {
		db, err := database.Open(database.FromAppConfig(cfg.Database))
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		closers = append(closers, func() {
			if closeErr := db.Close(); closeErr != nil {
				log.Error("error closing database", "error", closeErr)
			}
		})
		if err := db.Migrate(ctx, migrations.FS); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("running migrations: %w", err)
		}
		applied, _, err := db.MigrationStatus(ctx, migrations.FS)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("reading migration status: %w", err)
		}
		if err := db.HealthCheck(ctx); err != nil {
			closeAll()
			return nil, nil, err
		}
		log.Info("export store ready", "path", db.Path(), "schema_version", latestVersion(applied))
		sinks = append(sinks, export.NewSQLiteStore(db))
	}

	if cfg.MQTT.Enabled {
		client, err := mqtt.Connect(cfg.MQTT)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("connecting to MQTT: %w", err)
		}
		client.SetLogger(log)
		logMQTTEvents(client, log)
		closers = append(closers, func() {
			if closeErr := client.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		})
		if err := client.HealthCheck(ctx); err != nil {
			closeAll()
			return nil, nil, err
		}
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
			"prefix", client.Topics().Prefix(),
		)
		sinks = append(sinks, export.NewPublisher(client, client.Topics()))
	}

	if cfg.InfluxDB.Enabled {
		client, err := influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		client.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		closers = append(closers, func() {
			if closeErr := client.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		})
		if err := client.HealthCheck(ctx); err != nil {
			closeAll()
			return nil, nil, err
		}
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)
		sinks = append(sinks, export.NewStatsWriter(client))
	}

	return sinks, closeAll, nil
}

// mqttEvents is the connection callback surface of mqtt.Client.
type mqttEvents interface {
	SetOnConnect(callback func())
	SetOnDisconnect(callback func(err error))
}

// logMQTTEvents logs broker connects and lost connections. The client
// reconnects on its own; every connect after the first is a reconnect.
func logMQTTEvents(c mqttEvents, log *logging.Logger) {
	c.SetOnConnect(func() {
		log.Info("MQTT connection established")
	})
	c.SetOnDisconnect(func(err error) {
		log.Warn("MQTT connection lost, reconnecting", "error", err)
	})
}

// rollbackSchema reverts the newest applied export schema migration.
func rollbackSchema(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	if !cfg.Database.Enabled {
		return fmt.Errorf("%w: -rollback needs database.enabled", errUsage)
	}

	db, err := database.Open(database.FromAppConfig(cfg.Database))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()

	applied, _, err := db.MigrationStatus(ctx, migrations.FS)
	if err != nil {
		return fmt.Errorf("reading migration status: %w", err)
	}
	if len(applied) == 0 {
		log.Info("export schema has no applied migrations", "path", db.Path())
		return nil
	}

	if err := db.MigrateDown(ctx, migrations.FS); err != nil {
		return fmt.Errorf("rolling back migration: %w", err)
	}
	log.Info("export schema rolled back", "path", db.Path(), "version", latestVersion(applied))
	return nil
}

// latestVersion returns the newest applied migration version, or "".
func latestVersion(applied []database.MigrationRecord) string {
	if len(applied) == 0 {
		return ""
	}
	return applied[len(applied)-1].Version
}

// writeReport prints run statistics and the grouped parameter list.
func writeReport(w io.Writer, run report.Run, includeEmpty bool) error {
	stats := run.Statistics
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Source: %s (run %s)\n", run.Source, run.ID)
	fmt.Fprintf(tw, "Parameters: %d  categorized: %d  uncategorized: %d  rate: %.1f%%\n",
		stats.Total, stats.Categorized, stats.Uncategorized, stats.CategorizationRate)
	fmt.Fprintf(tw, "Enums: %d  booleans: %d  ranged: %d\n\n", stats.Enums, stats.Booleans, stats.Ranged)

	for _, g := range report.GroupEnriched(run.Parameters, includeEmpty) {
		fmt.Fprintf(tw, "%s (%d)\n", g.Info.DisplayName, g.Count)
		for _, p := range run.Parameters {
			if p.Category != g.Category {
				continue
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", p.Record.Name, p.Type.CanonicalName, unitLabel(p), flags(p))
		}
	}

	return tw.Flush()
}

// writeJSON prints run as indented JSON.
func writeJSON(w io.Writer, run report.Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

func unitLabel(p report.EnrichedParameter) string {
	if !p.UnitResolved {
		return "?"
	}
	if p.Unit.Symbol == "" {
		return "-"
	}
	return p.Unit.Symbol
}

func flags(p report.EnrichedParameter) string {
	var out []string
	if p.Enum != nil {
		out = append(out, fmt.Sprintf("enum(%d)", p.Enum.Count))
	}
	if p.IsBoolean {
		out = append(out, "bool")
	}
	if p.Range.HasRange {
		if !p.Range.IsDefaultValid {
			out = append(out, "range!")
		} else {
			out = append(out, "range")
		}
	}
	return strings.Join(out, ",")
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getConfigPath returns the configuration file path from the environment.
// An empty path means built-in defaults plus DEVPARAM_* overrides.
func getConfigPath() string {
	return os.Getenv("DEVPARAM_CONFIG")
}
