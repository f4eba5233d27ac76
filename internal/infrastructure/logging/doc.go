// Package logging provides structured logging for devparam.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the application.
//
// # Features
//
//   - JSON output for machine consumption, text output for terminals
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// # Configuration
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stderr"   # stdout, stderr
//
// Logs go to stderr by default; the CLI writes its report to stdout.
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("loaded records", "file", path, "count", n)
//	logger.Error("export failed", "sink", name, "error", err)
//
// Never log broker passwords or InfluxDB tokens.
package logging
