package export

import "errors"

// Sentinel errors for export operations.
var (
	// ErrRunNotFound is returned when a run ID is not in the store.
	ErrRunNotFound = errors.New("export: run not found")

	// ErrExportFailed is returned by Fanout when at least one sink failed.
	ErrExportFailed = errors.New("export: sink failed")
)
