package ingest

import "errors"

// Sentinel errors for document loading.
var (
	// ErrFileTooLarge indicates the document exceeds the configured size limit.
	ErrFileTooLarge = errors.New("ingest: document exceeds maximum size")

	// ErrDecode indicates the document is not well-formed JSON or YAML.
	ErrDecode = errors.New("ingest: cannot decode document")

	// ErrInvalidDocument indicates the document failed schema validation.
	ErrInvalidDocument = errors.New("ingest: document failed schema validation")
)
