package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nerrad567/devparam/internal/parameter"
)

// DefaultMaxFileSize is the document size limit when none is configured (50MB).
const DefaultMaxFileSize = 50 * 1024 * 1024

// Encoding is the serialisation of a record document.
type Encoding string

// Supported encodings.
const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// EncodingForPath picks the encoding from a file extension. Anything other
// than .yaml or .yml is treated as JSON.
func EncodingForPath(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return EncodingYAML
	default:
		return EncodingJSON
	}
}

// Document is a batch of records produced by one upstream parse.
type Document struct {
	Source     string             `json:"source"`
	Format     parameter.Format   `json:"format"`
	Parameters []parameter.Record `json:"parameters"`
}

// Options configures a Loader.
type Options struct {
	// ValidateSchema enables JSON-schema validation before decoding.
	ValidateSchema bool

	// MaxFileSize limits document size in bytes; 0 uses DefaultMaxFileSize.
	MaxFileSize int64
}

// Loader reads record documents.
type Loader struct {
	validator   *Validator
	maxFileSize int64
}

// NewLoader creates a Loader. The schema is compiled only when validation
// is enabled.
func NewLoader(opts Options) (*Loader, error) {
	l := &Loader{maxFileSize: opts.MaxFileSize}
	if l.maxFileSize <= 0 {
		l.maxFileSize = DefaultMaxFileSize
	}

	if opts.ValidateSchema {
		v, err := NewValidator()
		if err != nil {
			return nil, fmt.Errorf("creating validator: %w", err)
		}
		l.validator = v
	}

	return l, nil
}

// LoadFile reads the document at path. The encoding follows the file
// extension; an empty source defaults to the file's base name.
func (l *Loader) LoadFile(path string) (*Document, error) {
	f, err := os.Open(path) //nolint:gosec // path is operator-supplied
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	doc, err := l.Load(f, EncodingForPath(path))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	if doc.Source == "" {
		doc.Source = filepath.Base(path)
		doc.applyDefaults()
	}
	return doc, nil
}

// Load reads one document from r.
func (l *Loader) Load(r io.Reader, enc Encoding) (*Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	if int64(len(data)) > l.maxFileSize {
		return nil, ErrFileTooLarge
	}
	return l.Parse(data, enc)
}

// Parse decodes a document held in memory.
func (l *Loader) Parse(data []byte, enc Encoding) (*Document, error) {
	if int64(len(data)) > l.maxFileSize {
		return nil, ErrFileTooLarge
	}

	if enc == EncodingYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, err
		}
		data = converted
	}

	if l.validator != nil {
		if err := l.validator.Validate(data); err != nil {
			return nil, err
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	doc.applyDefaults()
	return &doc, nil
}

// applyDefaults copies the document source and format onto records that
// leave them unset.
func (d *Document) applyDefaults() {
	for i := range d.Parameters {
		rec := &d.Parameters[i]
		if rec.Source == "" {
			rec.Source = d.Source
		}
		if rec.Format == parameter.FormatUnknown {
			rec.Format = d.Format
		}
	}
}

// yamlToJSON re-encodes a YAML document as JSON so both encodings share
// one schema and one decoder.
func yamlToJSON(data []byte) ([]byte, error) {
	var generic any
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&generic); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty YAML document", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	out, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return out, nil
}
