package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn2csv-go/internal/errors"
)

// TableFormat selects the row encoding of the output tables.
type TableFormat int

const (
	CSV        TableFormat = iota // Comma separated values
	JSONLines                     // One JSON object per line
	UnknownFormat
)

// String returns the flag spelling of the format.
func (f TableFormat) String() string {
	switch f {
	case CSV:
		return "csv"
	case JSONLines:
		return "jsonl"
	}
	return "unknown"
}

// Extension returns the file extension used for the format.
func (f TableFormat) Extension() string {
	if f == JSONLines {
		return ".jsonl"
	}
	return ".csv"
}

// ParseTableFormat converts a flag value into a TableFormat.
func ParseTableFormat(s string) (TableFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return CSV, nil
	case "jsonl", "ndjson", "json":
		return JSONLines, nil
	}
	return UnknownFormat, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to the output tables.
type OutputConfig struct {
	// Dir is the directory the tables are written to
	Dir string

	// Prefix is prepended to every table file name
	Prefix string

	// Format is the row encoding
	Format TableFormat

	// Compress wraps every table in a zstd stream
	Compress bool

	// WriteHeader writes a column header row (CSV only)
	WriteHeader bool

	// Diagnostics enables the diagnostics table
	Diagnostics bool

	// Manifest enables the run manifest
	Manifest bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Dir:         ".",
		Format:      CSV,
		WriteHeader: true,
		Diagnostics: true,
		Manifest:    true,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.Format < CSV || o.Format >= UnknownFormat {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.Dir == "" {
		return fmt.Errorf("empty output directory: %w", errors.ErrInvalidConfig)
	}
	if strings.ContainsAny(o.Prefix, `/\`) {
		return fmt.Errorf("prefix %q contains a path separator: %w", o.Prefix, errors.ErrInvalidConfig)
	}
	return nil
}

// TableFileName returns the file name for the named table.
func (o *OutputConfig) TableFileName(table string) string {
	name := o.Prefix + table + o.Format.Extension()
	if o.Compress {
		name += ".zst"
	}
	return name
}
