// Package output writes extracted rows to tabular files, as CSV or as JSON
// Lines, optionally zstd compressed.
package output

import (
	"io"
	"strconv"

	"github.com/lgbarn/pgn2csv-go/internal/config"
)

type valueKind uint8

const (
	textValue valueKind = iota
	intValue
	boolValue
)

// Value is a single cell of a row.
type Value struct {
	kind valueKind
	s    string
	n    int64
	b    bool
}

// Text returns a string cell.
func Text(s string) Value { return Value{kind: textValue, s: s} }

// Int returns an integer cell.
func Int(n int) Value { return Value{kind: intValue, n: int64(n)} }

// Bool returns a boolean cell.
func Bool(b bool) Value { return Value{kind: boolValue, b: b} }

// String returns the cell as it appears in CSV output.
func (v Value) String() string {
	switch v.kind {
	case intValue:
		return strconv.FormatInt(v.n, 10)
	case boolValue:
		return strconv.FormatBool(v.b)
	}
	return v.s
}

// Record is one row of a table. Columns and Values are parallel slices,
// and Columns is the same for every record of a table.
type Record interface {
	Columns() []string
	Values() []Value
}

// RecordWriter accepts rows for a single table.
type RecordWriter interface {
	Write(rec Record) error
}

// Discard is a RecordWriter that drops every row.
var Discard RecordWriter = discard{}

type discard struct{}

func (discard) Write(Record) error { return nil }

// TableWriter is the interface for encoding rows.
// Different implementations handle different formats (CSV, JSON Lines).
type TableWriter interface {
	// WriteRecord encodes a single row.
	WriteRecord(rec Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close flushes the writer. It does not close the underlying writer.
	Close() error
}

// NewTableWriter returns the TableWriter for the configured format.
func NewTableWriter(w io.Writer, columns []string, cfg *config.OutputConfig) TableWriter {
	if cfg.Format == config.JSONLines {
		return NewJSONLinesWriter(w)
	}
	return NewCSVWriter(w, columns, cfg.WriteHeader)
}
