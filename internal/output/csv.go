package output

import (
	"encoding/csv"
	"io"
)

// CSVWriter writes rows as RFC 4180 CSV.
type CSVWriter struct {
	w           *csv.Writer
	columns     []string
	header      bool
	wroteHeader bool
	row         []string
}

// NewCSVWriter creates a CSV writer. When header is set the column names are
// written as the first row, also for a table without rows.
func NewCSVWriter(w io.Writer, columns []string, header bool) *CSVWriter {
	return &CSVWriter{
		w:       csv.NewWriter(w),
		columns: columns,
		header:  header,
	}
}

func (cw *CSVWriter) writeHeader() error {
	if !cw.header || cw.wroteHeader {
		return nil
	}
	cw.wroteHeader = true
	return cw.w.Write(cw.columns)
}

// WriteRecord writes a single row.
func (cw *CSVWriter) WriteRecord(rec Record) error {
	if err := cw.writeHeader(); err != nil {
		return err
	}

	values := rec.Values()
	cw.row = cw.row[:0]
	for _, v := range values {
		cw.row = append(cw.row, v.String())
	}
	return cw.w.Write(cw.row)
}

// Flush flushes buffered rows.
func (cw *CSVWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

// Close writes a pending header and flushes.
func (cw *CSVWriter) Close() error {
	if err := cw.writeHeader(); err != nil {
		return err
	}
	return cw.Flush()
}
