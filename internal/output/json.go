package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
)

// MarshalJSON encodes text cells as strings and the others as JSON scalars.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case intValue, boolValue:
		return []byte(v.String()), nil
	}
	return json.Marshal(v.s)
}

// JSONLinesWriter writes one JSON object per row. Keys follow the column
// order of the record.
type JSONLinesWriter struct {
	w   *bufio.Writer
	buf bytes.Buffer
}

// NewJSONLinesWriter creates a new JSON Lines writer.
func NewJSONLinesWriter(w io.Writer) *JSONLinesWriter {
	return &JSONLinesWriter{w: bufio.NewWriter(w)}
}

// WriteRecord writes a single row as a JSON object terminated by a newline.
func (jw *JSONLinesWriter) WriteRecord(rec Record) error {
	columns := rec.Columns()
	values := rec.Values()

	jw.buf.Reset()
	jw.buf.WriteByte('{')
	for i, col := range columns {
		if i > 0 {
			jw.buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return err
		}
		jw.buf.Write(key)
		jw.buf.WriteByte(':')

		val, err := values[i].MarshalJSON()
		if err != nil {
			return err
		}
		jw.buf.Write(val)
	}
	jw.buf.WriteString("}\n")

	_, err := jw.w.Write(jw.buf.Bytes())
	return err
}

// Flush flushes buffered rows.
func (jw *JSONLinesWriter) Flush() error {
	return jw.w.Flush()
}

// Close flushes the writer.
func (jw *JSONLinesWriter) Close() error {
	return jw.Flush()
}
