package testutil

import (
	"errors"

	"github.com/lgbarn/pgn2csv-go/internal/output"
)

// ErrTableFull is returned by a Table once FailAfter rows were written.
var ErrTableFull = errors.New("table full")

// Table records the rows written to it. When FailAfter is positive, writes
// beyond that many rows fail with ErrTableFull.
type Table struct {
	Records   []output.Record
	FailAfter int
}

// Write records rec.
func (t *Table) Write(rec output.Record) error {
	if t.FailAfter > 0 && len(t.Records) >= t.FailAfter {
		return ErrTableFull
	}
	t.Records = append(t.Records, rec)
	return nil
}

// Len returns the number of rows recorded.
func (t *Table) Len() int {
	return len(t.Records)
}

// Rows returns every recorded row as its CSV cell strings.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.Records))
	for i, rec := range t.Records {
		values := rec.Values()
		row := make([]string, len(values))
		for j, v := range values {
			row[j] = v.String()
		}
		rows[i] = row
	}
	return rows
}

// Column returns the cells of the named column, or nil if no row has it.
func (t *Table) Column(name string) []string {
	var cells []string
	for _, rec := range t.Records {
		for i, col := range rec.Columns() {
			if col == name {
				cells = append(cells, rec.Values()[i].String())
				break
			}
		}
	}
	return cells
}
