package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/lgbarn/pgn2csv-go/internal/config"
	"github.com/lgbarn/pgn2csv-go/internal/errors"
)

// Table is one output file: the file handle, an optional zstd encoder and
// the row encoder on top.
type Table struct {
	name    string
	path    string
	columns []string
	rows    int

	file *os.File
	enc  *zstd.Encoder
	w    TableWriter
}

// OpenTable creates the file for the named table in cfg.Dir, truncating any
// previous content.
func OpenTable(cfg *config.OutputConfig, name string, columns []string) (*Table, error) {
	path := filepath.Join(cfg.Dir, cfg.TableFileName(name))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open table %s: %w: %w", name, errors.ErrSinkWrite, err)
	}

	t := &Table{
		name:    name,
		path:    path,
		columns: columns,
		file:    f,
	}

	var w io.Writer = f
	if cfg.Compress {
		enc, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open table %s: %w: %w", name, errors.ErrSinkWrite, err)
		}
		t.enc = enc
		w = enc
	}
	t.w = NewTableWriter(w, columns, cfg)
	return t, nil
}

// Write appends a row. Errors wrap errors.ErrSinkWrite.
func (t *Table) Write(rec Record) error {
	if n := len(rec.Values()); n != len(t.columns) {
		return fmt.Errorf("table %s: %d values for %d columns: %w", t.name, n, len(t.columns), errors.ErrSinkWrite)
	}
	if err := t.w.WriteRecord(rec); err != nil {
		return fmt.Errorf("table %s: %w: %w", t.name, errors.ErrSinkWrite, err)
	}
	t.rows++
	return nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Path returns the path of the table file.
func (t *Table) Path() string { return t.path }

// Rows returns the number of rows written.
func (t *Table) Rows() int { return t.rows }

// Close flushes the row encoder, closes the zstd stream and closes the
// file, in that order. The file is closed even when a flush fails.
func (t *Table) Close() error {
	if t.file == nil {
		return nil
	}

	var errs []error
	if err := t.w.Close(); err != nil {
		errs = append(errs, err)
	}
	if t.enc != nil {
		if err := t.enc.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := t.file.Close(); err != nil {
		errs = append(errs, err)
	}
	t.file = nil

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("close table %s: %w: %w", t.name, errors.ErrSinkWrite, err)
	}
	return nil
}
