package output

import (
	"github.com/lgbarn/pgn2csv-go/internal/config"
	"github.com/lgbarn/pgn2csv-go/internal/errors"
)

// Table names, used as file name stems.
const (
	GamesTable       = "games"
	PositionsTable   = "positions"
	AnnotationsTable = "annotations"
	DiagnosticsTable = "diagnostics"
)

// Schema holds the column names of every table of a run.
type Schema struct {
	Games       []string
	Positions   []string
	Annotations []string
	Diagnostics []string
}

// Sinks are the output tables of a run. Diagnostics is nil when the
// diagnostics table is disabled.
type Sinks struct {
	Games       *Table
	Positions   *Table
	Annotations *Table
	Diagnostics *Table
}

type tableSpec struct {
	dst     **Table
	name    string
	columns []string
}

// OpenSinks creates every table. On failure the tables opened so far are
// closed again.
func OpenSinks(cfg *config.OutputConfig, schema Schema) (*Sinks, error) {
	s := &Sinks{}

	specs := []tableSpec{
		{&s.Games, GamesTable, schema.Games},
		{&s.Positions, PositionsTable, schema.Positions},
		{&s.Annotations, AnnotationsTable, schema.Annotations},
	}
	if cfg.Diagnostics {
		specs = append(specs, tableSpec{&s.Diagnostics, DiagnosticsTable, schema.Diagnostics})
	}

	for _, spec := range specs {
		t, err := OpenTable(cfg, spec.name, spec.columns)
		if err != nil {
			return nil, errors.Join(err, s.Close())
		}
		*spec.dst = t
	}
	return s, nil
}

// Tables returns the open tables in file order.
func (s *Sinks) Tables() []*Table {
	var tables []*Table
	for _, t := range []*Table{s.Games, s.Positions, s.Annotations, s.Diagnostics} {
		if t != nil {
			tables = append(tables, t)
		}
	}
	return tables
}

// DiagnosticsWriter returns the diagnostics table, or Discard when it is
// disabled.
func (s *Sinks) DiagnosticsWriter() RecordWriter {
	if s.Diagnostics == nil {
		return Discard
	}
	return s.Diagnostics
}

// Close closes every table and joins the errors.
func (s *Sinks) Close() error {
	var errs []error
	for _, t := range s.Tables() {
		errs = append(errs, t.Close())
	}
	return errors.Join(errs...)
}
