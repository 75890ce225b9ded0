package output

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/inhies/go-bytesize"
	"github.com/klauspost/compress/zstd"

	"github.com/lgbarn/pgn2csv-go/internal/config"
	pgnerrors "github.com/lgbarn/pgn2csv-go/internal/errors"
)

// row is a minimal Record for tests.
type row struct {
	cols []string
	vals []Value
}

func (r row) Columns() []string { return r.cols }
func (r row) Values() []Value   { return r.vals }

var testColumns = []string{"game_id", "half_move", "fen", "legal"}

func testRow(id string, ply int, fen string, legal bool) row {
	return row{cols: testColumns, vals: []Value{Text(id), Int(ply), Text(fen), Bool(legal)}}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Text("abc"), "abc"},
		{Text(""), ""},
		{Int(0), "0"},
		{Int(-15), "-15"},
		{Bool(true), "true"},
		{Bool(false), "false"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf, testColumns, true)

	if err := w.WriteRecord(testRow("https://lichess.org/a", 1, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", true)); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}
	if err := w.WriteRecord(testRow(`odd, "quoted"`, 2, "", false)); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	want := "game_id,half_move,fen,legal\n" +
		"https://lichess.org/a,1,rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1,true\n" +
		`"odd, ""quoted""",2,,false` + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("CSV output mismatch (-want +got):\n%s", diff)
	}
}

func TestCSVWriter_HeaderOnEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf, testColumns, true)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := buf.String(); got != "game_id,half_move,fen,legal\n" {
		t.Errorf("empty table = %q, want header only", got)
	}

	// A second Close must not repeat the header.
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := buf.String(); got != "game_id,half_move,fen,legal\n" {
		t.Errorf("after second Close = %q", got)
	}
}

func TestCSVWriter_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf, testColumns, false)
	if err := w.WriteRecord(testRow("g", 3, "x", true)); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := buf.String(); got != "g,3,x,true\n" {
		t.Errorf("output = %q", got)
	}
}

func TestJSONLinesWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLinesWriter(&buf)

	if err := w.WriteRecord(testRow("g\"1", 7, "8/8/8/8/8/8/8/8 w - - 0 1", false)); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}
	if err := w.WriteRecord(testRow("g2", 8, "", true)); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	want := `{"game_id":"g\"1","half_move":7,"fen":"8/8/8/8/8/8/8/8 w - - 0 1","legal":false}` + "\n" +
		`{"game_id":"g2","half_move":8,"fen":"","legal":true}` + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("JSONL output mismatch (-want +got):\n%s", diff)
	}
}

func TestNewTableWriter(t *testing.T) {
	cfg := config.NewOutputConfig()
	if _, ok := NewTableWriter(io.Discard, testColumns, cfg).(*CSVWriter); !ok {
		t.Error("default format should produce a CSVWriter")
	}

	cfg.Format = config.JSONLines
	if _, ok := NewTableWriter(io.Discard, testColumns, cfg).(*JSONLinesWriter); !ok {
		t.Error("jsonl format should produce a JSONLinesWriter")
	}
}

func TestTable_Compressed(t *testing.T) {
	cfg := config.NewOutputConfig()
	cfg.Dir = t.TempDir()
	cfg.Compress = true

	table, err := OpenTable(cfg, PositionsTable, testColumns)
	if err != nil {
		t.Fatalf("OpenTable: %v", err)
	}
	if filepath.Base(table.Path()) != "positions.csv.zst" {
		t.Errorf("Path() = %q", table.Path())
	}
	if err := table.Write(testRow("g", 1, "f", true)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := table.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if table.Rows() != 1 {
		t.Errorf("Rows() = %d, want 1", table.Rows())
	}

	f, err := os.Open(table.Path())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		t.Fatalf("zstd.NewReader: %v", err)
	}
	defer dec.Close()

	got, err := io.ReadAll(dec)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if want := "game_id,half_move,fen,legal\ng,1,f,true\n"; string(got) != want {
		t.Errorf("decompressed = %q, want %q", got, want)
	}

	// Closing twice is harmless.
	if err := table.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestTable_ColumnMismatch(t *testing.T) {
	cfg := config.NewOutputConfig()
	cfg.Dir = t.TempDir()

	table, err := OpenTable(cfg, GamesTable, testColumns)
	if err != nil {
		t.Fatalf("OpenTable: %v", err)
	}
	defer table.Close()

	err = table.Write(row{cols: testColumns[:1], vals: []Value{Text("x")}})
	if !errors.Is(err, pgnerrors.ErrSinkWrite) {
		t.Errorf("Write error = %v, want ErrSinkWrite", err)
	}
	if table.Rows() != 0 {
		t.Errorf("Rows() = %d after rejected row", table.Rows())
	}
}

func testSchema() Schema {
	return Schema{
		Games:       []string{"event"},
		Positions:   testColumns,
		Annotations: []string{"game_id", "half_move", "eval", "clock"},
		Diagnostics: []string{"game", "kind"},
	}
}

func TestOpenSinks(t *testing.T) {
	cfg := config.NewOutputConfig()
	cfg.Dir = t.TempDir()
	cfg.Prefix = "run1_"

	sinks, err := OpenSinks(cfg, testSchema())
	if err != nil {
		t.Fatalf("OpenSinks: %v", err)
	}
	if err := sinks.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	for _, name := range []string{"run1_games.csv", "run1_positions.csv", "run1_annotations.csv", "run1_diagnostics.csv"} {
		if _, err := os.Stat(filepath.Join(cfg.Dir, name)); err != nil {
			t.Errorf("missing table file %s: %v", name, err)
		}
	}
	if len(sinks.Tables()) != 4 {
		t.Errorf("Tables() = %d, want 4", len(sinks.Tables()))
	}
	if sinks.DiagnosticsWriter() != sinks.Diagnostics {
		t.Error("DiagnosticsWriter should be the diagnostics table")
	}
}

func TestOpenSinks_NoDiagnostics(t *testing.T) {
	cfg := config.NewOutputConfig()
	cfg.Dir = t.TempDir()
	cfg.Diagnostics = false

	sinks, err := OpenSinks(cfg, testSchema())
	if err != nil {
		t.Fatalf("OpenSinks: %v", err)
	}
	defer sinks.Close()

	if sinks.Diagnostics != nil {
		t.Error("diagnostics table should not be opened")
	}
	if sinks.DiagnosticsWriter() != Discard {
		t.Error("DiagnosticsWriter should discard")
	}
	if _, err := os.Stat(filepath.Join(cfg.Dir, "diagnostics.csv")); !os.IsNotExist(err) {
		t.Errorf("diagnostics.csv should not exist, stat err = %v", err)
	}
}

func TestOpenSinks_BadDir(t *testing.T) {
	cfg := config.NewOutputConfig()
	cfg.Dir = filepath.Join(t.TempDir(), "missing", "dir")

	_, err := OpenSinks(cfg, testSchema())
	if !errors.Is(err, pgnerrors.ErrSinkWrite) {
		t.Errorf("OpenSinks error = %v, want ErrSinkWrite", err)
	}
}

func TestManifest(t *testing.T) {
	cfg := config.NewOutputConfig()
	cfg.Dir = t.TempDir()

	sinks, err := OpenSinks(cfg, testSchema())
	if err != nil {
		t.Fatalf("OpenSinks: %v", err)
	}
	if err := sinks.Positions.Write(testRow("g", 1, "f", true)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := sinks.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	m := NewManifest("games.pgn.zst")
	m.Engine = "builtin"
	m.Format = "csv"
	m.Diagnostics["illegal_move"] = 2
	m.Finish(3, 120, 2*bytesize.KB, sinks)

	if _, err := uuid.Parse(m.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", m.RunID, err)
	}
	if m.FinishedAt.Before(m.StartedAt) {
		t.Error("FinishedAt before StartedAt")
	}

	if err := m.WriteFile(cfg.Dir); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadManifest(cfg.Dir)
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}

	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("manifest round trip (-want +got):\n%s", diff)
	}
	wantTables := []TableInfo{
		{Name: "games", File: "games.csv", Rows: 0},
		{Name: "positions", File: "positions.csv", Rows: 1},
		{Name: "annotations", File: "annotations.csv", Rows: 0},
		{Name: "diagnostics", File: "diagnostics.csv", Rows: 0},
	}
	if diff := cmp.Diff(wantTables, got.Tables); diff != "" {
		t.Errorf("tables (-want +got):\n%s", diff)
	}
	if got.BytesRead != 2048 {
		t.Errorf("BytesRead = %d, want 2048", got.BytesRead)
	}
}
