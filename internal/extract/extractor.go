package extract

import (
	"fmt"
	"io"

	"github.com/lgbarn/pgn2csv-go/internal/chess"
	"github.com/lgbarn/pgn2csv-go/internal/config"
	"github.com/lgbarn/pgn2csv-go/internal/errors"
	"github.com/lgbarn/pgn2csv-go/internal/output"
	"github.com/lgbarn/pgn2csv-go/internal/parser"
)

// Writers are the destinations of the extracted rows.
type Writers struct {
	Games       output.RecordWriter
	Positions   output.RecordWriter
	Annotations output.RecordWriter
	Diagnostics output.RecordWriter
}

// WritersFor returns the writers backed by the tables of sinks.
func WritersFor(sinks *output.Sinks) Writers {
	return Writers{
		Games:       sinks.Games,
		Positions:   sinks.Positions,
		Annotations: sinks.Annotations,
		Diagnostics: sinks.DiagnosticsWriter(),
	}
}

// Extractor is a parser.Visitor that writes the rows of every game it is
// shown. EndGame returns the number of moves seen so far in the run.
//
// The first failed row write is latched: later rows are dropped and Err
// reports it.
type Extractor struct {
	cfg      *config.Config
	replayer Replayer
	w        Writers
	diags    *Diagnostics

	games int
	moves int

	// Per game state
	ply         int
	header      GameHeaderRecord
	gameID      string
	setupFEN    string
	variant     string
	unsupported bool

	err error
}

var _ parser.Visitor[int] = (*Extractor)(nil)

// NewExtractor creates an extractor writing to w.
func NewExtractor(cfg *config.Config, replayer Replayer, w Writers) *Extractor {
	if w.Diagnostics == nil {
		w.Diagnostics = output.Discard
	}
	return &Extractor{
		cfg:      cfg,
		replayer: replayer,
		w:        w,
		diags:    NewDiagnostics(w.Diagnostics, cfg),
	}
}

// Run extracts every game read from r. It stops after the game during which
// a row write failed.
func (e *Extractor) Run(r io.Reader) error {
	reader := parser.NewReader(r, e.cfg)
	_, err := parser.ReadAll[int](reader, e, func(int) error { return e.err })
	if err != nil {
		return err
	}
	return e.err
}

// Games returns the number of games seen.
func (e *Extractor) Games() int { return e.games }

// Moves returns the number of moves seen.
func (e *Extractor) Moves() int { return e.moves }

// Diagnostics returns the diagnostics collected so far.
func (e *Extractor) Diagnostics() *Diagnostics { return e.diags }

// Err returns the first row write failure.
func (e *Extractor) Err() error { return e.err }

func (e *Extractor) write(w output.RecordWriter, rec output.Record) {
	if e.err != nil {
		return
	}
	if err := w.Write(rec); err != nil {
		e.err = err
	}
}

func (e *Extractor) report(err error, ply int, moveText string) {
	if e.err != nil {
		return
	}
	gerr := &errors.GameError{
		Err:      err,
		GameNum:  e.games,
		GameID:   e.gameID,
		PlyNum:   ply,
		MoveText: moveText,
	}
	if werr := e.diags.Report(gerr); werr != nil {
		e.err = werr
	}
}

func (e *Extractor) BeginGame() {
	e.games++
	e.ply = 0
	e.header.Reset()
	e.gameID = ""
	e.setupFEN = ""
	e.variant = ""
	e.unsupported = false
	e.replayer.Reset()
}

func (e *Extractor) Header(key, value string) {
	slot, err := MapHeader(&e.header, key, value)
	switch slot {
	case SlotSite:
		e.gameID = value
	case SlotFEN:
		e.setupFEN = value
	case SlotVariant:
		e.variant = value
	}
	if err != nil {
		e.report(err, 0, "")
	}
}

// EndHeaders writes the header row and prepares the starting position.
// Chess960 is replayed only from its FEN header and only by a replayer that
// castles with rooks on any file.
func (e *Extractor) EndHeaders() parser.Skip {
	useFEN := e.setupFEN != "" && e.cfg.Replay.UseFENTag

	switch {
	case chess.IsStandardVariant(e.variant):
	case chess.IsChess960(e.variant) && useFEN && e.replayer.Chess960():
	default:
		e.unsupported = true
		e.report(fmt.Errorf("%q: %w", e.variant, errors.ErrUnsupportedVariant), 0, "")
	}

	if useFEN && !e.unsupported {
		if err := e.replayer.Setup(e.setupFEN); err != nil {
			e.report(err, 0, "")
		}
	}

	e.write(e.w.Games, e.header)
	e.header.Reset()
	return parser.Continue
}

// Move replays one half-move and writes its position row. A move that
// cannot be applied still gets a row, with the previous position and
// Legal set to false.
func (e *Extractor) Move(move *chess.Move) {
	e.moves++
	e.ply++

	legal := !e.unsupported
	if legal {
		var err error
		if move.IsNull() && !e.cfg.AllowNullMoves {
			err = fmt.Errorf("%s: null move: %w", move.Text, errors.ErrIllegalMove)
		} else {
			err = e.replayer.Apply(move)
		}
		if err != nil {
			legal = false
			e.report(err, e.ply, move.Text)
		}
	}

	e.write(e.w.Positions, PositionRecord{
		GameID:   e.gameID,
		HalfMove: e.ply,
		FEN:      e.replayer.FEN(),
		Legal:    legal,
	})
}

// Comment writes an annotation row stamped with the ply of the preceding
// move.
func (e *Extractor) Comment(text string) {
	a, err := ParseAnnotation(text)
	if err != nil {
		e.report(err, e.ply, "")
		return
	}
	e.write(e.w.Annotations, AnnotationRecord{
		GameID:   e.gameID,
		HalfMove: e.ply,
		Eval:     a.Eval,
		Clock:    a.Clock,
	})
}

func (e *Extractor) NAG(string) {}

// BeginVariation skips every variation; only the main line is extracted.
func (e *Extractor) BeginVariation() parser.Skip { return parser.SkipVariation }

func (e *Extractor) EndVariation() {}

func (e *Extractor) Outcome(string) {}

func (e *Extractor) EndGame() int {
	e.replayer.Reset()
	return e.moves
}
