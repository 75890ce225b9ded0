// Package extract turns PGN games into rows: one per game for the headers,
// one per half-move for the replayed position and one per annotated comment
// for engine evaluations and clock times.
package extract

import "github.com/lgbarn/pgn2csv-go/internal/output"

// Column names of the output tables. The order is fixed.
var (
	GameColumns = []string{
		"event", "game_link", "white_player", "black_player", "result",
		"date_played", "time_played", "white_elo", "black_elo",
		"white_rating_diff", "black_rating_diff", "eco", "opening_name",
		"time_control", "initial_time", "increment", "termination",
	}
	PositionColumns   = []string{"game_id", "half_move", "fen", "legal"}
	AnnotationColumns = []string{"game_id", "half_move", "eval", "clock"}
	DiagnosticColumns = []string{"game", "game_id", "half_move", "kind", "detail"}
)

// Schema returns the column names of every table.
func Schema() output.Schema {
	return output.Schema{
		Games:       GameColumns,
		Positions:   PositionColumns,
		Annotations: AnnotationColumns,
		Diagnostics: DiagnosticColumns,
	}
}

// GameHeaderRecord holds the metadata of one game.
type GameHeaderRecord struct {
	Event           string
	GameLink        string
	WhitePlayer     string
	BlackPlayer     string
	Result          string
	DatePlayed      string
	TimePlayed      string
	WhiteElo        string
	BlackElo        string
	WhiteRatingDiff string
	BlackRatingDiff string
	ECO             string
	OpeningName     string
	TimeControl     string
	InitialTime     int
	Increment       int
	Termination     string
}

// Reset clears every field.
func (r *GameHeaderRecord) Reset() {
	*r = GameHeaderRecord{}
}

func (r GameHeaderRecord) Columns() []string { return GameColumns }

func (r GameHeaderRecord) Values() []output.Value {
	return []output.Value{
		output.Text(r.Event),
		output.Text(r.GameLink),
		output.Text(r.WhitePlayer),
		output.Text(r.BlackPlayer),
		output.Text(r.Result),
		output.Text(r.DatePlayed),
		output.Text(r.TimePlayed),
		output.Text(r.WhiteElo),
		output.Text(r.BlackElo),
		output.Text(r.WhiteRatingDiff),
		output.Text(r.BlackRatingDiff),
		output.Text(r.ECO),
		output.Text(r.OpeningName),
		output.Text(r.TimeControl),
		output.Int(r.InitialTime),
		output.Int(r.Increment),
		output.Text(r.Termination),
	}
}

// PositionRecord is the board after one half-move. Legal is false when the
// move could not be applied, in which case FEN is the unchanged position
// from before the move.
type PositionRecord struct {
	GameID   string
	HalfMove int
	FEN      string
	Legal    bool
}

func (r PositionRecord) Columns() []string { return PositionColumns }

func (r PositionRecord) Values() []output.Value {
	return []output.Value{
		output.Text(r.GameID),
		output.Int(r.HalfMove),
		output.Text(r.FEN),
		output.Bool(r.Legal),
	}
}

// AnnotationRecord carries the evaluation and clock of a comment. Either may
// be empty.
type AnnotationRecord struct {
	GameID   string
	HalfMove int
	Eval     string
	Clock    string
}

func (r AnnotationRecord) Columns() []string { return AnnotationColumns }

func (r AnnotationRecord) Values() []output.Value {
	return []output.Value{
		output.Text(r.GameID),
		output.Int(r.HalfMove),
		output.Text(r.Eval),
		output.Text(r.Clock),
	}
}

// DiagnosticRecord describes a recoverable problem with one game.
type DiagnosticRecord struct {
	Game     int
	GameID   string
	HalfMove int
	Kind     Kind
	Detail   string
}

func (r DiagnosticRecord) Columns() []string { return DiagnosticColumns }

func (r DiagnosticRecord) Values() []output.Value {
	return []output.Value{
		output.Int(r.Game),
		output.Text(r.GameID),
		output.Int(r.HalfMove),
		output.Text(r.Kind.String()),
		output.Text(r.Detail),
	}
}
