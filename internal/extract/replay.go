package extract

import (
	"fmt"

	"github.com/lgbarn/pgn2csv-go/internal/chess"
	"github.com/lgbarn/pgn2csv-go/internal/config"
	"github.com/lgbarn/pgn2csv-go/internal/engine"
	"github.com/lgbarn/pgn2csv-go/internal/errors"
)

// Replayer holds the position of the game being extracted.
type Replayer interface {
	// Apply plays move. On error, which wraps errors.ErrIllegalMove, the
	// position is unchanged.
	Apply(move *chess.Move) error

	// FEN returns the current position in Forsyth-Edwards Notation.
	FEN() string

	// Reset restores the standard starting position.
	Reset()

	// Setup replaces the position with fen. On error, which wraps
	// errors.ErrInvalidFEN, the position is unchanged.
	Setup(fen string) error

	// Chess960 reports whether Setup positions may castle with rooks on
	// any file.
	Chess960() bool
}

// NewReplayer returns the replayer for the configured engine.
func NewReplayer(e config.Engine) (Replayer, error) {
	switch e {
	case config.BuiltinEngine:
		return NewBuiltinReplayer(), nil
	case config.NotnilEngine:
		return NewNotnilReplayer(), nil
	}
	return nil, fmt.Errorf("replay engine %d: %w", e, errors.ErrInvalidConfig)
}

// BuiltinReplayer replays moves with the internal engine.
type BuiltinReplayer struct {
	board *chess.Board
}

// NewBuiltinReplayer returns a replayer at the starting position.
func NewBuiltinReplayer() *BuiltinReplayer {
	r := &BuiltinReplayer{}
	r.Reset()
	return r
}

func (r *BuiltinReplayer) Apply(move *chess.Move) error {
	return engine.ApplyMove(r.board, move)
}

func (r *BuiltinReplayer) FEN() string {
	return engine.FormatFEN(r.board)
}

func (r *BuiltinReplayer) Reset() {
	r.board = engine.StartingBoard()
}

func (r *BuiltinReplayer) Setup(fen string) error {
	board, err := engine.ParseFEN(fen)
	if err != nil {
		return err
	}
	r.board = board
	return nil
}

func (r *BuiltinReplayer) Chess960() bool { return true }
