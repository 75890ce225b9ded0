package extract

import (
	"fmt"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/pgn2csv-go/internal/chess"
	"github.com/lgbarn/pgn2csv-go/internal/errors"
)

// NotnilReplayer replays moves with github.com/notnil/chess.
type NotnilReplayer struct {
	pos *nchess.Position
}

// NewNotnilReplayer returns a replayer at the starting position.
func NewNotnilReplayer() *NotnilReplayer {
	r := &NotnilReplayer{}
	r.Reset()
	return r
}

func (r *NotnilReplayer) Apply(move *chess.Move) error {
	if move == nil {
		return fmt.Errorf("nil move: %w", errors.ErrIllegalMove)
	}
	if move.IsNull() {
		return fmt.Errorf("%s: null moves are not supported: %w", move.Text, errors.ErrIllegalMove)
	}

	m, err := r.decode(move)
	if err != nil {
		return err
	}
	r.pos = r.pos.Update(m)
	return nil
}

// decode finds the legal move matching the move text. Check and mate
// suffixes are ignored.
func (r *NotnilReplayer) decode(move *chess.Move) (*nchess.Move, error) {
	text := strings.TrimRight(move.Text, "+#")

	if m, err := (nchess.AlgebraicNotation{}).Decode(r.pos, text); err == nil {
		return m, nil
	}

	// Long algebraic input such as "e2e4".
	if move.FromCol != 0 && move.FromRank != 0 && move.ToCol != 0 && move.ToRank != 0 {
		uci := chess.SquareName(move.FromCol, move.FromRank) + chess.SquareName(move.ToCol, move.ToRank)
		if move.IsPromotion() {
			uci += strings.ToLower(string(move.PromotedPiece.Letter()))
		}
		if m, err := (nchess.UCINotation{}).Decode(r.pos, uci); err == nil {
			return m, nil
		}
	}

	for _, m := range r.pos.ValidMoves() {
		if strings.TrimRight((nchess.AlgebraicNotation{}).Encode(r.pos, m), "+#") == text {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%s: no legal move matches: %w", move.Text, errors.ErrIllegalMove)
}

func (r *NotnilReplayer) FEN() string {
	return r.pos.String()
}

func (r *NotnilReplayer) Reset() {
	r.pos = nchess.StartingPosition()
}

func (r *NotnilReplayer) Setup(fen string) error {
	pos := &nchess.Position{}
	if err := pos.UnmarshalText([]byte(fen)); err != nil {
		return fmt.Errorf("%q: %w: %w", fen, errors.ErrInvalidFEN, err)
	}
	r.pos = pos
	return nil
}

// Chess960 is false: notnil/chess only castles from the standard files.
func (r *NotnilReplayer) Chess960() bool { return false }
