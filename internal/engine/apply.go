// Package engine replays decoded moves on a chess.Board and converts boards
// to and from FEN.
package engine

import (
	"fmt"

	"github.com/lgbarn/pgn2csv-go/internal/chess"
	"github.com/lgbarn/pgn2csv-go/internal/errors"
)

// ApplyMove plays a move for the side to move. The move must resolve to
// exactly one man of that side and must not leave its king in check.
// On error the board is left unchanged.
func ApplyMove(board *chess.Board, move *chess.Move) error {
	if move == nil {
		return fmt.Errorf("nil move: %w", errors.ErrIllegalMove)
	}
	if move.Class == chess.PawnMove && move.FromCol != 0 && move.FromRank != 0 {
		move = resolveLongAlgebraic(board, move)
	}

	before := *board
	err := play(board, move)
	if err == nil && !move.IsNull() && InCheck(board, before.ToMove) {
		err = illegal(move, "leaves king in check")
	}
	if err != nil {
		*board = before
	}
	return err
}

func play(board *chess.Board, move *chess.Move) error {
	switch move.Class {
	case chess.NullMove:
		board.EnPassant = chess.NoSquare
		finish(board, false)
		return nil
	case chess.KingsideCastle:
		return castle(board, move, chess.KingSide)
	case chess.QueensideCastle:
		return castle(board, move, chess.QueenSide)
	case chess.PawnMove, chess.PawnMoveWithPromotion, chess.EnPassantPawnMove:
		return pawnMove(board, move)
	case chess.PieceMove:
		return pieceMove(board, move)
	}
	return illegal(move, "unrecognised move text")
}

func illegal(move *chess.Move, reason string) error {
	return fmt.Errorf("%s: %s: %w", move.Text, reason, errors.ErrIllegalMove)
}

// finish advances the clocks and passes the turn. irreversible marks pawn
// moves and captures, which reset the halfmove clock.
func finish(board *chess.Board, irreversible bool) {
	if irreversible {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if board.ToMove == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = board.ToMove.Opposite()
}

// resolveLongAlgebraic reclassifies a move written as two squares ("g1f3",
// "e1g1"), which DecodeMove reports as a pawn move, from the man standing
// on the first square.
func resolveLongAlgebraic(board *chess.Board, move *chess.Move) *chess.Move {
	from := chess.SquareAt(move.FromCol, move.FromRank)
	man := board.At(from)
	if man.IsEmpty() || man.Colour != board.ToMove || man.Piece == chess.Pawn {
		return move
	}

	resolved := *move
	resolved.PieceToMove = man.Piece
	resolved.Class = chess.PieceMove
	if man.Piece == chess.King && move.FromRank == move.ToRank {
		switch int(move.ToCol) - int(move.FromCol) {
		case 2:
			resolved.Class = chess.KingsideCastle
		case -2:
			resolved.Class = chess.QueensideCastle
		}
	}
	return &resolved
}

// loseRookRight drops the castling right tied to a rook leaving or being
// taken on sq. m is the man that stood there.
func loseRookRight(board *chess.Board, m chess.Man, sq chess.Square) {
	if m.Piece != chess.Rook || sq.Rank() != m.Colour.HomeRank() {
		return
	}
	for side, col := range board.Castling[m.Colour] {
		if col == sq.Col() {
			board.Castling[m.Colour][side] = 0
		}
	}
}
