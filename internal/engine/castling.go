package engine

import "github.com/lgbarn/pgn2csv-go/internal/chess"

// castle plays a castling move. The right must still be held, every square
// the king and rook cross or land on must be empty, and the king may not
// start on, cross or land on an attacked square.
func castle(board *chess.Board, move *chess.Move, side chess.CastleSide) error {
	colour := board.ToMove
	rank := colour.HomeRank()

	rookCol := board.Castling[colour][side]
	if rookCol == 0 {
		return illegal(move, "castling right lost")
	}

	king := chess.Man{Piece: chess.King, Colour: colour}
	rook := chess.Man{Piece: chess.Rook, Colour: colour}

	kingFrom := board.King(colour)
	if kingFrom == chess.NoSquare || kingFrom.Rank() != rank {
		return illegal(move, "king not on its home square")
	}
	rookFrom := chess.SquareAt(rookCol, rank)
	if board.At(rookFrom) != rook {
		return illegal(move, "no rook to castle with")
	}

	kingTo, rookTo := chess.SquareAt('g', rank), chess.SquareAt('f', rank)
	if side == chess.QueenSide {
		kingTo, rookTo = chess.SquareAt('c', rank), chess.SquareAt('d', rank)
	}

	for sq := min(kingFrom, kingTo, rookFrom, rookTo); sq <= max(kingFrom, kingTo, rookFrom, rookTo); sq++ {
		if sq != kingFrom && sq != rookFrom && !board.At(sq).IsEmpty() {
			return illegal(move, "castling path blocked")
		}
	}

	dir := chess.Square(1)
	if kingTo < kingFrom {
		dir = -1
	}
	for sq := kingFrom; ; sq += dir {
		if Attacked(board, sq, colour.Opposite()) {
			return illegal(move, "king passes through check")
		}
		if sq == kingTo {
			break
		}
	}

	board.Clear(kingFrom)
	board.Clear(rookFrom)
	board.Put(kingTo, king)
	board.Put(rookTo, rook)
	board.DropCastling(colour)

	board.EnPassant = chess.NoSquare
	finish(board, false)
	return nil
}
