package engine

import "github.com/lgbarn/pgn2csv-go/internal/chess"

// pieceMove plays a knight, bishop, rook, queen or king move. Of the men
// that match the written disambiguation and reach the destination, exactly
// one may be free to move without exposing its king.
func pieceMove(board *chess.Board, move *chess.Move) error {
	colour := board.ToMove
	to := chess.SquareAt(move.ToCol, move.ToRank)
	if to == chess.NoSquare {
		return illegal(move, "no destination square")
	}

	captured := board.At(to)
	if !captured.IsEmpty() && captured.Colour == colour {
		return illegal(move, "destination occupied by own piece")
	}

	var legal []chess.Square
	candidates := 0
	for _, from := range board.Find(chess.Man{Piece: move.PieceToMove, Colour: colour}) {
		if move.FromCol != 0 && from.Col() != move.FromCol {
			continue
		}
		if move.FromRank != 0 && from.Rank() != move.FromRank {
			continue
		}
		if !reaches(board, move.PieceToMove, from, to) {
			continue
		}
		candidates++
		if safeAfter(board, from, to) {
			legal = append(legal, from)
		}
	}

	switch {
	case candidates == 0:
		return illegal(move, "no piece can reach the destination")
	case len(legal) == 0:
		return illegal(move, "leaves king in check")
	case len(legal) > 1:
		return illegal(move, "ambiguous move")
	}
	from := legal[0]

	mover := board.At(from)
	board.Put(to, mover)
	board.Clear(from)

	if mover.Piece == chess.King {
		board.DropCastling(colour)
	}
	loseRookRight(board, mover, from)
	loseRookRight(board, captured, to)

	board.EnPassant = chess.NoSquare
	finish(board, !captured.IsEmpty())
	return nil
}
