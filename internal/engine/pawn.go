package engine

import "github.com/lgbarn/pgn2csv-go/internal/chess"

// pawnMove plays a push, capture, en passant capture or promotion.
func pawnMove(board *chess.Board, move *chess.Move) error {
	colour := board.ToMove
	if move.ToCol == 0 {
		return illegal(move, "no destination square")
	}
	capture := move.FromCol != 0 && move.FromCol != move.ToCol

	to := chess.SquareAt(move.ToCol, move.ToRank)
	if move.ToRank == 0 {
		// "ab" captures leave the rank to the position.
		if !capture {
			return illegal(move, "no destination square")
		}
		var err error
		if to, err = captureTarget(board, move); err != nil {
			return err
		}
	}
	if to == chess.NoSquare {
		return illegal(move, "no destination square")
	}

	from, err := pawnSource(board, move, to, capture)
	if err != nil {
		return err
	}
	if move.FromRank != 0 && from.Rank() != move.FromRank {
		return illegal(move, "no pawn on the given square")
	}

	enPassant := capture && to == board.EnPassant && board.At(to).IsEmpty()
	if move.Class == chess.EnPassantPawnMove && !enPassant {
		return illegal(move, "no en passant capture available")
	}

	becomes := chess.Pawn
	lastRank := colour.Opposite().HomeRank()
	switch {
	case move.IsPromotion():
		if to.Rank() != lastRank {
			return illegal(move, "promotion before the last rank")
		}
		switch move.PromotedPiece {
		case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
			becomes = move.PromotedPiece
		default:
			return illegal(move, "invalid promotion piece")
		}
	case to.Rank() == lastRank:
		return illegal(move, "missing promotion piece")
	}

	captured := board.At(to)
	board.Clear(from)
	if enPassant {
		board.Clear(to.Step(0, -colour.Forward()))
	}
	board.Put(to, chess.Man{Piece: becomes, Colour: colour})
	loseRookRight(board, captured, to)

	board.EnPassant = chess.NoSquare
	if d := int(to.Rank()) - int(from.Rank()); d == 2 || d == -2 {
		board.EnPassant = from.Step(0, colour.Forward())
	}
	finish(board, true)
	return nil
}

// pawnStart is the rank pawns of colour start on.
func pawnStart(colour chess.Colour) chess.Rank {
	return chess.Rank(int(colour.HomeRank()) + colour.Forward())
}

// pawnSource finds the pawn that makes the move onto to.
func pawnSource(board *chess.Board, move *chess.Move, to chess.Square, capture bool) (chess.Square, error) {
	colour := board.ToMove
	pawn := chess.Man{Piece: chess.Pawn, Colour: colour}
	back := -colour.Forward()

	if capture {
		if d := int(move.FromCol) - int(move.ToCol); d != 1 && d != -1 {
			return chess.NoSquare, illegal(move, "pawn capture must be diagonal")
		}
		from := chess.SquareAt(move.FromCol, to.Rank()).Step(0, back)
		if board.At(from) != pawn {
			return chess.NoSquare, illegal(move, "no pawn can make this capture")
		}
		if !capturable(board, to, colour) {
			return chess.NoSquare, illegal(move, "nothing to capture")
		}
		return from, nil
	}

	if !board.At(to).IsEmpty() {
		return chess.NoSquare, illegal(move, "destination occupied")
	}
	one := to.Step(0, back)
	if board.At(one) == pawn {
		return one, nil
	}
	if two := one.Step(0, back); board.At(one).IsEmpty() && board.At(two) == pawn && two.Rank() == pawnStart(colour) {
		return two, nil
	}
	return chess.NoSquare, illegal(move, "no pawn can reach the destination")
}

// capturable reports whether a pawn of colour may capture on sq, either a
// man of the other side or en passant.
func capturable(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	if sq == chess.NoSquare {
		return false
	}
	target := board.At(sq)
	if target.IsEmpty() {
		return sq == board.EnPassant
	}
	return target.Colour != colour
}

// captureTarget resolves the destination of a pawn capture written with
// files only. Exactly one capture must be possible.
func captureTarget(board *chess.Board, move *chess.Move) (chess.Square, error) {
	colour := board.ToMove
	pawn := chess.Man{Piece: chess.Pawn, Colour: colour}

	found := chess.NoSquare
	count := 0
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		if board.At(chess.SquareAt(move.FromCol, rank)) != pawn {
			continue
		}
		to := chess.SquareAt(move.ToCol, rank).Step(0, colour.Forward())
		if capturable(board, to, colour) {
			found = to
			count++
		}
	}

	switch count {
	case 0:
		return chess.NoSquare, illegal(move, "nothing to capture")
	case 1:
		return found, nil
	}
	return chess.NoSquare, illegal(move, "ambiguous pawn capture")
}
