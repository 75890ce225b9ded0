package engine

import "github.com/lgbarn/pgn2csv-go/internal/chess"

// step is a file and rank offset.
type step struct{ dc, dr int }

var (
	knightSteps = []step{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps   = []step{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	diagonals   = []step{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	orthogonals = []step{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
)

// slide returns the first occupied square beyond sq in direction d, or
// NoSquare when the ray runs off the board.
func slide(board *chess.Board, sq chess.Square, d step) chess.Square {
	for {
		sq = sq.Step(d.dc, d.dr)
		if sq == chess.NoSquare || !board.At(sq).IsEmpty() {
			return sq
		}
	}
}

// Attacked reports whether a man of colour by attacks sq.
func Attacked(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	man := func(p chess.Piece) chess.Man { return chess.Man{Piece: p, Colour: by} }

	back := -by.Forward()
	if board.At(sq.Step(-1, back)) == man(chess.Pawn) || board.At(sq.Step(1, back)) == man(chess.Pawn) {
		return true
	}
	for _, s := range knightSteps {
		if board.At(sq.Step(s.dc, s.dr)) == man(chess.Knight) {
			return true
		}
	}
	for _, s := range kingSteps {
		if board.At(sq.Step(s.dc, s.dr)) == man(chess.King) {
			return true
		}
	}
	for _, d := range diagonals {
		if m := board.At(slide(board, sq, d)); m == man(chess.Bishop) || m == man(chess.Queen) {
			return true
		}
	}
	for _, d := range orthogonals {
		if m := board.At(slide(board, sq, d)); m == man(chess.Rook) || m == man(chess.Queen) {
			return true
		}
	}
	return false
}

// InCheck reports whether the king of colour is attacked. A board without
// that king is never in check.
func InCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.King(colour)
	if king == chess.NoSquare {
		return false
	}
	return Attacked(board, king, colour.Opposite())
}

// reaches reports whether a piece on from could move to to, ignoring what
// stands on to and whether the move exposes its king.
func reaches(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	switch piece {
	case chess.Knight:
		return hops(from, to, knightSteps)
	case chess.King:
		return hops(from, to, kingSteps)
	case chess.Bishop:
		return rays(board, from, to, diagonals)
	case chess.Rook:
		return rays(board, from, to, orthogonals)
	case chess.Queen:
		return rays(board, from, to, diagonals) || rays(board, from, to, orthogonals)
	}
	return false
}

func hops(from, to chess.Square, steps []step) bool {
	for _, s := range steps {
		if from.Step(s.dc, s.dr) == to {
			return true
		}
	}
	return false
}

func rays(board *chess.Board, from, to chess.Square, dirs []step) bool {
	for _, d := range dirs {
		sq := from
		for {
			sq = sq.Step(d.dc, d.dr)
			if sq == to {
				return true
			}
			if sq == chess.NoSquare || !board.At(sq).IsEmpty() {
				break
			}
		}
	}
	return false
}

// safeAfter reports whether moving the man on from to to keeps the mover's
// king out of check. board is not modified.
func safeAfter(board *chess.Board, from, to chess.Square) bool {
	trial := *board
	trial.Put(to, trial.At(from))
	trial.Clear(from)
	return !InCheck(&trial, board.ToMove)
}
