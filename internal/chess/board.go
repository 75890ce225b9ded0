package chess

// Square indexes the 64 squares from a1 (0) to h8 (63), rank by rank.
type Square int8

// NoSquare is returned for coordinates off the board.
const NoSquare Square = -1

// SquareAt returns the square at col and rank, or NoSquare.
func SquareAt(col Col, rank Rank) Square {
	if col < FirstCol || col > LastCol || rank < FirstRank || rank > LastRank {
		return NoSquare
	}
	return Square(int(rank-FirstRank)*BoardSize + int(col-FirstCol))
}

func (s Square) Col() Col   { return FirstCol + Col(int(s)%BoardSize) }
func (s Square) Rank() Rank { return FirstRank + Rank(int(s)/BoardSize) }

func (s Square) String() string {
	if s < 0 || s >= BoardSize*BoardSize {
		return "-"
	}
	return SquareName(s.Col(), s.Rank())
}

// Step returns the square dc files and dr ranks away, or NoSquare when that
// leaves the board.
func (s Square) Step(dc, dr int) Square {
	if s == NoSquare {
		return NoSquare
	}
	col := int(s.Col()) + dc
	rank := int(s.Rank()) + dr
	if col < int(FirstCol) || col > int(LastCol) || rank < int(FirstRank) || rank > int(LastRank) {
		return NoSquare
	}
	return SquareAt(Col(col), Rank(rank))
}

// CastleSide selects the king or queen side rook.
type CastleSide uint8

const (
	KingSide CastleSide = iota
	QueenSide
)

// Board is a position: the men on the squares plus the state FEN records.
// Boards hold no pointers, so assigning one copies it.
type Board struct {
	squares [BoardSize * BoardSize]Man
	kings   [2]Square

	ToMove        Colour
	MoveNumber    uint
	HalfmoveClock uint

	// Castling holds the starting file of each castling rook, indexed by
	// colour and side, or 0 once the right is lost.
	Castling [2][2]Col

	// EnPassant is the square a pawn skipped on the last move, NoSquare
	// when no capture onto it is possible.
	EnPassant Square
}

// NewBoard returns an empty board with White to move.
func NewBoard() *Board {
	return &Board{
		kings:      [2]Square{NoSquare, NoSquare},
		ToMove:     White,
		MoveNumber: 1,
		EnPassant:  NoSquare,
	}
}

// At returns the man on sq; off-board squares are empty.
func (b *Board) At(sq Square) Man {
	if sq < 0 || int(sq) >= len(b.squares) {
		return NoMan
	}
	return b.squares[sq]
}

// Put places m on sq, replacing whatever stood there. Kings are tracked.
func (b *Board) Put(sq Square, m Man) {
	if sq < 0 || int(sq) >= len(b.squares) {
		return
	}
	if old := b.squares[sq]; old.Piece == King && b.kings[old.Colour] == sq {
		b.kings[old.Colour] = NoSquare
	}
	b.squares[sq] = m
	if m.Piece == King {
		b.kings[m.Colour] = sq
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) { b.Put(sq, NoMan) }

// King returns where the king of colour stands, or NoSquare.
func (b *Board) King(colour Colour) Square { return b.kings[colour] }

// CanCastle reports whether colour still holds the right on side.
func (b *Board) CanCastle(colour Colour, side CastleSide) bool {
	return b.Castling[colour][side] != 0
}

// DropCastling removes both rights of colour.
func (b *Board) DropCastling(colour Colour) {
	b.Castling[colour] = [2]Col{}
}

// Find returns the squares holding m, in square order.
func (b *Board) Find(m Man) []Square {
	var found []Square
	for sq, man := range b.squares {
		if man == m {
			found = append(found, Square(sq))
		}
	}
	return found
}
