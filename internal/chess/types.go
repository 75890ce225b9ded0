// Package chess provides the board, move and tag types shared by the
// parser, the rules engine and the extractor.
package chess

// Colour is the side a piece belongs to.
type Colour uint8

const (
	White Colour = iota
	Black
)

func (c Colour) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// Opposite returns the other side.
func (c Colour) Opposite() Colour { return c ^ 1 }

// Forward is the rank step of this colour's pawns.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank is the rank the colour's king and rooks start on.
func (c Colour) HomeRank() Rank {
	if c == White {
		return FirstRank
	}
	return LastRank
}

// Piece is a piece kind without colour. Empty marks a vacant square.
type Piece uint8

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// pieceLetters holds the English letter of each piece, indexed by Piece.
const pieceLetters = " PNBRQK"

func (p Piece) String() string {
	switch p {
	case Empty:
		return "Empty"
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "Unknown"
}

// Letter returns the upper-case English letter for p, '?' for Empty.
func (p Piece) Letter() byte {
	if p == Empty || int(p) >= len(pieceLetters) {
		return '?'
	}
	return pieceLetters[p]
}

// PieceFromLetter maps an English piece letter of either case. ok is false
// for anything else.
func PieceFromLetter(c byte) (p Piece, ok bool) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for i := 1; i < len(pieceLetters); i++ {
		if pieceLetters[i] == c {
			return Piece(i), true
		}
	}
	return Empty, false
}

// Man is a piece standing on the board. The zero value is an empty square.
type Man struct {
	Piece  Piece
	Colour Colour
}

// NoMan is the content of an empty square.
var NoMan = Man{}

// IsEmpty reports whether the square holding m is vacant.
func (m Man) IsEmpty() bool { return m.Piece == Empty }

// FENLetter returns the letter FEN uses for m: upper case for White.
func (m Man) FENLetter() byte {
	letter := m.Piece.Letter()
	if m.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// WhiteMan returns a white p.
func WhiteMan(p Piece) Man { return Man{Piece: p, Colour: White} }

// BlackMan returns a black p.
func BlackMan(p Piece) Man { return Man{Piece: p, Colour: Black} }

// MoveClass categorizes the shapes a move can take.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
	NullMove
	UnknownMove
)

// Rank is a rank character, '1' to '8'.
type Rank byte

// Col is a file character, 'a' to 'h'.
type Col byte

const (
	BoardSize = 8

	FirstRank Rank = '1'
	LastRank  Rank = '8'
	FirstCol  Col  = 'a'
	LastCol   Col  = 'h'
)

// NullMoveString is the PGN representation of a null move.
const NullMoveString = "--"

// SquareName returns the algebraic name of a square, e.g. "e4".
func SquareName(col Col, rank Rank) string {
	return string([]byte{byte(col), byte(rank)})
}

// CheckStatus records the check suffix written after a move.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)
