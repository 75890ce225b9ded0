package chess

// Move is one decoded move of the movetext. It records only what the text
// says; the replayer resolves it against a position.
type Move struct {
	// Text as written, including any check suffix
	Text string

	Class MoveClass

	// Source square where the text disambiguates, otherwise 0
	FromCol  Col
	FromRank Rank

	ToCol  Col
	ToRank Rank

	PieceToMove   Piece
	PromotedPiece Piece
	CheckStatus   CheckStatus
}

// NewMove returns an empty move.
func NewMove() *Move {
	return &Move{Class: UnknownMove}
}

func (m *Move) IsPromotion() bool { return m.Class == PawnMoveWithPromotion }
func (m *Move) IsNull() bool      { return m.Class == NullMove }

func (m *Move) IsCastle() bool {
	return m.Class == KingsideCastle || m.Class == QueensideCastle
}

// To returns the destination square name, or "" if the text leaves it open.
func (m *Move) To() string {
	if m.ToCol == 0 || m.ToRank == 0 {
		return ""
	}
	return SquareName(m.ToCol, m.ToRank)
}
