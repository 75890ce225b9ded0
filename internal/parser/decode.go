package parser

import (
	"strings"

	"github.com/lgbarn/pgn2csv-go/internal/chess"
)

// sanScanner walks the text of a single move.
type sanScanner struct {
	text string
	pos  int
}

func (s *sanScanner) peek() byte {
	if s.pos < len(s.text) {
		return s.text[s.pos]
	}
	return 0
}

func (s *sanScanner) rest() string { return s.text[s.pos:] }

func (s *sanScanner) col() (chess.Col, bool) {
	c := chess.Col(s.peek())
	if c < chess.FirstCol || c > chess.LastCol {
		return 0, false
	}
	s.pos++
	return c, true
}

func (s *sanScanner) rank() (chess.Rank, bool) {
	c := chess.Rank(s.peek())
	if c < chess.FirstRank || c > chess.LastRank {
		return 0, false
	}
	s.pos++
	return c, true
}

// separator skips a capture mark or the dash of long algebraic notation.
func (s *sanScanner) separator() {
	switch s.peek() {
	case 'x', 'X', ':', '-':
		s.pos++
	}
}

// pieceLetter maps English, Dutch and German piece letters. A lowercase b
// is left to the caller since it is usually a file.
func pieceLetter(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q', 'D':
		return chess.Queen
	case 'R', 'r', 'T':
		return chess.Rook
	case 'N', 'n', 'P', 'S':
		return chess.Knight
	case 'B', 'L':
		return chess.Bishop
	}
	return chess.Empty
}

func isCastleLetter(c byte) bool {
	return c == 'O' || c == 'o' || c == '0'
}

// DecodeMove classifies move text and records the squares and pieces it
// names. Text that fits no move shape decodes as an UnknownMove; resolving
// the move against a position is left to the replayer.
func DecodeMove(text string) *chess.Move {
	move := chess.NewMove()
	move.Text = text

	if text == chess.NullMoveString {
		move.Class = chess.NullMove
		return move
	}

	s := &sanScanner{text: text}
	var ok bool
	switch c := s.peek(); {
	case chess.Col(c) >= chess.FirstCol && chess.Col(c) <= chess.LastCol:
		ok = s.pawnMove(move)
	case pieceLetter(c) != chess.Empty:
		ok = s.pieceMove(move)
	case isCastleLetter(c):
		ok = s.castle(move)
	}

	if !ok || !s.suffix(move) {
		move.Class = chess.UnknownMove
	}
	return move
}

// pawnMove reads e4, exd5, axb, e8=Q and the long forms e2e4 and e2-e4.
func (s *sanScanner) pawnMove(m *chess.Move) bool {
	m.Class = chess.PawnMove
	m.PieceToMove = chess.Pawn

	col, _ := s.col()
	if rank, ok := s.rank(); ok {
		s.separator()
		if to, ok := s.col(); ok {
			m.FromCol, m.FromRank, m.ToCol = col, rank, to
			m.ToRank, _ = s.rank()
		} else {
			m.ToCol, m.ToRank = col, rank
		}
	} else {
		s.separator()
		to, ok := s.col()
		if !ok {
			return false
		}
		m.FromCol, m.ToCol = col, to
		var hasRank bool
		m.ToRank, hasRank = s.rank()

		// bxc8 could be the bishop on b-something, so only the capture of a
		// neighbouring file is checked there.
		adjacent := byte(col) == byte(to)+1 || byte(col)+1 == byte(to)
		if !adjacent && !(hasRank && col == 'b') {
			return false
		}
	}

	s.promotion(m)
	return true
}

func (s *sanScanner) promotion(m *chess.Move) {
	if s.peek() == '=' {
		s.pos++
	}
	piece := pieceLetter(s.peek())
	if piece == chess.Empty && s.peek() == 'b' {
		piece = chess.Bishop
	}
	if piece != chess.Empty {
		m.Class = chess.PawnMoveWithPromotion
		m.PromotedPiece = piece
		s.pos++
	}
}

// pieceMove reads Nf3, Nxf3, Nbd7, N1d2, Ng1f3 and Ng1-f3.
func (s *sanScanner) pieceMove(m *chess.Move) bool {
	m.Class = chess.PieceMove
	m.PieceToMove = pieceLetter(s.peek())
	s.pos++

	var ok bool
	if m.FromRank, ok = s.rank(); ok {
		s.separator()
		if m.ToCol, ok = s.col(); !ok {
			return false
		}
		m.ToRank, _ = s.rank()
		return true
	}

	if s.peek() == 'x' || s.peek() == 'X' || s.peek() == ':' {
		s.pos++
		return s.target(m)
	}

	col, ok := s.col()
	if !ok {
		return false
	}
	s.separator()

	rank, ok := s.rank()
	if !ok {
		// Rae1
		m.FromCol = col
		return s.target(m)
	}
	s.separator()
	if _, more := s.col(); !more {
		m.ToCol, m.ToRank = col, rank
		return true
	}
	s.pos--
	m.FromCol, m.FromRank = col, rank
	return s.target(m)
}

// target reads a full destination square.
func (s *sanScanner) target(m *chess.Move) bool {
	var ok bool
	if m.ToCol, ok = s.col(); !ok {
		return false
	}
	m.ToRank, ok = s.rank()
	return ok
}

// castle reads O-O and O-O-O in any mix of O, o and 0 with optional dashes.
func (s *sanScanner) castle(m *chess.Move) bool {
	letters := 0
	for letters < 3 && isCastleLetter(s.peek()) {
		letters++
		s.pos++
		if s.peek() == '-' {
			s.pos++
		}
	}

	m.PieceToMove = chess.King
	switch letters {
	case 2:
		m.Class = chess.KingsideCastle
	case 3:
		m.Class = chess.QueensideCastle
	default:
		return false
	}
	return true
}

// suffix reads trailing check marks and an en passant note. Anything else
// left over makes the move unknown.
func (s *sanScanner) suffix(m *chess.Move) bool {
	for c := s.peek(); c == '+' || c == '#'; c = s.peek() {
		if c == '#' {
			m.CheckStatus = chess.Checkmate
		} else if m.CheckStatus == chess.NoCheck {
			m.CheckStatus = chess.Check
		}
		s.pos++
	}

	rest := s.rest()
	if rest == "" {
		return true
	}
	if m.Class == chess.PawnMove && (strings.HasSuffix(rest, "ep") || strings.HasSuffix(rest, "e.p.")) {
		m.Class = chess.EnPassantPawnMove
		return true
	}
	return false
}
