package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/pgn2csv-go/internal/chess"
	"github.com/lgbarn/pgn2csv-go/internal/errors"
)

// InitialFEN is the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func invalidFEN(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidFEN)
}

// fenFields parse the fields after the placement, in order.
var fenFields = []func(*chess.Board, string) error{
	parseSideToMove,
	parseCastling,
	parseEnPassant,
	parseHalfmoveClock,
	parseMoveNumber,
}

// ParseFEN builds a board from a FEN string. The placement field must
// describe eight ranks of eight squares with one king per side. Missing
// trailing fields keep their defaults: White to move, no castling, no en
// passant square, clocks 0 and 1.
func ParseFEN(fen string) (*chess.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 || len(fields) > 1+len(fenFields) {
		return nil, invalidFEN("%d fields in %q", len(fields), fen)
	}

	board := chess.NewBoard()
	if err := parsePlacement(board, fields[0]); err != nil {
		return nil, err
	}
	for i, field := range fields[1:] {
		if err := fenFields[i](board, field); err != nil {
			return nil, err
		}
	}
	return board, nil
}

// StartingBoard returns a board set up at InitialFEN.
func StartingBoard() *chess.Board {
	board, _ := ParseFEN(InitialFEN)
	return board
}

func parsePlacement(board *chess.Board, field string) error {
	rows := strings.Split(field, "/")
	if len(rows) != chess.BoardSize {
		return invalidFEN("%d ranks in placement", len(rows))
	}

	for i, row := range rows {
		rank := chess.LastRank - chess.Rank(i)
		col := chess.FirstCol
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				col += chess.Col(c - '0')
			} else {
				piece, ok := chess.PieceFromLetter(c)
				if !ok {
					return invalidFEN("invalid piece character %q", c)
				}
				sq := chess.SquareAt(col, rank)
				if sq == chess.NoSquare {
					return invalidFEN("rank %c overflows", rank)
				}
				colour := chess.White
				if c >= 'a' {
					colour = chess.Black
				}
				board.Put(sq, chess.Man{Piece: piece, Colour: colour})
				col++
			}
			if col > chess.LastCol+1 {
				return invalidFEN("rank %c overflows", rank)
			}
		}
		if col != chess.LastCol+1 {
			return invalidFEN("rank %c has %d squares", rank, int(col-chess.FirstCol))
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := len(board.Find(chess.Man{Piece: chess.King, Colour: colour})); n != 1 {
			return invalidFEN("%d %s kings", n, colour)
		}
	}
	return nil
}

func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return invalidFEN("invalid side to move %q", field)
	}
	return nil
}

// parseCastling accepts KQkq and Shredder-FEN rook files.
func parseCastling(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch c {
		case 'K':
			board.Castling[chess.White][chess.KingSide] = 'h'
		case 'Q':
			board.Castling[chess.White][chess.QueenSide] = 'a'
		case 'k':
			board.Castling[chess.Black][chess.KingSide] = 'h'
		case 'q':
			board.Castling[chess.Black][chess.QueenSide] = 'a'
		default:
			colour, col := chess.White, chess.Col(c+'a'-'A')
			if c >= 'a' {
				colour, col = chess.Black, chess.Col(c)
			}
			if col < chess.FirstCol || col > chess.LastCol {
				return invalidFEN("invalid castling character %q", c)
			}
			side := chess.KingSide
			if col < board.King(colour).Col() {
				side = chess.QueenSide
			}
			board.Castling[colour][side] = col
		}
	}
	return nil
}

func parseEnPassant(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	if len(field) == 2 && (field[1] == '3' || field[1] == '6') {
		if sq := chess.SquareAt(chess.Col(field[0]), chess.Rank(field[1])); sq != chess.NoSquare {
			board.EnPassant = sq
			return nil
		}
	}
	return invalidFEN("invalid en passant square %q", field)
}

func parseHalfmoveClock(board *chess.Board, field string) error {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return invalidFEN("halfmove clock %q", field)
	}
	board.HalfmoveClock = uint(n)
	return nil
}

func parseMoveNumber(board *chess.Board, field string) error {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil || n == 0 {
		return invalidFEN("fullmove number %q", field)
	}
	board.MoveNumber = uint(n)
	return nil
}

// castlingLetters lists the FEN letter of each right in output order.
var castlingLetters = []struct {
	colour chess.Colour
	side   chess.CastleSide
	letter byte
}{
	{chess.White, chess.KingSide, 'K'},
	{chess.White, chess.QueenSide, 'Q'},
	{chess.Black, chess.KingSide, 'k'},
	{chess.Black, chess.QueenSide, 'q'},
}

// FormatFEN renders board as a six-field FEN string.
func FormatFEN(board *chess.Board) string {
	var sb strings.Builder

	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		gap := 0
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			m := board.At(chess.SquareAt(col, rank))
			if m.IsEmpty() {
				gap++
				continue
			}
			if gap > 0 {
				sb.WriteByte(byte('0' + gap))
				gap = 0
			}
			sb.WriteByte(m.FENLetter())
		}
		if gap > 0 {
			sb.WriteByte(byte('0' + gap))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}

	side := " w "
	if board.ToMove == chess.Black {
		side = " b "
	}
	sb.WriteString(side)

	rights := 0
	for _, c := range castlingLetters {
		if board.CanCastle(c.colour, c.side) {
			sb.WriteByte(c.letter)
			rights++
		}
	}
	if rights == 0 {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " %s %d %d", board.EnPassant, board.HalfmoveClock, board.MoveNumber)
	return sb.String()
}
