package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/pgn2csv-go/internal/chess"
	pgnerrors "github.com/lgbarn/pgn2csv-go/internal/errors"
)

func squareNamed(name string) chess.Square {
	return chess.SquareAt(chess.Col(name[0]), chess.Rank(name[1]))
}

func TestParseFEN_Pieces(t *testing.T) {
	board := mustBoard(t, InitialFEN)

	want := map[string]chess.Man{
		"e1": chess.WhiteMan(chess.King),
		"d8": chess.BlackMan(chess.Queen),
		"a1": chess.WhiteMan(chess.Rook),
		"g8": chess.BlackMan(chess.Knight),
		"c2": chess.WhiteMan(chess.Pawn),
		"f7": chess.BlackMan(chess.Pawn),
		"e4": chess.NoMan,
	}
	for name, man := range want {
		if got := board.At(squareNamed(name)); got != man {
			t.Errorf("At(%s) = %+v, want %+v", name, got, man)
		}
	}
	if board.King(chess.White) != squareNamed("e1") || board.King(chess.Black) != squareNamed("e8") {
		t.Errorf("kings on %s and %s", board.King(chess.White), board.King(chess.Black))
	}
}

func TestParseFEN_State(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		toMove    chess.Colour
		castling  [2][2]chess.Col
		enPassant string
		clock     uint
		number    uint
	}{
		{
			name:      "after 1.e4",
			fen:       "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			toMove:    chess.Black,
			castling:  [2][2]chess.Col{{'h', 'a'}, {'h', 'a'}},
			enPassant: "e3",
			number:    1,
		},
		{
			name:      "no castling",
			fen:       "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 7 31",
			toMove:    chess.White,
			enPassant: "-",
			clock:     7,
			number:    31,
		},
		{
			name:      "shredder castling files",
			fen:       "1r2k1r1/8/8/8/8/8/8/1R2K1R1 w GBgb - 0 1",
			toMove:    chess.White,
			castling:  [2][2]chess.Col{{'g', 'b'}, {'g', 'b'}},
			enPassant: "-",
			number:    1,
		},
		{
			name:      "placement only",
			fen:       "4k3/8/8/8/8/8/8/4K3",
			toMove:    chess.White,
			enPassant: "-",
			number:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.fen)
			if b.ToMove != tt.toMove {
				t.Errorf("ToMove = %v, want %v", b.ToMove, tt.toMove)
			}
			if b.Castling != tt.castling {
				t.Errorf("Castling = %c, want %c", b.Castling, tt.castling)
			}
			if got := b.EnPassant.String(); got != tt.enPassant {
				t.Errorf("EnPassant = %s, want %s", got, tt.enPassant)
			}
			if b.HalfmoveClock != tt.clock || b.MoveNumber != tt.number {
				t.Errorf("clocks = %d %d, want %d %d", b.HalfmoveClock, b.MoveNumber, tt.clock, tt.number)
			}
		})
	}
}

func TestParseFEN_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty string":           "",
		"seven fields":           InitialFEN + " extra",
		"seven ranks":            "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"short rank":             "rnbqkbnr/pppppppp/8/8/7/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"long rank":              "rnbqkbnr/pppppppp/8/8/44P/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"digits overflow":        "rnbqkbnr/pppppppp/8/8/88888888/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"unknown piece":          "rnbqkbnr/pppppppp/8/8/3X4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"missing black king":     "8/8/8/8/8/8/8/4K3 w - - 0 1",
		"two white kings":        "4k3/8/8/8/8/8/8/3KK3 w - - 0 1",
		"bad side to move":       "4k3/8/8/8/8/8/8/4K3 x - - 0 1",
		"bad en passant square":  "4k3/8/8/8/8/8/8/4K3 w - e4 0 1",
		"en passant off board":   "4k3/8/8/8/8/8/8/4K3 w - j3 0 1",
		"bad castling character": "4k3/8/8/8/8/8/8/4K3 w X - 0 1",
		"bad clock":              "4k3/8/8/8/8/8/8/4K3 w - - x 1",
		"zero move number":       "4k3/8/8/8/8/8/8/4K3 w - - 0 0",
	}

	for name, fen := range tests {
		t.Run(name, func(t *testing.T) {
			board, err := ParseFEN(fen)
			if !errors.Is(err, pgnerrors.ErrInvalidFEN) {
				t.Errorf("ParseFEN(%q) = %v, %v; want ErrInvalidFEN", fen, board, err)
			}
		})
	}
}

func TestFormatFEN_RoundTrip(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - - 12 40",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w Kq - 4 4",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			if got := FormatFEN(mustBoard(t, fen)); got != fen {
				t.Errorf("FormatFEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestFormatFEN_FillsDefaults(t *testing.T) {
	got := FormatFEN(mustBoard(t, "4k3/8/8/8/8/8/8/4K3 b"))
	if want := "4k3/8/8/8/8/8/8/4K3 b - - 0 1"; got != want {
		t.Errorf("FormatFEN() = %q, want %q", got, want)
	}
}

func TestStartingBoard(t *testing.T) {
	if got := FormatFEN(StartingBoard()); got != InitialFEN {
		t.Errorf("FormatFEN(StartingBoard()) = %q, want %q", got, InitialFEN)
	}
}
