package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/pgn2csv-go/internal/chess"
	pgnerrors "github.com/lgbarn/pgn2csv-go/internal/errors"
	"github.com/lgbarn/pgn2csv-go/internal/parser"
)

func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	return board
}

func TestApplyMove_Legal(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		san     string
		wantFEN string
	}{
		{
			name:    "double pawn push sets en passant square",
			fen:     InitialFEN,
			san:     "e4",
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "knight development",
			fen:     InitialFEN,
			san:     "Nf3",
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		},
		{
			name:    "long algebraic knight move",
			fen:     InitialFEN,
			san:     "g1f3",
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		},
		{
			name:    "white kingside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			san:     "O-O",
			wantFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 1 1",
		},
		{
			name:    "long algebraic castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			san:     "e1g1",
			wantFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 1 1",
		},
		{
			name:    "black queenside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			san:     "O-O-O",
			wantFEN: "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQ - 1 2",
		},
		{
			name:    "queenside castle with attacked b1 square",
			fen:     "1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 1",
			san:     "O-O-O",
			wantFEN: "1r2k3/8/8/8/8/8/8/2KR4 b - - 1 1",
		},
		{
			name:    "en passant without suffix",
			fen:     "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
			san:     "fxe6",
			wantFEN: "rnbqkbnr/pppp1ppp/4P3/8/8/8/PPPPP1PP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:    "promotion",
			fen:     "8/P7/8/8/8/8/8/4K2k w - - 0 1",
			san:     "a8=Q",
			wantFEN: "Q7/8/8/8/8/8/8/4K2k b - - 0 1",
		},
		{
			name:    "underpromotion with capture",
			fen:     "1r5k/P7/8/8/8/8/8/4K3 w - - 0 1",
			san:     "axb8=N",
			wantFEN: "1N5k/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:    "pinned knight leaves the other knight unambiguous",
			fen:     "4k3/4r3/8/1N6/8/8/4N3/4K3 w - - 0 1",
			san:     "Nc3",
			wantFEN: "4k3/4r3/8/8/8/2N5/4N3/4K3 b - - 1 1",
		},
		{
			name:    "file disambiguation",
			fen:     "4k3/8/8/1N6/8/8/4N3/4K3 w - - 0 1",
			san:     "Nbc3",
			wantFEN: "4k3/8/8/8/8/2N5/4N3/4K3 b - - 1 1",
		},
		{
			name:    "rook move loses one castling right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			san:     "Rh2",
			wantFEN: "r3k2r/8/8/8/8/8/7R/R3K3 b Qkq - 1 1",
		},
		{
			name:    "rook capture removes both sides' rights",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			san:     "Rxa8+",
			wantFEN: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:    "file-only pawn capture",
			fen:     "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1",
			san:     "ed",
			wantFEN: "4k3/8/8/3P4/8/8/8/4K3 b - - 0 1",
		},
		{
			name:    "black double push sets en passant square",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			san:     "c5",
			wantFEN: "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		},
		{
			name:    "king move drops both rights",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 3 20",
			san:     "Kd7",
			wantFEN: "r6r/3k4/8/8/8/8/8/R3K2R w KQ - 4 21",
		},
		{
			name:    "null move",
			fen:     InitialFEN,
			san:     "--",
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 1 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)

			if err := ApplyMove(board, parser.DecodeMove(tt.san)); err != nil {
				t.Fatalf("ApplyMove(%s) error = %v", tt.san, err)
			}
			if got := FormatFEN(board); got != tt.wantFEN {
				t.Errorf("FormatFEN() = %q, want %q", got, tt.wantFEN)
			}
		})
	}
}

func TestApplyMove_Illegal(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		san  string
	}{
		{"pinned piece", "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1", "Nc3"},
		{"ambiguous knight", "4k3/8/8/1N6/8/8/4N3/4K3 w - - 0 1", "Nc3"},
		{"king into check", "4k3/8/8/8/8/8/r7/4K3 w - - 0 1", "Kd2"},
		{"no piece reaches", InitialFEN, "Nd4"},
		{"capture own piece", InitialFEN, "Nd2"},
		{"castle without right", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", "O-O"},
		{"castle through check", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", "O-O"},
		{"castle out of check", "4r1k1/8/8/8/8/8/8/R3K2R w KQ - 0 1", "O-O"},
		{"castle path blocked", InitialFEN, "O-O"},
		{"pawn push onto a piece", "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1", "e3"},
		{"pawn double push through a piece", "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1", "e4"},
		{"pawn capture with nothing to take", InitialFEN, "exd3"},
		{"promotion without piece", "8/P7/8/8/8/8/8/4K2k w - - 0 1", "a8"},
		{"promotion on wrong rank", InitialFEN, "e3=Q"},
		{"en passant without target", "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq - 0 3", "fxe6"},
		{"garbage", InitialFEN, "Zz9"},
		{"wrong side to move", InitialFEN, "e5"},
		{"ambiguous file-only capture", "4k3/8/8/2p5/3P4/2p5/3P4/4K3 w - - 0 1", "dxc"},
		{"king captures defended piece", "4k3/8/8/8/8/2b5/3p4/4K3 w - - 0 1", "Kxd2"},
		{"rook jumps over a piece", InitialFEN, "Ra3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			before := FormatFEN(board)

			err := ApplyMove(board, parser.DecodeMove(tt.san))
			if !errors.Is(err, pgnerrors.ErrIllegalMove) {
				t.Fatalf("ApplyMove(%s) error = %v, want ErrIllegalMove", tt.san, err)
			}
			if after := FormatFEN(board); after != before {
				t.Errorf("board changed after illegal move: %q -> %q", before, after)
			}
		})
	}
}

func TestApplyMove_NilMove(t *testing.T) {
	board := StartingBoard()
	if err := ApplyMove(board, nil); !errors.Is(err, pgnerrors.ErrIllegalMove) {
		t.Errorf("ApplyMove(nil) error = %v, want ErrIllegalMove", err)
	}
}

func TestApplyMove_Game(t *testing.T) {
	board := StartingBoard()
	moves := []string{"e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#"}

	for _, san := range moves {
		if err := ApplyMove(board, parser.DecodeMove(san)); err != nil {
			t.Fatalf("ApplyMove(%s) error = %v", san, err)
		}
	}

	want := "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4"
	if got := FormatFEN(board); got != want {
		t.Errorf("final FEN = %q, want %q", got, want)
	}
	if !InCheck(board, chess.Black) {
		t.Error("black should be in check after Qxf7#")
	}
}

func TestInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial", InitialFEN, chess.White, false},
		{"queen check", "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3", chess.White, true},
		{"knight check", "4k3/8/3N4/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"pawn check", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"blocked rook", "4k3/4p3/8/8/8/8/8/4RK2 b - - 0 1", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := InCheck(board, tt.colour); got != tt.want {
				t.Errorf("InCheck() = %v, want %v", got, tt.want)
			}
		})
	}
}
