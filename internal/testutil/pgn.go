package testutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/pgn2csv-go/internal/config"
)

// Game builds the PGN text of one game.
type Game struct {
	tags     [][2]string
	movetext string
}

// NewGame starts an empty game.
func NewGame() *Game {
	return &Game{}
}

// Tag adds a header. Headers keep the order they are added in.
func (g *Game) Tag(key, value string) *Game {
	g.tags = append(g.tags, [2]string{key, value})
	return g
}

// Moves sets the movetext, including any comments and the result.
func (g *Game) Moves(movetext string) *Game {
	g.movetext = movetext
	return g
}

// String returns the game as PGN.
func (g *Game) String() string {
	var sb strings.Builder
	for _, tag := range g.tags {
		fmt.Fprintf(&sb, "[%s %q]\n", tag[0], tag[1])
	}
	if len(g.tags) > 0 {
		sb.WriteByte('\n')
	}
	sb.WriteString(g.movetext)
	sb.WriteByte('\n')
	return sb.String()
}

// PGN joins games into one input, separated by blank lines.
func PGN(games ...*Game) string {
	parts := make([]string, len(games))
	for i, g := range games {
		parts[i] = g.String()
	}
	return strings.Join(parts, "\n")
}

// SilentConfig returns a default config that logs nowhere.
func SilentConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	cfg.SetLog(io.Discard)
	return cfg
}
