package parser

import "github.com/lgbarn/pgn2csv-go/internal/chess"

// Skip tells the Reader whether to walk or skip the following movetext or
// variation.
type Skip bool

const (
	// Continue walks the movetext or variation.
	Continue Skip = false

	// SkipVariation consumes a variation without callbacks.
	SkipVariation Skip = true

	// SkipMovetext consumes the rest of the game up to its result without
	// move, comment or NAG callbacks.
	SkipMovetext Skip = true
)

// MovetextVisitor receives the events of one game in input order.
// Calls are never concurrent and never re-entrant.
type MovetextVisitor interface {
	// BeginGame is called before the first header of a game.
	BeginGame()

	// Header is called once per tag pair, in file order.
	Header(key, value string)

	// EndHeaders is called after the last header, also for games without
	// headers.
	EndHeaders() Skip

	// Move is called for every move of the main line and of walked variations.
	Move(move *chess.Move)

	// NAG is called with a "$n" glyph; move annotations such as "!?" arrive
	// already converted.
	NAG(nag string)

	// Comment is called with the trimmed text of a {...} comment.
	Comment(text string)

	// BeginVariation is called at "(".
	BeginVariation() Skip

	// EndVariation is called at the ")" of a walked variation.
	EndVariation()

	// Outcome is called with the game termination marker.
	Outcome(result string)
}

// Visitor is a MovetextVisitor that produces a value per game.
type Visitor[R any] interface {
	MovetextVisitor

	// EndGame is called once per game; its value is returned by ReadGame.
	EndGame() R
}
