package parser

import (
	"fmt"
	"io"

	"github.com/lgbarn/pgn2csv-go/internal/config"
	"github.com/lgbarn/pgn2csv-go/internal/errors"
)

// Reader walks PGN games from an input stream, one token of look-ahead at
// a time, reporting each game to a Visitor.
type Reader struct {
	lexer        *Lexer
	currentToken *Token
	ravLevel     uint
	cfg          *config.Config
}

// NewReader creates a new reader for the given input.
// If cfg is nil, a default config is created.
func NewReader(r io.Reader, cfg *config.Config) *Reader {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Reader{
		lexer: NewLexer(r, cfg),
		cfg:   cfg,
	}
}

// ReadGame walks the next game and returns the visitor's EndGame value.
// ok is false when the input holds no further game. A read error from the
// underlying stream is returned after the game that hit it has ended.
func ReadGame[R any](r *Reader, v Visitor[R]) (result R, ok bool, err error) {
	// Get first token if we haven't yet
	if r.currentToken == nil {
		r.nextToken()
	}

	r.skipToNextGame()

	if r.currentToken.Type == EOFToken {
		return result, false, r.readErr()
	}

	r.readGame(v)
	return v.EndGame(), true, r.readErr()
}

// ReadAll walks every game in the input, handing each EndGame value to fn.
// It stops at the first error from fn or from the input and returns the
// number of games read.
func ReadAll[R any](r *Reader, v Visitor[R], fn func(R) error) (int, error) {
	games := 0
	for {
		result, ok, err := ReadGame(r, v)
		if ok {
			games++
			if fn != nil {
				if ferr := fn(result); ferr != nil {
					return games, ferr
				}
			}
		}
		if err != nil {
			return games, err
		}
		if !ok {
			return games, nil
		}
	}
}

func (r *Reader) readErr() error {
	if err := r.lexer.Err(); err != nil {
		return &errors.ParseError{
			Err:  fmt.Errorf("read: %w", err),
			File: r.cfg.CurrentInputFile,
			Line: int(r.lexer.LineNumber()),
		}
	}
	return nil
}

// nextToken gets the next token from the lexer.
func (r *Reader) nextToken() {
	r.currentToken = r.lexer.NextToken()
}

// readGame walks one game from its first tag or move to its result.
func (r *Reader) readGame(v MovetextVisitor) {
	r.ravLevel = 0
	r.lexer.RestartForNewGame()

	v.BeginGame()
	r.parseOptTagList(v)

	if v.EndHeaders() == SkipMovetext {
		r.skipMovetext(v)
		return
	}

	r.parseOptAnnotations(v)
	r.parseMoveList(v)
	r.parseOptAnnotations(v)

	if result := r.parseResult(); result != "" {
		v.Outcome(result)
	}
}

// skipToNextGame skips tokens until the start of a game is found.
func (r *Reader) skipToNextGame() {
	for {
		switch r.currentToken.Type {
		case EOFToken, TagToken, MoveToken, TerminatingResult:
			return
		default:
			r.nextToken()
		}
	}
}

// parseOptTagList parses zero or more tags.
func (r *Reader) parseOptTagList(v MovetextVisitor) {
	for r.parseTag(v) {
	}
}

// parseTag parses a single tag.
func (r *Reader) parseTag(v MovetextVisitor) bool {
	if r.currentToken.Type == TagToken {
		tagName := r.currentToken.TokenString
		r.nextToken()

		if r.currentToken.Type == StringToken {
			v.Header(tagName, r.currentToken.TokenString)
			r.nextToken()
		} else {
			fmt.Fprintf(r.cfg.LogFile, "Missing tag string for %s.\n", tagName)
		}
		return true
	}

	if r.currentToken.Type == StringToken {
		fmt.Fprintf(r.cfg.LogFile, "Missing tag name for %s.\n", r.currentToken.TokenString)
		r.nextToken()
		return true
	}

	return false
}

// parseMoveList parses a list of moves and reports whether any were found.
func (r *Reader) parseMoveList(v MovetextVisitor) bool {
	found := false
	for r.parseMoveAndVariants(v) {
		found = true
	}
	return found
}

// parseMoveAndVariants parses a move with its variations.
func (r *Reader) parseMoveAndVariants(v MovetextVisitor) bool {
	if !r.parseMove(v) {
		return false
	}

	for r.currentToken.Type == RAVStart {
		r.parseVariant(v)
		r.parseOptAnnotations(v)
	}
	return true
}

// parseMove parses a single move and the comments and NAGs that follow it.
func (r *Reader) parseMove(v MovetextVisitor) bool {
	// Repeated numbers, as in "12. 12...", belong to one move.
	for r.currentToken.Type == MoveNumber {
		r.nextToken()
		r.parseOptAnnotations(v)
	}

	if r.currentToken.Type != MoveToken {
		return false
	}

	move := r.currentToken.MoveDetails
	r.nextToken()

	// Stray check symbols separated from the move by whitespace
	for r.currentToken.Type == CheckSymbol {
		r.nextToken()
	}

	if move.IsNull() && r.ravLevel == 0 && !r.cfg.AllowNullMoves {
		fmt.Fprintf(r.cfg.LogFile, "Null moves (--) only allowed in variations.\n")
	}

	v.Move(move)
	r.parseOptAnnotations(v)
	return true
}

// parseOptAnnotations reports any run of comments and NAGs.
func (r *Reader) parseOptAnnotations(v MovetextVisitor) {
	for {
		switch r.currentToken.Type {
		case CommentToken:
			v.Comment(r.currentToken.TokenString)
		case NAGToken:
			v.NAG(r.currentToken.TokenString)
		default:
			return
		}
		r.nextToken()
	}
}

// parseVariant parses a single variation, or consumes it when the visitor
// asks to skip it.
func (r *Reader) parseVariant(v MovetextVisitor) {
	r.ravLevel++
	r.nextToken()

	if v.BeginVariation() == SkipVariation {
		r.skipVariation()
		return
	}

	r.parseOptAnnotations(v)
	if !r.parseMoveList(v) {
		fmt.Fprintf(r.cfg.LogFile, "Missing move list in variation.\n")
	}

	if result := r.parseResult(); result != "" {
		r.parseOptAnnotations(v)
	}

	if r.currentToken.Type == RAVEnd {
		r.ravLevel--
		r.nextToken()
	} else {
		fmt.Fprintf(r.cfg.LogFile, "Missing ')' to close variation.\n")
		r.ravLevel--
	}

	v.EndVariation()
}

// skipVariation consumes tokens up to the ')' matching an already consumed '('.
func (r *Reader) skipVariation() {
	depth := 1
	for depth > 0 {
		switch r.currentToken.Type {
		case RAVStart:
			depth++
		case RAVEnd:
			depth--
		case EOFToken, TagToken:
			fmt.Fprintf(r.cfg.LogFile, "Missing ')' to close variation.\n")
			r.ravLevel--
			return
		}
		r.nextToken()
	}
	r.ravLevel--
}

// skipMovetext consumes the rest of a game whose headers the visitor
// rejected. Lexer warnings are silenced while skipping.
func (r *Reader) skipMovetext(v MovetextVisitor) {
	r.cfg.SkippingCurrentGame = true
	defer func() { r.cfg.SkippingCurrentGame = false }()

	depth := 0
	for {
		switch r.currentToken.Type {
		case EOFToken, TagToken:
			return
		case RAVStart:
			depth++
		case RAVEnd:
			if depth > 0 {
				depth--
			}
		case TerminatingResult:
			if depth == 0 {
				v.Outcome(r.currentToken.TokenString)
				r.currentToken = &Token{Type: NoToken}
				return
			}
		}
		r.nextToken()
	}
}

// parseResult parses a game result.
func (r *Reader) parseResult() string {
	if r.currentToken.Type == TerminatingResult {
		result := r.currentToken.TokenString
		if r.ravLevel == 0 {
			// Set to NoToken to help skip between games
			r.currentToken = &Token{Type: NoToken}
		} else {
			r.nextToken()
		}
		return result
	}
	return ""
}
