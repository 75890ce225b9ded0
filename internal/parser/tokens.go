// Package parser tokenizes PGN text and walks each game, reporting headers,
// moves, comments and results to a Visitor.
package parser

import "github.com/lgbarn/pgn2csv-go/internal/chess"

// TokenType identifies a token handed to the Reader.
type TokenType int

const (
	EOFToken TokenType = iota
	TagToken
	StringToken
	CommentToken
	NAGToken
	CheckSymbol
	MoveNumber
	RAVStart
	RAVEnd
	MoveToken
	TerminatingResult

	// NoToken marks a consumed token; the Reader fetches the next one.
	NoToken
)

var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	TagToken:          "TAG",
	StringToken:       "STRING",
	CommentToken:      "COMMENT",
	NAGToken:          "NAG",
	CheckSymbol:       "CHECK_SYMBOL",
	MoveNumber:        "MOVE_NUMBER",
	RAVStart:          "RAV_START",
	RAVEnd:            "RAV_END",
	MoveToken:         "MOVE",
	TerminatingResult: "TERMINATING_RESULT",
	NoToken:           "NO_TOKEN",
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token is one lexical unit of PGN text.
type Token struct {
	Type TokenType

	// TokenString holds the tag name, string, comment, NAG or result text
	TokenString string

	// MoveDetails is set for MoveToken
	MoveDetails *chess.Move

	// TagIndex identifies known tag names, UnknownTag otherwise
	TagIndex chess.TagName

	// Line the token ended on
	Line uint
}

// charClass groups input bytes by the token they can start.
type charClass uint8

const (
	classInvalid charClass = iota
	classSpace
	classTagOpen
	classTagClose
	classQuote
	classCommentOpen
	classCommentClose
	classNAG
	classAnnotate
	classCheck
	classDot
	classRAVOpen
	classRAVClose
	classPercent
	classEscape
	classAlpha
	classDigit
	classStar
	classDash
)

var charClasses = func() (t [256]charClass) {
	for _, c := range []byte(" \t\r\n") {
		t[c] = classSpace
	}
	for c := byte('0'); c <= '9'; c++ {
		t[c] = classDigit
	}
	for c := byte('a'); c <= 'z'; c++ {
		t[c] = classAlpha
		t[c-'a'+'A'] = classAlpha
	}
	t['_'] = classAlpha

	t['['] = classTagOpen
	t[']'] = classTagClose
	t['"'] = classQuote
	t['{'] = classCommentOpen
	t['}'] = classCommentClose
	t['$'] = classNAG
	t['!'] = classAnnotate
	t['?'] = classAnnotate
	t['+'] = classCheck
	t['#'] = classCheck
	t['.'] = classDot
	t['('] = classRAVOpen
	t[')'] = classRAVClose
	t['%'] = classPercent
	t['\\'] = classEscape
	t['*'] = classStar
	t['-'] = classDash
	return t
}()

// moveChars are the bytes that may continue a move once a letter started it:
// files, ranks, English and Dutch/German piece letters, capture and
// promotion marks, castling letters and the "ep" suffix.
var moveChars = func() (t [256]bool) {
	for _, c := range []byte("abcdefgh12345678KQRNBkqrnDTSPLxX:-=Oo0p") {
		t[c] = true
	}
	return t
}()
