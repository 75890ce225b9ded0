package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/pgn2csv-go/internal/chess"
	"github.com/lgbarn/pgn2csv-go/internal/config"
)

// Lexer splits PGN text into tokens, one input line at a time. Problems
// with the text are logged to the config's log writer and skipped.
type Lexer struct {
	src     *bufio.Reader
	line    string
	pos     int
	lineNum uint
	err     error
	cfg     *config.Config

	// Open '(' of the current game
	ravDepth uint
}

// NewLexer creates a new lexer for the given reader.
// If cfg is nil, a default config is created.
func NewLexer(r io.Reader, cfg *config.Config) *Lexer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Lexer{
		src: bufio.NewReader(r),
		cfg: cfg,
	}
}

// readLine loads the next input line. It returns false once the input is
// exhausted or fails.
func (l *Lexer) readLine() bool {
	line, err := l.src.ReadString('\n')
	if err != nil && err != io.EOF && l.err == nil {
		l.err = err
	}
	if line == "" {
		return false
	}
	l.line, l.pos = line, 0
	l.lineNum++
	return true
}

// warn logs a problem with the text unless the game is being skipped.
func (l *Lexer) warn(format string, args ...any) {
	if !l.cfg.SkippingCurrentGame {
		fmt.Fprintf(l.cfg.LogFile, format, args...)
	}
}

func (l *Lexer) peek() byte {
	if l.pos < len(l.line) {
		return l.line[l.pos]
	}
	return 0
}

// consume advances over bytes of class c and returns the text from start.
func (l *Lexer) consume(start int, c charClass) string {
	for l.pos < len(l.line) && charClasses[l.line[l.pos]] == c {
		l.pos++
	}
	return l.line[start:l.pos]
}

// NextToken returns the next token, or an EOFToken at the end of the input.
func (l *Lexer) NextToken() *Token {
	for {
		if l.pos >= len(l.line) && !l.readLine() {
			return &Token{Type: EOFToken, Line: l.lineNum}
		}
		if tok := l.scan(); tok != nil {
			tok.Line = l.lineNum
			return tok
		}
	}
}

// scan reads one symbol starting at the current position. It returns nil
// for whitespace, punctuation and text that was rejected.
func (l *Lexer) scan() *Token {
	start := l.pos
	ch := l.line[l.pos]
	l.pos++

	switch charClasses[ch] {
	case classSpace, classDot:
		l.consume(start, charClasses[ch])
	case classTagOpen:
		return l.scanTag()
	case classTagClose:
	case classQuote:
		return l.scanString()
	case classCommentOpen:
		return l.scanComment()
	case classCommentClose:
		l.warn("Unmatched comment end on line %d.\n", l.lineNum)
	case classNAG:
		return &Token{Type: NAGToken, TokenString: "$" + l.consume(l.pos, classDigit)}
	case classAnnotate:
		return &Token{Type: NAGToken, TokenString: annotationNAG(l.consume(start, classAnnotate))}
	case classCheck:
		// Check marks separated from their move; ++ is a double check
		l.consume(start, classCheck)
		return &Token{Type: CheckSymbol}
	case classRAVOpen:
		l.ravDepth++
		return &Token{Type: RAVStart}
	case classRAVClose:
		if l.ravDepth > 0 {
			l.ravDepth--
			return &Token{Type: RAVEnd}
		}
		l.warn("Too many ')' found on line %d.\n", l.lineNum)
	case classPercent:
		// Escaped line
		l.pos = len(l.line)
	case classEscape:
		if l.pos < len(l.line) {
			l.pos++
		}
	case classAlpha:
		return l.scanMove(start)
	case classDigit:
		return l.scanNumber(start)
	case classStar:
		return &Token{Type: TerminatingResult, TokenString: "*"}
	case classDash:
		if l.peek() == '-' {
			l.pos++
			return &Token{Type: MoveToken, MoveDetails: DecodeMove(chess.NullMoveString)}
		}
		l.warn("Single '-' not allowed on line %d.\n", l.lineNum)
	default:
		text := l.consume(start, classInvalid)
		l.warn("Unknown character %q on line %d.\n", text, l.lineNum)
	}
	return nil
}

// scanTag reads the tag name after '['.
func (l *Lexer) scanTag() *Token {
	l.consume(l.pos, classSpace)

	start := l.pos
	for l.pos < len(l.line) && isTagNameChar(l.line[l.pos]) {
		l.pos++
	}
	if l.pos == start {
		return nil
	}
	name := l.line[start:l.pos]
	return &Token{Type: TagToken, TokenString: name, TagIndex: chess.LookupTag(name)}
}

func isTagNameChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// scanString reads a tag value up to the closing quote. A backslash
// escapes the byte after it.
func (l *Lexer) scanString() *Token {
	var sb strings.Builder
	for l.pos < len(l.line) {
		ch := l.line[l.pos]
		l.pos++
		switch {
		case ch == '"':
			return &Token{Type: StringToken, TokenString: sb.String()}
		case ch == '\\' && l.pos < len(l.line):
			sb.WriteByte(l.line[l.pos])
			l.pos++
		default:
			sb.WriteByte(ch)
		}
	}

	l.warn("Missing closing quote on line %d.\n", l.lineNum)
	return &Token{Type: StringToken, TokenString: strings.TrimRight(sb.String(), "\r\n")}
}

// scanComment reads a {...} comment, which may span lines. Nested braces
// are kept in the text when the config allows them.
func (l *Lexer) scanComment() *Token {
	var sb strings.Builder
	depth := 1

	for {
		for l.pos < len(l.line) {
			ch := l.line[l.pos]
			l.pos++

			switch {
			case ch == '{' && l.cfg.AllowNestedComments:
				depth++
			case ch == '}':
				depth--
				if depth == 0 {
					return &Token{Type: CommentToken, TokenString: strings.TrimSpace(sb.String())}
				}
			}
			sb.WriteByte(ch)
		}
		if !l.readLine() {
			break
		}
	}

	l.warn("Missing end of comment on line %d.\n", l.lineNum)
	return &Token{Type: CommentToken, TokenString: strings.TrimSpace(sb.String())}
}

// scanMove reads a word starting with a letter. Z0 is a null move; words
// that are not moves decode as unknown moves.
func (l *Lexer) scanMove(start int) *Token {
	ch := l.line[start]
	if ch == 'Z' && l.peek() == '0' {
		l.pos++
		return &Token{Type: MoveToken, MoveDetails: DecodeMove(chess.NullMoveString)}
	}

	// An en passant note written apart from its move.
	for _, note := range []string{"e.p.", "ep"} {
		end := start + len(note)
		if strings.HasPrefix(l.line[start:], note) && (end == len(l.line) || !isMoveWordChar(l.line[end])) {
			l.pos = end
			return nil
		}
	}

	for l.pos < len(l.line) && isMoveWordChar(l.line[l.pos]) {
		l.pos++
	}

	text := l.line[start:l.pos]
	// Check marks stay part of the move text.
	text += l.consume(l.pos, classCheck)
	if !looksLikeMove(text) {
		// Kept as an unknown move; the plies after it keep their numbers.
		l.warn("Unknown move text %s on line %d.\n", text, l.lineNum)
	}
	return &Token{Type: MoveToken, MoveDetails: DecodeMove(text)}
}

// isMoveWordChar reports whether c continues a move word. Letters and
// digits that cannot occur in a move are included so that a malformed move
// such as Qh9 stays one word.
func isMoveWordChar(c byte) bool {
	return moveChars[c] || charClasses[c] == classAlpha || charClasses[c] == classDigit
}

// numericForms are the tokens that start with a digit but are not move
// numbers. Longer forms come first.
var numericForms = []struct {
	text   string
	result string
	castle string
}{
	{text: "1/2-1/2", result: "1/2-1/2"},
	{text: "1/2", result: "1/2-1/2"},
	{text: "1-0", result: "1-0"},
	{text: "0-1", result: "0-1"},
	{text: "0-0-0", castle: "O-O-O"},
	{text: "0-0", castle: "O-O"},
}

// scanNumber reads a result, a castle written with zeros or a move number.
func (l *Lexer) scanNumber(start int) *Token {
	rest := l.line[start:]
	for _, form := range numericForms {
		if !strings.HasPrefix(rest, form.text) {
			continue
		}
		l.pos = start + len(form.text)
		if form.result != "" {
			return &Token{Type: TerminatingResult, TokenString: form.result}
		}
		return &Token{Type: MoveToken, MoveDetails: DecodeMove(form.castle + l.consume(l.pos, classCheck))}
	}

	l.consume(start, classDigit)
	l.consume(l.pos, classDot)
	return &Token{Type: MoveNumber}
}

// annotationNAG converts a move annotation such as "!?" to its NAG.
func annotationNAG(text string) string {
	switch text {
	case "!":
		return "$1"
	case "?":
		return "$2"
	case "!!":
		return "$3"
	case "??":
		return "$4"
	case "!?":
		return "$5"
	case "?!":
		return "$6"
	}
	return "$0"
}

// looksLikeMove filters out words that cannot be moves: anything but a
// castle needs a file and a rank.
func looksLikeMove(text string) bool {
	text = strings.TrimRight(text, "+#")
	switch text {
	case "O-O", "O-O-O", "o-o", "o-o-o", "0-0", "0-0-0":
		return true
	}
	for i := 0; i < len(text); i++ {
		if !moveChars[text[i]] {
			return false
		}
	}
	return strings.ContainsAny(text, "abcdefgh") && strings.ContainsAny(text, "12345678")
}

// RestartForNewGame clears per-game state.
func (l *Lexer) RestartForNewGame() {
	l.ravDepth = 0
}

// Err returns the first read error other than io.EOF.
func (l *Lexer) Err() error {
	return l.err
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() uint {
	return l.lineNum
}
